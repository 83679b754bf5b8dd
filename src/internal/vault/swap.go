package vault

import (
	"fmt"
	"os"
	"path/filepath"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// uniqueTempName returns a path under parent that does not currently
// exist, matching original_source/src/Utils.cpp::get_temp_name's
// counting scheme.
func uniqueTempName(parent string) string {
	for counter := 0; ; counter++ {
		candidate := filepath.Join(parent, fmt.Sprintf("temp%d", counter))
		if _, err := os.Lstat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// swapOut renames p to a fresh temp path in p's parent directory, so the
// original representation survives as a single atomic filesystem
// operation while the transition's output is produced at a new path
// (spec.md §4.8 step 3 of open, step 2 of close).
func swapOut(p string) (temp string, err error) {
	temp = uniqueTempName(filepath.Dir(p))
	if err := os.Rename(p, temp); err != nil {
		return "", verr.NewPathError("rename", p, err)
	}
	return temp, nil
}

// rollback restores the original representation from temp to original
// after a failed transition, and best-effort removes whatever partial
// output exists at newPath.
func rollback(newPath, temp, original string) error {
	_ = os.RemoveAll(newPath)
	if err := os.Rename(temp, original); err != nil {
		return verr.NewPathError("rename", temp, err)
	}
	return nil
}

// commit discards the preserved original now that the transition
// succeeded.
func commit(temp string) error {
	if err := os.RemoveAll(temp); err != nil {
		return verr.NewPathError("remove", temp, err)
	}
	return nil
}

// checkDestinationDir validates a user-supplied destination parent
// directory: it must exist and be a directory (spec.md §4.8
// preconditions for both open and close).
func checkDestinationDir(destination string) error {
	info, err := os.Stat(destination)
	if os.IsNotExist(err) {
		return verr.NewPathError("stat", destination, verr.ErrNotFound)
	}
	if err != nil {
		return verr.NewPathError("stat", destination, err)
	}
	if !info.IsDir() {
		return verr.NewPathError("stat", destination, verr.ErrInvalidTarget)
	}
	return nil
}

// checkNotOverlapping rejects a destination parent that is p itself or
// nested inside p: the close-direction swap moves p aside before the
// archive is written, so that destination would no longer exist at its
// path (spec.md §4.8 Refusals).
func checkNotOverlapping(p, destinationParent string) error {
	absP, err := filepath.Abs(p)
	if err != nil {
		return verr.NewPathError("abs", p, err)
	}
	absDest, err := filepath.Abs(destinationParent)
	if err != nil {
		return verr.NewPathError("abs", destinationParent, err)
	}
	rel, err := filepath.Rel(absP, absDest)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !startsWithParentRef(rel)) {
		return verr.NewPathError("stat", destinationParent, verr.ErrInvalidTarget)
	}
	return nil
}

// startsWithParentRef reports whether rel, as produced by filepath.Rel,
// climbs out of the base directory (i.e. destinationParent lies outside
// p rather than inside it).
func startsWithParentRef(rel string) bool {
	return rel == ".." || len(rel) > 2 && rel[:3] == ".."+string(filepath.Separator)
}

// checkAlreadyExists rejects a computed destination path that already
// exists before the swap (spec.md §7 AlreadyExists).
func checkAlreadyExists(path string) error {
	if _, err := os.Lstat(path); err == nil {
		return verr.NewPathError("stat", path, verr.ErrAlreadyExists)
	} else if !os.IsNotExist(err) {
		return verr.NewPathError("stat", path, err)
	}
	return nil
}
