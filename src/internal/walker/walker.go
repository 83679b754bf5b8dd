// Package walker implements the filesystem walker and materializer (C6):
// walking a directory into the tree model on close, and materializing a
// tree back onto disk on open (spec.md §4.6).
package walker

import (
	"os"
	"path/filepath"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/tree"
)

// Walk depth-first traverses sourceDir and builds the corresponding
// tree.Directory named name. A symlink or any entry that is neither a
// regular file nor a directory fails with ErrUnsupportedEntry — the
// archive format has no link concept (spec.md §4.6).
//
// When preserveMetadata is true, each node's mtime/mode is captured from
// its source entry and carried into the archive (SPEC_FULL.md §6/§11,
// gated behind the CLI's --preserve-metadata flag); the root's own
// metadata is captured too, but the <vault> tag has no attributes for it,
// so it is not written. When false, no metadata is attached and the
// writer omits the attributes entirely.
//
// Traversal order is whatever the host directory iterator yields;
// ported from original_source/src/Vault.cpp::read_from_dir, with its
// explicit stack replaced by recursion through walkInto, and generalized
// to build a standalone tree rather than mutate a Vault's own child list.
func Walk(sourceDir, name string, preserveMetadata bool) (*tree.Directory, error) {
	dir, err := tree.NewDirectory(name)
	if err != nil {
		return nil, err
	}
	if preserveMetadata {
		if info, err := os.Stat(sourceDir); err == nil {
			dir.SetMetadata(&tree.Metadata{MTime: info.ModTime(), Mode: info.Mode()})
		}
	}
	if err := walkInto(sourceDir, dir, preserveMetadata); err != nil {
		return nil, err
	}
	return dir, nil
}

func walkInto(path string, dir *tree.Directory, preserveMetadata bool) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return verr.NewPathError("read", path, err)
	}

	for _, entry := range entries {
		childPath := filepath.Join(path, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return verr.NewPathError("stat", childPath, err)
		}

		switch {
		case info.Mode()&os.ModeSymlink != 0:
			return verr.NewUnsupportedEntryError(childPath)

		case entry.IsDir():
			sub, err := tree.NewDirectory(entry.Name())
			if err != nil {
				return err
			}
			if preserveMetadata {
				sub.SetMetadata(&tree.Metadata{MTime: info.ModTime(), Mode: info.Mode()})
			}
			if err := walkInto(childPath, sub, preserveMetadata); err != nil {
				return err
			}
			if err := dir.Add(sub); err != nil {
				return err
			}

		case info.Mode().IsRegular():
			data, err := os.ReadFile(childPath)
			if err != nil {
				return verr.NewPathError("read", childPath, err)
			}
			f, err := tree.NewFileFromBytes(entry.Name(), data)
			if err != nil {
				return err
			}
			if preserveMetadata {
				f.SetMetadata(&tree.Metadata{MTime: info.ModTime(), Mode: info.Mode()})
			}
			if err := dir.Add(f); err != nil {
				return err
			}

		default:
			return verr.NewUnsupportedEntryError(childPath)
		}
	}
	return nil
}

// Materialize creates root.Name() under destParent and recursively
// writes every descendant, via tree.Node's own MaterializeAt.
func Materialize(root *tree.Directory, destParent string) (string, error) {
	if err := root.MaterializeAt(destParent); err != nil {
		return "", err
	}
	return filepath.Join(destParent, root.Name()), nil
}
