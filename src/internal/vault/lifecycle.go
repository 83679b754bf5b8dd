package vault

import (
	"os"
	"path/filepath"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/log"
	"github.com/horizon-nth/vault/internal/pipeline"
	"github.com/horizon-nth/vault/internal/walker"
)

// OpenOptions controls the opened-from-closed transition.
type OpenOptions struct {
	// Destination is the directory the vault's materialized form is
	// created under. Empty means "p's parent directory".
	Destination string
}

// Open runs the opened-from-closed transition (spec.md §4.8): read and
// decode the archive at v.Path(), swap it out to a temp name, and
// materialize the tree at the destination. On any failure during
// materialization the original is restored and the temp removed.
func (v *Vault) Open(opts OpenOptions, prompter pipeline.Prompter) error {
	if v.state != Closed {
		return verr.NewPathError("open", v.path, verr.ErrWrongState)
	}
	if opts.Destination != "" {
		if err := checkDestinationDir(opts.Destination); err != nil {
			return err
		}
	}

	data, err := os.ReadFile(v.path)
	if err != nil {
		return verr.NewPathError("read", v.path, err)
	}

	root, err := pipeline.Open(data, prompter)
	if err != nil {
		return err
	}
	// The document's own "name" attribute is authoritative, matching
	// original_source/src/Vault.cpp::extract_from_xml assigning m_name
	// from the parsed node rather than keeping the path-derived stem.
	name := root.Name()

	destParent := opts.Destination
	if destParent == "" {
		destParent = filepath.Dir(v.path)
	}
	newPath := filepath.Join(destParent, name)
	if err := checkAlreadyExists(newPath); err != nil {
		return err
	}

	temp, err := swapOut(v.path)
	if err != nil {
		return err
	}

	if _, err := walker.Materialize(root, destParent); err != nil {
		if rbErr := rollback(newPath, temp, v.path); rbErr != nil {
			v.log.Error("rollback after open failed", log.Err(rbErr), log.String("path", v.path))
			return rbErr
		}
		return err
	}

	if err := commit(temp); err != nil {
		return err
	}

	v.path = newPath
	v.name = name
	v.state = Opened
	v.log.Info("vault opened", log.String("path", v.path))
	return nil
}

// CloseOptions controls the closed-from-opened transition.
type CloseOptions struct {
	// Destination is the directory the archive file is written under.
	// Empty means "p's parent directory".
	Destination string
	// Extension overrides the default ".vlt" suffix; an explicitly
	// empty string (as opposed to unset) produces a bare name.
	Extension *string
	Compress  bool
	Encrypt   bool
	// PreserveMetadata, when true, attaches each entry's mtime/mode to
	// the archive (SPEC_FULL.md §6/§11, --preserve-metadata).
	PreserveMetadata bool
}

// Close runs the closed-from-opened transition (spec.md §4.8): walk the
// directory at v.Path() into a tree, swap it out to a temp name, and
// write the transformed archive at the destination. On any failure
// during the write the original is restored and the temp removed.
func (v *Vault) Close(opts CloseOptions, prompter pipeline.Prompter) error {
	if v.state != Opened {
		return verr.NewPathError("close", v.path, verr.ErrWrongState)
	}
	if opts.Destination != "" {
		if err := checkDestinationDir(opts.Destination); err != nil {
			return err
		}
		if err := checkNotOverlapping(v.path, opts.Destination); err != nil {
			return err
		}
	}

	root, err := walker.Walk(v.path, v.name, opts.PreserveMetadata)
	if err != nil {
		return err
	}

	ext := ".vlt"
	if opts.Extension != nil {
		ext = normalizeExtension(*opts.Extension)
	}
	destParent := opts.Destination
	if destParent == "" {
		destParent = filepath.Dir(v.path)
	}
	newPath := filepath.Join(destParent, v.name+ext)
	// With an empty extension and no destination, newPath is the source
	// directory itself, which swapOut moves aside before the write.
	if newPath != filepath.Clean(v.path) {
		if err := checkAlreadyExists(newPath); err != nil {
			return err
		}
	}

	temp, err := swapOut(v.path)
	if err != nil {
		return err
	}

	archive, err := pipeline.Close(root, pipeline.CloseOptions{Compress: opts.Compress, Encrypt: opts.Encrypt}, prompter)
	if err == nil {
		err = os.WriteFile(newPath, archive, 0o600)
		if err != nil {
			err = verr.NewPathError("write", newPath, err)
		}
	}
	if err != nil {
		if rbErr := rollback(newPath, temp, v.path); rbErr != nil {
			v.log.Error("rollback after close failed", log.Err(rbErr), log.String("path", v.path))
			return rbErr
		}
		return err
	}

	if err := commit(temp); err != nil {
		return err
	}

	v.path = newPath
	v.state = Closed
	v.log.Info("vault closed", log.String("path", v.path))
	return nil
}
