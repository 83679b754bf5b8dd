package vault

import (
	"os"
	"path/filepath"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/log"
	"github.com/horizon-nth/vault/internal/tree"
)

// CreateOptions controls Create.
type CreateOptions struct {
	Name string
	// From, if non-empty, is an existing directory adopted as the new
	// vault's content by renaming it to the computed target path. If
	// empty, a fresh empty directory is created instead.
	From string
	// Destination is the directory the new vault directory is created
	// under. Empty means the current working directory.
	Destination string
}

// Create supplements spec.md's CLI surface with the `create` subcommand
// original_source/src/Application.cpp wires up (SPEC_FULL.md §11): it
// produces a new Opened-state vault, either an empty directory or an
// existing directory adopted under the vault name, and returns a handle
// to it.
func Create(opts CreateOptions) (*Vault, error) {
	if err := tree.ValidateName(opts.Name); err != nil {
		return nil, err
	}

	destParent := opts.Destination
	if destParent == "" {
		destParent = "."
	}
	if err := checkDestinationDir(destParent); err != nil {
		return nil, err
	}

	target := filepath.Join(destParent, opts.Name)
	if err := checkAlreadyExists(target); err != nil {
		return nil, err
	}

	if opts.From == "" {
		if err := os.MkdirAll(target, 0o700); err != nil {
			return nil, verr.NewPathError("mkdir", target, err)
		}
	} else {
		info, err := os.Stat(opts.From)
		if os.IsNotExist(err) {
			return nil, verr.NewPathError("stat", opts.From, verr.ErrNotFound)
		}
		if err != nil {
			return nil, verr.NewPathError("stat", opts.From, err)
		}
		if !info.IsDir() {
			return nil, verr.NewPathError("stat", opts.From, verr.ErrInvalidTarget)
		}
		if err := os.Rename(opts.From, target); err != nil {
			return nil, verr.NewPathError("rename", opts.From, err)
		}
	}

	v := &Vault{path: target, name: opts.Name, state: Opened, log: log.L()}
	v.log.Info("vault created", log.String("path", v.path))
	return v, nil
}
