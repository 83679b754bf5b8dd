// Package vault implements the vault lifecycle orchestrator (C8):
// construction from a single on-disk path, and the open/close state
// transitions with their atomic-swap protocol and rollback-on-failure
// (spec.md §4.8), grounded on
// original_source/src/Vault.cpp::open/close.
package vault

import (
	"os"
	"path/filepath"
	"strings"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/log"
)

// State is the vault handle's lifecycle state.
type State int

const (
	Closed State = iota
	Opened
)

func (s State) String() string {
	if s == Closed {
		return "closed"
	}
	return "opened"
}

// Vault is a handle over one on-disk path, exclusively owning an
// in-memory tree between the two I/O phases of a transition
// (spec.md §3 "Lifecycle").
type Vault struct {
	path  string
	name  string
	state State
	log   log.Logger
}

// FromPath constructs a Vault handle from p, which must already exist as
// either a regular file (state Closed) or a directory (state Opened).
func FromPath(p string) (*Vault, error) {
	info, err := os.Stat(p)
	if os.IsNotExist(err) {
		return nil, verr.NewPathError("stat", p, verr.ErrNotFound)
	}
	if err != nil {
		return nil, verr.NewPathError("stat", p, err)
	}

	var state State
	switch {
	case info.Mode().IsRegular():
		state = Closed
	case info.IsDir():
		state = Opened
	default:
		return nil, verr.NewPathError("stat", p, verr.ErrInvalidTarget)
	}

	return &Vault{
		path:  p,
		name:  stem(p),
		state: state,
		log:   log.L(),
	}, nil
}

// Path returns the handle's current on-disk path.
func (v *Vault) Path() string { return v.path }

// State returns the handle's current lifecycle state.
func (v *Vault) State() State { return v.state }

// Name returns the vault-name candidate derived from the path's stem.
func (v *Vault) Name() string { return v.name }

// stem returns the filename without its final extension, matching
// std::filesystem::path::stem() as used by
// original_source/src/Vault.cpp's constructor.
func stem(p string) string {
	base := filepath.Base(p)
	if ext := filepath.Ext(base); ext != "" && ext != base {
		return strings.TrimSuffix(base, ext)
	}
	return base
}

// normalizeExtension prepends a leading '.' when ext is non-empty and
// lacks one; an explicitly empty extension stays empty (spec.md §6,
// resolved in SPEC_FULL.md §10).
func normalizeExtension(ext string) string {
	if ext == "" {
		return ""
	}
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
