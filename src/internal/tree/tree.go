// Package tree implements the in-memory vault tree model (C5): a sum type
// of File and Directory nodes shared by the filesystem walker and the
// archive parser. Nodes know only how to serialize themselves into a
// Writer (implemented by the document codec) and how to materialize
// themselves under a destination directory.
package tree

import (
	"os"
	"strings"
	"time"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// Node is the sum-type interface every tree element satisfies. Only
// *Directory and *File implement it; callers needing to distinguish the
// two do so with a type switch, following the teacher's "reserve an
// interface only for the two operations" note (spec.md §9).
type Node interface {
	Name() string
	SerializeInto(w Writer)
	MaterializeAt(parentDir string) error
}

// Metadata carries the optional, informational mtime/mode a node may
// remember from its source filesystem entry (SPEC_FULL.md §6/§11,
// supplementing original_source/src/Directory.cpp and File.cpp's
// last_write_time preservation). A nil *Metadata means "none recorded";
// readers never require it and writers only attach it when the caller
// asks for metadata preservation.
type Metadata struct {
	MTime time.Time
	Mode  os.FileMode
}

// Writer is the minimal surface tree nodes need from the document codec
// to serialize themselves without importing it directly, avoiding an
// import cycle between tree and document (document builds trees too).
type Writer interface {
	OpenFile(name, encodedData string, meta *Metadata)
	OpenDirectory(name string, meta *Metadata, body func())
}

// ValidateName enforces spec.md §3's node-name invariants: a single path
// component, non-empty, not "." or "..", and free of characters the
// document codec's attribute quoting can't carry.
func ValidateName(name string) error {
	if name == "" {
		return verr.NewValidationError("name", "must not be empty")
	}
	if name == "." || name == ".." {
		return verr.NewValidationError("name", "must not be \".\" or \"..\"")
	}
	if strings.ContainsAny(name, "/\\") {
		return verr.NewValidationError("name", "must be a single path component")
	}
	if strings.Contains(name, "\"") {
		return verr.NewValidationError("name", "must not contain a double quote")
	}
	return nil
}
