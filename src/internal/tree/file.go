package tree

import (
	"os"
	"path/filepath"

	"github.com/horizon-nth/vault/internal/b64"
	verr "github.com/horizon-nth/vault/internal/errors"
)

// File is a leaf node. Its payload is stored exclusively in its
// binary-to-text-encoded form, the form the archive document carries
// (spec.md §3): encoding happens once at walk time, decoding happens
// once at materialization time.
type File struct {
	name        string
	encodedData string
	meta        *Metadata
}

// NewFile constructs a File from a name and already-encoded payload, as
// produced by the walker (encode-on-read) or the archive parser
// (verbatim from the "data" attribute).
func NewFile(name, encodedData string) (*File, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &File{name: name, encodedData: encodedData}, nil
}

// NewFileFromBytes encodes raw bytes via C1 and wraps them as a File.
func NewFileFromBytes(name string, data []byte) (*File, error) {
	return NewFile(name, b64.Encode(data))
}

func (f *File) Name() string { return f.name }

// EncodedData returns the C1-encoded payload carried verbatim in the
// archive's "data" attribute.
func (f *File) EncodedData() string { return f.encodedData }

// Metadata returns the file's recorded mtime/mode, or nil if none was
// captured.
func (f *File) Metadata() *Metadata { return f.meta }

// SetMetadata attaches an optional mtime/mode to the file, for the
// walker to call when metadata preservation is requested.
func (f *File) SetMetadata(meta *Metadata) { f.meta = meta }

func (f *File) SerializeInto(w Writer) {
	w.OpenFile(f.name, f.encodedData, f.meta)
}

// MaterializeAt writes the decoded payload to parentDir/name in binary
// mode (C6 materializer, spec.md §4.6), then best-effort restores mtime
// and mode if the file carries recorded metadata. Restoration failures
// are not propagated: metadata is informational, never load-bearing
// (spec.md Non-goals: no mandatory metadata preservation).
func (f *File) MaterializeAt(parentDir string) error {
	data, err := b64.Decode(f.encodedData)
	if err != nil {
		return err
	}
	path := filepath.Join(parentDir, f.name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return verr.NewPathError("write", path, err)
	}
	if f.meta != nil {
		_ = os.Chmod(path, f.meta.Mode)
		_ = os.Chtimes(path, f.meta.MTime, f.meta.MTime)
	}
	return nil
}
