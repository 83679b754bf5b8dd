package tree

import (
	"os"
	"path/filepath"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// Directory is an inner node (or the vault root conceptually) holding an
// ordered sequence of children. Order is the order produced by the
// directory walk or parse and must be preserved through any codec round
// trip (spec.md §3).
type Directory struct {
	name     string
	children []Node
	meta     *Metadata
}

// NewDirectory constructs an empty Directory with the given name.
func NewDirectory(name string) (*Directory, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	return &Directory{name: name}, nil
}

func (d *Directory) Name() string { return d.name }

// Children returns the ordered child nodes. Callers must not assume
// uniqueness of other cases; duplicate-name detection happens in Add.
func (d *Directory) Children() []Node { return d.children }

// Add appends a child, rejecting a name collision within this directory
// (spec.md §3: names are unique, case-sensitively, within a directory).
func (d *Directory) Add(child Node) error {
	for _, existing := range d.children {
		if existing.Name() == child.Name() {
			return verr.NewValidationError("name", "duplicate child name \""+child.Name()+"\" in directory \""+d.name+"\"")
		}
	}
	d.children = append(d.children, child)
	return nil
}

// Metadata returns the directory's recorded mtime/mode, or nil if none
// was captured.
func (d *Directory) Metadata() *Metadata { return d.meta }

// SetMetadata attaches an optional mtime/mode to the directory, for the
// walker to call when metadata preservation is requested.
func (d *Directory) SetMetadata(meta *Metadata) { d.meta = meta }

func (d *Directory) SerializeInto(w Writer) {
	w.OpenDirectory(d.name, d.meta, func() {
		for _, child := range d.children {
			child.SerializeInto(w)
		}
	})
}

// MaterializeAt creates parentDir/name and recursively materializes every
// child inside it (C6 materializer, spec.md §4.6), then best-effort
// restores mtime/mode the same way File.MaterializeAt does. Directory
// mtime is restored last since writing children updates it.
func (d *Directory) MaterializeAt(parentDir string) error {
	path := filepath.Join(parentDir, d.name)
	if err := os.MkdirAll(path, 0o700); err != nil {
		return verr.NewPathError("mkdir", path, err)
	}
	for _, child := range d.children {
		if err := child.MaterializeAt(path); err != nil {
			return err
		}
	}
	if d.meta != nil {
		_ = os.Chmod(path, d.meta.Mode)
		_ = os.Chtimes(path, d.meta.MTime, d.meta.MTime)
	}
	return nil
}
