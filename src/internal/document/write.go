package document

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/horizon-nth/vault/internal/tree"
)

// Builder implements tree.Writer, accumulating tab-indented, pretty
// printed document text as tree nodes serialize themselves into it.
// Attribute values are always double-quoted; spec.md §4.2 guarantees
// they never contain a '"' because names are validated at construction
// and every other attribute value is a controlled identifier, decimal
// integer, or binary-to-text-encoded string.
type Builder struct {
	sb    strings.Builder
	depth int
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// String returns the accumulated document text.
func (b *Builder) String() string {
	return b.sb.String()
}

func (b *Builder) indent() string {
	return strings.Repeat("\t", b.depth)
}

// OpenFile emits a self-closing <file name="..." data="..."/> line,
// including mtime/mode attributes when meta is non-nil (only when the
// caller asked the walker to preserve metadata).
func (b *Builder) OpenFile(name, encodedData string, meta *tree.Metadata) {
	fmt.Fprintf(&b.sb, "%s<file name=%q data=%q%s/>\n", b.indent(), name, encodedData, metaAttrs(meta))
}

// OpenDirectory emits an open <directory name="...">, runs body at the
// next indent depth, then emits the matching closing tag.
func (b *Builder) OpenDirectory(name string, meta *tree.Metadata, body func()) {
	fmt.Fprintf(&b.sb, "%s<directory name=%q%s>\n", b.indent(), name, metaAttrs(meta))
	b.depth++
	body()
	b.depth--
	fmt.Fprintf(&b.sb, "%s</directory>\n", b.indent())
}

// metaAttrs renders the optional mtime/mode attributes (SPEC_FULL.md
// §6): mtime as decimal Unix seconds, mode as an octal permission
// string, mirroring original_source/src/Directory.cpp's lastWriteTime.
func metaAttrs(meta *tree.Metadata) string {
	if meta == nil {
		return ""
	}
	return fmt.Sprintf(" %s=%q %s=%q", AttrMTime, strconv.FormatInt(meta.MTime.Unix(), 10), AttrMode, strconv.FormatUint(uint64(meta.Mode.Perm()), 8))
}

// OpenVault emits the root <vault name="...">, runs body at the next
// indent depth, then the closing </vault>. Kept distinct from
// OpenDirectory because "vault" and "directory" are different tags
// sharing the same shape.
func (b *Builder) OpenVault(name string, body func()) {
	fmt.Fprintf(&b.sb, "%s<vault name=%q>\n", b.indent(), name)
	b.depth++
	body()
	b.depth--
	fmt.Fprintf(&b.sb, "%s</vault>\n", b.indent())
}

// WriteSelfClosing emits an arbitrary self-closing tag with the given
// attributes in the supplied order, used by the transform pipeline to
// write the compressed/encrypted envelope tags without going through
// the tree model.
func WriteSelfClosing(tag string, attrs []Attribute) string {
	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	for _, a := range attrs {
		fmt.Fprintf(&sb, " %s=%q", a.Name, a.Value)
	}
	sb.WriteString("/>")
	return sb.String()
}

// Attribute is an ordered name/value pair for WriteSelfClosing.
type Attribute struct {
	Name  string
	Value string
}
