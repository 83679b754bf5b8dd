// Package document implements the structured-document codec (C2): a
// tag-with-attributes text format, its recursive-descent-style
// tokenizer and stack-based parser, and its pretty-printing writer.
//
// The schema is closed (spec.md §3/§4.2), ported from
// original_source/include/XMLParser.h's m_tags table and extended with
// the compressed/encrypted envelope tags spec.md adds.
package document

// tagSpec describes one recognized tag: its known attribute names, which
// of them are required, and whether the tag is self-closing.
type tagSpec struct {
	attributes map[string]bool // attribute name -> required
	selfClose  bool
}

// Tag names recognized by the schema.
const (
	TagVault      = "vault"
	TagDirectory  = "directory"
	TagFile       = "file"
	TagCompressed = "compressed"
	TagEncrypted  = "encrypted"
)

// Attribute names recognized anywhere in the schema.
const (
	AttrName         = "name"
	AttrData         = "data"
	AttrOriginalSize = "originalSize"
	AttrNonce        = "nonce"
	AttrSalt         = "salt"
	AttrMTime        = "mtime"
	AttrMode         = "mode"
)

// schema is the closed tag table. mtime/mode are accepted on file and
// directory as optional informational attributes (SPEC_FULL.md §6,
// supplementing original_source/src/Directory.cpp's lastWriteTime and
// File.cpp's last_write_time) — never required, so conformant archives
// without them still parse.
var schema = map[string]tagSpec{
	TagVault: {
		attributes: map[string]bool{AttrName: true},
		selfClose:  false,
	},
	TagDirectory: {
		attributes: map[string]bool{AttrName: true, AttrMTime: false, AttrMode: false},
		selfClose:  false,
	},
	TagFile: {
		attributes: map[string]bool{AttrName: true, AttrData: true, AttrMTime: false, AttrMode: false},
		selfClose:  true,
	},
	TagCompressed: {
		attributes: map[string]bool{AttrOriginalSize: true, AttrData: true},
		selfClose:  true,
	},
	TagEncrypted: {
		attributes: map[string]bool{AttrData: true, AttrNonce: true, AttrSalt: true},
		selfClose:  true,
	},
}

func isKnownTag(tag string) (tagSpec, bool) {
	spec, ok := schema[tag]
	return spec, ok
}
