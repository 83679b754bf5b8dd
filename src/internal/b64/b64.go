// Package b64 implements the binary-to-text codec (C1) used to embed
// arbitrary file payloads and envelope fields inside archive attributes.
//
// It is the standard padded base64 alphabet (A-Z a-z 0-9 + /, '=' padding)
// described in spec.md §4.1. The standard library's encoding/base64
// already implements this exactly; no third-party module in the pack
// offers a materially different or better binary-to-text codec, so this
// is one of the few places the implementation stays on stdlib by design.
package b64

import (
	"encoding/base64"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// Encode converts bytes to their base64 text form. Total: an empty input
// produces an empty string.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode converts base64 text back to bytes, failing with ErrBadEncoding
// when the string length isn't a multiple of four, an out-of-alphabet
// character appears, or padding is malformed.
func Decode(s string) ([]byte, error) {
	if len(s)%4 != 0 {
		return nil, verr.NewArchiveBadEncoding("length not a multiple of four")
	}
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, verr.NewArchiveBadEncoding(err.Error())
	}
	return data, nil
}
