// Package compress implements the compression layer (C3): a stateless
// byte-buffer compressor/decompressor for the archive's "compressed"
// envelope (spec.md §4.3).
//
// original_source/src/CompressionManager.cpp reached for zlib directly
// (via ::compress/::uncompress from the system zlib library) over a
// Botan::secure_vector buffer. This port uses
// github.com/klauspost/compress/zlib, a drop-in replacement for the
// standard library's compress/zlib that is already part of the example
// pack's dependency graph (javanhut-IvaldiVCS requires
// github.com/klauspost/compress directly); its zlib writer/reader
// produces the same self-delimiting container (DEFLATE stream plus an
// Adler-32 trailer) so decompression never depends on out-of-band
// framing, matching spec.md §4.3's contract.
package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"

	verr "github.com/horizon-nth/vault/internal/errors"
)

// Compress returns the zlib-compressed form of data. Total: never fails
// for any input, including empty.
func Compress(data []byte) []byte {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, _ = w.Write(data) // writing to an in-memory buffer cannot fail
	_ = w.Close()
	return buf.Bytes()
}

// Decompress reverses Compress, failing with ErrBadCompression if the
// stream is corrupt or the decompressed length doesn't equal
// originalSize — the equality check guards against silent truncation and
// a mis-recorded size (spec.md §4.3).
func Decompress(data []byte, originalSize int) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, verr.NewCompressionError(err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, verr.NewCompressionError(err)
	}
	if len(out) != originalSize {
		return nil, verr.NewCompressionError(nil)
	}
	return out, nil
}
