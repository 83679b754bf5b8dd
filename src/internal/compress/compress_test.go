package compress

import (
	"bytes"
	"testing"

	verr "github.com/horizon-nth/vault/internal/errors"
)

func TestRoundTrip(t *testing.T) {
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("hello world"),
		bytes.Repeat([]byte("abc"), 10000),
	}
	for _, data := range cases {
		compressed := Compress(data)
		out, err := Decompress(compressed, len(data))
		if err != nil {
			t.Fatalf("Decompress: %v", err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("round trip mismatch: got %v, want %v", out, data)
		}
	}
}

func TestDecompressRejectsCorruptStream(t *testing.T) {
	if _, err := Decompress([]byte("not a zlib stream"), 10); !verr.Is(err, verr.ErrBadCompression) {
		t.Fatalf("expected ErrBadCompression, got %v", err)
	}
}

func TestDecompressRejectsSizeMismatch(t *testing.T) {
	compressed := Compress([]byte("hello world"))
	if _, err := Decompress(compressed, 3); !verr.Is(err, verr.ErrBadCompression) {
		t.Fatalf("expected ErrBadCompression, got %v", err)
	}
}
