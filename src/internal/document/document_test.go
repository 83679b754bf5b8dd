package document

import (
	"testing"
	"time"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/tree"
)

func TestParseWriteRoundTrip(t *testing.T) {
	root, err := tree.NewDirectory("v")
	if err != nil {
		t.Fatal(err)
	}
	f, err := tree.NewFile("a.txt", "aGVsbG8=")
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Add(f); err != nil {
		t.Fatal(err)
	}
	sub, err := tree.NewDirectory("sub")
	if err != nil {
		t.Fatal(err)
	}
	b, err := tree.NewFile("b.bin", "AP9/gA==")
	if err != nil {
		t.Fatal(err)
	}
	if err := sub.Add(b); err != nil {
		t.Fatal(err)
	}
	if err := root.Add(sub); err != nil {
		t.Fatal(err)
	}

	text := SerializeVault(root)
	if text[:7] != "<vault " {
		t.Fatalf("expected document to start with \"<vault \", got %q", text[:7])
	}

	parsed, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	rebuilt, err := BuildVaultTree(parsed)
	if err != nil {
		t.Fatalf("BuildVaultTree: %v", err)
	}
	if rebuilt.Name() != "v" || len(rebuilt.Children()) != 2 {
		t.Fatalf("unexpected rebuilt tree: name=%s children=%d", rebuilt.Name(), len(rebuilt.Children()))
	}
}

func TestParseEmptyDirectory(t *testing.T) {
	text := `<vault name="empty"></vault>`
	root, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := BuildVaultTree(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.Children()) != 0 {
		t.Fatalf("expected no children, got %d", len(tr.Children()))
	}
}

func TestParseUnknownTagFails(t *testing.T) {
	text := `<vault name="x"><link name="l"/></vault>`
	root, err := Parse(text)
	if err == nil {
		t.Fatalf("expected error, got root %v", root)
	}
	if !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}

func TestParseUnknownAttributeFails(t *testing.T) {
	text := `<vault name="x" bogus="1"></vault>`
	if _, err := Parse(text); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}

func TestParseDuplicateAttributeFails(t *testing.T) {
	text := `<vault name="x" name="y"></vault>`
	if _, err := Parse(text); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}

func TestParseMissingRequiredAttributeFails(t *testing.T) {
	text := `<vault></vault>`
	if _, err := Parse(text); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}

func TestParseMismatchedClosingTagFails(t *testing.T) {
	text := `<vault name="x"><directory name="d"></vault></directory>`
	if _, err := Parse(text); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}

func TestParseUnterminatedQuoteFails(t *testing.T) {
	text := `<vault name="x></vault>`
	if _, err := Parse(text); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}

func TestParseSelfClosingFileAndEnvelopes(t *testing.T) {
	text := `<compressed originalSize="10" data="AAAA"/>`
	root, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if root.Tag != TagCompressed {
		t.Fatalf("expected tag %s, got %s", TagCompressed, root.Tag)
	}
	if v, _ := root.Attr(AttrOriginalSize); v != "10" {
		t.Fatalf("unexpected originalSize %q", v)
	}
}

func TestMetadataRoundTripWhenPresent(t *testing.T) {
	root, err := tree.NewDirectory("v")
	if err != nil {
		t.Fatal(err)
	}
	f, err := tree.NewFile("a.txt", "aGVsbG8=")
	if err != nil {
		t.Fatal(err)
	}
	mtime := time.Unix(1700000000, 0)
	f.SetMetadata(&tree.Metadata{MTime: mtime, Mode: 0o644})
	if err := root.Add(f); err != nil {
		t.Fatal(err)
	}

	text := SerializeVault(root)
	parsed, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := BuildVaultTree(parsed)
	if err != nil {
		t.Fatal(err)
	}
	meta := rebuilt.Children()[0].(*tree.File).Metadata()
	if meta == nil {
		t.Fatal("expected metadata to survive the round trip")
	}
	if !meta.MTime.Equal(mtime) {
		t.Fatalf("mtime = %v, want %v", meta.MTime, mtime)
	}
	if meta.Mode != 0o644 {
		t.Fatalf("mode = %o, want %o", meta.Mode, 0o644)
	}
}

func TestBuildTreeRejectsNonFileDirectoryChild(t *testing.T) {
	text := `<vault name="x"><encrypted data="a" nonce="b" salt="c"/></vault>`
	root, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := BuildVaultTree(root); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}
