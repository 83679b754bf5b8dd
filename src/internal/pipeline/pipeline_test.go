package pipeline

import (
	"testing"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/tree"
)

type fixedPrompter struct {
	password string
}

func (f fixedPrompter) PromptForClose() ([]byte, error) { return []byte(f.password), nil }
func (f fixedPrompter) PromptForOpen() ([]byte, error)  { return []byte(f.password), nil }

func buildSampleTree(t *testing.T) *tree.Directory {
	t.Helper()
	root, err := tree.NewDirectory("v")
	if err != nil {
		t.Fatal(err)
	}
	f, err := tree.NewFileFromBytes("a.txt", []byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Add(f); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestClosePlainRoundTrip(t *testing.T) {
	root := buildSampleTree(t)
	data, err := Close(root, CloseOptions{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:7]) != "<vault " {
		t.Fatalf("expected plain archive to start with \"<vault \", got %q", data[:7])
	}
	rebuilt, err := Open(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt.Name() != "v" || len(rebuilt.Children()) != 1 {
		t.Fatalf("unexpected tree after open: %+v", rebuilt)
	}
}

func TestCloseCompressedRoundTrip(t *testing.T) {
	root := buildSampleTree(t)
	data, err := Close(root, CloseOptions{Compress: true}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:12]) != "<compressed " {
		t.Fatalf("expected compressed envelope, got %q", data[:12])
	}
	rebuilt, err := Open(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt.Name() != "v" {
		t.Fatalf("unexpected tree after open: %+v", rebuilt)
	}
}

func TestCloseEncryptedRoundTrip(t *testing.T) {
	root := buildSampleTree(t)
	prompter := fixedPrompter{password: "P@ss"}
	data, err := Close(root, CloseOptions{Encrypt: true}, prompter)
	if err != nil {
		t.Fatal(err)
	}
	if string(data[:11]) != "<encrypted " {
		t.Fatalf("expected encrypted envelope, got %q", data[:11])
	}
	rebuilt, err := Open(data, prompter)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt.Name() != "v" {
		t.Fatalf("unexpected tree after open: %+v", rebuilt)
	}
}

func TestCloseCompressedAndEncryptedRoundTrip(t *testing.T) {
	root := buildSampleTree(t)
	prompter := fixedPrompter{password: "P@ss"}
	data, err := Close(root, CloseOptions{Compress: true, Encrypt: true}, prompter)
	if err != nil {
		t.Fatal(err)
	}
	rebuilt, err := Open(data, prompter)
	if err != nil {
		t.Fatal(err)
	}
	if rebuilt.Name() != "v" {
		t.Fatalf("unexpected tree after open: %+v", rebuilt)
	}
}

func TestOpenWrongPasswordFails(t *testing.T) {
	root := buildSampleTree(t)
	data, err := Close(root, CloseOptions{Encrypt: true}, fixedPrompter{password: "right"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(data, fixedPrompter{password: "wrong"}); !verr.Is(err, verr.ErrIntegrityFailure) {
		t.Fatalf("expected ErrIntegrityFailure, got %v", err)
	}
}

func TestOpenUnknownTagFails(t *testing.T) {
	data := []byte(`<vault name="x"><link name="l"/></vault>`)
	if _, err := Open(data, nil); !verr.Is(err, verr.ErrBadArchive) {
		t.Fatalf("expected ErrBadArchive, got %v", err)
	}
}
