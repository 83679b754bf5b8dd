// Package pipeline implements the transform pipeline (C7): composing the
// document codec, compression layer, and encryption layer in the correct
// order on both close and open, and recognizing the outermost envelope
// on read (spec.md §4.7).
package pipeline

import (
	"strconv"

	"github.com/horizon-nth/vault/internal/compress"
	"github.com/horizon-nth/vault/internal/crypto"
	"github.com/horizon-nth/vault/internal/document"
	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/tree"
)

// Prompter supplies passwords at the two points the pipeline needs one:
// confirmed-twice for close, single-shot for open. This is the contract
// boundary for C9 (spec.md §4.9); the CLI's terminal implementation
// lives in internal/cli.
type Prompter interface {
	PromptForClose() (password []byte, err error)
	PromptForOpen() (password []byte, err error)
}

// CloseOptions controls which envelopes the close pipeline adds.
type CloseOptions struct {
	Compress bool
	Encrypt  bool
}

// Close runs the close pipeline (spec.md §4.7): serialize the tree,
// optionally wrap in a compressed envelope, optionally wrap in an
// encrypted envelope. Order is fixed: compression sits inside
// encryption, so ciphertext size never reveals textual structure.
func Close(root *tree.Directory, opts CloseOptions, prompter Prompter) ([]byte, error) {
	text := document.SerializeVault(root)

	if opts.Compress {
		compressed := compress.Compress([]byte(text))
		text = document.WriteSelfClosing(document.TagCompressed, []document.Attribute{
			{Name: document.AttrOriginalSize, Value: strconv.Itoa(len(text))},
			{Name: document.AttrData, Value: encode(compressed)},
		})
	}

	if opts.Encrypt {
		password, err := prompter.PromptForClose()
		if err != nil {
			return nil, err
		}
		defer crypto.SecureZero(password)

		salt, err := crypto.GenerateSalt()
		if err != nil {
			return nil, err
		}
		ciphertext, nonce, err := crypto.Encrypt([]byte(text), password, salt)
		if err != nil {
			return nil, err
		}
		text = document.WriteSelfClosing(document.TagEncrypted, []document.Attribute{
			{Name: document.AttrData, Value: encode(ciphertext)},
			{Name: document.AttrNonce, Value: encode(nonce)},
			{Name: document.AttrSalt, Value: encode(salt)},
		})
	}

	return []byte(text), nil
}

// Open runs the open pipeline (spec.md §4.7): parse, peel an encrypted
// envelope if present, peel a compressed envelope if present, then
// build the tree from the remaining vault document. Deeper nesting
// (more than one of each envelope) is undefined by spec.md §9 and
// rejected here as BadArchive: once the envelopes are peeled, the
// remaining root must be a vault.
func Open(data []byte, prompter Prompter) (*tree.Directory, error) {
	el, err := document.Parse(string(data))
	if err != nil {
		return nil, err
	}

	if el.Tag == document.TagEncrypted {
		password, err := prompter.PromptForOpen()
		if err != nil {
			return nil, err
		}
		defer crypto.SecureZero(password)

		ciphertext, err := decode(mustAttr(el, document.AttrData))
		if err != nil {
			return nil, err
		}
		nonce, err := decode(mustAttr(el, document.AttrNonce))
		if err != nil {
			return nil, err
		}
		salt, err := decode(mustAttr(el, document.AttrSalt))
		if err != nil {
			return nil, err
		}
		plaintext, err := crypto.Decrypt(ciphertext, password, salt, nonce)
		if err != nil {
			return nil, err
		}
		el, err = document.Parse(string(plaintext))
		if err != nil {
			return nil, err
		}
	}

	if el.Tag == document.TagCompressed {
		payload, err := decode(mustAttr(el, document.AttrData))
		if err != nil {
			return nil, err
		}
		sizeStr := mustAttr(el, document.AttrOriginalSize)
		originalSize, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, verr.NewArchiveError("non-numeric originalSize \"" + sizeStr + "\"")
		}
		decompressed, err := compress.Decompress(payload, originalSize)
		if err != nil {
			return nil, err
		}
		el, err = document.Parse(string(decompressed))
		if err != nil {
			return nil, err
		}
	}

	return document.BuildVaultTree(el)
}

func mustAttr(el *document.Element, name string) string {
	v, _ := el.Attr(name)
	return v
}
