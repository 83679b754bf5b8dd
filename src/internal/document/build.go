package document

import (
	"os"
	"strconv"
	"time"

	verr "github.com/horizon-nth/vault/internal/errors"
	"github.com/horizon-nth/vault/internal/tree"
)

// BuildVaultTree walks a parsed "vault" Element into a tree.Directory,
// the in-memory form C8 materializes (spec.md §4.7 step 4). Only "file"
// and "directory" children are legal inside "vault"/"directory"; anything
// else is BadArchive even though the schema itself is closed, since the
// schema alone doesn't forbid a "compressed"/"encrypted" tag from
// appearing nested rather than at the document root.
func BuildVaultTree(root *Element) (*tree.Directory, error) {
	if root.Tag != TagVault {
		return nil, verr.NewArchiveError("root element is not <vault>")
	}
	name, _ := root.Attr(AttrName)
	dir, err := tree.NewDirectory(name)
	if err != nil {
		return nil, err
	}
	if err := buildChildren(dir, root.Children); err != nil {
		return nil, err
	}
	return dir, nil
}

// elementMetadata parses the optional mtime/mode attributes an Element
// may carry into a tree.Metadata, returning nil when neither is present.
// Both the reader's acceptance and its leniency (malformed values are
// ignored rather than rejected) follow SPEC_FULL.md §6: these attributes
// are informational, never load-bearing.
func elementMetadata(el *Element) *tree.Metadata {
	mtimeStr, hasMTime := el.Attr(AttrMTime)
	modeStr, hasMode := el.Attr(AttrMode)
	if !hasMTime && !hasMode {
		return nil
	}
	meta := &tree.Metadata{}
	if hasMTime {
		if secs, err := strconv.ParseInt(mtimeStr, 10, 64); err == nil {
			meta.MTime = time.Unix(secs, 0)
		}
	}
	if hasMode {
		if m, err := strconv.ParseUint(modeStr, 8, 32); err == nil {
			meta.Mode = os.FileMode(m)
		}
	}
	return meta
}

func buildChildren(parent *tree.Directory, children []*Element) error {
	for _, child := range children {
		switch child.Tag {
		case TagFile:
			name, _ := child.Attr(AttrName)
			data, _ := child.Attr(AttrData)
			f, err := tree.NewFile(name, data)
			if err != nil {
				return err
			}
			f.SetMetadata(elementMetadata(child))
			if err := parent.Add(f); err != nil {
				return err
			}
		case TagDirectory:
			name, _ := child.Attr(AttrName)
			sub, err := tree.NewDirectory(name)
			if err != nil {
				return err
			}
			sub.SetMetadata(elementMetadata(child))
			if err := buildChildren(sub, child.Children); err != nil {
				return err
			}
			if err := parent.Add(sub); err != nil {
				return err
			}
		default:
			return verr.NewArchiveError("unexpected tag <" + child.Tag + "> inside <" + parent.Name() + ">")
		}
	}
	return nil
}
