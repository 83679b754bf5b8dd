package document

import (
	verr "github.com/horizon-nth/vault/internal/errors"
)

// Element is the untyped document tree the parser emits: a tag, its
// attribute map, and its children in document order. Semantic validation
// (which tags may nest where, which tag must be root) belongs to the
// pipeline's envelope dispatcher and the tree builder, per spec.md §4.2.
type Element struct {
	Tag        string
	Attributes map[string]string
	Children   []*Element
}

// Attr returns the named attribute and whether it was present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Parse tokenizes and parses content into a root Element, validating
// every tag and attribute against the closed schema as it goes
// (spec.md §4.2). Ported from
// original_source/src/XMLParser.cpp::parse's explicit-stack shape.
func Parse(content string) (*Element, error) {
	tokens, err := tokenize(content)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, verr.NewArchiveError("empty document")
	}

	var root *Element
	var stack []*Element

	i := 0
	for i < len(tokens) {
		tok := tokens[i]
		switch tok.kind {
		case tokenCloseTag:
			tag := tok.text[2 : len(tok.text)-1]
			if len(stack) == 0 {
				return nil, verr.NewArchiveError("unexpected closing tag </" + tag + ">")
			}
			top := stack[len(stack)-1]
			if top.Tag != tag {
				return nil, verr.NewArchiveError("expected closing tag </" + top.Tag + "> but got </" + tag + ">")
			}
			stack = stack[:len(stack)-1]
			i++

		case tokenOpenStart:
			tag := tok.text[1:]
			spec, ok := isKnownTag(tag)
			if !ok {
				return nil, verr.NewArchiveError("unknown tag <" + tag + ">")
			}
			el := &Element{Tag: tag, Attributes: map[string]string{}}
			i++

			for i < len(tokens) && tokens[i].kind != tokenEndMarker {
				nameTok := tokens[i]
				if nameTok.kind != tokenAttrName {
					return nil, verr.NewArchiveError("attribute badly formatted for tag <" + tag + ">")
				}
				attrName := nameTok.text[:len(nameTok.text)-1]
				if _, known := spec.attributes[attrName]; !known {
					return nil, verr.NewArchiveError("unknown attribute \"" + attrName + "\" for tag <" + tag + ">")
				}
				if _, dup := el.Attributes[attrName]; dup {
					return nil, verr.NewArchiveError("duplicate attribute \"" + attrName + "\" for tag <" + tag + ">")
				}
				i++
				if i >= len(tokens) || tokens[i].kind != tokenAttrValue {
					return nil, verr.NewArchiveError("missing value for attribute \"" + attrName + "\" on tag <" + tag + ">")
				}
				valTok := tokens[i]
				el.Attributes[attrName] = valTok.text[1 : len(valTok.text)-1]
				i++
			}
			if i >= len(tokens) {
				return nil, verr.NewArchiveError("unterminated tag <" + tag + ">")
			}
			endTok := tokens[i]

			for name, required := range spec.attributes {
				if !required {
					continue
				}
				if _, present := el.Attributes[name]; !present {
					return nil, verr.NewArchiveError("missing required attribute \"" + name + "\" for tag <" + tag + ">")
				}
			}

			if spec.selfClose {
				if endTok.text != "/>" {
					return nil, verr.NewArchiveError("tag <" + tag + "> must be self-closing")
				}
			} else {
				if endTok.text != ">" {
					return nil, verr.NewArchiveError("tag <" + tag + "> must not be self-closing")
				}
			}

			if root == nil {
				root = el
			} else {
				if len(stack) == 0 {
					return nil, verr.NewArchiveError("multiple root elements")
				}
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			if !spec.selfClose {
				stack = append(stack, el)
			}
			i++

		default:
			return nil, verr.NewArchiveError("unexpected token")
		}
	}

	if len(stack) != 0 {
		return nil, verr.NewArchiveError("missing closing tag for <" + stack[len(stack)-1].Tag + ">")
	}
	if root == nil {
		return nil, verr.NewArchiveError("missing root element")
	}
	return root, nil
}
