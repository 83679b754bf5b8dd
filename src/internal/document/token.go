package document

import (
	verr "github.com/horizon-nth/vault/internal/errors"
)

// tokenKind classifies a single scanned token into one of the five
// shapes spec.md §4.2 lists for the tokenizer.
type tokenKind int

const (
	tokenOpenStart tokenKind = iota // "<tagname"
	tokenCloseTag                   // "</tagname>"
	tokenEndMarker                  // ">" or "/>"
	tokenAttrName                   // "attr="
	tokenAttrValue                  // "\"value\""
)

type token struct {
	kind tokenKind
	text string
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// tokenize scans content into a flat token list, skipping whitespace
// between tokens. Ported from original_source/src/XMLParser.cpp::tokenize,
// translated from its position-scanning idiom into a Go byte scanner
// that classifies each token shape up front instead of reclassifying
// strings later in the parser.
func tokenize(content string) ([]token, error) {
	var tokens []token
	n := len(content)
	pos := 0

	skipBlanks := func() {
		for pos < n && isBlank(content[pos]) {
			pos++
		}
	}

	skipBlanks()
	for pos < n {
		switch {
		case content[pos] == '<' && pos+1 < n && content[pos+1] == '/':
			start := pos
			pos += 2
			for pos < n && content[pos] != '>' {
				pos++
			}
			if pos >= n {
				return nil, verr.NewArchiveError("unterminated closing tag")
			}
			pos++
			tokens = append(tokens, token{kind: tokenCloseTag, text: content[start:pos]})

		case content[pos] == '<':
			start := pos
			pos++
			for pos < n && !isBlank(content[pos]) && content[pos] != '>' && content[pos] != '/' {
				pos++
			}
			if pos >= n {
				return nil, verr.NewArchiveError("unterminated opening tag")
			}
			tokens = append(tokens, token{kind: tokenOpenStart, text: content[start:pos]})

		case content[pos] == '/' && pos+1 < n && content[pos+1] == '>':
			tokens = append(tokens, token{kind: tokenEndMarker, text: "/>"})
			pos += 2

		case content[pos] == '>':
			tokens = append(tokens, token{kind: tokenEndMarker, text: ">"})
			pos++

		case content[pos] == '"':
			start := pos
			pos++
			for pos < n && content[pos] != '"' {
				pos++
			}
			if pos >= n {
				return nil, verr.NewArchiveError("unterminated quoted attribute value")
			}
			pos++
			tokens = append(tokens, token{kind: tokenAttrValue, text: content[start:pos]})

		default:
			start := pos
			for pos < n && content[pos] != '=' {
				if isBlank(content[pos]) {
					return nil, verr.NewArchiveError("attribute name missing '='")
				}
				pos++
			}
			if pos >= n {
				return nil, verr.NewArchiveError("attribute name missing '='")
			}
			pos++ // include '='
			tokens = append(tokens, token{kind: tokenAttrName, text: content[start:pos]})
		}
		skipBlanks()
	}

	return tokens, nil
}
