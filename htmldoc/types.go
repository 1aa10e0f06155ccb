package htmldoc

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// isVoidElement returns true for elements that never have a closing tag.
// img, iframe, br and hr are dispatched directly; the others are skipped.
func isVoidElement(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Img, atom.Iframe, atom.Br, atom.Hr,
		atom.Input, atom.Meta, atom.Link, atom.Source, atom.Wbr,
		atom.Col, atom.Area, atom.Base, atom.Embed, atom.Param, atom.Track:
		return true
	}
	return false
}

// shouldSkipElement returns true if the element and its content carry no
// document content.
func shouldSkipElement(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Script, atom.Style, atom.Head, atom.Title, atom.Noscript,
		atom.Template, atom.Svg, atom.Math, atom.Object:
		return true
	}
	return false
}

// hasBlockChildren returns true if content contains a block-level element.
func hasBlockChildren(content string) bool {
	for i := strings.IndexByte(content, '<'); i >= 0; {
		switch atom.Lookup([]byte(tagNameAt(content[i+1:]))) {
		case atom.Div, atom.P, atom.Ul, atom.Ol, atom.Table, atom.H1, atom.H2, atom.H3,
			atom.H4, atom.H5, atom.H6, atom.Blockquote, atom.Pre, atom.Img, atom.Figure,
			atom.Hr, atom.Iframe, atom.Section, atom.Article:
			return true
		}
		next := strings.IndexByte(content[i+1:], '<')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return false
}

// tagNameAt returns the lower-cased tag name at the start of s.
func tagNameAt(s string) string {
	end := 0
	for end < len(s) && isNameByte(s[end]) {
		end++
	}
	return strings.ToLower(s[:end])
}

func isNameByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-'
}

// hasPrefixFold reports whether s begins with prefix, ignoring ASCII case.
func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// isOpenTag reports whether s begins with a start tag named name.
func isOpenTag(s, name string) bool {
	if !hasPrefixFold(s, "<"+name) {
		return false
	}
	if len(s) == len(name)+1 {
		return true
	}
	switch s[len(name)+1] {
	case ' ', '\t', '\n', '\r', '\f', '>', '/':
		return true
	}
	return false
}

// indexOpenTag returns the index of the first start tag named name in s, or -1.
func indexOpenTag(s, name string) int {
	for i := 0; i < len(s); {
		lt := strings.IndexByte(s[i:], '<')
		if lt < 0 {
			return -1
		}
		if isOpenTag(s[i+lt:], name) {
			return i + lt
		}
		i += lt + 1
	}
	return -1
}

// findClose locates the closing tag matching an element named name whose
// content starts at from. Nested elements of the same name are skipped. When
// the nesting never balances, the first closing tag is used. It returns the
// start of the closing tag and the index just past it, or -1, -1.
func findClose(src string, from int, name string) (int, int) {
	closer := "</" + name + ">"
	depth, first := 0, -1
	for i := from; i < len(src); {
		lt := strings.IndexByte(src[i:], '<')
		if lt < 0 {
			break
		}
		at := i + lt
		rest := src[at:]
		if hasPrefixFold(rest, closer) {
			if first < 0 {
				first = at
			}
			if depth == 0 {
				return at, at + len(closer)
			}
			depth--
			i = at + len(closer)
			continue
		}
		if isOpenTag(rest, name) {
			depth++
		}
		i = at + 1
	}
	if first >= 0 {
		return first, first + len(closer)
	}
	return -1, -1
}
