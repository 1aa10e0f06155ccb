package text

import (
	"strings"

	"golang.org/x/net/html"
)

// Tag is the tokenized content of a single start tag.
type Tag struct {
	Name        string // lower case
	Attrs       map[string]string
	SelfClosing bool
}

// ParseTag tokenizes the content between '<' and '>' of one start tag.
// Attribute names are lower-cased and attribute values have character
// references decoded. Content that is not a start tag yields a Tag with an
// empty name.
func ParseTag(content string) Tag {
	tag := Tag{Attrs: make(map[string]string)}
	z := html.NewTokenizer(strings.NewReader("<" + strings.TrimSpace(content) + ">"))
	tt := z.Next()
	if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
		return tag
	}
	tag.SelfClosing = tt == html.SelfClosingTagToken
	name, more := z.TagName()
	tag.Name = string(name)
	for more {
		var key, val []byte
		key, val, more = z.TagAttr()
		k := string(key)
		if _, dup := tag.Attrs[k]; !dup {
			tag.Attrs[k] = string(val)
		}
	}
	return tag
}

// Attr returns the value of an attribute.
func (t Tag) Attr(name string) string {
	return t.Attrs[name]
}

// Has reports whether the attribute is present, valued or not.
func (t Tag) Has(name string) bool {
	_, ok := t.Attrs[name]
	return ok
}

// TagName returns the lower-cased name of the tag whose content starts s, up
// to the first whitespace, '/' or '>'.
func TagName(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' || r == '/' || r == '>'
	})
	if end == 0 && strings.HasPrefix(s, "/") {
		return "/" + TagName(s[1:])
	}
	if end < 0 {
		end = len(s)
	}
	return strings.ToLower(s[:end])
}
