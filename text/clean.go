package text

import "strings"

// StripTags removes markup, returning the concatenation of all text outside of
// tags. Unterminated tags swallow the rest of the input; a stray '>' outside
// of any tag is kept. The result never contains '<', so StripTags is
// idempotent.
func StripTags(s string) string {
	if strings.IndexByte(s, '<') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	depth := 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '<':
			depth++
		case c == '>':
			if depth > 0 {
				depth--
			} else {
				sb.WriteByte(c)
			}
		case depth == 0:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

var entities = strings.NewReplacer(
	"&nbsp;", " ",
	"&lt;", "<",
	"&gt;", ">",
	"&amp;", "&",
	"&quot;", "\"",
	"&#39;", "'",
	"&copy;", "©",
	"&reg;", "®",
)

// DecodeEntities replaces the supported character entities and trims leading
// and trailing whitespace. Unknown entities are left as they are.
func DecodeEntities(s string) string {
	return strings.TrimSpace(entities.Replace(s))
}

// Clean strips tags and then decodes entities.
func Clean(s string) string {
	return DecodeEntities(StripTags(s))
}
