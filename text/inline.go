package text

import "regexp"

// Go's regexp engine runs in time linear in the input, so these patterns are
// safe on arbitrarily long lines.
var (
	strikePattern = regexp.MustCompile(`~~([^~]+)~~`)
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`_([^_]+)_`)
	linkPattern   = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
)

// Emphasis converts strikethrough, bold and italic markers, in that order.
// Nesting is not tracked; unmatched markers stay literal.
func Emphasis(s string) string {
	s = strikePattern.ReplaceAllString(s, "<s>${1}</s>")
	s = boldPattern.ReplaceAllString(s, "<b>${1}</b>")
	return italicPattern.ReplaceAllString(s, "<i>${1}</i>")
}

// Linkify rewrites [text](url) into an anchor opening in a new tab.
func Linkify(s string) string {
	return linkPattern.ReplaceAllString(s, `<a href="${2}" target="_blank">${1}</a>`)
}

// Inline applies Emphasis and then Linkify.
func Inline(s string) string {
	return Linkify(Emphasis(s))
}
