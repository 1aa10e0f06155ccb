// Package text provides the string transforms shared by the HTML and Markdown
// scanners.
//
// All functions are pure and never fail; input that does not match a pattern
// is returned as literal text.
//
// # Cleaning
//
// [StripTags] removes everything between '<' and the next '>' with a single
// linear scan, and [DecodeEntities] replaces a fixed entity table and trims
// surrounding whitespace. [Clean] applies both, in that order:
//
//	text.Clean("<b>Fish &amp; Chips</b> ") // "Fish & Chips"
//
// # Inline Markdown
//
// [Emphasis] converts ~~x~~, **x** and _x_ to <s>, <b> and <i> (in that
// order), and [Linkify] rewrites [text](url) to an anchor opening in a new
// tab. [Inline] applies emphasis before links:
//
//	text.Inline("**Go** [docs](https://go.dev)")
//	// <b>Go</b> <a href="https://go.dev" target="_blank">docs</a>
//
// # Tags
//
// [ParseTag] tokenizes the content of a single tag into its name and
// attributes, and [Normalize] returns the NFC form of a string.
package text
