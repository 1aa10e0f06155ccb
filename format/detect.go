// Package format provides input format detection for the converter.
package format

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a supported input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// HTML indicates an HTML document or fragment.
	HTML
	// Markdown indicates Markdown text.
	Markdown
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case HTML:
		return "HTML"
	case Markdown:
		return "Markdown"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case HTML:
		return ".html"
	case Markdown:
		return ".md"
	default:
		return ""
	}
}

// Parse returns the format for a user supplied name such as "html" or
// "markdown". "auto" and the empty string yield Unknown with ok set, meaning
// the format should be detected.
func Parse(name string) (f Format, ok bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Unknown, true
	case "html", "htm":
		return HTML, true
	case "markdown", "md":
		return Markdown, true
	default:
		return Unknown, false
	}
}

// Detect determines the format from a filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".html", ".htm", ".xhtml":
		return HTML
	case ".md", ".markdown", ".mdown", ".mkd", ".mkdn":
		return Markdown
	default:
		return Unknown
	}
}

// DetectFromContent sniffs the leading bytes of the content. Content that
// opens with a tag, comment or doctype is HTML; any other non-empty text is
// Markdown, since every text is valid Markdown. Empty or binary content is
// Unknown.
func DetectFromContent(data []byte) Format {
	if len(data) > 512 {
		data = data[:512]
	}
	data = bytes.TrimLeft(data, " \t\r\n\f\ufeff")
	if len(data) == 0 {
		return Unknown
	}
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(trimPartialRune(data)) {
		return Unknown
	}
	if detectHTMLMagic(data) {
		return HTML
	}
	return Markdown
}

// detectHTMLMagic checks if the data opens with markup.
func detectHTMLMagic(data []byte) bool {
	if len(data) < 2 || data[0] != '<' {
		return false
	}
	upper := strings.ToUpper(string(data[:min(len(data), 16)]))
	if strings.HasPrefix(upper, "<!DOCTYPE") || strings.HasPrefix(upper, "<!--") || strings.HasPrefix(upper, "<?XML") {
		return true
	}
	c := data[1]
	if c == '/' && len(data) > 2 {
		c = data[2]
	}
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

// trimPartialRune drops a rune cut in half by the sniffing limit.
func trimPartialRune(data []byte) []byte {
	for i := 0; i < utf8.UTFMax && len(data) > 0; i++ {
		if r, size := utf8.DecodeLastRune(data); r != utf8.RuneError || size != 1 {
			break
		}
		data = data[:len(data)-1]
	}
	return data
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
