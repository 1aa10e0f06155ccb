package embed

import (
	"strings"

	"github.com/tsawler/editorblocks/text"
)

// Default iframe dimensions, used when a width or height attribute is missing
// or not numeric.
const (
	DefaultWidth  = 580
	DefaultHeight = 320
)

// Iframe holds the attributes of an iframe tag relevant to embedding.
type Iframe struct {
	Src    string
	Width  int
	Height int
}

// ParseIframe extracts src, width and height from the content of an iframe
// tag. The content may include the tag name ("iframe src=...") or consist of
// the attributes only. It returns false when no src is present.
func ParseIframe(content string) (Iframe, bool) {
	content = strings.TrimSpace(content)
	if text.TagName(content) != "iframe" {
		content = "iframe " + content
	}
	tag := text.ParseTag(content)
	src := strings.TrimSpace(tag.Attr("src"))
	if src == "" {
		return Iframe{}, false
	}
	return Iframe{
		Src:    src,
		Width:  dimension(tag.Attr("width"), DefaultWidth),
		Height: dimension(tag.Attr("height"), DefaultHeight),
	}, true
}

// dimension reads the leading digits of an attribute value, so "560px"
// yields 560.
func dimension(v string, def int) int {
	v = strings.TrimSpace(v)
	n, digits := 0, 0
	for ; digits < len(v) && v[digits] >= '0' && v[digits] <= '9'; digits++ {
		n = n*10 + int(v[digits]-'0')
		if n > 1<<20 {
			return def
		}
	}
	if digits == 0 {
		return def
	}
	return n
}

// ServiceFromSrc classifies an already resolved embed URL, as found in an
// iframe src, by host substring. It is less precise than Detect, which works
// on share links.
func ServiceFromSrc(src string) (string, bool) {
	switch {
	case strings.Contains(src, "youtube.com") || strings.Contains(src, "youtu.be"):
		return "youtube", true
	case strings.Contains(src, "vimeo.com"):
		return "vimeo", true
	case strings.Contains(src, "coub.com"):
		return "coub", true
	case strings.Contains(src, "instagram.com"):
		return "instagram", true
	case strings.Contains(src, "twitter.com") || strings.Contains(src, "x.com"):
		return "twitter", true
	case strings.Contains(src, "twitch.tv"):
		if strings.Contains(src, "video=") {
			return "twitch-video", true
		}
		return "twitch-channel", true
	case strings.Contains(src, "codepen.io"):
		return "codepen", true
	case strings.Contains(src, "gist.github.com"):
		return "github", true
	case strings.Contains(src, "figma.com"):
		return "figma", true
	case strings.Contains(src, "miro.com"):
		return "miro", true
	case strings.Contains(src, "imgur.com"):
		return "imgur", true
	case strings.Contains(src, "pinterest.com"):
		return "pinterest", true
	}
	return "", false
}
