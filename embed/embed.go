// Package embed recognizes links to external media services that can be
// rendered as interactive embeds.
//
// The service table is ordered: [Detect] tries each service in turn and the
// first match wins, so the order is part of the contract. The table is built
// once at package initialization and never modified afterwards, which makes
// every function in this package safe for concurrent use.
package embed

import (
	"regexp"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'editorblocks.embed'.
func tracer() tracing.Trace {
	return tracing.Select("editorblocks.embed")
}

// Slot is the placeholder in a service's embed URL template.
const Slot = "{}"

// Service describes one embeddable service.
type Service struct {
	Name     string
	Pattern  *regexp.Regexp
	Template string // embed URL with one or more Slot placeholders
	Width    int
	Height   int
}

// Match is the result of a successful detection.
type Match struct {
	Service string
	Embed   string // resolved embeddable URL
	Width   int
	Height  int
}

var services = []Service{
	{
		Name:     "youtube",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:youtube\.com/watch\?v=|youtu\.be/)([a-zA-Z0-9_-]{11})`),
		Template: "https://www.youtube.com/embed/{}",
		Width:    580,
		Height:   320,
	},
	{
		Name:     "vimeo",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?vimeo\.com/(\d+)`),
		Template: "https://player.vimeo.com/video/{}",
		Width:    580,
		Height:   320,
	},
	{
		Name:     "coub",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?coub\.com/view/([a-zA-Z0-9]+)`),
		Template: "https://coub.com/embed/{}",
		Width:    580,
		Height:   320,
	},
	{
		Name:     "instagram",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?instagram\.com/(?:p|reel)/([a-zA-Z0-9_-]+)`),
		Template: "https://www.instagram.com/p/{}/embed/",
		Width:    540,
		Height:   663,
	},
	{
		Name:     "twitter",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?(?:twitter\.com|x\.com)/\w+/status/(\d+)`),
		Template: "https://twitter.com/i/web/status/{}",
		Width:    550,
		Height:   300,
	},
	{
		Name:     "twitch-video",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/videos/(\d+)`),
		Template: "https://player.twitch.tv/?video={}",
		Width:    500,
		Height:   281,
	},
	{
		Name:     "twitch-channel",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?twitch\.tv/([a-zA-Z0-9_]+)/?$`),
		Template: "https://player.twitch.tv/?channel={}",
		Width:    500,
		Height:   281,
	},
	{
		Name:     "codepen",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?codepen\.io/([^/]+)/pen/([a-zA-Z0-9]+)`),
		Template: "https://codepen.io/{}/embed/{}",
		Width:    600,
		Height:   300,
	},
	{
		Name:     "github",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?gist\.github\.com/([^/]+)/([a-zA-Z0-9]+)`),
		Template: "https://gist.github.com/{}",
		Width:    600,
		Height:   300,
	},
	{
		Name:     "figma",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?figma\.com/(?:file|proto)/([a-zA-Z0-9]+)`),
		Template: "https://www.figma.com/embed?embed_host=share&url=https://www.figma.com/file/{}",
		Width:    800,
		Height:   450,
	},
	{
		Name:     "miro",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?miro\.com/app/board/([a-zA-Z0-9_-]+)`),
		Template: "https://miro.com/app/board/{}/",
		Width:    800,
		Height:   600,
	},
	{
		Name:     "imgur",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?imgur\.com/([a-zA-Z0-9]+)`),
		Template: "https://imgur.com/{}/embed",
		Width:    540,
		Height:   500,
	},
	{
		Name:     "pinterest",
		Pattern:  regexp.MustCompile(`(?:https?://)?(?:www\.)?pinterest\.com/pin/(\d+)`),
		Template: "https://www.pinterest.com/pin/{}/",
		Width:    520,
		Height:   600,
	},
}

// Services returns a copy of the service table in matching order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Lookup returns the service with the given name.
func Lookup(name string) (Service, bool) {
	for _, s := range services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}

// Detect reports whether url links to a known service and resolves its
// embeddable URL. Services are tried in table order.
func Detect(url string) (Match, bool) {
	url = strings.TrimSpace(url)
	for _, s := range services {
		groups := s.Pattern.FindStringSubmatch(url)
		if groups == nil {
			continue
		}
		embedURL, ok := s.resolve(groups[1:])
		if !ok {
			tracer().Debugf("%s pattern matched %q with an empty id", s.Name, url)
			continue
		}
		return Match{Service: s.Name, Embed: embedURL, Width: s.Width, Height: s.Height}, true
	}
	return Match{}, false
}

// resolve fills the template. When the template has exactly one slot per
// captured group the groups are substituted in order; otherwise the groups
// are joined with '/' and that value fills every slot.
func (s Service) resolve(groups []string) (string, bool) {
	if strings.Count(s.Template, Slot) == len(groups) && len(groups) > 1 {
		out := s.Template
		for _, g := range groups {
			if g == "" {
				return "", false
			}
			out = strings.Replace(out, Slot, g, 1)
		}
		return out, true
	}
	parts := make([]string, 0, len(groups))
	for _, g := range groups {
		if g != "" {
			parts = append(parts, g)
		}
	}
	id := strings.Join(parts, "/")
	if id == "" {
		return "", false
	}
	return strings.ReplaceAll(s.Template, Slot, id), true
}
