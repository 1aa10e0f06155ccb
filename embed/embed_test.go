package embed

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks.embed")
	defer teardown()

	tests := []struct {
		url     string
		service string
		embed   string
		width   int
		height  int
	}{
		{"https://youtu.be/dQw4w9WgXcQ", "youtube", "https://www.youtube.com/embed/dQw4w9WgXcQ", 580, 320},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", "youtube", "https://www.youtube.com/embed/dQw4w9WgXcQ", 580, 320},
		{"https://vimeo.com/76979871", "vimeo", "https://player.vimeo.com/video/76979871", 580, 320},
		{"https://coub.com/view/1abc2", "coub", "https://coub.com/embed/1abc2", 580, 320},
		{"https://www.instagram.com/p/B_xyz-1/", "instagram", "https://www.instagram.com/p/B_xyz-1/embed/", 540, 663},
		{"https://twitter.com/golang/status/12345", "twitter", "https://twitter.com/i/web/status/12345", 550, 300},
		{"https://x.com/golang/status/12345", "twitter", "https://twitter.com/i/web/status/12345", 550, 300},
		{"https://www.twitch.tv/videos/987", "twitch-video", "https://player.twitch.tv/?video=987", 500, 281},
		{"https://www.twitch.tv/somechannel", "twitch-channel", "https://player.twitch.tv/?channel=somechannel", 500, 281},
		{"https://codepen.io/alice/pen/abc123", "codepen", "https://codepen.io/alice/embed/abc123", 600, 300},
		{"https://gist.github.com/bob/0a1b2c", "github", "https://gist.github.com/bob/0a1b2c", 600, 300},
		{"https://www.figma.com/file/Ab12/Design", "figma", "https://www.figma.com/embed?embed_host=share&url=https://www.figma.com/file/Ab12", 800, 450},
		{"https://miro.com/app/board/o9J_k=/", "miro", "https://miro.com/app/board/o9J_k/", 800, 600},
		{"https://imgur.com/gallery", "imgur", "https://imgur.com/gallery/embed", 540, 500},
		{"https://www.pinterest.com/pin/99999/", "pinterest", "https://www.pinterest.com/pin/99999/", 520, 600},
		{"  https://youtu.be/dQw4w9WgXcQ  ", "youtube", "https://www.youtube.com/embed/dQw4w9WgXcQ", 580, 320},
	}

	for _, tt := range tests {
		t.Run(tt.service, func(t *testing.T) {
			m, ok := Detect(tt.url)
			require.True(t, ok, "no match for %s", tt.url)
			assert.Equal(t, tt.service, m.Service)
			assert.Equal(t, tt.embed, m.Embed)
			assert.Equal(t, tt.width, m.Width)
			assert.Equal(t, tt.height, m.Height)
		})
	}
}

func TestDetect_NoMatch(t *testing.T) {
	for _, url := range []string{
		"",
		"https://example.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/short",
		"https://vimeo.com/channels",
		"https://www.twitch.tv/somechannel/clips",
	} {
		_, ok := Detect(url)
		assert.False(t, ok, url)
	}
}

func TestServicesOrder(t *testing.T) {
	want := []string{
		"youtube", "vimeo", "coub", "instagram", "twitter", "twitch-video",
		"twitch-channel", "codepen", "github", "figma", "miro", "imgur", "pinterest",
	}
	var got []string
	for _, s := range Services() {
		got = append(got, s.Name)
	}
	assert.Equal(t, want, got)

	// The returned slice is a copy
	Services()[0].Name = "changed"
	assert.Equal(t, "youtube", Services()[0].Name)

	s, ok := Lookup("miro")
	require.True(t, ok)
	assert.Equal(t, 800, s.Width)
	_, ok = Lookup("myspace")
	assert.False(t, ok)
}

func TestParseIframe(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Iframe
		ok      bool
	}{
		{"full", `iframe src="https://player.vimeo.com/video/1" width="640" height="360"`,
			Iframe{Src: "https://player.vimeo.com/video/1", Width: 640, Height: 360}, true},
		{"attributes only", `src="https://a.b/c" width="100px"`,
			Iframe{Src: "https://a.b/c", Width: 100, Height: DefaultHeight}, true},
		{"defaults", `iframe src='x'`, Iframe{Src: "x", Width: DefaultWidth, Height: DefaultHeight}, true},
		{"bad dimension", `iframe src="x" width="auto" height="-5"`,
			Iframe{Src: "x", Width: DefaultWidth, Height: DefaultHeight}, true},
		{"no src", `iframe width="1"`, Iframe{}, false},
		{"empty src", `iframe src=""`, Iframe{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIframe(tt.content)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceFromSrc(t *testing.T) {
	tests := []struct {
		src  string
		want string
		ok   bool
	}{
		{"https://www.youtube.com/embed/abc", "youtube", true},
		{"https://player.vimeo.com/video/1", "vimeo", true},
		{"https://player.twitch.tv/?video=1", "twitch-video", true},
		{"https://player.twitch.tv/?channel=c", "twitch-channel", true},
		{"https://codepen.io/a/embed/b", "codepen", true},
		{"https://gist.github.com/a/b", "github", true},
		{"https://www.figma.com/embed?x", "figma", true},
		{"https://example.com/frame", "", false},
	}

	for _, tt := range tests {
		got, ok := ServiceFromSrc(tt.src)
		assert.Equal(t, tt.ok, ok, tt.src)
		assert.Equal(t, tt.want, got, tt.src)
	}
}

func TestResolve_Slots(t *testing.T) {
	// A template with one slot per captured group takes the groups in order
	pen := Service{Template: "https://codepen.io/{}/embed/{}"}
	got, ok := pen.resolve([]string{"alice", "abc123"})
	require.True(t, ok)
	assert.Equal(t, "https://codepen.io/alice/embed/abc123", got)

	_, ok = pen.resolve([]string{"alice", ""})
	assert.False(t, ok)

	// Otherwise the groups are joined with '/' into a single value
	gist := Service{Template: "https://gist.github.com/{}"}
	got, ok = gist.resolve([]string{"bob", "0a1b2c"})
	require.True(t, ok)
	assert.Equal(t, "https://gist.github.com/bob/0a1b2c", got)

	got, ok = gist.resolve([]string{"", "0a1b2c"})
	require.True(t, ok)
	assert.Equal(t, "https://gist.github.com/0a1b2c", got)

	_, ok = gist.resolve([]string{"", ""})
	assert.False(t, ok)

	joined := Service{Template: "https://example.com/{}/x/{}/y/{}"}
	got, ok = joined.resolve([]string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a/b/x/a/b/y/a/b", got)
}
