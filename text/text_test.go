package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no tags", "plain text", "plain text"},
		{"simple", "<b>bold</b> text", "bold text"},
		{"attributes", `<a href="x">link</a>`, "link"},
		{"nested angle", "a <<b>> c", "a  c"},
		{"stray close", "a > b", "a > b"},
		{"unterminated", "keep <b unterminated", "keep "},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StripTags(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, StripTags(got), "StripTags is not idempotent")
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"&amp;&lt;&gt;", "&<>"},
		{"&quot;hi&quot; it&#39;s", `"hi" it's`},
		{"&copy; 2024 &reg;", "© 2024 ®"},
		{"&nbsp;padded&nbsp;", "padded"},
		{"&unknown; &amp;", "&unknown; &"},
		{"&amp;lt;", "&lt;"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DecodeEntities(tt.in), tt.in)
	}
}

func TestClean(t *testing.T) {
	assert.Equal(t, "Fish & Chips", Clean("  <b>Fish &amp; Chips</b> "))
	assert.Equal(t, "<b>", Clean("&lt;b&gt;"))
	assert.Equal(t, "", Clean("<br/>"))
}

func TestInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bold", "**b**", "<b>b</b>"},
		{"italic", "_i_", "<i>i</i>"},
		{"strike", "~~s~~", "<s>s</s>"},
		{"mixed", "**b** _i_ ~~s~~", "<b>b</b> <i>i</i> <s>s</s>"},
		{"nested", "**bold with _nested italic_**", "<b>bold with <i>nested italic</i></b>"},
		{"unmatched", "a ** b _ c ~~", "a ** b _ c ~~"},
		{"link", "[Go](https://go.dev)", `<a href="https://go.dev" target="_blank">Go</a>`},
		{"bold link", "**[x](u)**", `<b><a href="u" target="_blank">x</a></b>`},
		{"link with query", "[api](https://e.com/a?b=1&c=2)", `<a href="https://e.com/a?b=1&c=2" target="_blank">api</a>`},
		{"two links", "[a](1) and [b](2)", `<a href="1" target="_blank">a</a> and <a href="2" target="_blank">b</a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Inline(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "\u00e5", Normalize("a\u030a"))
	assert.Equal(t, "already normal", Normalize("already normal"))
}

func TestParseTag(t *testing.T) {
	tag := ParseTag(`img SRC="a.png" alt='An &amp; B' data-x=1 hidden`)
	assert.Equal(t, "img", tag.Name)
	assert.Equal(t, "a.png", tag.Attr("src"))
	assert.Equal(t, "An & B", tag.Attr("alt"))
	assert.Equal(t, "1", tag.Attr("data-x"))
	assert.True(t, tag.Has("hidden"))
	assert.False(t, tag.Has("title"))
	assert.False(t, tag.SelfClosing)

	tag = ParseTag(`br/`)
	assert.Equal(t, "br", tag.Name)
	assert.True(t, tag.SelfClosing)

	tag = ParseTag(`input type="checkbox" type="radio"`)
	assert.Equal(t, "checkbox", tag.Attr("type"))

	tag = ParseTag(`/p`)
	assert.Empty(t, tag.Name)
}

func TestTagName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"p", "p"},
		{"DIV class=x", "div"},
		{"br/", "br"},
		{"/ul", "/ul"},
		{"h1>rest", "h1"},
		{"img\tsrc=x", "img"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TagName(tt.in), tt.in)
	}
}
