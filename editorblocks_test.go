package editorblocks

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/editorblocks/format"
	"github.com/tsawler/editorblocks/model"
)

func TestHTMLToBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks")
	defer teardown()

	blocks, err := HTMLToBlocks(`<ul><li>First item</li><li>Second item</li><li>Third item</li></ul>`)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	list := blocks[0].(*model.List)
	assert.Equal(t, model.ListUnordered, list.Style)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Third item", list.Items[2].Content)
}

func TestMarkdownToBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks")
	defer teardown()

	t.Run("nested list", func(t *testing.T) {
		blocks, err := MarkdownToBlocks("- Item 1\n- Item 2\n    - Nested 1\n    - Nested 2\n- Item 3")
		require.NoError(t, err)
		require.Len(t, blocks, 1)
		list := blocks[0].(*model.List)
		require.Len(t, list.Items, 3)
		require.Len(t, list.Items[1].Items, 2)
		assert.Equal(t, "Nested 1", list.Items[1].Items[0].Content)
	})

	t.Run("checklist", func(t *testing.T) {
		blocks, err := MarkdownToBlocks("- [ ] Unchecked\n- [x] Checked")
		require.NoError(t, err)
		list := blocks[0].(*model.List)
		assert.Equal(t, model.ListChecklist, list.Style)
		assert.False(t, list.Items[0].IsChecked())
		assert.True(t, list.Items[1].IsChecked())
	})

	t.Run("link", func(t *testing.T) {
		blocks, err := MarkdownToBlocks("This is a [link to Google](https://google.com) in a paragraph.")
		require.NoError(t, err)
		p := blocks[0].(*model.Paragraph)
		assert.Contains(t, p.Text, `<a href="https://google.com" target="_blank">link to Google</a>`)
	})

	t.Run("table", func(t *testing.T) {
		blocks, err := MarkdownToBlocks("| H1 | H2 |\n|----|----|\n| a | b |")
		require.NoError(t, err)
		table := blocks[0].(*model.Table)
		assert.Equal(t, 2, table.RowCount())
		assert.Equal(t, []string{"H1", "H2"}, table.Content[0])
	})
}

func TestInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"invalid utf-8", "<p>\xff\xfe</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := HTMLToBlocks(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidInput))
			assert.False(t, errors.Is(err, ErrHTMLParse))
			assert.Equal(t, InvalidInput, KindOf(err))

			_, err = MarkdownToBlocks(tt.input)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestNonEmptyInputYieldsBlocks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks")
	defer teardown()

	inputs := []string{" ", "\n\n", "<", ">", "<br>", "<<>>", "</p>", "***", "[", "```", "|", "- ", "#"}
	for _, input := range inputs {
		html, err := HTMLToBlocks(input)
		require.NoError(t, err, input)
		assert.NotEmpty(t, html, "HTML %q", input)

		md, err := MarkdownToBlocks(input)
		require.NoError(t, err, input)
		assert.NotEmpty(t, md, "Markdown %q", input)
	}
}

func TestRawFallbackWarning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks")
	defer teardown()

	blocks, warnings, err := FromHTML("<br>").Blocks()
	require.NoError(t, err)
	assert.Equal(t, []model.Block{&model.Raw{HTML: "<br>"}}, blocks)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnRawFallback, warnings[0].Code)
	assert.Contains(t, FormatWarnings(warnings), "raw block")
}

func TestNormalization(t *testing.T) {
	decomposed := "<p>Cafe\u0301</p>"

	blocks, _, err := FromHTML(decomposed).Blocks()
	require.NoError(t, err)
	assert.Equal(t, "Cafe\u0301", blocks[0].(*model.Paragraph).Text)

	blocks, _, err = FromHTML(decomposed).Normalize().Blocks()
	require.NoError(t, err)
	assert.Equal(t, "Caf\u00e9", blocks[0].(*model.Paragraph).Text)

	blocks, _, err = FromMarkdown("- e\u0301\n    - a\u030a\n\n| h |\n|---|\n| o\u0308 |").Normalize().Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	list := blocks[0].(*model.List)
	assert.Equal(t, "\u00e9", list.Items[0].Content)
	assert.Equal(t, "\u00e5", list.Items[0].Items[0].Content)
	assert.Equal(t, [][]string{{"h"}, {"\u00f6"}}, blocks[1].(*model.Table).Content)
}

func TestVerbatimPayloads(t *testing.T) {
	comment := "<!-- cafe\u0301 -->"
	for _, c := range []*Converter{FromHTML(comment), FromHTML(comment).Normalize()} {
		blocks, _, err := c.Blocks()
		require.NoError(t, err)
		assert.Equal(t, []model.Block{&model.Raw{HTML: comment}}, blocks)
	}

	blocks, err := HTMLToBlocks("<pre>e\u0301</pre>")
	require.NoError(t, err)
	assert.Equal(t, &model.Code{Code: "e\u0301"}, blocks[0])

	blocks, _, err = FromHTML("<pre>e\u0301</pre><p>e\u0301</p>").Normalize().Blocks()
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, &model.Code{Code: "e\u0301"}, blocks[0])
	assert.Equal(t, &model.Paragraph{Text: "\u00e9"}, blocks[1])

	blocks, err = MarkdownToBlocks("```\ne\u0301\n```")
	require.NoError(t, err)
	assert.Equal(t, &model.Code{Code: "e\u0301"}, blocks[0])

	blocks, _, err = FromMarkdown("```go\ne\u0301\n```").Normalize().Blocks()
	require.NoError(t, err)
	assert.Equal(t, &model.Code{Code: "e\u0301", Language: "go"}, blocks[0])
}

func TestDocumentJSON(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks")
	defer teardown()

	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	data, _, err := FromMarkdown("# Title\n\n- [x] done\n- [ ] todo\n\n---\n\nplain").
		Clock(func() time.Time { return at }).
		JSON()
	require.NoError(t, err)

	var doc struct {
		Time    int64  `json:"time"`
		Version string `json:"version"`
		Blocks  []struct {
			ID   string          `json:"id"`
			Type string          `json:"type"`
			Data json.RawMessage `json:"data"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, at.UnixMilli(), doc.Time)
	assert.Equal(t, "2.25.0", doc.Version)
	require.Len(t, doc.Blocks, 4)

	ids := make(map[string]bool)
	var types []string
	for _, b := range doc.Blocks {
		assert.Len(t, b.ID, model.IDLength)
		assert.False(t, ids[b.ID], "duplicate id %s", b.ID)
		ids[b.ID] = true
		types = append(types, b.Type)
	}
	assert.Equal(t, []string{"heading", "list", "delimiter", "paragraph"}, types)
	assert.JSONEq(t, `{"text":"Title","level":1}`, string(doc.Blocks[0].Data))
	assert.JSONEq(t, `{"style":"checklist","items":[
		{"content":"done","meta":{"checked":true},"items":[]},
		{"content":"todo","meta":{"checked":false},"items":[]}
	]}`, string(doc.Blocks[1].Data))
	assert.JSONEq(t, `{}`, string(doc.Blocks[2].Data))
	assert.JSONEq(t, `{"text":"plain"}`, string(doc.Blocks[3].Data))

	decoded, err := model.DecodeDocument(data)
	require.NoError(t, err)
	assert.Equal(t, 4, decoded.Len())
	assert.Equal(t, &model.Heading{Text: "Title", Level: 1}, decoded.Bare()[0])
}

func TestJSONIndent(t *testing.T) {
	data, _, err := FromHTML("<p>x</p>").Version("2.0.0").Indent("  ").JSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"blocks\"")
	assert.Contains(t, string(data), `"version": "2.0.0"`)
}

func TestMarkdownAndText(t *testing.T) {
	md, _, err := FromHTML("<h2>Hi</h2><p>a <b>b</b></p>").Markdown()
	require.NoError(t, err)
	assert.Equal(t, "## Hi\n\na b", md)

	txt, _, err := FromMarkdown("# Hi\n\na **b**").Text()
	require.NoError(t, err)
	assert.Equal(t, "Hi\n\na b", txt)
}

func TestOpen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "editorblocks")
	defer teardown()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("by extension", func(t *testing.T) {
		blocks, warnings, err := Open(write("a.md", "# Title")).Blocks()
		require.NoError(t, err)
		assert.Empty(t, warnings)
		assert.Equal(t, []model.Block{&model.Heading{Text: "Title", Level: 1}}, blocks)

		// "# Title" as HTML is plain text
		blocks, _, err = Open(write("b.html", "# Title")).Blocks()
		require.NoError(t, err)
		assert.Equal(t, []model.Block{&model.Paragraph{Text: "# Title"}}, blocks)
	})

	t.Run("sniffed", func(t *testing.T) {
		blocks, warnings, err := Open(write("page.txt", "<h1>Title</h1>")).Blocks()
		require.NoError(t, err)
		assert.Equal(t, []model.Block{&model.Heading{Text: "Title", Level: 1}}, blocks)
		require.Len(t, warnings, 1)
		assert.Equal(t, WarnFormatGuessed, warnings[0].Code)
	})

	t.Run("explicit format", func(t *testing.T) {
		blocks, _, err := Open(write("c.txt", "<h1>Title</h1>")).Format(format.Markdown).Blocks()
		require.NoError(t, err)
		assert.Equal(t, []model.Block{&model.Paragraph{Text: "<h1>Title</h1>"}}, blocks)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Open(filepath.Join(dir, "missing.md")).Blocks()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidInput))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestFromReader(t *testing.T) {
	blocks, _, err := FromReader(strings.NewReader("> quoted")).Blocks()
	require.NoError(t, err)
	assert.Equal(t, []model.Block{model.NewQuote("quoted")}, blocks)

	_, _, err = FromReader(failingReader{}).Blocks()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "boom")
}

func TestChainImmutability(t *testing.T) {
	base := FromHTML("<p>x</p>")

	v1 := base.Version("1.0.0")
	v2 := base.Version("2.0.0").Normalize()

	assert.Equal(t, "2.25.0", base.options.version)
	assert.False(t, base.options.normalize)
	assert.Equal(t, "1.0.0", v1.options.version)
	assert.Equal(t, "2.0.0", v2.options.version)
	assert.True(t, v2.options.normalize)
	assert.Equal(t, format.HTML, v2.options.format)
}

func TestError(t *testing.T) {
	cause := errors.New("bad bytes")
	err := error(&Error{Kind: Serialization, Msg: "encoding document", Err: cause})

	assert.Equal(t, "serialization error: encoding document: bad bytes", err.Error())
	assert.True(t, errors.Is(err, ErrSerialization))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrUnknown))
	assert.Equal(t, Serialization, KindOf(err))
	assert.Equal(t, Unknown, KindOf(cause))
	assert.Equal(t, "invalid input", ErrInvalidInput.Error())
}

func TestMust(t *testing.T) {
	assert.Equal(t, "hello", Must("hello", nil))
	assert.Panics(t, func() { Must("", os.ErrNotExist) })
	assert.Panics(t, func() { MustResult(FromHTML("").Blocks()) })

	blocks := MustResult(FromHTML("<p>x</p>").Blocks())
	assert.Len(t, blocks, 1)
}

func TestConcurrentConversions(t *testing.T) {
	inputs := []string{
		`<p>https://www.youtube.com/watch?v=dQw4w9WgXcQ</p>`,
		`<ol><li>a<ol><li>b</li></ol></li></ol>`,
		`<table><tr><td>1</td></tr></table>`,
	}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(input string) {
			defer wg.Done()
			blocks, err := HTMLToBlocks(input)
			assert.NoError(t, err)
			assert.Len(t, blocks, 1)
		}(inputs[i%len(inputs)])
	}
	wg.Wait()
}
