package mddoc

import (
	"regexp"
	"strings"

	"github.com/tsawler/editorblocks/embed"
	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

var (
	imagePattern    = regexp.MustCompile(`^!\[([^\]]*)\]\(([^)\s]+)(?:\s+['"]([^'"]*)['"])?\)$`)
	linkOnlyPattern = regexp.MustCompile(`^\[([^\]]+)\]\(([^)\s]+)\)$`)
	bareURLPattern  = regexp.MustCompile(`^https?://\S+$`)
)

type scanner struct {
	lines []string
}

func newScanner(input string) *scanner {
	lines := strings.Split(input, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return &scanner{lines: lines}
}

// scan consumes all lines. Every branch advances by at least one line.
func (s *scanner) scan() []model.Block {
	blocks := make([]model.Block, 0)
	for i := 0; i < len(s.lines); {
		line := s.lines[i]

		if isBlank(line) {
			i++
			continue
		}

		if level, rest := headingLevel(line); level > 0 {
			blocks = append(blocks, &model.Heading{
				Text:  text.Inline(strings.TrimSpace(rest)),
				Level: level,
			})
			i++
			continue
		}

		if fence := fenceMarker(line); fence != "" {
			var code *model.Code
			code, i = s.code(i, fence)
			blocks = append(blocks, code)
			continue
		}

		if _, ok := parseMarker(line); ok {
			var list *model.List
			list, i = s.list(i)
			blocks = append(blocks, list)
			continue
		}

		if isQuote(line) {
			var quote *model.Quote
			quote, i = s.quote(i)
			blocks = append(blocks, quote)
			continue
		}

		if isRule(line) {
			blocks = append(blocks, &model.Delimiter{})
			i++
			continue
		}

		if img := image(line); img != nil {
			blocks = append(blocks, img)
			i++
			continue
		}

		if i+1 < len(s.lines) && isTableSeparator(s.lines[i+1]) {
			var table *model.Table
			table, i = s.table(i)
			blocks = append(blocks, table)
			continue
		}

		var b model.Block
		b, i = s.paragraph(i)
		blocks = append(blocks, b)
	}
	return blocks
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimIndent(line string) string {
	return strings.TrimLeft(line, " \t")
}

// headingLevel returns the level of an ATX heading (1-6 '#' followed by a
// space) and the text after the marker. Level 0 means no heading.
func headingLevel(line string) (int, string) {
	t := trimIndent(line)
	n := 0
	for n < len(t) && t[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(t) || t[n] != ' ' {
		return 0, ""
	}
	return n, t[n+1:]
}

// fenceMarker returns the fence a code block opens with, or "".
func fenceMarker(line string) string {
	t := trimIndent(line)
	for _, m := range []string{"```", "~~~"} {
		if strings.HasPrefix(t, m) {
			return m
		}
	}
	return ""
}

// code consumes a fenced block starting at line i. An unclosed fence runs
// to the end of the input.
func (s *scanner) code(i int, fence string) (*model.Code, int) {
	lang := strings.TrimSpace(trimIndent(s.lines[i])[len(fence):])
	var body []string
	i++
	for ; i < len(s.lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(s.lines[i]), fence) {
			i++
			break
		}
		body = append(body, s.lines[i])
	}
	return &model.Code{Code: strings.Join(body, "\n"), Language: lang}, i
}

func isQuote(line string) bool {
	return strings.HasPrefix(trimIndent(line), "> ")
}

func (s *scanner) quote(i int) (*model.Quote, int) {
	var parts []string
	for ; i < len(s.lines) && isQuote(s.lines[i]); i++ {
		parts = append(parts, strings.TrimSpace(trimIndent(s.lines[i])[2:]))
	}
	return model.NewQuote(text.Inline(strings.Join(parts, " "))), i
}

func isRule(line string) bool {
	switch strings.TrimSpace(line) {
	case "---", "***", "___":
		return true
	}
	return false
}

// image converts a line holding only ![alt](url "title"). The title is
// preferred as caption over the alt text.
func image(line string) *model.Image {
	m := imagePattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil
	}
	caption := m[3]
	if caption == "" {
		caption = m[1]
	}
	return &model.Image{URL: m[2], Caption: caption}
}

// startsBlock reports whether line interrupts a running paragraph.
func startsBlock(line string) bool {
	if level, _ := headingLevel(line); level > 0 {
		return true
	}
	return fenceMarker(line) != ""
}

// paragraph joins consecutive non-blank lines with a space. A paragraph made
// of one link to a known embed service becomes an embed.
func (s *scanner) paragraph(i int) (model.Block, int) {
	start := i
	var parts []string
	for ; i < len(s.lines) && !isBlank(s.lines[i]); i++ {
		if i > start && startsBlock(s.lines[i]) {
			break
		}
		parts = append(parts, s.lines[i])
	}
	if len(parts) == 1 {
		if e := embedLine(parts[0]); e != nil {
			return e, i
		}
	}
	return &model.Paragraph{Text: text.Inline(strings.Join(parts, " "))}, i
}

// embedLine recognizes a bare URL or a single [text](url) link to a known
// service. Link text becomes the caption.
func embedLine(line string) *model.Embed {
	line = strings.TrimSpace(line)
	url, caption := "", ""
	if m := linkOnlyPattern.FindStringSubmatch(line); m != nil {
		url, caption = m[2], m[1]
	} else if bareURLPattern.MatchString(line) {
		url = line
	} else {
		return nil
	}
	m, ok := embed.Detect(url)
	if !ok {
		return nil
	}
	return &model.Embed{
		Service: m.Service,
		Source:  url,
		Embed:   m.Embed,
		Width:   m.Width,
		Height:  m.Height,
		Caption: caption,
	}
}
