package htmldoc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tsawler/editorblocks/embed"
	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/text"
)

// maxNesting bounds how deep containers and lists are descended into.
// Deeper content is kept as paragraph or item text.
const maxNesting = 64

// scanner walks HTML one tag or text run at a time. All offsets refer to
// src.
type scanner struct {
	src     string
	closers closeIndex
	depth   int

	truncated bool

	// Results of the last forward searches for '>' and "-->". Scanning only
	// moves forward, so a search is reused until the scan passes its result.
	gtFrom, gtAt           int
	commentFrom, commentAt int
}

func newScanner(src string) *scanner {
	return &scanner{
		src:         src,
		closers:     newCloseIndex(src),
		gtFrom:      -1,
		commentFrom: -1,
	}
}

// scan converts src[from:to] into blocks. Container elements are scanned
// recursively, each with its own iteration limit of twice its character
// count.
func (s *scanner) scan(from, to int) []model.Block {
	from, to = trimRange(s.src, from, to)
	maxIterations := 2 * utf8.RuneCountInString(s.src[from:to])
	blocks := make([]model.Block, 0)

	pos := from
	for iteration := 0; pos < to; iteration++ {
		if iteration >= maxIterations {
			tracer().Infof("iteration limit %d reached at offset %d, stopping", maxIterations, pos)
			s.truncated = true
			break
		}

		pos = skipSpace(s.src, pos, to)
		if pos >= to {
			break
		}

		if s.src[pos] != '<' {
			// Text outside of tags runs up to the next tag
			end := strings.IndexByte(s.src[pos:to], '<')
			run := s.src[pos:to]
			if end >= 0 {
				run = s.src[pos : pos+end]
				pos += end
			} else {
				pos = to
			}
			if t := text.Clean(run); t != "" {
				blocks = append(blocks, &model.Paragraph{Text: t})
			}
			continue
		}

		tagEnd := s.nextTagEnd(pos, to)
		if tagEnd < 0 {
			pos++
			continue
		}
		found, next := s.element(pos, tagEnd, to)
		blocks = append(blocks, found...)
		if next <= pos {
			next = tagEnd + 1
		}
		pos = next
	}

	return blocks
}

// nested scans the content of a container one level deeper. Past
// maxNesting the content becomes a single paragraph.
func (s *scanner) nested(from, to int) []model.Block {
	if s.depth >= maxNesting {
		tracer().Debugf("nesting limit %d reached at offset %d", maxNesting, from)
		if t := text.Clean(s.src[from:to]); t != "" {
			return []model.Block{&model.Paragraph{Text: t}}
		}
		return nil
	}
	s.depth++
	defer func() { s.depth-- }()
	return s.scan(from, to)
}

func trimRange(src string, from, to int) (int, int) {
	t := src[from:to]
	lead := len(t) - len(strings.TrimLeftFunc(t, unicode.IsSpace))
	trail := len(t) - len(strings.TrimRightFunc(t, unicode.IsSpace))
	if lead == len(t) {
		return from, from
	}
	return from + lead, to - trail
}

func skipSpace(s string, pos, to int) int {
	for pos < to {
		r, size := utf8.DecodeRuneInString(s[pos:to])
		if !unicode.IsSpace(r) {
			break
		}
		pos += size
	}
	return pos
}

// nextTagEnd returns the offset of the first '>' in src[pos:to], or -1.
func (s *scanner) nextTagEnd(pos, to int) int {
	if s.gtFrom < 0 || pos < s.gtFrom || (s.gtAt >= 0 && pos > s.gtAt) {
		s.gtFrom, s.gtAt = pos, strings.IndexByte(s.src[pos:], '>')
		if s.gtAt >= 0 {
			s.gtAt += pos
		}
	}
	if s.gtAt < 0 || s.gtAt >= to {
		return -1
	}
	return s.gtAt
}

// commentEnd returns the offset just past the first "-->" in src[pos:to],
// or -1.
func (s *scanner) commentEnd(pos, to int) int {
	if s.commentFrom < 0 || pos < s.commentFrom || (s.commentAt >= 0 && pos > s.commentAt) {
		s.commentFrom, s.commentAt = pos, strings.Index(s.src[pos:], "-->")
		if s.commentAt >= 0 {
			s.commentAt += pos
		}
	}
	if s.commentAt < 0 || s.commentAt+3 > to {
		return -1
	}
	return s.commentAt + 3
}

// element handles the tag starting at start whose '>' is at tagEnd, within a
// container ending at to. It returns the blocks produced and the position to
// continue scanning from.
func (s *scanner) element(start, tagEnd, to int) ([]model.Block, int) {
	content := s.src[start+1 : tagEnd]
	next := tagEnd + 1

	if strings.HasPrefix(content, "!--") {
		if end := s.commentEnd(start, to); end >= 0 {
			return nil, end
		}
		return nil, next
	}

	name := text.TagName(content)
	if name == "" || name[0] == '/' || name[0] == '!' || name[0] == '?' {
		// Closing tags without an opener, doctypes and processing instructions
		return nil, next
	}

	if strings.HasSuffix(content, "/") || isVoidElement(name) {
		return s.voidElement(start, name, content, next, to)
	}

	closeAt, after := s.closers.find(start, name, next, to)
	if closeAt < 0 {
		tracer().Debugf("no closing tag for <%s>, skipping it", name)
		return nil, next
	}
	return s.dispatch(name, text.ParseTag(content), next, closeAt), after
}

// voidElement dispatches elements that have no content.
func (s *scanner) voidElement(start int, name, content string, next, to int) ([]model.Block, int) {
	switch name {
	case "img":
		if img := s.image(content); img != nil {
			return []model.Block{img}, next
		}
	case "iframe":
		// Fallback content between the tags is not document content
		if closeAt, after := s.closers.find(start, "iframe", next, to); closeAt >= 0 && strings.TrimSpace(s.src[next:closeAt]) == "" {
			next = after
		}
		if e := iframeEmbed(content); e != nil {
			return []model.Block{e}, next
		}
	case "hr":
		return []model.Block{&model.Delimiter{}}, next
	}
	return nil, next
}

// dispatch converts one element with its content src[from:to].
func (s *scanner) dispatch(name string, tag text.Tag, from, to int) []model.Block {
	content := strings.TrimSpace(s.src[from:to])

	switch name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return []model.Block{&model.Heading{
			Text:  text.Clean(content),
			Level: int(name[1] - '0'),
		}}

	case "p", "div", "span":
		if e := embedFromContent(content); e != nil {
			return []model.Block{e}
		}
		if name == "div" && hasBlockChildren(content) {
			return s.nested(from, to)
		}
		if t := text.Clean(content); t != "" {
			return []model.Block{&model.Paragraph{Text: t}}
		}
		return nil

	case "blockquote":
		return []model.Block{model.NewQuote(text.Clean(content))}

	case "code", "pre":
		return []model.Block{codeBlock(name, tag, content)}

	case "ul":
		return []model.Block{s.list(tag, content, false)}

	case "ol":
		return []model.Block{s.list(tag, content, true)}

	case "table":
		return []model.Block{parseTable(content)}

	case "hr":
		return []model.Block{&model.Delimiter{}}

	case "figure":
		return s.figure(from, to)

	case "li":
		// Items are only produced by list parsing
		return nil
	}

	if shouldSkipElement(name) {
		return nil
	}
	// Unknown containers (section, article, body, a, strong, ...) are scanned
	// for the elements they hold
	return s.nested(from, to)
}

// image converts the content of an img tag. Images without a src are
// skipped.
func (s *scanner) image(content string) *model.Image {
	tag := text.ParseTag(content)
	url := strings.TrimSpace(tag.Attr("src"))
	if url == "" {
		tracer().Debugf("skipping <img> without src")
		return nil
	}
	return &model.Image{URL: url, Caption: strings.TrimSpace(tag.Attr("alt"))}
}

// figure converts a figure holding an image, using its figcaption as the
// caption. Figures without an image are scanned like any container.
func (s *scanner) figure(from, to int) []model.Block {
	content := s.src[from:to]
	at := indexOpenTag(content, "img")
	if at < 0 {
		return s.nested(from, to)
	}
	end := strings.IndexByte(content[at:], '>')
	if end < 0 {
		return s.nested(from, to)
	}
	img := s.image(content[at+1 : at+end])
	if img == nil {
		return s.nested(from, to)
	}
	if caption := elementText(content, "figcaption"); caption != "" {
		img.Caption = caption
	}
	return []model.Block{img}
}

// elementText returns the cleaned content of the first element named name.
func elementText(content, name string) string {
	at := indexOpenTag(content, name)
	if at < 0 {
		return ""
	}
	gt := strings.IndexByte(content[at:], '>')
	if gt < 0 {
		return ""
	}
	from := at + gt + 1
	closeAt, _ := findClose(content, from, name)
	if closeAt < 0 {
		return ""
	}
	return text.Clean(content[from:closeAt])
}

// codeBlock keeps code verbatim. A pre wrapping a single code element is
// unwrapped, taking the language from whichever of the two declares one.
func codeBlock(name string, tag text.Tag, content string) *model.Code {
	code := &model.Code{Code: content, Language: language(tag)}
	if name != "pre" || !isOpenTag(content, "code") {
		return code
	}
	gt := strings.IndexByte(content, '>')
	if gt < 0 {
		return code
	}
	closeAt, after := findClose(content, gt+1, "code")
	if closeAt < 0 || strings.TrimSpace(content[after:]) != "" {
		return code
	}
	code.Code = content[gt+1 : closeAt]
	if code.Language == "" {
		code.Language = language(text.ParseTag(content[1:gt]))
	}
	return code
}

// language reads a class or lang attribute, dropping the conventional
// "language-" and "lang-" prefixes.
func language(tag text.Tag) string {
	v := tag.Attr("class")
	if v == "" {
		v = tag.Attr("lang")
	}
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	lang := fields[0]
	for _, f := range fields {
		if strings.HasPrefix(f, "language-") || strings.HasPrefix(f, "lang-") {
			lang = f
			break
		}
	}
	lang = strings.TrimPrefix(lang, "language-")
	return strings.TrimPrefix(lang, "lang-")
}

var urlPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// embedFromContent returns an embed for the first URL in content that links
// to a known service.
func embedFromContent(content string) *model.Embed {
	for _, url := range urlPattern.FindAllString(content, -1) {
		if m, ok := embed.Detect(url); ok {
			return &model.Embed{
				Service: m.Service,
				Source:  url,
				Embed:   m.Embed,
				Width:   m.Width,
				Height:  m.Height,
			}
		}
	}
	return nil
}

// iframeEmbed converts an iframe whose src belongs to a known service.
func iframeEmbed(content string) *model.Embed {
	frame, ok := embed.ParseIframe(content)
	if !ok {
		return nil
	}
	service, ok := embed.ServiceFromSrc(frame.Src)
	if !ok {
		tracer().Debugf("iframe src %q is not a known embed service", frame.Src)
		return nil
	}
	return &model.Embed{
		Service: service,
		Source:  frame.Src,
		Embed:   frame.Src,
		Width:   frame.Width,
		Height:  frame.Height,
	}
}
