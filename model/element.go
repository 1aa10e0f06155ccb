package model

import "strings"

// Kind represents the type of a block
type Kind int

const (
	KindParagraph Kind = iota
	KindHeading
	KindList
	KindImage
	KindCode
	KindQuote
	KindRaw
	KindTable
	KindDelimiter
	KindEmbed
)

var kindNames = [...]string{
	KindParagraph: "paragraph",
	KindHeading:   "heading",
	KindList:      "list",
	KindImage:     "image",
	KindCode:      "code",
	KindQuote:     "quote",
	KindRaw:       "raw",
	KindTable:     "table",
	KindDelimiter: "delimiter",
	KindEmbed:     "embed",
}

// String returns the serialized type tag of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind returns the kind for a serialized type tag.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// Block is the interface for all blocks. The set of implementations is closed.
type Block interface {
	Kind() Kind
	isBlock()
}

// TextBlock is an interface for blocks carrying a single run of text
type TextBlock interface {
	Block
	GetText() string
}

// Paragraph represents a paragraph of text
type Paragraph struct {
	Text string `json:"text"`
}

func (*Paragraph) Kind() Kind        { return KindParagraph }
func (*Paragraph) isBlock()          {}
func (p *Paragraph) GetText() string { return p.Text }

// Heading represents a heading
type Heading struct {
	Text  string `json:"text"`
	Level int    `json:"level"` // 1-6
}

func (*Heading) Kind() Kind        { return KindHeading }
func (*Heading) isBlock()          {}
func (h *Heading) GetText() string { return h.Text }

// Image represents an image reference
type Image struct {
	URL            string `json:"url"`
	Caption        string `json:"caption,omitempty"`
	WithBorder     *bool  `json:"withBorder,omitempty"`
	WithBackground *bool  `json:"withBackground,omitempty"`
	Stretched      *bool  `json:"stretched,omitempty"`
}

func (*Image) Kind() Kind { return KindImage }
func (*Image) isBlock()   {}

// Code represents a code block. Code is kept verbatim.
type Code struct {
	Code     string `json:"code"`
	Language string `json:"language,omitempty"`
}

func (*Code) Kind() Kind        { return KindCode }
func (*Code) isBlock()          {}
func (c *Code) GetText() string { return c.Code }

// Alignment represents quote alignment
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
)

// Quote represents a quotation
type Quote struct {
	Text      string    `json:"text"`
	Caption   string    `json:"caption,omitempty"` // never set by the scanners
	Alignment Alignment `json:"alignment"`
}

func (*Quote) Kind() Kind        { return KindQuote }
func (*Quote) isBlock()          {}
func (q *Quote) GetText() string { return q.Text }

// NewQuote creates a left-aligned quote.
func NewQuote(text string) *Quote {
	return &Quote{Text: text, Alignment: AlignLeft}
}

// Raw carries the whole original input. It is only produced as a fallback when
// no other block could be recognized.
type Raw struct {
	HTML string `json:"html"`
}

func (*Raw) Kind() Kind        { return KindRaw }
func (*Raw) isBlock()          {}
func (r *Raw) GetText() string { return r.HTML }

// Delimiter represents a horizontal separator
type Delimiter struct{}

func (*Delimiter) Kind() Kind { return KindDelimiter }
func (*Delimiter) isBlock()   {}

// Embed represents embeddable external media
type Embed struct {
	Service string `json:"service"`
	Source  string `json:"source"`
	Embed   string `json:"embed"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Caption string `json:"caption,omitempty"`
}

func (*Embed) Kind() Kind { return KindEmbed }
func (*Embed) isBlock()   {}

// PlainText returns a best-effort text rendition of any block, with nested
// list items indented by two spaces per level.
func PlainText(b Block) string {
	switch v := b.(type) {
	case TextBlock:
		return v.GetText()
	case *List:
		return v.GetText()
	case *Table:
		return v.GetText()
	case *Image:
		if v.Caption != "" {
			return v.Caption
		}
		return v.URL
	case *Embed:
		return v.Source
	default:
		return ""
	}
}

func indent(level int) string {
	return strings.Repeat("  ", level)
}
