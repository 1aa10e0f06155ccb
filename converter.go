package editorblocks

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/tsawler/editorblocks/format"
	"github.com/tsawler/editorblocks/htmldoc"
	"github.com/tsawler/editorblocks/mddoc"
	"github.com/tsawler/editorblocks/model"
	"github.com/tsawler/editorblocks/render"
	"github.com/tsawler/editorblocks/text"
)

// Converter provides a fluent interface for converting HTML and Markdown.
// Each configuration method returns a new Converter instance, making it
// safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	filename string
	input    string
	loaded   bool

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Converter with a copy of its options.
func (c *Converter) clone() *Converter {
	return &Converter{
		filename: c.filename,
		input:    c.input,
		loaded:   c.loaded,
		options:  c.options.clone(),
		err:      c.err,
	}
}

// ----------------------------------------------------------------------------
// Configuration Methods (return new Converter instance)
// ----------------------------------------------------------------------------

// Format sets the input format, overriding detection.
//
// Example:
//
//	blocks, _, err := editorblocks.Open("notes.txt").Format(format.Markdown).Blocks()
func (c *Converter) Format(f format.Format) *Converter {
	newConv := c.clone()
	newConv.options.format = f
	return newConv
}

// Version sets the schema version written into the document envelope.
func (c *Converter) Version(v string) *Converter {
	newConv := c.clone()
	newConv.options.version = v
	return newConv
}

// Clock sets the time source for the document timestamp.
func (c *Converter) Clock(now func() time.Time) *Converter {
	newConv := c.clone()
	if now == nil {
		now = time.Now
	}
	newConv.options.clock = now
	return newConv
}

// Normalize converts the text of paragraphs, headings, quotes, list items,
// table cells and captions to Unicode NFC. Code and raw blocks keep the
// input bytes unchanged.
func (c *Converter) Normalize() *Converter {
	newConv := c.clone()
	newConv.options.normalize = true
	return newConv
}

// Indent makes JSON output indented by the given string per level.
//
// Example:
//
//	data, _, err := editorblocks.FromHTML(page).Indent("  ").JSON()
func (c *Converter) Indent(indent string) *Converter {
	newConv := c.clone()
	newConv.options.indent = indent
	return newConv
}

// ----------------------------------------------------------------------------
// Terminal Operations (execute the conversion and return results)
// ----------------------------------------------------------------------------

// Blocks converts the input and returns the blocks in document order.
//
// Returns the blocks, any warnings encountered during processing, and an
// error if the input could not be used.
func (c *Converter) Blocks() ([]model.Block, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}
	input, err := c.load()
	if err != nil {
		return nil, nil, err
	}
	if input == "" {
		return nil, nil, newError(InvalidInput, "input is empty")
	}
	if !utf8.ValidString(input) {
		return nil, nil, newError(InvalidInput, "input is not valid UTF-8")
	}
	var warnings []Warning
	f := c.options.format
	if f == format.Unknown && c.filename != "" {
		f = format.Detect(c.filename)
	}
	if f == format.Unknown {
		f = format.DetectFromContent([]byte(input))
		if f == format.Unknown {
			f = format.Markdown
		}
		warnings = append(warnings, newWarning(WarnFormatGuessed, "input format detected as %s", f))
	}

	blocks, more, err := convert(f, input)
	if err != nil {
		return nil, nil, err
	}
	if c.options.normalize {
		normalizeBlocks(blocks)
	}
	return blocks, append(warnings, more...), nil
}

// convert runs one scanner. Scanners do not fail on malformed markup; a
// panic is reported as a parse error of the input's format.
func convert(f format.Format, input string) (blocks []model.Block, warnings []Warning, err error) {
	kind := MarkdownParse
	if f == format.HTML {
		kind = HTMLParse
	}
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("%s scanner failed: %v", f, r)
			blocks, warnings = nil, nil
			err = newError(kind, "%v", r)
		}
	}()

	switch f {
	case format.HTML:
		r := htmldoc.NewReader(input)
		blocks = r.Blocks()
		if r.Truncated() {
			warnings = append(warnings, newWarning(WarnTruncated, "HTML scan stopped at the iteration limit"))
		}
	default:
		blocks = mddoc.NewReader(input).Blocks()
	}

	if len(blocks) == 1 && blocks[0].Kind() == model.KindRaw {
		warnings = append(warnings, newWarning(WarnRawFallback, "no %s structure recognized, returning raw block", f))
	}
	tracer().Debugf("converted %d bytes of %s into %d blocks", len(input), f, len(blocks))
	return blocks, warnings, nil
}

// Document converts the input and wraps the blocks in a document envelope
// with a timestamp, the schema version and a unique id per block.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	blocks, warnings, err := c.Blocks()
	if err != nil {
		return nil, warnings, err
	}
	return model.NewDocumentAt(blocks, c.options.clock(), c.options.version), warnings, nil
}

// JSON converts the input and returns the document envelope as JSON.
func (c *Converter) JSON() ([]byte, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, warnings, err
	}
	var data []byte
	if c.options.indent != "" {
		data, err = json.MarshalIndent(doc, "", c.options.indent)
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, warnings, &Error{Kind: Serialization, Msg: "encoding document", Err: err}
	}
	return data, warnings, nil
}

// Markdown converts the input and renders the blocks as Markdown.
func (c *Converter) Markdown() (string, []Warning, error) {
	blocks, warnings, err := c.Blocks()
	if err != nil {
		return "", warnings, err
	}
	return render.Markdown(blocks), warnings, nil
}

// Text converts the input and renders the blocks as plain text.
func (c *Converter) Text() (string, []Warning, error) {
	blocks, warnings, err := c.Blocks()
	if err != nil {
		return "", warnings, err
	}
	return render.Text(blocks), warnings, nil
}

// load reads the file of a Converter created by Open.
func (c *Converter) load() (string, error) {
	if c.loaded {
		return c.input, nil
	}
	if c.filename == "" {
		return "", newError(InvalidInput, "no filename specified")
	}
	data, err := os.ReadFile(c.filename)
	if err != nil {
		return "", &Error{Kind: InvalidInput, Msg: fmt.Sprintf("opening %s", c.filename), Err: err}
	}
	return string(data), nil
}

// normalizeBlocks rewrites the text payloads of blocks to NFC in place.
func normalizeBlocks(blocks []model.Block) {
	for _, b := range blocks {
		switch v := b.(type) {
		case *model.Paragraph:
			v.Text = text.Normalize(v.Text)
		case *model.Heading:
			v.Text = text.Normalize(v.Text)
		case *model.Quote:
			v.Text = text.Normalize(v.Text)
			v.Caption = text.Normalize(v.Caption)
		case *model.List:
			normalizeItems(v.Items)
		case *model.Table:
			for _, row := range v.Content {
				for i := range row {
					row[i] = text.Normalize(row[i])
				}
			}
		case *model.Image:
			v.Caption = text.Normalize(v.Caption)
		case *model.Embed:
			v.Caption = text.Normalize(v.Caption)
		}
	}
}

func normalizeItems(items []model.ListItem) {
	for i := range items {
		items[i].Content = text.Normalize(items[i].Content)
		normalizeItems(items[i].Items)
	}
}
