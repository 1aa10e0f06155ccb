// Package mddoc converts Markdown text into blocks.
//
// The scanner is line oriented. Each unconsumed line is classified as blank,
// heading, fenced code, list, blockquote, horizontal rule, image, table or
// paragraph, in that order, and a block consumes as many lines as belong to
// it. Tables are recognized with one line of lookahead: a line followed by a
// separator row such as |---|:--:| starts a table.
//
// Text in headings, list items, quotes, table cells and paragraphs receives
// the inline transforms of package text: emphasis first, then links. Code is
// kept verbatim.
package mddoc

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tsawler/editorblocks/model"
)

// tracer traces with key 'editorblocks.markdown'.
func tracer() tracing.Trace {
	return tracing.Select("editorblocks.markdown")
}

// Reader provides access to the blocks of a Markdown document.
type Reader struct {
	blocks []model.Block
}

// Open opens a Markdown file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader reads and converts Markdown from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading Markdown: %w", err)
	}
	return NewReader(string(data)), nil
}

// NewReader converts a Markdown string.
func NewReader(input string) *Reader {
	return &Reader{blocks: Parse(input)}
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	return nil
}

// Blocks returns the converted blocks in document order.
func (r *Reader) Blocks() []model.Block {
	return r.blocks
}

// Parse converts Markdown into blocks. It never fails: lines that match no
// construct become paragraph text. Input without any non-blank line yields a
// single raw block holding the input.
func Parse(input string) []model.Block {
	s := newScanner(input)
	blocks := s.scan()
	if len(blocks) == 0 {
		tracer().Debugf("no blocks recognized in %d bytes of Markdown, using raw fallback", len(input))
		return []model.Block{&model.Raw{HTML: input}}
	}
	return blocks
}
