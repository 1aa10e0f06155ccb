// Package htmldoc converts HTML fragments into blocks.
package htmldoc

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tsawler/editorblocks/model"
)

// tracer traces with key 'editorblocks.html'.
func tracer() tracing.Trace {
	return tracing.Select("editorblocks.html")
}

// Reader provides access to the blocks of an HTML document.
type Reader struct {
	blocks    []model.Block
	truncated bool
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader reads and converts HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading HTML: %w", err)
	}
	return NewReader(string(data)), nil
}

// NewReader converts an HTML string.
func NewReader(input string) *Reader {
	blocks, truncated := parse(input)
	return &Reader{blocks: blocks, truncated: truncated}
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Blocks returns the converted blocks in document order.
func (r *Reader) Blocks() []model.Block {
	return r.blocks
}

// Truncated reports whether scanning stopped at the iteration limit. The
// blocks found up to that point are still returned.
func (r *Reader) Truncated() bool {
	return r.truncated
}

// Parse converts an HTML fragment into blocks. Malformed markup is skipped
// rather than reported. If nothing at all is recognized, the result is a
// single raw block holding the unmodified input, so the result is never
// empty.
func Parse(input string) []model.Block {
	blocks, _ := parse(input)
	return blocks
}

func parse(input string) ([]model.Block, bool) {
	s := newScanner(input)
	blocks := s.scan(0, len(input))
	if len(blocks) == 0 {
		tracer().Debugf("no blocks recognized in %d bytes of HTML, using raw fallback", len(input))
		return []model.Block{&model.Raw{HTML: input}}, s.truncated
	}
	return blocks, s.truncated
}
