// Package editorblocks converts HTML fragments and Markdown text into the
// ordered, typed blocks of a block-based rich-text editor.
//
// The two entry points are pure functions:
//
//	blocks, err := editorblocks.HTMLToBlocks("<h1>Title</h1><p>Hello</p>")
//	blocks, err := editorblocks.MarkdownToBlocks("# Title\n\nHello")
//
// Malformed markup never causes an error; it is skipped or degrades to
// paragraph text, and input in which nothing is recognized becomes a single
// raw block. Errors are reserved for unusable input (empty or not UTF-8) and
// for serialization failures.
//
// For files, readers and output in the editor's JSON document format there is
// a fluent API:
//
//	data, warnings, err := editorblocks.Open("post.md").
//	    Version("2.25.0").
//	    JSON()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", editorblocks.FormatWarnings(warnings))
//	}
//
// Each configuration method returns a new Converter, so partially configured
// converters can be shared and reused.
package editorblocks

import (
	"io"

	"github.com/npillmayer/schuko/tracing"

	"github.com/tsawler/editorblocks/format"
	"github.com/tsawler/editorblocks/model"
)

// tracer traces with key 'editorblocks'.
func tracer() tracing.Trace {
	return tracing.Select("editorblocks")
}

// HTMLToBlocks converts an HTML fragment into blocks in document order. It
// returns ErrInvalidInput for empty input or input that is not valid UTF-8.
func HTMLToBlocks(html string) ([]model.Block, error) {
	blocks, _, err := FromHTML(html).Blocks()
	return blocks, err
}

// MarkdownToBlocks converts Markdown text into blocks in document order. It
// returns ErrInvalidInput for empty input or input that is not valid UTF-8.
func MarkdownToBlocks(markdown string) ([]model.Block, error) {
	blocks, _, err := FromMarkdown(markdown).Blocks()
	return blocks, err
}

// Open returns a Converter for a file. The file is read by the first
// terminal operation. Its format is taken from the extension, or sniffed
// from the content when the extension is not recognized, unless set with
// Format.
//
// Example:
//
//	md, _, err := editorblocks.Open("page.html").Markdown()
func Open(filename string) *Converter {
	return &Converter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromHTML returns a Converter for an HTML string.
func FromHTML(html string) *Converter {
	c := fromString(html)
	c.options.format = format.HTML
	return c
}

// FromMarkdown returns a Converter for a Markdown string.
func FromMarkdown(markdown string) *Converter {
	c := fromString(markdown)
	c.options.format = format.Markdown
	return c
}

// FromReader reads all of r and returns a Converter for its content. The
// format is sniffed from the content unless set with Format. A read error
// is reported by the first terminal operation.
//
// Example:
//
//	blocks, _, err := editorblocks.FromReader(os.Stdin).Format(format.Markdown).Blocks()
func FromReader(r io.Reader) *Converter {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Converter{
			options: defaultOptions(),
			err:     &Error{Kind: InvalidInput, Msg: "reading input", Err: err},
		}
	}
	return fromString(string(data))
}

func fromString(input string) *Converter {
	return &Converter{
		input:   input,
		loaded:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	blocks := editorblocks.Must(editorblocks.HTMLToBlocks("<p>Hi</p>"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation of a Converter and
// panics if the error is non-nil. It discards warnings and returns just the
// value.
//
// Example:
//
//	md := editorblocks.MustResult(editorblocks.FromHTML(page).Markdown())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
