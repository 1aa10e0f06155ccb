package editorblocks

import (
	"time"

	"github.com/tsawler/editorblocks/format"
	"github.com/tsawler/editorblocks/model"
)

// ConvertOptions holds configuration for a conversion.
type ConvertOptions struct {
	// Input format; Unknown means detect
	format format.Format

	// Document envelope
	version string
	clock   func() time.Time

	// Processing options
	normalize bool   // NFC on text payloads
	indent    string // JSON indentation, empty for compact output
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		format:    format.Unknown,
		version:   model.SchemaVersion,
		clock:     time.Now,
		normalize: false,
		indent:    "",
	}
}

// clone creates a copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	return ConvertOptions{
		format:    o.format,
		version:   o.version,
		clock:     o.clock,
		normalize: o.normalize,
		indent:    o.indent,
	}
}
