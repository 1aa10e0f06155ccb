package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// SchemaVersion is the schema version written into every Document.
const SchemaVersion = "2.25.0"

// Document is the envelope around an emitted block sequence
type Document struct {
	Time    int64         `json:"time"` // milliseconds since the Unix epoch
	Blocks  []BlockWithID `json:"blocks"`
	Version string        `json:"version"`
}

// NewDocument creates a document stamped with the current time
func NewDocument(blocks []Block) *Document {
	return NewDocumentAt(blocks, time.Now(), SchemaVersion)
}

// NewDocumentAt creates a document with an explicit timestamp and version
func NewDocumentAt(blocks []Block, at time.Time, version string) *Document {
	return &Document{
		Time:    at.UnixMilli(),
		Blocks:  AssignIDs(blocks),
		Version: version,
	}
}

// Len returns the number of blocks
func (d *Document) Len() int {
	return len(d.Blocks)
}

// Bare returns the blocks without their identifiers
func (d *Document) Bare() []Block {
	blocks := make([]Block, len(d.Blocks))
	for i, b := range d.Blocks {
		blocks[i] = b.Block
	}
	return blocks
}

// MarshalJSON writes an empty block sequence as an empty array.
func (d Document) MarshalJSON() ([]byte, error) {
	type plain Document
	if d.Blocks == nil {
		d.Blocks = []BlockWithID{}
	}
	return json.Marshal(plain(d))
}

// DecodeDocument parses a serialized document
func DecodeDocument(data []byte) (*Document, error) {
	doc := &Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	return doc, nil
}
