// Package model provides the block representation produced by the HTML and
// Markdown scanners.
//
// This package defines the user-facing data structures that represent a
// document as an ordered sequence of typed blocks, the shape used by
// block-based rich-text editors. Every scanner in this module ultimately
// produces these types, making them the primary API for consuming converted
// content.
//
// # Blocks
//
// All content implements the [Block] interface. The set of implementations is
// closed; the concrete types are:
//
//   - [Paragraph] - cleaned paragraph text
//   - [Heading] - headings (levels 1-6)
//   - [List] - unordered, ordered or checklist lists of [ListItem] trees
//   - [Image] - image URL with optional caption and display flags
//   - [Code] - verbatim code with optional language
//   - [Quote] - quotation text
//   - [Raw] - the whole original input when nothing else was recognized
//   - [Table] - rows of cell text
//   - [Delimiter] - a horizontal separator
//   - [Embed] - an embeddable external media link
//
// Blocks carry no position; their index in the sequence is their position.
//
// # Identifiers and serialization
//
// Scanners work with bare blocks. Identifiers are attached only when a
// sequence is emitted:
//
//	doc := model.NewDocument(blocks)
//	data, err := json.Marshal(doc)
//
// Each [BlockWithID] serializes as {"id", "type", "data"} where data holds the
// kind payload. Optional fields are omitted rather than written as null.
package model
