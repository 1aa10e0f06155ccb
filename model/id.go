package model

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
)

// IDLength is the length of a generated block identifier.
const IDLength = 10

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// idCounter is mixed into every hash so that two ids generated within the same
// clock tick still differ.
var idCounter atomic.Uint64

// NewID returns a 10 character identifier over [A-Za-z0-9]. Identifiers are
// unique with high probability but not guaranteed to be.
func NewID() string {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(time.Now().UnixNano()))
	binary.LittleEndian.PutUint64(buf[8:], idCounter.Add(1))
	return encodeID(xxhash.Sum64(buf[:]))
}

func encodeID(h uint64) string {
	id := make([]byte, IDLength)
	for i := range id {
		id[i] = idAlphabet[h%uint64(len(idAlphabet))]
		h /= uint64(len(idAlphabet))
	}
	return string(id)
}

// BlockWithID is a block tagged with an identifier, ready for serialization.
type BlockWithID struct {
	ID    string
	Block Block
}

// AssignID generates an identifier for b.
func AssignID(b Block) BlockWithID {
	return BlockWithID{ID: NewID(), Block: b}
}

// AssignIDs tags every block in order. Identifiers are unique within the
// returned slice.
func AssignIDs(blocks []Block) []BlockWithID {
	out := make([]BlockWithID, 0, len(blocks))
	seen := make(map[string]struct{}, len(blocks))
	for _, b := range blocks {
		id := NewID()
		for {
			if _, dup := seen[id]; !dup {
				break
			}
			id = NewID()
		}
		seen[id] = struct{}{}
		out = append(out, BlockWithID{ID: id, Block: b})
	}
	return out
}

// Type returns the serialized type tag of the wrapped block.
func (b BlockWithID) Type() string {
	if b.Block == nil {
		return ""
	}
	return b.Block.Kind().String()
}

type blockJSON struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON writes the block as {"id", "type", "data"}.
func (b BlockWithID) MarshalJSON() ([]byte, error) {
	if b.Block == nil {
		return nil, errors.New("block with id " + b.ID + " has no payload")
	}
	data, err := json.Marshal(b.Block)
	if err != nil {
		return nil, fmt.Errorf("encoding %s block: %w", b.Type(), err)
	}
	return json.Marshal(blockJSON{ID: b.ID, Type: b.Type(), Data: data})
}

// UnmarshalJSON reads the serialized block shape, dispatching on the type tag.
func (b *BlockWithID) UnmarshalJSON(data []byte) error {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, ok := ParseKind(raw.Type)
	if !ok {
		return fmt.Errorf("unknown block type %q", raw.Type)
	}
	blk := NewBlock(kind)
	if len(raw.Data) > 0 && string(raw.Data) != "null" {
		if err := json.Unmarshal(raw.Data, blk); err != nil {
			return fmt.Errorf("decoding %s block: %w", raw.Type, err)
		}
	}
	b.ID = raw.ID
	b.Block = blk
	return nil
}

// NewBlock returns an empty block of the given kind.
func NewBlock(kind Kind) Block {
	switch kind {
	case KindHeading:
		return &Heading{}
	case KindList:
		return &List{}
	case KindImage:
		return &Image{}
	case KindCode:
		return &Code{}
	case KindQuote:
		return &Quote{}
	case KindRaw:
		return &Raw{}
	case KindTable:
		return &Table{}
	case KindDelimiter:
		return &Delimiter{}
	case KindEmbed:
		return &Embed{}
	default:
		return &Paragraph{}
	}
}
