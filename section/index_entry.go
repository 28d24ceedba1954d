package section

import (
	"fmt"

	"github.com/arloliu/flatview/encoding"
	"github.com/arloliu/flatview/errs"
)

// IndexEntry records the location of a single interned string inside the blob
// section. Entries are varint-encoded on disk and materialized into this
// fixed-layout form when a table is opened, so lookups are O(1) array reads.
//
// Example with 2 strings:
//
//	"foo" → Offset=0, Length=3
//	"bar" → Offset=3, Length=3
//	Direct access: blob[entry.Offset : entry.Offset+entry.Length]
type IndexEntry struct {
	// Offset is the absolute byte offset from the start of the blob section.
	Offset uint32

	// Length is the size in bytes of the string content.
	Length uint32
}

// End returns the exclusive end position of the entry within the blob.
// Computed in uint64 so Offset+Length cannot wrap.
func (e IndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}

// AppendTo appends the varint encoding of the entry (offset, then length) to
// buf and returns the extended buffer.
func (e IndexEntry) AppendTo(buf []byte) []byte {
	buf = encoding.AppendUvarint(buf, uint64(e.Offset))
	return encoding.AppendUvarint(buf, uint64(e.Length))
}

// ParseIndexEntry decodes one varint-encoded index entry from the start of
// data and returns the number of bytes consumed.
//
// Returns:
//   - IndexEntry: Decoded entry
//   - int: Bytes consumed
//   - error: errs.ErrTruncatedVarint on short input, errs.ErrCorruptIndex if
//     a decoded field exceeds the uint32 range
func ParseIndexEntry(data []byte) (IndexEntry, int, error) {
	offset, n, err := encoding.Uvarint(data)
	if err != nil {
		return IndexEntry{}, 0, err
	}

	length, m, err := encoding.Uvarint(data[n:])
	if err != nil {
		return IndexEntry{}, 0, err
	}

	if offset > MaxOffset || length > MaxOffset {
		return IndexEntry{}, 0, fmt.Errorf("%w: entry (%d, %d) exceeds uint32 range", errs.ErrCorruptIndex, offset, length)
	}

	return IndexEntry{Offset: uint32(offset), Length: uint32(length)}, n + m, nil
}
