// Package encoding provides the variable-length integer codec used by the
// string table's on-disk index.
//
// The encoding is standard LEB128 (the encoding/binary uvarint format): seven
// value bits per byte, high bit set on every byte except the last. Small
// offsets and lengths therefore cost a single byte.
package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/arloliu/flatview/errs"
)

// MaxUvarintLen is the maximum encoded size of a 64-bit varint.
const MaxUvarintLen = binary.MaxVarintLen64

// AppendUvarint appends the LEB128 encoding of v to buf and returns the
// extended buffer.
func AppendUvarint(buf []byte, v uint64) []byte {
	return binary.AppendUvarint(buf, v)
}

// Uvarint decodes a LEB128 value from the start of data.
//
// Returns:
//   - uint64: Decoded value
//   - int: Number of bytes consumed
//   - error: errs.ErrTruncatedVarint if data ends before the terminating byte
//     or the encoding overflows 64 bits
func Uvarint(data []byte) (uint64, int, error) {
	v, n := binary.Uvarint(data)
	if n == 0 {
		return 0, 0, fmt.Errorf("%w: need more than %d bytes", errs.ErrTruncatedVarint, len(data))
	}
	if n < 0 {
		return 0, 0, fmt.Errorf("%w: value overflows 64 bits", errs.ErrTruncatedVarint)
	}

	return v, n, nil
}

// UvarintLen returns the number of bytes AppendUvarint would emit for v.
func UvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}

	return n
}
