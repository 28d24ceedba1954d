// Package section defines the fixed layout of a serialized string table.
//
// A serialized table is laid out as:
//
//	[ entry count : uint32 ]                    header
//	[ count × (offset, length) varint pairs ]   index section
//	[ zero padding to BlobAlignment ]
//	[ blob bytes ]                              string contents, offset order
//
// The entry count is stored in the host's native byte order and read back
// through a typed view; varints are byte-order free; the blob is raw bytes.
// Padding bytes are always zero.
package section

import "math"

const (
	// HeaderSize is the fixed header size in bytes (the uint32 entry count).
	HeaderSize = 4

	// BlobAlignment is the boundary the blob section starts on, relative to
	// the start of the serialized table.
	BlobAlignment = 8

	// MaxEntryCount is the maximum number of index entries a table can hold.
	MaxEntryCount = math.MaxUint32

	// MaxOffset is the maximum byte offset or length an index entry can
	// represent. Blobs are limited to 4GiB.
	MaxOffset = math.MaxUint32
)
