package strtable

import (
	"bytes"
	"fmt"

	"github.com/arloliu/flatview/endian"
	"github.com/arloliu/flatview/errs"
	"github.com/arloliu/flatview/internal/hash"
	"github.com/arloliu/flatview/internal/pool"
	"github.com/arloliu/flatview/pod"
	"github.com/arloliu/flatview/section"
	"github.com/arloliu/flatview/writer"
)

// Handle identifies an interned string. Interning equal content always yields
// an identical handle; handles for distinct contents never alias the same
// non-empty byte range.
type Handle struct {
	// Index is the logical position of the entry, usable with Table.Get after
	// a round trip through Finalize and FromBytes.
	Index uint32

	// Offset is the byte position of the string's first byte within the blob.
	Offset uint32

	// Length is the string's size in bytes.
	Length uint32
}

// Builder accumulates deduplicated strings into a contiguous blob.
//
// A Builder goes through a single construction phase (Intern calls) and is
// consumed by exactly one Finalize call; afterwards every operation fails
// with errs.ErrAlreadyFinalized. Builders are not safe for concurrent use.
type Builder struct {
	blob      *pool.ByteBuffer
	entries   []section.IndexEntry
	buckets   map[uint64][]uint32 // content hash → candidate entry indexes
	finalized bool
}

// NewBuilder creates an empty string table builder.
//
// The blob arena is taken from an internal buffer pool; Finalize returns it.
// Each builder owns its own deduplication index, so independent builders
// never share state.
func NewBuilder() *Builder {
	return &Builder{
		blob:    pool.GetTableBuffer(),
		buckets: make(map[uint64][]uint32),
	}
}

// Intern adds content to the table, deduplicating against everything interned
// before.
//
// The content hash is only a fast filter: candidates from the same hash
// bucket are confirmed by a full byte comparison, so colliding contents still
// intern correctly. Interning bytes already present returns the existing
// handle and never grows the blob.
//
// Returns:
//   - Handle: Stable handle for the content
//   - error: errs.ErrAlreadyFinalized after Finalize,
//     errs.ErrOffsetOutOfRange if the blob would exceed 4GiB,
//     errs.ErrEntryCountExceeded if the entry count would exceed uint32
func (b *Builder) Intern(content []byte) (Handle, error) {
	if b.finalized {
		return Handle{}, fmt.Errorf("%w: cannot intern", errs.ErrAlreadyFinalized)
	}

	sum := hash.Sum(content)
	for _, idx := range b.buckets[sum] {
		entry := b.entries[idx]
		if bytes.Equal(b.blob.Bytes()[entry.Offset:entry.End()], content) {
			return Handle{Index: idx, Offset: entry.Offset, Length: entry.Length}, nil
		}
	}

	offset := b.blob.Len()
	if uint64(offset)+uint64(len(content)) > section.MaxOffset {
		return Handle{}, fmt.Errorf("%w: blob would grow to %d bytes", errs.ErrOffsetOutOfRange, offset+len(content))
	}
	if uint64(len(b.entries)) >= section.MaxEntryCount {
		return Handle{}, fmt.Errorf("%w: table already holds %d entries", errs.ErrEntryCountExceeded, len(b.entries))
	}

	b.blob.Grow(len(content))
	b.blob.MustWrite(content)

	entry := section.IndexEntry{Offset: uint32(offset), Length: uint32(len(content))}
	idx := uint32(len(b.entries))
	b.entries = append(b.entries, entry)
	b.buckets[sum] = append(b.buckets[sum], idx)

	return Handle{Index: idx, Offset: entry.Offset, Length: entry.Length}, nil
}

// InternString interns the bytes of s without copying the string.
func (b *Builder) InternString(s string) (Handle, error) {
	return b.Intern(pod.StringBytes(s))
}

// Len returns the number of unique entries interned so far.
func (b *Builder) Len() int {
	return len(b.entries)
}

// BlobSize returns the current size of the blob in bytes. Re-interning
// existing content never changes this value.
func (b *Builder) BlobSize() int {
	if b.blob == nil {
		return 0
	}

	return b.blob.Len()
}

// Finalize serializes the table through w and consumes the builder.
//
// The emission order of index entries is the insertion order of unique
// contents, so Table.Get(i) after FromBytes returns the i-th distinct string
// interned. The writer must be positioned on a multiple of
// section.BlobAlignment (a fresh writer is), otherwise the blob padding
// computed by readers would not line up.
//
// Returns:
//   - error: errs.ErrAlreadyFinalized on a second call,
//     errs.ErrAlignmentMismatch if the writer position is misaligned,
//     or the sink's write error
func (b *Builder) Finalize(w *writer.Writer) error {
	if b.finalized {
		return fmt.Errorf("%w: cannot finalize twice", errs.ErrAlreadyFinalized)
	}
	if w.Position()%section.BlobAlignment != 0 {
		return fmt.Errorf("%w: writer position %d is not a multiple of %d", errs.ErrAlignmentMismatch, w.Position(), section.BlobAlignment)
	}
	b.finalized = true

	engine := endian.GetNativeEngine()
	header := engine.AppendUint32(make([]byte, 0, section.HeaderSize), uint32(len(b.entries)))
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write entry count: %w", err)
	}

	index := make([]byte, 0, len(b.entries)*4)
	for _, entry := range b.entries {
		index = entry.AppendTo(index)
	}
	if _, err := w.Write(index); err != nil {
		return fmt.Errorf("write index section: %w", err)
	}

	if _, err := w.AlignTo(section.BlobAlignment); err != nil {
		return fmt.Errorf("write blob padding: %w", err)
	}

	if _, err := w.Write(b.blob.Bytes()); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}

	pool.PutTableBuffer(b.blob)
	b.blob = nil

	return nil
}
