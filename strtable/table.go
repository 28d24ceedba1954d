package strtable

import (
	"errors"
	"fmt"
	"iter"

	"github.com/arloliu/flatview/errs"
	"github.com/arloliu/flatview/pod"
	"github.com/arloliu/flatview/section"
)

// Table is the read-only view of a serialized string table.
//
// It borrows the buffer passed to FromBytes: the blob field is a sub-slice of
// that buffer, and every Get result is a sub-slice of the blob. A Table must
// not outlive the buffer, and the buffer must not be mutated while the Table
// is in use. Tables are safe for concurrent readers.
type Table struct {
	entries []section.IndexEntry
	blob    []byte
}

// FromBytes opens a serialized string table over data without copying string
// content.
//
// The entry count is read through a typed view, so data must start on a
// 4-byte aligned address (buffers returned by make or by the builder's pooled
// sink are). The index varints are decoded once into fixed-layout entries and
// every entry is bounds-checked against the blob; string bytes themselves are
// neither copied nor re-hashed.
//
// Returns:
//   - Table: Read-only view borrowing data
//   - error: errs.ErrAlignmentMismatch for a misaligned buffer,
//     errs.ErrCorruptIndex if the index is truncated or inconsistent with the
//     declared count, errs.ErrOutOfBounds if an entry points outside the blob
func FromBytes(data []byte) (Table, error) {
	countView, rest, err := pod.RefFromPrefix[uint32](data)
	if err != nil {
		if errors.Is(err, errs.ErrAlignmentMismatch) {
			return Table{}, fmt.Errorf("entry count: %w", err)
		}

		return Table{}, fmt.Errorf("%w: entry count: %w", errs.ErrCorruptIndex, err)
	}

	count := int(*countView)
	// Each entry occupies at least two varint bytes; reject absurd counts
	// before allocating.
	if count > len(rest)/2 {
		return Table{}, fmt.Errorf("%w: declared %d entries, only %d index bytes remain", errs.ErrCorruptIndex, count, len(rest))
	}

	entries := make([]section.IndexEntry, 0, count)
	consumed := section.HeaderSize
	for i := 0; i < count; i++ {
		entry, n, err := section.ParseIndexEntry(rest)
		if err != nil {
			return Table{}, fmt.Errorf("%w: entry %d: %w", errs.ErrCorruptIndex, i, err)
		}
		entries = append(entries, entry)
		rest = rest[n:]
		consumed += n
	}

	pad := (section.BlobAlignment - consumed%section.BlobAlignment) % section.BlobAlignment
	if len(rest) < pad {
		return Table{}, fmt.Errorf("%w: missing %d blob padding bytes", errs.ErrCorruptIndex, pad)
	}
	blob := rest[pad:]

	var maxEnd uint64
	for i, entry := range entries {
		if entry.End() > uint64(len(blob)) {
			return Table{}, fmt.Errorf("%w: entry %d spans [%d, %d) but blob holds %d bytes",
				errs.ErrOutOfBounds, i, entry.Offset, entry.End(), len(blob))
		}
		maxEnd = max(maxEnd, entry.End())
	}

	// A well-formed blob is exactly covered by its entries; a mismatch means
	// the declared count or an entry range was tampered with.
	if maxEnd != uint64(len(blob)) {
		return Table{}, fmt.Errorf("%w: entries cover %d bytes but blob holds %d",
			errs.ErrCorruptIndex, maxEnd, len(blob))
	}

	return Table{entries: entries, blob: blob}, nil
}

// Count returns the number of entries in the table.
func (t Table) Count() int {
	return len(t.entries)
}

// Get returns the content of entry i as a borrowed slice of the blob. O(1).
//
// Returns:
//   - []byte: String content; shares memory with the buffer the table was
//     opened over and must not be modified
//   - error: errs.ErrIndexOutOfRange if i is not in [0, Count)
func (t Table) Get(i int) ([]byte, error) {
	if i < 0 || i >= len(t.entries) {
		return nil, fmt.Errorf("%w: index %d, count %d", errs.ErrIndexOutOfRange, i, len(t.entries))
	}

	entry := t.entries[i]

	return t.blob[entry.Offset:entry.End():entry.End()], nil
}

// GetString returns the content of entry i as a string without copying.
// The same borrowing rules as Get apply.
func (t Table) GetString(i int) (string, error) {
	content, err := t.Get(i)
	if err != nil {
		return "", err
	}

	return pod.String(content), nil
}

// Blob returns the raw blob section. Borrowed, do not modify.
func (t Table) Blob() []byte {
	return t.blob
}

// All returns an iterator over all entries in index order.
//
// Example:
//
//	for i, content := range table.All() {
//	    fmt.Printf("%d: %s\n", i, content)
//	}
func (t Table) All() iter.Seq2[int, []byte] {
	return func(yield func(int, []byte) bool) {
		for i, entry := range t.entries {
			if !yield(i, t.blob[entry.Offset:entry.End():entry.End()]) {
				return
			}
		}
	}
}
