// Package offsetset provides a deduplicating set of slices addressed by byte
// offset.
//
// A Set can be thought of as a specialized ordered set of []T values that
// does not hand out indexes but byte offsets of the encoded slices inside a
// single opaque buffer. Each stored slice is encoded as a varint element
// count followed by the raw element bytes, so the serialized form is simply
// the buffer itself and entries can be read back with minimal overhead:
//
//	set := offsetset.New[byte]()
//	off := set.Insert([]byte("payload"))
//
//	items, _ := offsetset.Read[byte](set.Bytes(), off)
//
// Unlike the string table, there is no separate index section: offsets are
// the handles, and readers jump straight to them. Element types are limited
// to alignment 1 (bytes and byte-composed structs), since entries start at
// arbitrary offsets behind their varint prefixes.
//
// Sets are not safe for concurrent mutation; reading a serialized buffer is
// side-effect free.
package offsetset

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/arloliu/flatview/encoding"
	"github.com/arloliu/flatview/errs"
	"github.com/arloliu/flatview/internal/hash"
	"github.com/arloliu/flatview/pod"
)

// Set stores deduplicated slices of a fixed-layout element type T.
// The zero value is not usable; create sets with New or FromBytes.
type Set[T pod.Pod] struct {
	buckets map[uint64][]int // content hash → candidate offsets
	buf     []byte
}

// New creates an empty Set. Panics if T has an alignment requirement above 1
// or is zero-sized; entries live at arbitrary byte offsets, so larger
// alignments cannot be honored.
func New[T pod.Pod]() *Set[T] {
	if pod.AlignOf[T]() != 1 {
		panic("offsetset: element type must have alignment 1")
	}
	if pod.SizeOf[T]() == 0 {
		panic("offsetset: zero-sized element type")
	}

	return &Set[T]{buckets: make(map[uint64][]int)}
}

// Insert adds items to the set, deduplicating against previous insertions,
// and returns the byte offset of the encoded slice within the buffer.
// Inserting an equal slice again returns the existing offset without growing
// the buffer.
func (s *Set[T]) Insert(items []T) int {
	raw := pod.SliceAsBytes(items)
	sum := hash.Sum(raw)

	for _, off := range s.buckets[sum] {
		stored, _, err := readAt[T](s.buf, off)
		if err != nil {
			// Offsets in buckets always point at entries this Set encoded.
			panic(fmt.Sprintf("offsetset: corrupt internal buffer: %v", err))
		}
		if bytes.Equal(pod.SliceAsBytes(stored), raw) {
			return off
		}
	}

	offset := len(s.buf)
	s.buf = encoding.AppendUvarint(s.buf, uint64(len(items)))
	s.buf = append(s.buf, raw...)
	s.buckets[sum] = append(s.buckets[sum], offset)

	return offset
}

// Len returns the number of distinct slices stored.
func (s *Set[T]) Len() int {
	n := 0
	for _, offs := range s.buckets {
		n += len(offs)
	}

	return n
}

// Bytes returns the serialized representation of the set. The slice shares
// the set's internal buffer; do not modify it.
func (s *Set[T]) Bytes() []byte {
	return s.buf
}

// Entries returns an iterator over all (offset, slice) pairs in insertion
// order. The yielded slices borrow the set's buffer.
func (s *Set[T]) Entries() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		offset := 0
		for offset < len(s.buf) {
			items, next, err := readAt[T](s.buf, offset)
			if err != nil {
				return
			}
			if !yield(offset, items) {
				return
			}
			offset = next
		}
	}
}

// Read returns the slice stored at the given offset of a serialized buffer.
//
// Returns:
//   - []T: Stored elements, borrowing buffer's memory
//   - error: errs.ErrOutOfBounds if offset or the entry's extent lies outside
//     the buffer, errs.ErrTruncatedVarint for a cut-off length prefix
func Read[T pod.Pod](buffer []byte, offset int) ([]T, error) {
	items, _, err := readAt[T](buffer, offset)
	return items, err
}

// FromBytes reconstructs a mutable Set from a previously serialized buffer,
// reversing Bytes. The buffer contents are copied; subsequent insertions of
// already-present slices return their original offsets.
func FromBytes[T pod.Pod](buffer []byte) (*Set[T], error) {
	s := New[T]()
	s.buf = append(s.buf, buffer...)

	offset := 0
	for offset < len(s.buf) {
		items, next, err := readAt[T](s.buf, offset)
		if err != nil {
			return nil, err
		}
		sum := hash.Sum(pod.SliceAsBytes(items))
		s.buckets[sum] = append(s.buckets[sum], offset)
		offset = next
	}

	return s, nil
}

func readAt[T pod.Pod](buffer []byte, offset int) ([]T, int, error) {
	if offset < 0 || offset > len(buffer) {
		return nil, 0, fmt.Errorf("%w: offset %d, buffer holds %d bytes", errs.ErrOutOfBounds, offset, len(buffer))
	}

	count, n, err := encoding.Uvarint(buffer[offset:])
	if err != nil {
		return nil, 0, err
	}

	start := offset + n
	size := uint64(pod.SizeOf[T]())
	// Bound count before multiplying so the extent cannot wrap.
	if count > uint64(len(buffer))/size {
		return nil, 0, fmt.Errorf("%w: entry at %d declares %d elements, buffer holds %d bytes", errs.ErrOutOfBounds, offset, count, len(buffer))
	}
	end := uint64(start) + count*size
	if end > uint64(len(buffer)) {
		return nil, 0, fmt.Errorf("%w: entry at %d ends at %d, buffer holds %d bytes", errs.ErrOutOfBounds, offset, end, len(buffer))
	}

	items, _, err := pod.SliceFromPrefix[T](buffer[start:], int(count))
	if err != nil {
		return nil, 0, err
	}

	return items, int(end), nil
}
