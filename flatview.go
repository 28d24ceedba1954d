// Package flatview provides primitives for treating contiguous byte buffers
// as typed, fixed-layout data without copying, plus a deduplicating string
// table that serializes into such a buffer with stable offset-based
// addressing.
//
// # Core Features
//
//   - Size- and alignment-checked zero-copy casts between bytes and
//     fixed-layout values or slices (pod package)
//   - Alignment-tracking sequential writer for building binary sections
//     (writer package)
//   - Exactly-once string interning with xxHash64 deduplication, compact
//     varint index, and O(1) zero-copy lookups over the serialized form
//     (strtable package)
//   - Offset-addressed deduplicating slice sets (offsetset package)
//   - Optional whole-buffer compression codecs (compress package)
//
// # Basic Usage
//
// Building and serializing a string table:
//
//	import "github.com/arloliu/flatview"
//
//	builder := flatview.NewStringTable()
//	foo, _ := builder.InternString("foo")
//	bar, _ := builder.InternString("bar")
//	builder.InternString("foo") // deduplicated, no blob growth
//
//	var buf bytes.Buffer
//	_ = builder.Finalize(writer.New(&buf))
//
// Opening the serialized form with zero-copy lookups:
//
//	table, _ := flatview.OpenStringTable(buf.Bytes())
//	content, _ := table.Get(int(foo.Index)) // []byte("foo"), borrowed
//	name, _ := table.GetString(int(bar.Index))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the strtable
// package, simplifying the most common use cases. For fine-grained control
// over casting, alignment and serialization, use the pod, writer, strtable
// and offsetset packages directly.
package flatview

import (
	"github.com/arloliu/flatview/internal/hash"
	"github.com/arloliu/flatview/strtable"
)

// NewStringTable creates an empty string table builder.
func NewStringTable() *strtable.Builder {
	return strtable.NewBuilder()
}

// OpenStringTable opens a serialized string table over data without copying
// string content. See strtable.FromBytes for the validation and borrowing
// rules.
func OpenStringTable(data []byte) (strtable.Table, error) {
	return strtable.FromBytes(data)
}

// Hash computes the xxHash64 content hash used by the deduplication index.
// Exposed for callers that shard interning across multiple builders.
func Hash(data []byte) uint64 {
	return hash.Sum(data)
}

// HashString is the string variant of Hash. It does not copy s.
func HashString(s string) uint64 {
	return hash.ID(s)
}
