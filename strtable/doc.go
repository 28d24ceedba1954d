// Package strtable provides a deduplicating string table with a zero-copy
// read path.
//
// A Builder interns arbitrary byte strings exactly once into a contiguous
// blob, assigning each distinct content a stable byte offset. Finalize writes
// the table through an alignment-tracking writer as a compact binary form:
//
//	[ entry count : uint32 ]
//	[ count × (offset varint, length varint) ]   index section
//	[ zero padding to an 8-byte boundary ]
//	[ blob : string contents, in offset order ]
//
// A Table opens that serialized form directly: the index varints are
// materialized into fixed-layout entries, the blob is borrowed from the input
// buffer, and every Get returns a sub-slice of it without copying or
// re-parsing string content.
//
// # Usage
//
//	builder := strtable.NewBuilder()
//	foo, _ := builder.InternString("foo")
//	bar, _ := builder.InternString("bar")
//	builder.InternString("foo") // deduplicated, same handle as foo
//
//	var buf bytes.Buffer
//	_ = builder.Finalize(writer.New(&buf))
//
//	table, _ := strtable.FromBytes(buf.Bytes())
//	table.Get(int(foo.Index)) // []byte("foo"), borrowed from buf
//	table.Get(int(bar.Index)) // []byte("bar")
//
// # Concurrency
//
// Builders are single-owner: concurrent Intern calls must be externally
// serialized. Tables are immutable after FromBytes and safe for any number of
// concurrent readers, as long as the underlying buffer stays alive and
// unmodified.
package strtable
