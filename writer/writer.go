// Package writer provides sequential, alignment-aware construction of byte
// buffers.
//
// Writer wraps any io.Writer sink and tracks the logical byte position of the
// output. Callers record section offsets with Position and insert zero-valued
// padding with AlignTo so that later sections start on the boundaries their
// typed views require:
//
//	var buf bytes.Buffer
//	w := writer.New(&buf)
//	_, _ = w.Write(header)
//	_ = w.AlignTo(8)
//	blobStart := w.Position()
//	_, _ = w.Write(blob)
//
// Writer is not safe for concurrent use.
package writer

import (
	"io"

	"github.com/arloliu/flatview/pod"
)

// padding is the zero-valued chunk used by AlignTo. Alignments above its
// length are written in multiple chunks.
var padding [16]byte

// Writer wraps an io.Writer sink and tracks the number of bytes written,
// including padding.
type Writer struct {
	inner io.Writer
	pos   int
}

// New creates a Writer wrapping the given sink. The logical position starts
// at zero; if the sink already holds bytes, the position is relative to the
// buffer being built, not the sink's total size.
func New(w io.Writer) *Writer {
	return &Writer{inner: w}
}

// Write appends p to the underlying sink and advances the logical position by
// the number of bytes actually written. It implements io.Writer; errors are
// propagated from the sink untouched.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.inner.Write(p)
	w.pos += n

	return n, err
}

// AlignTo writes the minimal number of zero bytes needed so that the next
// Write starts at a position that is a multiple of align. An alignment of 0
// or 1 is a no-op. Returns the number of padding bytes written.
func (w *Writer) AlignTo(align int) (int, error) {
	if align <= 1 {
		return 0, nil
	}

	pad := (align - w.pos%align) % align
	total := 0
	for pad > 0 {
		chunk := min(pad, len(padding))
		n, err := w.Write(padding[:chunk])
		total += n
		if err != nil {
			return total, err
		}
		pad -= chunk
	}

	return total, nil
}

// Position returns the current logical byte offset from the start of the
// buffer being built. It always equals the total bytes written so far,
// including padding.
func (w *Writer) Position() int {
	return w.pos
}

// Inner returns the underlying sink. The Writer should not be used after the
// caller takes over the sink.
func (w *Writer) Inner() io.Writer {
	return w.inner
}

// AlignToType aligns w to the alignment requirement of T.
func AlignToType[T pod.Pod](w *Writer) (int, error) {
	return w.AlignTo(pod.AlignOf[T]())
}
