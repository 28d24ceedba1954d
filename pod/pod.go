// Package pod provides safe, zero-copy reinterpretation of byte buffers as
// fixed-layout ("plain old data") values and slices.
//
// Every cast validates size and alignment before reinterpreting memory, and
// never copies: the returned reference or slice borrows the backing array of
// the input buffer and must not outlive it. The prefix variants additionally
// return the unconsumed remainder, enabling sequential parsing of binary
// sections:
//
//	count, rest, err := pod.RefFromPrefix[uint32](data)
//	if err != nil {
//	    return err
//	}
//	entries, rest, err := pod.SliceFromPrefix[IndexEntry](rest, int(*count))
//
// # The Pod contract
//
// A type passed to this package must have a stable binary layout: its byte
// representation is fully defined by its declared fields, and every bit
// pattern of the correct size is a valid value. This holds for the fixed-size
// integer and float types and for structs composed of them without padding
// holes. Go's type system cannot verify representation stability structurally,
// so the Pod constraint is an explicit, documented opt-in; the package checks
// size, alignment and bounds at cast time, never content.
//
// # Thread safety
//
// All functions are pure and safe for concurrent use. The returned views are
// as safe as the buffers they borrow: concurrent readers are fine as long as
// nothing mutates the buffer while views exist.
package pod

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/flatview/errs"
)

// Pod is the constraint for fixed-layout types whose bytes may be freely
// reinterpreted. It is an explicit capability, not a structural check: only
// instantiate it with types that satisfy the contract described in the
// package documentation.
type Pod any

// SizeOf returns the size of T in bytes.
func SizeOf[T Pod]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AlignOf returns the alignment requirement of T in bytes.
func AlignOf[T Pod]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}

// RefFromBytes reinterprets buf as a single T.
//
// The buffer must be exactly SizeOf[T] bytes long and start at an address
// aligned to AlignOf[T].
//
// Returns:
//   - *T: Typed reference borrowing buf's backing array
//   - error: errs.ErrSizeMismatch or errs.ErrAlignmentMismatch
func RefFromBytes[T Pod](buf []byte) (*T, error) {
	size := SizeOf[T]()
	if len(buf) != size {
		return nil, fmt.Errorf("%w: need exactly %d bytes, have %d", errs.ErrSizeMismatch, size, len(buf))
	}
	if err := checkAlignment[T](buf); err != nil {
		return nil, err
	}

	return (*T)(unsafe.Pointer(unsafe.SliceData(buf))), nil
}

// RefFromPrefix reinterprets the first SizeOf[T] bytes of buf as a single T
// and returns the unconsumed remainder.
//
// Returns:
//   - *T: Typed reference borrowing buf's backing array
//   - []byte: Remainder after the consumed prefix
//   - error: errs.ErrSizeMismatch or errs.ErrAlignmentMismatch
func RefFromPrefix[T Pod](buf []byte) (*T, []byte, error) {
	size := SizeOf[T]()
	if len(buf) < size {
		return nil, nil, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrSizeMismatch, size, len(buf))
	}
	if err := checkAlignment[T](buf); err != nil {
		return nil, nil, err
	}

	return (*T)(unsafe.Pointer(unsafe.SliceData(buf))), buf[size:], nil
}

// SliceFromBytes reinterprets the whole of buf as a slice of T.
//
// The buffer length must be an exact multiple of SizeOf[T]; the resulting
// slice holds exactly the number of elements that fit. Panics if T is a
// zero-sized type.
//
// Returns:
//   - []T: Typed slice borrowing buf's backing array
//   - error: errs.ErrSizeMismatch or errs.ErrAlignmentMismatch
func SliceFromBytes[T Pod](buf []byte) ([]T, error) {
	size := nonZeroSize[T]()
	if len(buf)%size != 0 {
		return nil, fmt.Errorf("%w: buffer length %d is not a multiple of element size %d", errs.ErrSizeMismatch, len(buf), size)
	}
	if err := checkAlignment[T](buf); err != nil {
		return nil, err
	}

	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), len(buf)/size), nil
}

// SliceFromPrefix reinterprets the first count*SizeOf[T] bytes of buf as a
// slice of count elements and returns the unconsumed remainder. Panics if T
// is a zero-sized type.
//
// Returns:
//   - []T: Typed slice of count elements borrowing buf's backing array
//   - []byte: Remainder after the consumed prefix
//   - error: errs.ErrSizeMismatch or errs.ErrAlignmentMismatch
func SliceFromPrefix[T Pod](buf []byte, count int) ([]T, []byte, error) {
	size := nonZeroSize[T]()
	// count > len(buf)/size is equivalent to count*size > len(buf) and cannot
	// overflow.
	if count < 0 || count > len(buf)/size {
		return nil, nil, fmt.Errorf("%w: need %d elements of %d bytes, have %d bytes", errs.ErrSizeMismatch, count, size, len(buf))
	}
	if err := checkAlignment[T](buf); err != nil {
		return nil, nil, err
	}

	view := unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(buf))), count)

	return view, buf[count*size:], nil
}

// AsBytes returns the raw byte representation of v without copying.
// The returned slice borrows v's memory; it is valid as long as v is.
func AsBytes[T Pod](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), SizeOf[T]())
}

// SliceAsBytes returns the raw byte representation of s without copying.
// The returned slice borrows s's backing array; it is valid as long as s is.
func SliceAsBytes[T Pod](s []T) []byte {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*SizeOf[T]())
}

// AlignTo splits buf into the minimal leading padding needed so that the
// remainder starts at an address aligned to align, and that remainder.
// An alignment of 0 or 1 is a no-op.
//
// Returns:
//   - []byte: Skipped padding (0 to align-1 bytes)
//   - []byte: Remainder starting at an aligned address
//   - error: errs.ErrInsufficientBytes if buf is shorter than the padding
func AlignTo(buf []byte, align int) ([]byte, []byte, error) {
	if align <= 1 {
		return buf[:0], buf, nil
	}

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	pad := int((uintptr(align) - addr%uintptr(align)) % uintptr(align))
	if len(buf) < pad {
		return nil, nil, fmt.Errorf("%w: need %d padding bytes, have %d", errs.ErrInsufficientBytes, pad, len(buf))
	}

	return buf[:pad], buf[pad:], nil
}

// AlignToType is a convenience wrapper around AlignTo using AlignOf[T].
func AlignToType[T Pod](buf []byte) ([]byte, []byte, error) {
	return AlignTo(buf, AlignOf[T]())
}

func checkAlignment[T Pod](buf []byte) error {
	align := AlignOf[T]()
	if align > 1 && uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%uintptr(align) != 0 {
		return fmt.Errorf("%w: address not aligned to %d bytes", errs.ErrAlignmentMismatch, align)
	}

	return nil
}

func nonZeroSize[T Pod]() int {
	size := SizeOf[T]()
	if size == 0 {
		panic("pod: zero-sized element type")
	}

	return size
}
