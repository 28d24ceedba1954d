// Package errs defines the sentinel errors returned by flatview.
//
// All errors are recoverable and surfaced to the immediate caller; nothing in
// flatview retries internally or terminates the process. Call sites wrap these
// sentinels with fmt.Errorf("%w: ...") to add context, so callers can match
// them with errors.Is.
package errs

import "errors"

var (
	// ErrSizeMismatch indicates the buffer is too short for the requested typed
	// view, or its length is not an exact multiple of the element size.
	ErrSizeMismatch = errors.New("buffer size does not match typed view")

	// ErrAlignmentMismatch indicates the buffer's start address does not
	// satisfy the target type's alignment requirement.
	ErrAlignmentMismatch = errors.New("buffer is not aligned for typed view")

	// ErrInsufficientBytes indicates the buffer is shorter than the padding
	// needed to reach the requested alignment.
	ErrInsufficientBytes = errors.New("insufficient bytes to reach alignment")

	// ErrAlreadyFinalized indicates a mutating operation was invoked on a
	// string table builder after Finalize.
	ErrAlreadyFinalized = errors.New("string table already finalized")

	// ErrCorruptIndex indicates a serialized index section is inconsistent
	// with its declared entry count (truncated varints, short index bytes).
	ErrCorruptIndex = errors.New("corrupt string table index")

	// ErrOutOfBounds indicates a deserialized offset/length pair points
	// outside the blob actually supplied.
	ErrOutOfBounds = errors.New("index entry out of blob bounds")

	// ErrIndexOutOfRange indicates Get was called with an index beyond the
	// table's entry count.
	ErrIndexOutOfRange = errors.New("entry index out of range")

	// ErrTruncatedVarint indicates a varint field ended before its terminating
	// byte.
	ErrTruncatedVarint = errors.New("truncated varint")

	// ErrEntryCountExceeded indicates the builder holds more unique entries
	// than the on-disk uint32 entry count can represent.
	ErrEntryCountExceeded = errors.New("entry count exceeds maximum")

	// ErrOffsetOutOfRange indicates a blob offset or length exceeds the
	// uint32 range of the on-disk index.
	ErrOffsetOutOfRange = errors.New("blob offset out of range")
)
