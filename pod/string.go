package pod

import "unsafe"

// String converts a byte slice to a string without copying.
//
// The returned string shares the backing array of b. The caller must ensure
// b is not modified while the string is in use, otherwise Go's string
// immutability guarantee is violated.
func String(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringBytes is the inverse of String: it returns a byte view of s without
// copying. The returned slice must not be modified.
func StringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
