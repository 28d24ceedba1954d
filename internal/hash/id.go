// Package hash provides the content hash used by the deduplication index.
//
// xxHash64 is a fast filter, not a guarantee: equal hashes require a full
// byte comparison before two contents are treated as identical.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of the given bytes.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
