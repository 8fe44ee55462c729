// Package hash provides the checksum used by armored Base91 frames.
package hash

import "github.com/cespare/xxhash/v2"

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Verify reports whether data hashes to expected.
func Verify(data []byte, expected uint64) bool {
	return xxhash.Sum64(data) == expected
}
