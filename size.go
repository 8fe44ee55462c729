package base91

import "math"

// EncodedSizeUpperBound returns the largest number of symbols Encode can produce for
// srcLen input bytes.
//
// The input is treated as a stream of srcLen*8 bits consumed in blocks of at least 13
// bits, each block producing two symbols. A trailing partial block also produces at most
// two symbols. The actual encoded length may be shorter.
//
// The bit count is never materialized, so the result does not overflow; bounds beyond
// math.MaxInt are clamped to math.MaxInt.
//
// Parameters:
//   - srcLen: Number of input bytes (negative values are treated as zero)
//
// Returns:
//   - int: Minimum destination buffer size that guarantees Encode succeeds
func EncodedSizeUpperBound(srcLen int) int {
	if srcLen <= 0 {
		return 0
	}

	// Every 13 input bytes are exactly 104 bits, i.e. 8 full blocks and 16 symbols.
	groups, rest := srcLen/13, srcLen%13
	if groups > (math.MaxInt-16)/16 {
		return math.MaxInt
	}

	restBits := rest * 8
	size := groups*16 + (restBits/13)*2
	if restBits%13 > 0 {
		size += 2
	}

	return size
}

// DecodedSizeUpperBound returns the largest number of bytes Decode can produce for
// encodedLen input symbols.
//
// Each symbol pair carries at most 14 bits and an odd trailing symbol at most 7 bits.
//
// Parameters:
//   - encodedLen: Number of encoded symbols (negative values are treated as zero)
//
// Returns:
//   - int: Minimum destination buffer size that guarantees Decode does not run out of space
func DecodedSizeUpperBound(encodedLen int) int {
	if encodedLen <= 0 {
		return 0
	}

	// Four pairs are exactly 56 bits, i.e. 7 bytes.
	pairs := encodedLen / 2
	quads, rest := pairs/4, pairs%4

	restBits := rest * 14
	if encodedLen%2 == 1 {
		restBits += 7
	}

	return quads*7 + (restBits+7)/8
}
