package base91

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodedSizeUpperBound(t *testing.T) {
	tests := []struct {
		srcLen   int
		expected int
	}{
		{srcLen: -1, expected: 0},
		{srcLen: 0, expected: 0},
		{srcLen: 1, expected: 2},   // 8 bits: one partial block
		{srcLen: 2, expected: 4},   // 16 bits: 1 block + 3 bits
		{srcLen: 13, expected: 16}, // 104 bits: exactly 8 blocks
		{srcLen: 14, expected: 18}, // 112 bits: 8 blocks + 8 bits
		{srcLen: 100, expected: 124},
		{srcLen: 1024, expected: 1262},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, EncodedSizeUpperBound(tt.srcLen), "srcLen=%d", tt.srcLen)
	}
}

func TestDecodedSizeUpperBound(t *testing.T) {
	tests := []struct {
		encodedLen int
		expected   int
	}{
		{encodedLen: -3, expected: 0},
		{encodedLen: 0, expected: 0},
		{encodedLen: 1, expected: 1},   // 7 bits
		{encodedLen: 2, expected: 2},   // 14 bits
		{encodedLen: 3, expected: 3},   // 21 bits
		{encodedLen: 4, expected: 4},   // 28 bits
		{encodedLen: 16, expected: 14}, // 112 bits
		{encodedLen: 17, expected: 15}, // 119 bits
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, DecodedSizeUpperBound(tt.encodedLen), "encodedLen=%d", tt.encodedLen)
	}
}

func TestSizeUpperBounds_LargeLengthsDoNotOverflow(t *testing.T) {
	// srcLen*8 would already wrap around here.
	srcLen := math.MaxInt/8 + 1
	size := EncodedSizeUpperBound(srcLen)
	require.Greater(t, size, srcLen)
	require.Equal(t, EncodedSizeUpperBound(srcLen-13)+16, size)

	require.Equal(t, math.MaxInt, EncodedSizeUpperBound(math.MaxInt))

	for _, encodedLen := range []int{math.MaxInt / 14 * 2, math.MaxInt - 1, math.MaxInt} {
		decoded := DecodedSizeUpperBound(encodedLen)
		require.Positive(t, decoded, "encodedLen=%d", encodedLen)
		require.Less(t, decoded, encodedLen, "encodedLen=%d", encodedLen)
		require.Equal(t, DecodedSizeUpperBound(encodedLen-8)+7, decoded, "encodedLen=%d", encodedLen)
	}
}

func TestSizeUpperBounds_HoldForRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for srcLen := 0; srcLen <= 600; srcLen++ {
		src := make([]byte, srcLen)
		rng.Read(src)

		encoded := StdCodec.EncodeToString(src)
		require.LessOrEqual(t, len(encoded), EncodedSizeUpperBound(srcLen), "srcLen=%d", srcLen)
		require.LessOrEqual(t, srcLen, DecodedSizeUpperBound(len(encoded)), "srcLen=%d", srcLen)
	}
}

func TestSizeUpperBounds_HoldForWideBlocks(t *testing.T) {
	// All-zero input always takes the 14-bit path, producing the shortest encodings.
	for srcLen := 0; srcLen <= 300; srcLen++ {
		src := make([]byte, srcLen)

		encoded := StdCodec.EncodeToString(src)
		require.LessOrEqual(t, len(encoded), EncodedSizeUpperBound(srcLen))
		require.LessOrEqual(t, srcLen, DecodedSizeUpperBound(len(encoded)))
	}
}
