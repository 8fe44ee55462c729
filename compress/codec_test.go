package compress

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/base91/errs"
	"github.com/arloliu/base91/format"
)

var allCompressionTypes = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

// generateTestData creates payloads with different compressibility.
func generateTestData(size int, kind string) []byte {
	data := make([]byte, size)

	switch kind {
	case "zeros":
		// already zeroed
	case "text":
		pattern := []byte(`{"id":12345,"name":"sensor-a","value":3.14159,"ok":true}`)
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		rng := rand.New(rand.NewSource(int64(size)))
		rng.Read(data)
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	for _, cType := range allCompressionTypes {
		t.Run(cType.String(), func(t *testing.T) {
			codec, err := CreateCodec(cType)
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}

	codec, err := CreateCodec(format.CompressionType(0x9))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
	require.Nil(t, codec)
}

func TestGetCodec(t *testing.T) {
	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestCodec_RoundTrip(t *testing.T) {
	sizes := []int{1, 7, 64, 1024, 65536}
	kinds := []string{"zeros", "text", "random"}

	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		for _, size := range sizes {
			for _, kind := range kinds {
				t.Run(fmt.Sprintf("%s/%s/%d", cType, kind, size), func(t *testing.T) {
					data := generateTestData(size, kind)
					original := bytes.Clone(data)

					compressed, err := codec.Compress(data)
					require.NoError(t, err)
					require.Equal(t, original, data, "input must not be modified")

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, original, decompressed)
				})
			}
		}
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		decompressed, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestCodec_CompressibleDataShrinks(t *testing.T) {
	data := generateTestData(16384, "text")

	for _, cType := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data)/4, cType.String())
	}
}

func TestCodec_DecompressCorrupted(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11, 0x22, 0x33}

	for _, cType := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, cType.String())
	}
}

func TestCodec_DecompressLimit(t *testing.T) {
	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		for _, kind := range []string{"zeros", "text", "random"} {
			t.Run(fmt.Sprintf("%s/%s", cType, kind), func(t *testing.T) {
				data := generateTestData(65536, kind)
				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				decompressed, err := codec.DecompressLimit(compressed, 0)
				require.NoError(t, err)
				require.Equal(t, data, decompressed)

				decompressed, err = codec.DecompressLimit(compressed, len(data))
				require.NoError(t, err)
				require.Equal(t, data, decompressed)

				decompressed, err = codec.DecompressLimit(compressed, len(data)-1)
				require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
				require.Nil(t, decompressed)

				decompressed, err = codec.DecompressLimit(compressed, 100)
				require.ErrorIs(t, err, errs.ErrPayloadTooLarge)
				require.Nil(t, decompressed)
			})
		}
	}
}

func TestCodec_DecompressLimitEmptyInput(t *testing.T) {
	for _, cType := range allCompressionTypes {
		codec, err := GetCodec(cType)
		require.NoError(t, err)

		decompressed, err := codec.DecompressLimit(nil, 16)
		require.NoError(t, err, cType.String())
		require.Empty(t, decompressed)
	}
}

func TestNoOpCompressor_SharesMemory(t *testing.T) {
	data := []byte("payload")
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(data)
	require.NoError(t, err)
	require.Same(t, &data[0], &compressed[0])

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Same(t, &data[0], &decompressed[0])
}

func TestLZ4Compressor_IncompressibleInput(t *testing.T) {
	codec := NewLZ4Compressor()

	for _, size := range []int{1, 14, 15, 16, 270, 271, 4096} {
		data := generateTestData(size, "random")

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.NotEmpty(t, compressed)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, data, decompressed, "size=%d", size)
	}
}

func TestAppendLiteralBlock(t *testing.T) {
	require.Equal(t, []byte{0x30, 'a', 'b', 'c'}, appendLiteralBlock(nil, []byte("abc")))

	data := bytes.Repeat([]byte{'x'}, 15)
	block := appendLiteralBlock(nil, data)
	require.Equal(t, []byte{0xF0, 0x00}, block[:2])
	require.Len(t, block, 17)

	data = bytes.Repeat([]byte{'x'}, 15+255+3)
	block = appendLiteralBlock(nil, data)
	require.Equal(t, []byte{0xF0, 0xFF, 0x03}, block[:3])
	require.Len(t, block, 3+len(data))
}
