package compress

import (
	"errors"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4MaxDecompressedSize caps the adaptive decompression buffer.
const lz4MaxDecompressedSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances, which keep a reusable hash table.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses payloads as raw LZ4 blocks.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data into a single LZ4 block.
//
// Returns:
//   - []byte: Compressed data (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}

	// CompressBlock reports 0 for incompressible input.
	if n == 0 {
		return appendLiteralBlock(dst[:0], data), nil
	}

	return dst[:n], nil
}

// appendLiteralBlock appends an LZ4 block made of a single literal-only sequence.
func appendLiteralBlock(dst, data []byte) []byte {
	n := len(data)
	if n < 15 {
		dst = append(dst, byte(n<<4))
	} else {
		dst = append(dst, 0xF0)
		for rest := n - 15; ; rest -= 255 {
			if rest < 255 {
				dst = append(dst, byte(rest))
				break
			}
			dst = append(dst, 255)
		}
	}

	return append(dst, data...)
}

// Decompress decompresses an LZ4 block.
//
// The block format does not record the decompressed size, so the buffer starts at 4x
// the compressed size and doubles on ErrInvalidSourceShortBuffer up to 128MiB.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: lz4.ErrInvalidSourceShortBuffer if the limit was exceeded, or other decompression errors
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit decompresses an LZ4 block like Decompress, but never grows the output
// buffer beyond limit.
func (c LZ4Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	maxSize := lz4MaxDecompressedSize
	if limit > 0 && limit < maxSize {
		maxSize = limit
	}

	bufSize := min(len(data)*4, maxSize)
	for {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, err
		}

		if bufSize >= maxSize {
			if limit > 0 && maxSize == limit {
				return nil, errPayloadTooLarge(limit)
			}

			return nil, err
		}
		bufSize = min(bufSize*2, maxSize)
	}
}
