//go:build gozstd && cgo

package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/valyala/gozstd"
)

// zstdLevel matches the default level of the pure Go implementation.
const zstdLevel = 3

// Compress encodes data as a single Zstandard frame through libzstd.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.CompressLevel(nil, data, zstdLevel), nil
}

// Decompress decodes a Zstandard frame produced by Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decompressed, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return decompressed, nil
}

// DecompressLimit streams the frame and stops reading one byte past limit.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if limit <= 0 {
		return c.Decompress(data)
	}
	if len(data) == 0 {
		return nil, nil
	}

	zr := gozstd.NewReader(bytes.NewReader(data))
	defer zr.Release()

	decompressed, err := io.ReadAll(io.LimitReader(zr, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	if len(decompressed) > limit {
		return nil, errPayloadTooLarge(limit)
	}

	return decompressed, nil
}
