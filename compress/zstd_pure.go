//go:build !(gozstd && cgo)

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdMinDecoderMemory is the smallest memory budget given to a limited decoder. Zstd
// windows are at least 1KiB, so tighter budgets would reject valid tiny frames; the exact
// limit is checked on the output instead.
const zstdMinDecoderMemory = 1 << 20

// zstdDecoderPool holds unlimited decoders used by Decompress.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		return newZstdDecoder()
	},
}

// zstdLimitedDecoderPools maps a decoder memory budget to a *sync.Pool of decoders
// created with that budget. Budgets come from armor configuration, so only a few exist.
var zstdLimitedDecoderPools sync.Map

// zstdEncoderPool holds encoders for armor payloads. Frames are written without the
// zstd content checksum since armor frames carry their own xxHash64.
var zstdEncoderPool = sync.Pool{
	New: func() any {
		encoder, err := zstd.NewWriter(nil,
			zstd.WithEncoderLevel(zstd.SpeedDefault),
			zstd.WithEncoderCRC(false),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create zstd encoder for pool: %v", err))
		}

		return encoder
	},
}

func newZstdDecoder(opts ...zstd.DOption) *zstd.Decoder {
	opts = append([]zstd.DOption{
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	}, opts...)

	decoder, err := zstd.NewReader(nil, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
	}

	return decoder
}

// zstdDecoderPoolFor returns the decoder pool for the given output limit.
func zstdDecoderPoolFor(limit int) *sync.Pool {
	if limit <= 0 {
		return &zstdDecoderPool
	}

	budget := uint64(max(limit, zstdMinDecoderMemory))
	if p, ok := zstdLimitedDecoderPools.Load(budget); ok {
		return p.(*sync.Pool)
	}

	p, _ := zstdLimitedDecoderPools.LoadOrStore(budget, &sync.Pool{
		New: func() any {
			return newZstdDecoder(zstd.WithDecoderMaxMemory(budget))
		},
	})

	return p.(*sync.Pool)
}

// Compress encodes data as a single Zstandard frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, nil), nil
}

// Decompress decodes a Zstandard frame produced by Compress.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit decodes a Zstandard frame, giving up once the output passes the
// decoder's memory budget.
func (c ZstdCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	pool := zstdDecoderPoolFor(limit)
	decoder, _ := pool.Get().(*zstd.Decoder)
	defer pool.Put(decoder)

	decompressed, err := decoder.DecodeAll(data, nil)
	if err != nil {
		if limit > 0 && (errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded)) {
			return nil, errPayloadTooLarge(limit)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	if limit > 0 && len(decompressed) > limit {
		return nil, errPayloadTooLarge(limit)
	}

	return decompressed, nil
}
