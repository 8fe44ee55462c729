package compress

import (
	"fmt"

	"github.com/arloliu/base91/errs"
	"github.com/arloliu/base91/format"
)

// Compressor compresses a complete payload before it is armored as Base91 text.
type Compressor interface {
	// Compress compresses data and returns the result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (the NoOp codec returns data itself)
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// Implementations must be safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses data and returns the original payload.
	//
	// Returns an error if the input is corrupted or was produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)

	// DecompressLimit is like Decompress but fails with errs.ErrPayloadTooLarge as soon as
	// the output would exceed limit bytes, without materializing the whole payload.
	// A limit <= 0 means no limit.
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec creates a Codec for the specified compression type.
//
// armor.New uses it to resolve the configured compression once, so an unknown type is
// rejected at construction rather than on the first Encode.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//
// Returns:
//   - Codec: Codec instance for the specified type
//   - error: Error wrapping errs.ErrUnsupportedCompression for unknown types
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedCompression, uint8(compressionType))
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// errPayloadTooLarge reports output that would exceed the decompression limit.
func errPayloadTooLarge(limit int) error {
	return fmt.Errorf("%w: decompressed size exceeds %d bytes", errs.ErrPayloadTooLarge, limit)
}

// GetCodec retrieves the shared built-in Codec for the specified compression type.
//
// Built-in codecs are stateless values and safe for concurrent use.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedCompression, uint8(compressionType))
}
