// Package armor wraps arbitrary payloads in self-describing Base91 text.
//
// An armored value is a small binary frame encoded with a base91.Codec:
//
//	+-------+-------+----------------------+-------------------+
//	| magic | flags | checksum (optional)  | payload           |
//	| 0x91  | 1 B   | xxHash64, 8 B, LE    | compressed or raw |
//	+-------+-------+----------------------+-------------------+
//
// The low nibble of flags holds the format.CompressionType of the payload and bit 4
// marks the presence of the checksum. The checksum covers the original, uncompressed
// payload, so it also catches decompression faults.
//
// # Usage
//
//	a, err := armor.New(
//	    armor.WithCompression(format.CompressionZstd),
//	    armor.WithCodec(base91.FilesystemCodec),
//	)
//	if err != nil {
//	    return err
//	}
//
//	text, err := a.EncodeToString(payload)
//	...
//	payload, err = a.DecodeString(text)
//
// Decoding reads the compression type from the frame, so any Armor configured with the
// same alphabet can decode the text regardless of its own compression setting.
//
// Armor values are immutable after New and safe for concurrent use.
package armor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/arloliu/base91"
	"github.com/arloliu/base91/compress"
	"github.com/arloliu/base91/endian"
	"github.com/arloliu/base91/errs"
	"github.com/arloliu/base91/format"
	"github.com/arloliu/base91/internal/hash"
	"github.com/arloliu/base91/internal/pool"
)

// Frame layout constants.
const (
	frameMagic        = 0x91
	headerSize        = 2
	checksumSize      = 8
	compressionMask   = 0x0F
	checksumFlag      = 0x10
	reservedFlagsMask = 0xE0
)

// Armor encodes payloads into Base91 frames and decodes them back.
type Armor struct {
	codec          *base91.Codec
	compression    format.CompressionType
	compressor     compress.Codec
	checksum       bool
	maxPayloadSize int
	engine         endian.EndianEngine
}

// New creates an Armor.
//
// Defaults: base91.StdCodec, no compression, checksum enabled, no payload size limit.
//
// Parameters:
//   - opts: Optional configuration (WithCodec, WithCompression, WithChecksum, WithMaxPayloadSize)
//
// Returns:
//   - *Armor: Configured armor
//   - error: Invalid option error
func New(opts ...Option) (*Armor, error) {
	a := &Armor{
		codec:       base91.StdCodec,
		compression: format.CompressionNone,
		checksum:    true,
		engine:      endian.GetLittleEndianEngine(),
	}

	if err := applyOptions(a, opts...); err != nil {
		return nil, err
	}

	compressor, err := compress.CreateCodec(a.compression)
	if err != nil {
		return nil, err
	}
	a.compressor = compressor

	return a, nil
}

// Codec returns the Base91 codec used for the text representation.
func (a *Armor) Codec() *base91.Codec {
	return a.codec
}

// Compression returns the compression applied by Encode.
func (a *Armor) Compression() format.CompressionType {
	return a.compression
}

// Encode armors src and returns the Base91 text.
//
// If compression does not make the payload smaller, the payload is stored
// uncompressed and the frame records format.CompressionNone.
//
// Returns:
//   - []byte: Base91 text, newly allocated
//   - error: errs.ErrPayloadTooLarge if src exceeds the configured limit, or a compression error
func (a *Armor) Encode(src []byte) ([]byte, error) {
	if a.maxPayloadSize > 0 && len(src) > a.maxPayloadSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", errs.ErrPayloadTooLarge, len(src), a.maxPayloadSize)
	}

	compression := format.CompressionNone
	payload := src
	if a.compression != format.CompressionNone && len(src) > 0 {
		compressed, err := a.compressor.Compress(src)
		if err != nil {
			return nil, fmt.Errorf("armor: %s compression failed: %w", a.compression, err)
		}
		if len(compressed) < len(src) {
			compression = a.compression
			payload = compressed
		}
	}

	flags := byte(compression) & compressionMask
	if a.checksum {
		flags |= checksumFlag
	}

	frame := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(frame)

	frame.Grow(headerSize + checksumSize + len(payload))
	frame.B = append(frame.B, frameMagic, flags)
	if a.checksum {
		frame.B = a.engine.AppendUint64(frame.B, hash.Sum64(src))
	}
	frame.MustWrite(payload)

	// The text is returned to the caller, so it is not taken from the pool.
	dst := make([]byte, base91.EncodedSizeUpperBound(frame.Len()))
	text, err := a.codec.Encode(dst, frame.Bytes())
	if err != nil {
		return nil, err
	}

	return text, nil
}

// EncodeToString armors src and returns the Base91 text as a string.
func (a *Armor) EncodeToString(src []byte) (string, error) {
	text, err := a.Encode(src)
	if err != nil {
		return "", err
	}

	return string(text), nil
}

// Decode restores the payload from Base91 text produced by Encode.
//
// Returns:
//   - []byte: Original payload, newly allocated
//   - error: Base91 decoding errors (errs.ErrInvalidCharacter, errs.ErrInvalidPadding),
//     errs.ErrInvalidArmorHeader, errs.ErrUnsupportedCompression, decompression errors,
//     errs.ErrPayloadTooLarge or errs.ErrChecksumMismatch
func (a *Armor) Decode(text []byte) ([]byte, error) {
	frame := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(frame)

	frame.ExtendOrGrow(base91.DecodedSizeUpperBound(len(text)))
	raw, err := a.codec.Decode(frame.B, text)
	if err != nil {
		return nil, err
	}

	if len(raw) < headerSize || raw[0] != frameMagic {
		return nil, fmt.Errorf("%w: missing magic byte", errs.ErrInvalidArmorHeader)
	}

	flags := raw[1]
	if flags&reservedFlagsMask != 0 {
		return nil, fmt.Errorf("%w: reserved flags 0x%02x", errs.ErrInvalidArmorHeader, flags)
	}

	compression := format.CompressionType(flags & compressionMask)
	decompressor, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}

	body := raw[headerSize:]
	hasChecksum := flags&checksumFlag != 0

	var sum uint64
	if hasChecksum {
		if len(body) < checksumSize {
			return nil, fmt.Errorf("%w: truncated checksum", errs.ErrInvalidArmorHeader)
		}
		sum = a.engine.Uint64(body)
		body = body[checksumSize:]
	}

	// The limit is enforced while decompressing, so a small frame cannot expand into a
	// large allocation before it is rejected.
	payload, err := decompressor.DecompressLimit(body, a.maxPayloadSize)
	if err != nil {
		if errors.Is(err, errs.ErrPayloadTooLarge) {
			return nil, err
		}

		return nil, fmt.Errorf("armor: %s decompression failed: %w", compression, err)
	}

	if hasChecksum && !hash.Verify(payload, sum) {
		return nil, fmt.Errorf("%w: expected %016x", errs.ErrChecksumMismatch, sum)
	}

	// An uncompressed payload still points into the pooled frame buffer.
	if compression == format.CompressionNone {
		payload = slices.Clone(payload)
	}

	return payload, nil
}

// DecodeString restores the payload from Base91 text produced by EncodeToString.
func (a *Armor) DecodeString(text string) ([]byte, error) {
	return a.Decode([]byte(text))
}
