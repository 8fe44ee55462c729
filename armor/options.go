package armor

import (
	"fmt"

	"github.com/arloliu/base91"
	"github.com/arloliu/base91/errs"
	"github.com/arloliu/base91/format"
	"github.com/arloliu/base91/internal/options"
)

// Option configures an Armor.
type Option = options.Option[*Armor]

func applyOptions(a *Armor, opts ...Option) error {
	return options.Apply(a, opts...)
}

// WithCodec sets the Base91 codec, and therefore the alphabet, of the text form.
//
// Text encoded with one alphabet can only be decoded by an Armor using the same one.
func WithCodec(codec *base91.Codec) Option {
	return options.New(func(a *Armor) error {
		if codec == nil {
			return errs.ErrNilCodec
		}
		a.codec = codec

		return nil
	})
}

// WithCompression sets the compression applied by Encode.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(a *Armor) error {
		if !compression.IsValid() {
			return fmt.Errorf("%w: 0x%x", errs.ErrUnsupportedCompression, uint8(compression))
		}
		a.compression = compression

		return nil
	})
}

// WithChecksum enables or disables the xxHash64 payload checksum written by Encode.
//
// Decode always verifies a checksum when the frame carries one.
func WithChecksum(enabled bool) Option {
	return options.NoError(func(a *Armor) {
		a.checksum = enabled
	})
}

// WithMaxPayloadSize limits the size of payloads accepted by Encode and produced by
// Decode. Zero means unlimited.
func WithMaxPayloadSize(size int) Option {
	return options.New(func(a *Armor) error {
		if size < 0 {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMaxPayloadSize, size)
		}
		a.maxPayloadSize = size

		return nil
	})
}
