// Package format defines enums shared between the base91 sub-packages.
package format

// CompressionType identifies the compression applied to an armored payload.
//
// The value is stored in the low nibble of the armor flags byte, so it must stay
// within 0x0-0xF.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
