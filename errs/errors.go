// Package errs defines the sentinel errors returned by base91 and its sub-packages.
//
// Errors are wrapped with additional context using fmt.Errorf("%w"), so callers
// should match them with errors.Is rather than by equality.
package errs

import "errors"

// Alphabet configuration errors. They are only returned while constructing a codec.
var (
	ErrInvalidAlphabet       = errors.New("base91: invalid alphabet")
	ErrInvalidAlphabetLength = errors.New("base91: alphabet must contain exactly 91 symbols")
	ErrInvalidSymbol         = errors.New("base91: alphabet symbol must be in range 1..127")
	ErrDuplicateSymbol       = errors.New("base91: duplicate alphabet symbol")
)

// Codec errors.
var (
	ErrInvalidCharacter = errors.New("base91: invalid character")
	ErrInvalidPadding   = errors.New("base91: invalid padding")
	ErrNoSpaceLeft      = errors.New("base91: no space left in destination buffer")
)

// Armor errors.
var (
	ErrNilCodec               = errors.New("armor: codec must not be nil")
	ErrInvalidArmorHeader     = errors.New("armor: invalid frame header")
	ErrUnsupportedCompression = errors.New("armor: unsupported compression type")
	ErrChecksumMismatch       = errors.New("armor: checksum mismatch")
	ErrPayloadTooLarge        = errors.New("armor: payload exceeds maximum size")
	ErrInvalidMaxPayloadSize  = errors.New("armor: maximum payload size must not be negative")
)
