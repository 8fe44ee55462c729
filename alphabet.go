package base91

import (
	"fmt"

	"github.com/arloliu/base91/errs"
)

// AlphabetSize is the number of symbols in a Base91 alphabet.
const AlphabetSize = 91

// maxSymbol is the largest byte value allowed in an alphabet (7-bit ASCII).
const maxSymbol = 0x7F

const (
	// StandardAlphabet is the published basE91 alphabet.
	StandardAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"!#$%&()*+,./:;<=>?@[]^_`{|}~\""

	// FilesystemAlphabet is StandardAlphabet with '/' replaced by '-' and '"' replaced
	// by '\'', so encoded values can be used as file and path names.
	FilesystemAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789" +
		"!#$%&()*+,.-:;<=>?@[]^_`{|}~'"
)

// symbolValue is one inverse map entry. ok is false for bytes outside the alphabet.
type symbolValue struct {
	value uint8
	ok    bool
}

// inverseMap maps every byte value to its position in the alphabet.
type inverseMap [256]symbolValue

func (m *inverseMap) lookup(b byte) (uint32, bool) {
	e := m[b]
	return uint32(e.value), e.ok
}

// ValidateAlphabet reports whether alphabet can be used to build a Codec.
//
// A valid alphabet has exactly 91 symbols, every symbol is in range 1..127, and no
// symbol appears twice.
//
// Returns:
//   - error: nil if valid, otherwise an error wrapping errs.ErrInvalidAlphabet and one of
//     errs.ErrInvalidAlphabetLength, errs.ErrInvalidSymbol or errs.ErrDuplicateSymbol
func ValidateAlphabet(alphabet string) error {
	_, err := buildInverseMap(alphabet)
	return err
}

func buildInverseMap(alphabet string) (inverseMap, error) {
	var m inverseMap

	if len(alphabet) != AlphabetSize {
		return m, fmt.Errorf("%w: %w: got %d", errs.ErrInvalidAlphabet, errs.ErrInvalidAlphabetLength, len(alphabet))
	}

	for i := 0; i < len(alphabet); i++ {
		sym := alphabet[i]
		if sym == 0 || sym > maxSymbol {
			return m, fmt.Errorf("%w: %w: 0x%02x at position %d", errs.ErrInvalidAlphabet, errs.ErrInvalidSymbol, sym, i)
		}
		if m[sym].ok {
			return m, fmt.Errorf("%w: %w: %q at positions %d and %d",
				errs.ErrInvalidAlphabet, errs.ErrDuplicateSymbol, sym, m[sym].value, i)
		}
		m[sym] = symbolValue{value: uint8(i), ok: true} //nolint:gosec
	}

	return m, nil
}
