package base91

import (
	"fmt"

	"github.com/arloliu/base91/errs"
)

// Block width thresholds of the basE91 scheme. A 13-bit block whose value is at most
// smallBlockMax is widened to 14 bits, and the decoder applies the same test to the
// reconstructed value.
const (
	mask13        = 0x1FFF
	mask14        = 0x3FFF
	smallBlockMax = 88
)

// Codec encodes and decodes Base91 with a fixed alphabet.
//
// A Codec must be created with NewCodec or MustNewCodec. It is immutable and safe for
// concurrent use.
type Codec struct {
	alphabet [AlphabetSize]byte
	inverse  inverseMap
}

// NewCodec creates a Codec for the given alphabet.
//
// The alphabet is validated once here; see ValidateAlphabet for the rules.
//
// Parameters:
//   - alphabet: 91 distinct symbols in range 1..127, symbol i encodes value i
//
// Returns:
//   - *Codec: Ready-to-use codec
//   - error: Error wrapping errs.ErrInvalidAlphabet if the alphabet is invalid
func NewCodec(alphabet string) (*Codec, error) {
	inverse, err := buildInverseMap(alphabet)
	if err != nil {
		return nil, err
	}

	c := &Codec{inverse: inverse}
	copy(c.alphabet[:], alphabet)

	return c, nil
}

// MustNewCodec is like NewCodec but panics if the alphabet is invalid.
//
// It is intended for package-level codec variables built from constant alphabets.
func MustNewCodec(alphabet string) *Codec {
	c, err := NewCodec(alphabet)
	if err != nil {
		panic(err)
	}

	return c
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() string {
	return string(c.alphabet[:])
}

// Encode encodes src into dst and returns the written prefix of dst.
//
// Encode never allocates. A dst of EncodedSizeUpperBound(len(src)) bytes is always
// large enough.
//
// Parameters:
//   - dst: Destination buffer, its length is the available space
//   - src: Bytes to encode
//
// Returns:
//   - []byte: Sub-slice dst[:n] holding the encoded symbols
//   - error: errs.ErrNoSpaceLeft if dst is too small, in which case the slice is nil
func (c *Codec) Encode(dst, src []byte) ([]byte, error) {
	var (
		acc     uint32
		numBits uint
		n       int
	)

	for _, x := range src {
		acc |= uint32(x) << numBits
		numBits += 8

		for numBits > 13 {
			v := acc & mask13
			if v > smallBlockMax {
				acc >>= 13
				numBits -= 13
			} else {
				v = acc & mask14
				acc >>= 14
				numBits -= 14
			}

			if len(dst)-n < 2 {
				return nil, errNoSpaceLeft(len(dst))
			}
			dst[n] = c.alphabet[v%AlphabetSize]
			dst[n+1] = c.alphabet[v/AlphabetSize]
			n += 2
		}
	}

	if numBits > 0 {
		if n >= len(dst) {
			return nil, errNoSpaceLeft(len(dst))
		}
		dst[n] = c.alphabet[acc%AlphabetSize]
		n++

		if numBits > 7 || acc > AlphabetSize-1 {
			if n >= len(dst) {
				return nil, errNoSpaceLeft(len(dst))
			}
			dst[n] = c.alphabet[acc/AlphabetSize]
			n++
		}
	}

	return dst[:n], nil
}

// Decode decodes the Base91 symbols in src into dst and returns the written prefix of dst.
//
// Decode never allocates on success. A dst of DecodedSizeUpperBound(len(src)) bytes is
// always large enough. Every symbol is checked against the alphabet before any output is
// produced for it, and the trailing bits must form a valid final block.
//
// Parameters:
//   - dst: Destination buffer, its length is the available space
//   - src: Encoded symbols
//
// Returns:
//   - []byte: Sub-slice dst[:n] holding the decoded bytes
//   - error: errs.ErrInvalidCharacter, errs.ErrInvalidPadding or errs.ErrNoSpaceLeft;
//     the slice is nil on error
func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	var (
		b          uint32
		numBits    uint
		pending    uint32
		hasPending bool
		n          int
	)

	for i, x := range src {
		v, ok := c.inverse.lookup(x)
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidCharacter, x, i)
		}

		if !hasPending {
			pending = v
			hasPending = true

			continue
		}

		a := pending + v*AlphabetSize
		b |= a << numBits
		if a&mask13 > smallBlockMax {
			numBits += 13
		} else {
			numBits += 14
		}

		for numBits > 7 {
			if n >= len(dst) {
				return nil, errNoSpaceLeft(len(dst))
			}
			dst[n] = byte(b)
			n++
			b >>= 8
			numBits -= 8
		}
		hasPending = false
	}

	if hasPending {
		last := b | pending<<numBits
		if last > 0xFF {
			return nil, fmt.Errorf("%w: trailing symbol carries 0x%x", errs.ErrInvalidPadding, last)
		}
		if n >= len(dst) {
			return nil, errNoSpaceLeft(len(dst))
		}
		dst[n] = byte(last)
		n++
	} else if b != 0 {
		return nil, fmt.Errorf("%w: %d leftover bits are not zero", errs.ErrInvalidPadding, numBits)
	}

	return dst[:n], nil
}

// EncodeToString returns the Base91 encoding of src.
func (c *Codec) EncodeToString(src []byte) string {
	return string(c.AppendEncode(nil, src))
}

// DecodeString returns the bytes represented by the Base91 string s.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	return c.AppendDecode(nil, []byte(s))
}

// AppendEncode appends the Base91 encoding of src to dst and returns the extended buffer.
func (c *Codec) AppendEncode(dst, src []byte) []byte {
	start := len(dst)
	dst = grow(dst, EncodedSizeUpperBound(len(src)))

	// The buffer is sized by the upper bound, so Encode cannot run out of space.
	encoded, _ := c.Encode(dst[start:cap(dst)], src)

	return dst[:start+len(encoded)]
}

// AppendDecode appends the bytes decoded from src to dst and returns the extended buffer.
//
// On error the original dst is returned unchanged along with the error.
func (c *Codec) AppendDecode(dst, src []byte) ([]byte, error) {
	start := len(dst)
	buf := grow(dst, DecodedSizeUpperBound(len(src)))

	decoded, err := c.Decode(buf[start:cap(buf)], src)
	if err != nil {
		return dst, err
	}

	return buf[:start+len(decoded)], nil
}

// grow ensures dst has capacity for n more bytes beyond its length.
func grow(dst []byte, n int) []byte {
	if cap(dst)-len(dst) >= n {
		return dst
	}

	buf := make([]byte, len(dst), len(dst)+n)
	copy(buf, dst)

	return buf
}

func errNoSpaceLeft(size int) error {
	return fmt.Errorf("%w: destination holds %d bytes", errs.ErrNoSpaceLeft, size)
}
