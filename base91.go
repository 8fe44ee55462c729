// Package base91 implements the basE91 binary-to-text encoding.
//
// Base91 maps arbitrary bytes onto a 91-symbol ASCII alphabet. Every 13 or 14 bits of
// input are packed into two output symbols, which makes it noticeably denser than Base64
// (roughly 23% overhead instead of 33%).
//
// # Core Features
//
//   - Bit-exact compatibility with the published basE91 scheme
//   - Allocation-free Encode and Decode over caller-provided buffers
//   - Upper-bound size estimators for sizing those buffers up front
//   - Checked decoding: unknown symbols are rejected and the trailing bits must obey the
//     padding rule; non-canonical input that satisfies it, such as a lone final symbol
//     holding a whole byte, is accepted
//   - Standard and filesystem-safe alphabets, plus validated custom alphabets
//
// # Basic Usage
//
// Encoding into a caller-owned buffer:
//
//	import "github.com/arloliu/base91"
//
//	src := []byte("hello, world")
//	dst := make([]byte, base91.EncodedSizeUpperBound(len(src)))
//	encoded, err := base91.StdCodec.Encode(dst, src)
//	if err != nil {
//	    return err
//	}
//
// Decoding it again:
//
//	out := make([]byte, base91.DecodedSizeUpperBound(len(encoded)))
//	decoded, err := base91.StdCodec.Decode(out, encoded)
//	if err != nil {
//	    return err
//	}
//
// For one-off conversions the allocating helpers are simpler:
//
//	s := base91.StdCodec.EncodeToString(src)
//	b, err := base91.StdCodec.DecodeString(s)
//
// # Custom Alphabets
//
// A custom alphabet must hold exactly 91 distinct symbols in the range 1..127. It is
// validated once by NewCodec; an invalid alphabet never yields a Codec:
//
//	codec, err := base91.NewCodec(myAlphabet)
//	if err != nil {
//	    return err // errors.Is(err, errs.ErrInvalidAlphabet)
//	}
//
// Data encoded with one alphabet must be decoded with the same alphabet.
//
// # Package Structure
//
//   - base91: codec, alphabets and size estimators
//   - errs: sentinel errors
//   - armor: compressed and checksummed text frames built on top of a Codec
//   - compress: compression codecs used by armor (Zstd, S2, LZ4)
//   - format: shared enums
//   - endian: byte order helpers
//
// # Thread Safety
//
// A Codec is immutable after construction. All of its methods may be called
// concurrently from any number of goroutines.
package base91

// StdCodec encodes with StandardAlphabet.
var StdCodec = MustNewCodec(StandardAlphabet)

// FilesystemCodec encodes with FilesystemAlphabet.
var FilesystemCodec = MustNewCodec(FilesystemAlphabet)
