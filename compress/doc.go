// Package compress provides the compression codecs used by armored Base91 payloads.
//
// Base91 text is about 23% larger than its input, so compressible payloads (JSON,
// logs, configuration) benefit from being compressed before they are encoded. The
// armor package records the algorithm in its frame header and uses this package on
// both sides.
//
// Supported algorithms:
//   - None: payload is passed through unchanged
//   - Zstd: best ratio, moderate speed (pure Go by default, cgo with the gozstd build tag)
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(payload)
//	original, err := codec.Decompress(compressed)
//
// Decoders of untrusted input should bound the output size:
//
//	original, err := codec.DecompressLimit(compressed, 1<<20)
//	if errors.Is(err, errs.ErrPayloadTooLarge) {
//	    // rejected before the full payload was allocated
//	}
//
// # Build Tags
//
// Building with -tags gozstd (and cgo enabled) switches the Zstd codec to
// github.com/valyala/gozstd. The default is github.com/klauspost/compress/zstd.
// Both produce standard Zstandard frames and can decode each other's output.
package compress
