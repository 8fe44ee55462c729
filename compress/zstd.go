package compress

// ZstdCompressor provides Zstandard compression.
//
// It gives the best ratio of the built-in codecs and suits payloads that are armored
// once and stored or transmitted as text, such as configuration blobs or tokens.
//
// The implementation is selected at build time:
//   - default: github.com/klauspost/compress/zstd with pooled encoders and decoders
//   - gozstd build tag with cgo: github.com/valyala/gozstd
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
