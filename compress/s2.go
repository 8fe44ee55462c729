package compress

import "github.com/klauspost/compress/s2"

// S2Compressor stores armor payloads as a single S2 block.
//
// S2 is Snappy-compatible and trades some ratio for speed. The block header records the
// decoded length, so a size limit is enforced before any output buffer is allocated.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as one S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block produced by Compress.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressLimit(data, 0)
}

// DecompressLimit decodes an S2 block, rejecting it up front if its declared length
// exceeds limit.
func (c S2Compressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	if limit > 0 {
		n, err := s2.DecodedLen(data)
		if err != nil {
			return nil, err
		}
		if n > limit {
			return nil, errPayloadTooLarge(limit)
		}
	}

	return s2.Decode(nil, data)
}
