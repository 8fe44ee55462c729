package compress

// NoOpCompressor passes payloads through without compression.
//
// Use it for payloads that are already compressed or encrypted.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns data as-is if it fits within limit.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if limit > 0 && len(data) > limit {
		return nil, errPayloadTooLarge(limit)
	}

	return data, nil
}
