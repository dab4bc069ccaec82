package compress

// NoOpCompressor stores the encoded code stream as-is.
//
// The variable-byte codec already packs low-cardinality columns to about one
// byte per row, so skipping block compression is a reasonable default when
// encode latency matters more than size.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a compressor that passes data through.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself.
//
// Note: The returned slice shares the same underlying memory as the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressSize returns data itself after checking that it is size bytes long.
func (c NoOpCompressor) DecompressSize(data []byte, size int) ([]byte, error) {
	return checkSize(data, size, "none")
}
