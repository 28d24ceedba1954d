package compress

// NoOpCompressor provides a no-operation codec that bypasses data without
// compression. Useful for benchmarking baselines and for callers that want a
// single code path regardless of whether compression is enabled.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data directly without copying.
//
// The returned slice shares the same underlying memory as the input; callers
// must not modify the input while the result is in use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data directly without copying.
//
// The returned slice shares the same underlying memory as the input; callers
// must not modify the input while the result is in use.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
