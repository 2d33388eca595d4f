package compress

// NoOpCodec passes data through unchanged. Useful as a baseline in benchmarks
// and for rows that do not compress.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is, sharing its backing memory.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is, sharing its backing memory.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
