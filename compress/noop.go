package compress

// NoOpCodec passes data through unchanged. It exists for format.CodecNone,
// used by tests and by callers of the NBT envelope codec who want a plain,
// uncompressed document.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new no-operation codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns data unchanged.
//
// The returned slice shares the input's underlying array; callers must not
// mutate the input afterward if they still hold the result.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data unchanged.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
