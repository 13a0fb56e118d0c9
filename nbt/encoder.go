package nbt

import (
	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/internal/pool"
)

// Encoder incrementally builds an NBT document into a reusable buffer.
// EncodeDocument is sufficient for one-shot use; Encoder exists for callers
// who want to size the buffer up front or stream several tags without an
// intermediate []Tag slice.
type Encoder struct {
	buf      *pool.ByteBuffer
	finished bool
}

// NewEncoder creates an Encoder. WithBufferSize sizes the initial buffer;
// the default matches the package's pooled tag buffer size.
func NewEncoder(opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	size := cfg.bufferSize
	if size <= 0 {
		size = pool.TagBufferDefaultSize
	}

	return &Encoder{buf: pool.NewByteBuffer(size)}, nil
}

// EncodeTag appends a single top-level tag's tagged+named encoding.
func (e *Encoder) EncodeTag(t Tag) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	enc, err := encodeTag(e.buf.Bytes(), t, true, true)
	if err != nil {
		return err
	}
	e.buf.B = enc

	return nil
}

// Bytes returns the bytes encoded so far without finalizing the encoder.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Finish returns a copy of the encoded bytes and marks the encoder unusable.
// EncodeTag then returns errs.ErrEncoderFinished; calling Finish a second
// time panics, since finalizing twice is a programmer error, not a data
// error.
func (e *Encoder) Finish() []byte {
	if e.finished {
		panic("nbt: encoder already finished")
	}
	e.finished = true

	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())

	return out
}
