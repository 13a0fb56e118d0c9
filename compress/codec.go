package compress

import (
	"fmt"

	"github.com/anvilcodec/anvil/format"
)

// Compressor compresses a byte payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload produced by the matching Compressor.
//
// Error conditions:
//   - Returns an error if the input is corrupted or uses an incompatible format
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for the given id.
//
// target describes the caller's use site and is only used for the error message.
func CreateCodec(id format.CodecID, target string) (Codec, error) {
	switch id {
	case format.CodecNone:
		return NewNoOpCodec(), nil
	case format.CodecGzip:
		return NewGzipCodec(), nil
	case format.CodecZlib:
		return NewZlibCodec(), nil
	case format.CodecZstd:
		return NewZstdCodec(), nil
	case format.CodecS2:
		return NewS2Codec(), nil
	case format.CodecLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("invalid %s codec: %s", target, id)
	}
}

var builtinCodecs = map[format.CodecID]Codec{
	format.CodecNone: NewNoOpCodec(),
	format.CodecGzip: NewGzipCodec(),
	format.CodecZlib: NewZlibCodec(),
	format.CodecZstd: NewZstdCodec(),
	format.CodecS2:   NewS2Codec(),
	format.CodecLZ4:  NewLZ4Codec(),
}

// GetCodec retrieves a built-in Codec for the given id.
func GetCodec(id format.CodecID) (Codec, error) {
	if codec, ok := builtinCodecs[id]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported codec: %s", id)
}

// ForCompression maps a region chunk frame's on-disk compression
// discriminant to the codec that reads and writes it. Region only ever
// uses CodecGzip or CodecZlib; a discriminant outside that set is a decode
// error surfaced by the caller as errs.ErrUnknownCompression.
func ForCompression(id format.CompressionID) (Codec, error) {
	switch id {
	case format.CompressionGzip:
		return NewGzipCodec(), nil
	case format.CompressionZlib:
		return NewZlibCodec(), nil
	default:
		return nil, fmt.Errorf("unsupported compression discriminant: %d", uint8(id))
	}
}
