// Package compress provides the compression codecs used by the region
// container format, plus a set of pluggable envelope codecs that the nbt
// package can use for non-wire-format document transport.
//
// # Wire-required codecs
//
// The region format's chunk frame carries a one-byte compression
// discriminant (format.CompressionGzip or format.CompressionZlib) and every
// chunk on disk is compressed with one of exactly these two algorithms:
//
//	codec, err := compress.GetCodec(format.CodecGzip)
//	compressed, err := codec.Compress(rawChunkPayload)
//	original, err := codec.Decompress(compressed)
//
// Gzip and Zlib are implemented with github.com/klauspost/compress, a
// drop-in replacement for the standard library's compress/gzip and
// compress/zlib that is faster on modern hardware.
//
// # Envelope codecs
//
// Zstd, S2, and LZ4 are not part of the region wire format but are
// available as pluggable envelope codecs for nbt.EncodeFileWithCodec /
// nbt.DecodeFileWithCodec, mirroring how a caller might want a richer
// compression option than NBT's traditional bare-GZIP file envelope.
//
// # Architecture
//
// The package defines three interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
