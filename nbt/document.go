package nbt

import "github.com/anvilcodec/anvil/compress"

// gzipMagic is the two-byte GZIP stream header used to auto-detect a
// compressed NBT file envelope.
var gzipMagic = [2]byte{0x1F, 0x8B}

// DecodeFile decodes an NBT file, auto-detecting a GZIP envelope by its
// leading magic bytes. Input without the GZIP magic is decoded directly as
// a document.
func DecodeFile(data []byte) ([]Tag, error) {
	if hasGzipMagic(data) {
		codec := compress.NewGzipCodec()
		raw, err := codec.Decompress(data)
		if err != nil {
			return nil, err
		}

		return DecodeDocument(raw)
	}

	return DecodeDocument(data)
}

// EncodeFile encodes tags as a document, optionally wrapping the result in a
// GZIP envelope.
func EncodeFile(tags []Tag, gzipped bool) ([]byte, error) {
	raw, err := EncodeDocument(tags)
	if err != nil {
		return nil, err
	}

	if !gzipped {
		return raw, nil
	}

	return compress.NewGzipCodec().Compress(raw)
}

// DecodeFileWithCodec decompresses data with an explicit codec before
// decoding it as a document. Unlike DecodeFile, no magic-byte sniffing is
// performed; the caller asserts the envelope algorithm.
func DecodeFileWithCodec(data []byte, codec compress.Codec) ([]Tag, error) {
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	return DecodeDocument(raw)
}

// EncodeFileWithCodec encodes tags as a document, then compresses the result
// with an explicit codec.
func EncodeFileWithCodec(tags []Tag, codec compress.Codec) ([]byte, error) {
	raw, err := EncodeDocument(tags)
	if err != nil {
		return nil, err
	}

	return codec.Compress(raw)
}

func hasGzipMagic(data []byte) bool {
	return len(data) >= 2 && data[0] == gzipMagic[0] && data[1] == gzipMagic[1]
}
