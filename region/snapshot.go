package region

import (
	"fmt"

	"github.com/anvilcodec/anvil/compress"
	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/nbt"
)

// DefaultSnapshotCodec is the compress.Codec ExportSnapshot uses when the
// caller doesn't need a specific algorithm. Zstandard gives the best ratio
// of the pluggable codecs, which suits a cold debug/transport artifact.
func DefaultSnapshotCodec() compress.Codec {
	return compress.NewZstdCodec()
}

// ExportSnapshot serializes every occupied cell's (x, z, timestamp,
// compression, document) tuple as a length-prefixed record stream and
// compresses the whole stream with codec.
//
// This is a debug/transport convenience living entirely outside the
// sector-aligned wire format of Encode/Decode: it is never required for,
// and has no bearing on, a round trip through the real region file format.
func (r *Region) ExportSnapshot(codec compress.Codec) ([]byte, error) {
	var raw []byte

	for coord, cell := range r.Cells() {
		if !cell.Present() {
			continue
		}

		docBytes, err := nbt.EncodeDocument(cell.Document)
		if err != nil {
			return nil, err
		}

		raw = append(raw, byte(coord.X), byte(coord.Z))
		raw = appendU32(raw, cell.Timestamp)
		raw = append(raw, byte(cell.Compression))
		raw = appendU32(raw, uint32(len(docBytes)))
		raw = append(raw, docBytes...)
	}

	return codec.Compress(raw)
}

// ImportSnapshot reverses ExportSnapshot for the occupied cells. The
// snapshot does not store the region's X and Z, so the returned Region has
// X and Z of zero.
func ImportSnapshot(data []byte, codec compress.Codec) (*Region, error) {
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, err
	}

	r := &Region{}
	pos := 0

	for pos < len(raw) {
		if pos+11 > len(raw) {
			return nil, fmt.Errorf("%w: snapshot record header", errs.ErrTruncatedInput)
		}

		x := int(raw[pos])
		z := int(raw[pos+1])
		timestamp, _, err := readU32(raw[pos+2:])
		if err != nil {
			return nil, fmt.Errorf("%w: snapshot timestamp", errs.ErrTruncatedInput)
		}
		compression := format.CompressionID(raw[pos+6])
		docLen, _, err := readU32(raw[pos+7:])
		if err != nil {
			return nil, fmt.Errorf("%w: snapshot document length", errs.ErrTruncatedInput)
		}
		pos += 11

		if pos+int(docLen) > len(raw) {
			return nil, fmt.Errorf("%w: snapshot document payload", errs.ErrTruncatedInput)
		}
		docBytes := raw[pos : pos+int(docLen)]
		pos += int(docLen)

		doc, err := nbt.DecodeDocument(docBytes)
		if err != nil {
			return nil, err
		}

		r.Set(x, z, Cell{Document: doc, Timestamp: timestamp, Compression: compression})
	}

	return r, nil
}

func appendU32(dst []byte, v uint32) []byte {
	return bigEndian.AppendUint32(dst, v)
}
