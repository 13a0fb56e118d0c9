// Package format defines the closed, wire-stable enumerations shared by the
// nbt, region and compress packages: the NBT tag variant table, the region
// chunk compression discriminant, and the explicit codec selector used by
// the pluggable compress.Codec registry.
package format

// TagKind identifies the variant of an NBT tag. The numeric values are the
// wire ids used by the NBT binary format and must never be renumbered.
type TagKind uint8

const (
	End       TagKind = 0x00
	Byte      TagKind = 0x01
	Short     TagKind = 0x02
	Int       TagKind = 0x03
	Long      TagKind = 0x04
	Float     TagKind = 0x05
	Double    TagKind = 0x06
	ByteArray TagKind = 0x07
	String    TagKind = 0x08
	List      TagKind = 0x09
	Compound  TagKind = 0x0A
	IntArray  TagKind = 0x0B
	LongArray TagKind = 0x0C
)

// MaxTagKind is the largest valid wire id for a TagKind.
const MaxTagKind = LongArray

var tagKindNames = [...]string{
	End:       "End",
	Byte:      "Byte",
	Short:     "Short",
	Int:       "Int",
	Long:      "Long",
	Float:     "Float",
	Double:    "Double",
	ByteArray: "ByteArray",
	String:    "String",
	List:      "List",
	Compound:  "Compound",
	IntArray:  "IntArray",
	LongArray: "LongArray",
}

// Valid reports whether k is one of the thirteen defined tag kinds.
func (k TagKind) Valid() bool {
	return k <= MaxTagKind
}

// String returns the tag kind's display name, or "Unknown(<id>)" for values
// outside the defined range.
func (k TagKind) String() string {
	if !k.Valid() {
		return "Unknown(" + itoa(uint8(k)) + ")"
	}

	return tagKindNames[k]
}

// CompressionID identifies the compression algorithm used to compress a
// region chunk's serialized NBT document. These are the only two wire
// values a conforming region chunk frame may declare; anything else is
// errs.ErrUnknownCompression.
type CompressionID uint8

const (
	// CompressionGzip marks a chunk payload compressed with GZIP.
	CompressionGzip CompressionID = 1
	// CompressionZlib marks a chunk payload compressed with DEFLATE/zlib.
	CompressionZlib CompressionID = 2
)

// Valid reports whether c is a wire-legal region compression discriminant.
func (c CompressionID) Valid() bool {
	return c == CompressionGzip || c == CompressionZlib
}

// String returns the compression discriminant's display name.
func (c CompressionID) String() string {
	switch c {
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	default:
		return "Unknown(" + itoa(uint8(c)) + ")"
	}
}

// CodecID selects an explicit compress.Codec implementation. Unlike
// CompressionID, this is not a wire format discriminant: it is used by
// callers of nbt.DecodeFileWithCodec/EncodeFileWithCodec and
// region.ExportSnapshot/ImportSnapshot to pick a named compressor.
type CodecID uint8

const (
	CodecNone CodecID = iota
	CodecGzip
	CodecZlib
	CodecZstd
	CodecS2
	CodecLZ4
)

// String returns the codec id's display name.
func (c CodecID) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecGzip:
		return "Gzip"
	case CodecZlib:
		return "Zlib"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	case CodecLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// itoa avoids pulling in strconv for a single-digit-to-three-digit byte
// value in the hot String() path of a closed enum.
func itoa(v uint8) string {
	if v == 0 {
		return "0"
	}

	var buf [3]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}
