package nbt

import (
	"fmt"

	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
)

// decodeState carries per-call decode configuration through the recursive
// descent. strict controls whether invalid UTF-8 in a name or TAG_String
// payload is fatal (errs.ErrInvalidUTF8) or silently accepted as-is; every
// other error in the taxonomy is enforced regardless of strict.
type decodeState struct {
	strict bool
}

// decodeTag reads one tag from b under the given framing contract and
// returns the tag, the number of bytes consumed, and any error.
//
//   - tagged: the kind byte is present on the wire.
//   - named: a length-prefixed name follows the kind byte (ignored when
//     tagged is false, since untagged tags never carry a name either).
//
// With tagged false the kind is not known, so decoding fails with
// errs.ErrUnknownTagKind; list elements are decoded by decodeListElements,
// which knows their kind.
func (d decodeState) decodeTag(b []byte, tagged, named bool) (Tag, int, error) {
	pos := 0
	kind := format.End

	if tagged {
		if len(b) < 1 {
			return Tag{}, 0, fmt.Errorf("%w: tag kind", errs.ErrTruncatedInput)
		}

		kind = format.TagKind(b[0])
		pos = 1

		if kind == format.End {
			return Tag{Kind: format.End}, pos, nil
		}
		if !kind.Valid() {
			return Tag{}, 0, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTagKind, byte(kind))
		}
	}

	var name string
	if tagged && named {
		n, width, err := d.readString(b[pos:])
		if err != nil {
			return Tag{}, 0, err
		}
		name = n
		pos += width
	}

	payloadWidth, tag, err := d.decodePayload(b[pos:], kind)
	if err != nil {
		return Tag{}, 0, err
	}
	tag.Kind = kind
	tag.Name = name
	pos += payloadWidth

	if pos == 0 {
		return Tag{}, 0, errs.ErrZeroAdvance
	}

	return tag, pos, nil
}

// readString reads a u16-length-prefixed UTF-8 string, honoring d.strict
// for the payload's UTF-8 validity check.
func (d decodeState) readString(b []byte) (string, int, error) {
	n, _, err := readU16(b)
	if err != nil {
		return "", 0, fmt.Errorf("%w: string length", errs.ErrTruncatedInput)
	}

	if len(b) < 2+int(n) {
		return "", 0, fmt.Errorf("%w: string payload", errs.ErrTruncatedInput)
	}

	payload := b[2 : 2+int(n)]
	if d.strict && !validUTF8(payload) {
		return "", 0, fmt.Errorf("%w: string payload", errs.ErrInvalidUTF8)
	}

	return string(payload), 2 + int(n), nil
}

// decodePayload decodes just the payload bytes for kind, returning the
// consumed width and a Tag with only its payload field populated (Kind and
// Name are filled in by the caller).
func (d decodeState) decodePayload(b []byte, kind format.TagKind) (int, Tag, error) {
	switch kind {
	case format.Byte:
		v, n, err := readI8(b)
		return n, Tag{Byte: v}, err
	case format.Short:
		v, n, err := readI16(b)
		return n, Tag{Short: v}, err
	case format.Int:
		v, n, err := readI32(b)
		return n, Tag{Int: v}, err
	case format.Long:
		v, n, err := readI64(b)
		return n, Tag{Long: v}, err
	case format.Float:
		v, n, err := readF32(b)
		return n, Tag{Float: v}, err
	case format.Double:
		v, n, err := readF64(b)
		return n, Tag{Double: v}, err
	case format.String:
		v, n, err := d.readString(b)
		return n, Tag{Str: v}, err
	case format.ByteArray:
		return decodeByteArray(b)
	case format.IntArray:
		return decodeIntArray(b)
	case format.LongArray:
		return decodeLongArray(b)
	case format.List:
		return d.decodeList(b)
	case format.Compound:
		return d.decodeCompound(b)
	default:
		return 0, Tag{}, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTagKind, byte(kind))
	}
}

func decodeByteArray(b []byte) (int, Tag, error) {
	n, _, err := readU32(b)
	if err != nil {
		return 0, Tag{}, fmt.Errorf("%w: byte array length", errs.ErrTruncatedInput)
	}
	count := int(n)
	if len(b) < 4+count {
		return 0, Tag{}, fmt.Errorf("%w: byte array payload", errs.ErrTruncatedInput)
	}

	out := make([]byte, count)
	copy(out, b[4:4+count])

	return 4 + count, Tag{ByteArray: out}, nil
}

func decodeIntArray(b []byte) (int, Tag, error) {
	n, _, err := readU32(b)
	if err != nil {
		return 0, Tag{}, fmt.Errorf("%w: int array length", errs.ErrTruncatedInput)
	}
	count := int(n)
	if len(b) < 4+count*4 {
		return 0, Tag{}, fmt.Errorf("%w: int array payload", errs.ErrTruncatedInput)
	}

	out := make([]int32, count)
	pos := 4
	for i := range out {
		v, width, err := readI32(b[pos:])
		if err != nil {
			return 0, Tag{}, err
		}
		out[i] = v
		pos += width
	}

	return pos, Tag{IntArray: out}, nil
}

func decodeLongArray(b []byte) (int, Tag, error) {
	n, _, err := readU32(b)
	if err != nil {
		return 0, Tag{}, fmt.Errorf("%w: long array length", errs.ErrTruncatedInput)
	}
	count := int(n)
	if len(b) < 4+count*8 {
		return 0, Tag{}, fmt.Errorf("%w: long array payload", errs.ErrTruncatedInput)
	}

	out := make([]int64, count)
	pos := 4
	for i := range out {
		v, width, err := readI64(b[pos:])
		if err != nil {
			return 0, Tag{}, err
		}
		out[i] = v
		pos += width
	}

	return pos, Tag{LongArray: out}, nil
}

// decodeList decodes a TAG_List payload: element kind byte, u32 count, then
// count element payloads decoded with tagged=false, named=false.
func (d decodeState) decodeList(b []byte) (int, Tag, error) {
	if len(b) < 1 {
		return 0, Tag{}, fmt.Errorf("%w: list element kind", errs.ErrTruncatedInput)
	}
	elementKind := format.TagKind(b[0])
	if elementKind != format.End && !elementKind.Valid() {
		return 0, Tag{}, fmt.Errorf("%w: list element kind 0x%02x", errs.ErrUnknownTagKind, byte(elementKind))
	}

	count, _, err := readU32(b[1:])
	if err != nil {
		return 0, Tag{}, fmt.Errorf("%w: list count", errs.ErrTruncatedInput)
	}

	pos := 5
	elements, width, err := d.decodeListElements(b[pos:], elementKind, int(count))
	if err != nil {
		return 0, Tag{}, err
	}
	pos += width

	return pos, Tag{List: List{ElementKind: elementKind, Elements: elements}}, nil
}

// decodeListElements decodes n homogeneous, untagged, unnamed elements of
// elementKind and returns them as the concrete slice type matching that
// kind (see List.Elements).
func (d decodeState) decodeListElements(b []byte, elementKind format.TagKind, n int) (any, int, error) {
	pos := 0

	switch elementKind {
	case format.End:
		if n != 0 {
			return nil, 0, fmt.Errorf("%w: list of End with nonzero count", errs.ErrUnknownTagKind)
		}
		return nil, 0, nil
	case format.Byte:
		out := make([]int8, n)
		for i := range out {
			v, w, err := readI8(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.Short:
		out := make([]int16, n)
		for i := range out {
			v, w, err := readI16(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.Int:
		out := make([]int32, n)
		for i := range out {
			v, w, err := readI32(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.Long:
		out := make([]int64, n)
		for i := range out {
			v, w, err := readI64(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.Float:
		out := make([]float32, n)
		for i := range out {
			v, w, err := readF32(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.Double:
		out := make([]float64, n)
		for i := range out {
			v, w, err := readF64(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.ByteArray:
		out := make([][]byte, n)
		for i := range out {
			w, tag, err := decodeByteArray(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = tag.ByteArray
			pos += w
		}
		return out, pos, nil
	case format.String:
		out := make([]string, n)
		for i := range out {
			v, w, err := d.readString(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = v
			pos += w
		}
		return out, pos, nil
	case format.IntArray:
		out := make([][]int32, n)
		for i := range out {
			w, tag, err := decodeIntArray(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = tag.IntArray
			pos += w
		}
		return out, pos, nil
	case format.LongArray:
		out := make([][]int64, n)
		for i := range out {
			w, tag, err := decodeLongArray(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = tag.LongArray
			pos += w
		}
		return out, pos, nil
	case format.List:
		out := make([]List, n)
		for i := range out {
			w, tag, err := d.decodeList(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = tag.List
			pos += w
		}
		return out, pos, nil
	case format.Compound:
		out := make([][]Tag, n)
		for i := range out {
			w, tag, err := d.decodeCompound(b[pos:])
			if err != nil {
				return nil, 0, err
			}
			out[i] = tag.Compound
			pos += w
		}
		return out, pos, nil
	default:
		return nil, 0, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTagKind, byte(elementKind))
	}
}

// decodeCompound decodes tagged/named child tags until an End is read. The
// End tag is kept as the terminating element of the returned slice.
func (d decodeState) decodeCompound(b []byte) (int, Tag, error) {
	var children []Tag
	pos := 0

	for {
		if pos >= len(b) {
			return 0, Tag{}, fmt.Errorf("%w", errs.ErrUnterminatedCompound)
		}

		child, width, err := d.decodeTag(b[pos:], true, true)
		if err != nil {
			return 0, Tag{}, err
		}
		pos += width
		children = append(children, child)

		if child.Kind == format.End {
			break
		}
	}

	return pos, Tag{Compound: children}, nil
}

// DecodeDocument decodes every top-level tagged/named tag in data in order,
// stopping only when data is exhausted. Invalid UTF-8 in a name or string
// payload is fatal (strict mode); use a Decoder configured with
// WithStrict(false) for lenient decoding.
func DecodeDocument(data []byte) ([]Tag, error) {
	return decodeState{strict: true}.decodeDocument(data)
}

func (d decodeState) decodeDocument(data []byte) ([]Tag, error) {
	var tags []Tag
	pos := 0

	for pos < len(data) {
		tag, width, err := d.decodeTag(data[pos:], true, true)
		if err != nil {
			return nil, err
		}
		if width == 0 {
			return nil, errs.ErrZeroAdvance
		}

		tags = append(tags, tag)
		pos += width
	}

	return tags, nil
}
