package nbt

import (
	"fmt"

	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/internal/pool"
)

// encodeTag appends t's wire encoding to dst under the given framing
// contract and returns the extended slice.
func encodeTag(dst []byte, t Tag, tagged, named bool) ([]byte, error) {
	if tagged {
		dst = append(dst, byte(t.Kind))
		if t.Kind == format.End {
			return dst, nil
		}
	}

	if tagged && named {
		var err error
		dst, err = writeString(dst, t.Name)
		if err != nil {
			return nil, err
		}
	}

	return encodePayload(dst, t)
}

func encodePayload(dst []byte, t Tag) ([]byte, error) {
	switch t.Kind {
	case format.Byte:
		return writeI8(dst, t.Byte), nil
	case format.Short:
		return writeI16(dst, t.Short), nil
	case format.Int:
		return writeI32(dst, t.Int), nil
	case format.Long:
		return writeI64(dst, t.Long), nil
	case format.Float:
		return writeF32(dst, t.Float), nil
	case format.Double:
		return writeF64(dst, t.Double), nil
	case format.String:
		return writeString(dst, t.Str)
	case format.ByteArray:
		dst = writeU32(dst, uint32(len(t.ByteArray)))
		return append(dst, t.ByteArray...), nil
	case format.IntArray:
		dst = writeU32(dst, uint32(len(t.IntArray)))
		for _, v := range t.IntArray {
			dst = writeI32(dst, v)
		}
		return dst, nil
	case format.LongArray:
		dst = writeU32(dst, uint32(len(t.LongArray)))
		for _, v := range t.LongArray {
			dst = writeI64(dst, v)
		}
		return dst, nil
	case format.List:
		return encodeList(dst, t.List)
	case format.Compound:
		return encodeCompound(dst, t.Compound)
	default:
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrUnknownTagKind, byte(t.Kind))
	}
}

// encodeList writes the element-kind byte, u32 count, and each element with
// tagged=false, named=false, preserving the declared element kind even when
// Elements is empty.
func encodeList(dst []byte, l List) ([]byte, error) {
	dst = append(dst, byte(l.ElementKind))
	dst = writeU32(dst, uint32(l.Len()))

	switch e := l.Elements.(type) {
	case nil:
		return dst, nil
	case []int8:
		for _, v := range e {
			dst = writeI8(dst, v)
		}
	case []int16:
		for _, v := range e {
			dst = writeI16(dst, v)
		}
	case []int32:
		for _, v := range e {
			dst = writeI32(dst, v)
		}
	case []int64:
		for _, v := range e {
			dst = writeI64(dst, v)
		}
	case []float32:
		for _, v := range e {
			dst = writeF32(dst, v)
		}
	case []float64:
		for _, v := range e {
			dst = writeF64(dst, v)
		}
	case [][]byte:
		for _, v := range e {
			dst = writeU32(dst, uint32(len(v)))
			dst = append(dst, v...)
		}
	case []string:
		var err error
		for _, v := range e {
			dst, err = writeString(dst, v)
			if err != nil {
				return nil, err
			}
		}
	case [][]int32:
		for _, v := range e {
			dst = writeU32(dst, uint32(len(v)))
			for _, n := range v {
				dst = writeI32(dst, n)
			}
		}
	case [][]int64:
		for _, v := range e {
			dst = writeU32(dst, uint32(len(v)))
			for _, n := range v {
				dst = writeI64(dst, n)
			}
		}
	case []List:
		var err error
		for _, v := range e {
			dst, err = encodeList(dst, v)
			if err != nil {
				return nil, err
			}
		}
	case [][]Tag:
		var err error
		for _, v := range e {
			dst, err = encodeCompound(dst, v)
			if err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("%w: unrecognized list element type", errs.ErrUnknownTagKind)
	}

	return dst, nil
}

// encodeCompound writes children in order; children must end with an End
// tag, matching the decoder's invariant.
func encodeCompound(dst []byte, children []Tag) ([]byte, error) {
	if len(children) == 0 || children[len(children)-1].Kind != format.End {
		return nil, fmt.Errorf("%w: compound missing terminating End", errs.ErrUnterminatedCompound)
	}

	var err error
	for _, child := range children {
		dst, err = encodeTag(dst, child, true, true)
		if err != nil {
			return nil, err
		}
	}

	return dst, nil
}

// EncodeDocument concatenates the tagged+named encoding of every top-level
// tag in tags, using a pooled buffer to avoid repeated reallocation.
func EncodeDocument(tags []Tag) ([]byte, error) {
	buf := pool.GetTagBuffer()
	defer pool.PutTagBuffer(buf)

	for _, tag := range tags {
		enc, err := encodeTag(buf.Bytes(), tag, true, true)
		if err != nil {
			return nil, err
		}
		buf.B = enc
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}
