package nbt

import (
	"slices"

	"github.com/anvilcodec/anvil/format"
)

// Tag is a single NBT record: a kind discriminant, an optional name (absent
// for tags decoded as List elements), and exactly one populated payload
// field selected by Kind. Only the field matching Kind is meaningful; the
// others hold their zero value.
//
// This mirrors a tagged union using a discriminant plus one field per
// variant rather than an interface, so a decoder can dispatch with a single
// switch on Kind instead of a type registry.
type Tag struct {
	Kind format.TagKind
	Name string

	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []byte
	Str       string
	List      List
	// Compound holds the ordered child tags of a Compound payload,
	// terminated by a Tag with Kind == format.End.
	Compound  []Tag
	IntArray  []int32
	LongArray []int64
}

// List is the payload of a TAG_List: an explicit element kind plus an
// ordered, homogeneous sequence of values of that kind. ElementKind is
// preserved even when Elements is empty, since the wire format requires an
// element-kind byte regardless of count.
//
// Elements holds one of: []int8, []int16, []int32, []int64, []float32,
// []float64, [][]byte, []string, []List, [][]Tag (one []Tag per Compound
// element), [][]int32 (one per IntArray element), [][]int64 (one per
// LongArray element), or nil when ElementKind == format.End. The zero List
// value uses End as its element kind; the decoder accepts an End element
// kind only when the count is 0.
type List struct {
	ElementKind format.TagKind
	Elements    any
}

// Len returns the number of elements the list's concrete Elements slice
// holds, or 0 if Elements is nil.
func (l List) Len() int {
	switch e := l.Elements.(type) {
	case []int8:
		return len(e)
	case []int16:
		return len(e)
	case []int32:
		return len(e)
	case []int64:
		return len(e)
	case []float32:
		return len(e)
	case []float64:
		return len(e)
	case [][]byte:
		return len(e)
	case []string:
		return len(e)
	case []List:
		return len(e)
	case [][]Tag:
		return len(e)
	case [][]int32:
		return len(e)
	case [][]int64:
		return len(e)
	default:
		return 0
	}
}

// NewEnd returns the End sentinel tag.
func NewEnd() Tag { return Tag{Kind: format.End} }

// NewByte constructs a named TAG_Byte.
func NewByte(name string, v int8) Tag { return Tag{Kind: format.Byte, Name: name, Byte: v} }

// NewShort constructs a named TAG_Short.
func NewShort(name string, v int16) Tag { return Tag{Kind: format.Short, Name: name, Short: v} }

// NewInt constructs a named TAG_Int.
func NewInt(name string, v int32) Tag { return Tag{Kind: format.Int, Name: name, Int: v} }

// NewLong constructs a named TAG_Long.
func NewLong(name string, v int64) Tag { return Tag{Kind: format.Long, Name: name, Long: v} }

// NewFloat constructs a named TAG_Float.
func NewFloat(name string, v float32) Tag { return Tag{Kind: format.Float, Name: name, Float: v} }

// NewDouble constructs a named TAG_Double.
func NewDouble(name string, v float64) Tag {
	return Tag{Kind: format.Double, Name: name, Double: v}
}

// NewByteArray constructs a named TAG_Byte_Array.
func NewByteArray(name string, v []byte) Tag {
	return Tag{Kind: format.ByteArray, Name: name, ByteArray: v}
}

// NewString constructs a named TAG_String.
func NewString(name string, v string) Tag { return Tag{Kind: format.String, Name: name, Str: v} }

// NewIntArray constructs a named TAG_Int_Array.
func NewIntArray(name string, v []int32) Tag {
	return Tag{Kind: format.IntArray, Name: name, IntArray: v}
}

// NewLongArray constructs a named TAG_Long_Array.
func NewLongArray(name string, v []int64) Tag {
	return Tag{Kind: format.LongArray, Name: name, LongArray: v}
}

// NewList constructs a named TAG_List from an explicit element kind and
// elements slice (see List.Elements for the accepted concrete types).
func NewList(name string, elementKind format.TagKind, elements any) Tag {
	return Tag{Kind: format.List, Name: name, List: List{ElementKind: elementKind, Elements: elements}}
}

// NewCompound constructs a named TAG_Compound. children must not include the
// terminating End tag; NewCompound appends it.
func NewCompound(name string, children ...Tag) Tag {
	compound := make([]Tag, 0, len(children)+1)
	compound = append(compound, children...)
	compound = append(compound, NewEnd())

	return Tag{Kind: format.Compound, Name: name, Compound: compound}
}

// Digest returns an xxHash64 digest of the tag's own tagged+named encoding.
// Two tags that encode to the same bytes have the same digest; this is a
// fast structural-equality check, not part of the wire format.
func (t Tag) Digest() (uint64, error) {
	enc, err := encodeTag(nil, t, true, true)
	if err != nil {
		return 0, err
	}

	return hashBytes(enc), nil
}

// Equal reports whether t and other are structurally identical: same kind,
// name, payload, list element kind, and child order. Floating-point payloads
// are compared by bit pattern so NaN and negative zero compare as equal to
// themselves, matching the format's bit-exact encode contract.
func (t Tag) Equal(other Tag) bool {
	if t.Kind != other.Kind || t.Name != other.Name {
		return false
	}

	switch t.Kind {
	case format.End:
		return true
	case format.Byte:
		return t.Byte == other.Byte
	case format.Short:
		return t.Short == other.Short
	case format.Int:
		return t.Int == other.Int
	case format.Long:
		return t.Long == other.Long
	case format.Float:
		return float32bits(t.Float) == float32bits(other.Float)
	case format.Double:
		return float64bits(t.Double) == float64bits(other.Double)
	case format.ByteArray:
		return bytesEqual(t.ByteArray, other.ByteArray)
	case format.String:
		return t.Str == other.Str
	case format.IntArray:
		return int32sEqual(t.IntArray, other.IntArray)
	case format.LongArray:
		return int64sEqual(t.LongArray, other.LongArray)
	case format.List:
		return t.List.equal(other.List)
	case format.Compound:
		return compoundsEqual(t.Compound, other.Compound)
	default:
		return false
	}
}

func (l List) equal(other List) bool {
	if l.ElementKind != other.ElementKind {
		return false
	}

	switch e := l.Elements.(type) {
	case []int8:
		o, ok := other.Elements.([]int8)
		return ok && slicesEqual(e, o)
	case []int16:
		o, ok := other.Elements.([]int16)
		return ok && slicesEqual(e, o)
	case []int32:
		o, ok := other.Elements.([]int32)
		return ok && slicesEqual(e, o)
	case []int64:
		o, ok := other.Elements.([]int64)
		return ok && slicesEqual(e, o)
	case []float32:
		o, ok := other.Elements.([]float32)
		if !ok || len(e) != len(o) {
			return false
		}
		for i := range e {
			if float32bits(e[i]) != float32bits(o[i]) {
				return false
			}
		}

		return true
	case []float64:
		o, ok := other.Elements.([]float64)
		if !ok || len(e) != len(o) {
			return false
		}
		for i := range e {
			if float64bits(e[i]) != float64bits(o[i]) {
				return false
			}
		}

		return true
	case [][]byte:
		o, ok := other.Elements.([][]byte)
		if !ok || len(e) != len(o) {
			return false
		}
		for i := range e {
			if !bytesEqual(e[i], o[i]) {
				return false
			}
		}

		return true
	case []string:
		o, ok := other.Elements.([]string)
		return ok && slicesEqual(e, o)
	case []List:
		o, ok := other.Elements.([]List)
		if !ok || len(e) != len(o) {
			return false
		}
		for i := range e {
			if !e[i].equal(o[i]) {
				return false
			}
		}

		return true
	case [][]Tag:
		o, ok := other.Elements.([][]Tag)
		if !ok || len(e) != len(o) {
			return false
		}
		for i := range e {
			if !compoundsEqual(e[i], o[i]) {
				return false
			}
		}

		return true
	case [][]int32:
		o, ok := other.Elements.([][]int32)
		return ok && slices.EqualFunc(e, o, int32sEqual)
	case [][]int64:
		o, ok := other.Elements.([][]int64)
		return ok && slices.EqualFunc(e, o, int64sEqual)
	default:
		return l.Elements == nil && other.Elements == nil
	}
}

func compoundsEqual(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}

func slicesEqual[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func int32sEqual(a, b []int32) bool { return slicesEqual(a, b) }
func int64sEqual(a, b []int64) bool { return slicesEqual(a, b) }
