// Package nbt implements the NBT (Named Binary Tag) binary codec: a
// self-describing tree of typed tags used to store a voxel game's chunk and
// entity data.
package nbt

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/anvilcodec/anvil/endian"
	"github.com/anvilcodec/anvil/errs"
)

var bigEndian = endian.GetBigEndianEngine()

func readI8(b []byte) (int8, int, error) {
	if len(b) < 1 {
		return 0, 0, fmt.Errorf("%w: byte", errs.ErrTruncatedInput)
	}

	return int8(b[0]), 1, nil
}

func writeI8(dst []byte, v int8) []byte {
	return append(dst, byte(v))
}

func readI16(b []byte) (int16, int, error) {
	if len(b) < 2 {
		return 0, 0, fmt.Errorf("%w: short", errs.ErrTruncatedInput)
	}

	return int16(bigEndian.Uint16(b)), 2, nil
}

func writeI16(dst []byte, v int16) []byte {
	return bigEndian.AppendUint16(dst, uint16(v))
}

func readI32(b []byte) (int32, int, error) {
	if len(b) < 4 {
		return 0, 0, fmt.Errorf("%w: int", errs.ErrTruncatedInput)
	}

	return int32(bigEndian.Uint32(b)), 4, nil
}

func writeI32(dst []byte, v int32) []byte {
	return bigEndian.AppendUint32(dst, uint32(v))
}

func readI64(b []byte) (int64, int, error) {
	if len(b) < 8 {
		return 0, 0, fmt.Errorf("%w: long", errs.ErrTruncatedInput)
	}

	return int64(bigEndian.Uint64(b)), 8, nil
}

func writeI64(dst []byte, v int64) []byte {
	return bigEndian.AppendUint64(dst, uint64(v))
}

func readU16(b []byte) (uint16, int, error) {
	if len(b) < 2 {
		return 0, 0, fmt.Errorf("%w: u16 length", errs.ErrTruncatedInput)
	}

	return bigEndian.Uint16(b), 2, nil
}

func writeU16(dst []byte, v uint16) []byte {
	return bigEndian.AppendUint16(dst, v)
}

func readU32(b []byte) (uint32, int, error) {
	if len(b) < 4 {
		return 0, 0, fmt.Errorf("%w: u32 length", errs.ErrTruncatedInput)
	}

	return bigEndian.Uint32(b), 4, nil
}

func writeU32(dst []byte, v uint32) []byte {
	return bigEndian.AppendUint32(dst, v)
}

func readF32(b []byte) (float32, int, error) {
	if len(b) < 4 {
		return 0, 0, fmt.Errorf("%w: float", errs.ErrTruncatedInput)
	}

	return math.Float32frombits(bigEndian.Uint32(b)), 4, nil
}

func writeF32(dst []byte, v float32) []byte {
	return bigEndian.AppendUint32(dst, math.Float32bits(v))
}

func readF64(b []byte) (float64, int, error) {
	if len(b) < 8 {
		return 0, 0, fmt.Errorf("%w: double", errs.ErrTruncatedInput)
	}

	return math.Float64frombits(bigEndian.Uint64(b)), 8, nil
}

func writeF64(dst []byte, v float64) []byte {
	return bigEndian.AppendUint64(dst, math.Float64bits(v))
}

// validUTF8 reports whether b is well-formed UTF-8. Named rather than
// calling utf8.Valid directly at call sites so the strict/lenient decode
// branch in decodeState.readString reads as a single policy check.
func validUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// writeString encodes str as a u16-length-prefixed UTF-8 payload.
func writeString(dst []byte, str string) ([]byte, error) {
	if len(str) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrStringTooLong, len(str))
	}

	dst = writeU16(dst, uint16(len(str)))
	dst = append(dst, str...)

	return dst, nil
}
