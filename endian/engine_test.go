package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetBigEndianEngine(t *testing.T) {
	engine := GetBigEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.BigEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x01), bytes[0], "big endian should put MSB first")
	require.Equal(t, byte(0x02), bytes[1], "big endian should put LSB second")

	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestEndianEngineWidths(t *testing.T) {
	engine := GetBigEndianEngine()

	var u32 uint32 = 0x01020304
	buf32 := make([]byte, 4)
	engine.PutUint32(buf32, u32)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf32)
	require.Equal(t, u32, engine.Uint32(buf32))

	var u64 uint64 = 0x0102030405060708
	buf64 := make([]byte, 8)
	engine.PutUint64(buf64, u64)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, buf64)
	require.Equal(t, u64, engine.Uint64(buf64))
}

func TestEndianEngineAppend(t *testing.T) {
	engine := GetBigEndianEngine()

	var buf []byte
	buf = engine.AppendUint16(buf, 0x0102)
	buf = engine.AppendUint32(buf, 0x03040506)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}, buf)
}
