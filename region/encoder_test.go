package region

import (
	"testing"

	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/nbt"
	"github.com/stretchr/testify/require"
)

func TestEncoder_DefaultCompressionIsZlib(t *testing.T) {
	enc, err := NewEncoder(0, 0)
	require.NoError(t, err)
	require.NoError(t, enc.AddChunk(0, 0, sampleDoc(1), 7))
	require.Equal(t, format.CompressionZlib, enc.Region().At(0, 0).Compression)
}

func TestEncoder_WithDefaultCompression(t *testing.T) {
	enc, err := NewEncoder(0, 0, WithDefaultCompression(format.CompressionGzip))
	require.NoError(t, err)
	require.NoError(t, enc.AddChunk(3, 4, sampleDoc(1), 7))
	require.Equal(t, format.CompressionGzip, enc.Region().At(3, 4).Compression)
}

func TestEncoder_AddChunkWithCompressionOverridesDefault(t *testing.T) {
	enc, err := NewEncoder(0, 0, WithDefaultCompression(format.CompressionGzip))
	require.NoError(t, err)
	require.NoError(t, enc.AddChunkWithCompression(0, 0, sampleDoc(1), 0, format.CompressionZlib))
	require.Equal(t, format.CompressionZlib, enc.Region().At(0, 0).Compression)
}

func TestEncoder_CoordOutOfRange(t *testing.T) {
	enc, err := NewEncoder(0, 0)
	require.NoError(t, err)

	require.ErrorIs(t, enc.AddChunk(32, 0, sampleDoc(1), 0), errs.ErrCoordOutOfRange)
	require.ErrorIs(t, enc.AddChunk(0, -1, sampleDoc(1), 0), errs.ErrCoordOutOfRange)
}

func TestEncoder_Encode_MatchesRegionEncode(t *testing.T) {
	enc, err := NewEncoder(2, 2)
	require.NoError(t, err)
	require.NoError(t, enc.AddChunk(0, 0, sampleDoc(9), 99))

	out, err := enc.Encode()
	require.NoError(t, err)

	direct, err := enc.Region().Encode()
	require.NoError(t, err)
	require.Equal(t, direct, out)

	decoded, err := Decode(out)
	require.NoError(t, err)
	require.True(t, decoded.At(0, 0).Present())
}

func TestDecoder_StrictVsLenientUTF8(t *testing.T) {
	invalidName := string([]byte{0x80, 0x81})
	doc := []nbt.Tag{nbt.NewCompound(invalidName)}

	r := New(0, 0)
	r.Set(0, 0, Cell{Document: doc, Compression: format.CompressionZlib})
	encoded, err := r.Encode()
	require.NoError(t, err)

	strict, err := NewDecoder()
	require.NoError(t, err)
	_, err = strict.DecodeRegion(encoded)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)

	lenient, err := NewDecoder(WithStrict(false))
	require.NoError(t, err)
	decoded, err := lenient.DecodeRegion(encoded)
	require.NoError(t, err)
	require.Equal(t, invalidName, decoded.At(0, 0).Document[0].Name)
}
