package region

import (
	"testing"

	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
	"github.com/stretchr/testify/require"
)

func TestSectorSpan(t *testing.T) {
	require.Equal(t, 1, sectorSpan(1))
	require.Equal(t, 1, sectorSpan(SectorSize))
	require.Equal(t, 2, sectorSpan(SectorSize+1))
}

// TestBuildChunkFrame_LengthFieldExcludesSelf covers the chunk frame layout
// contract of SPEC_FULL.md §4.5: the stored u32 length N is 1 (compression byte) plus the
// compressed payload length, never counting the length field itself.
func TestBuildChunkFrame_LengthFieldExcludesSelf(t *testing.T) {
	compressed := []byte{1, 2, 3, 4, 5}

	frame, span, err := buildChunkFrame(format.CompressionZlib, compressed)
	require.NoError(t, err)
	require.Equal(t, 1, span)

	n, _, err := readU32(frame)
	require.NoError(t, err)
	require.Equal(t, uint32(1+len(compressed)), n)
	require.Equal(t, byte(format.CompressionZlib), frame[4])
	require.Equal(t, compressed, frame[5:5+len(compressed)])
}

func TestBuildChunkFrame_SpanExceedsLimit(t *testing.T) {
	huge := make([]byte, 256*SectorSize)
	_, _, err := buildChunkFrame(format.CompressionGzip, huge)
	require.ErrorIs(t, err, errs.ErrChunkTooLarge)
}

func TestReadWriteChunkFrame_RoundTrip(t *testing.T) {
	compressed := []byte("pretend this is deflate output")

	frame, span, err := buildChunkFrame(format.CompressionZlib, compressed)
	require.NoError(t, err)

	fileData := make([]byte, 2*SectorSize)
	fileData = append(fileData, frame...)

	got, compression, err := readChunkFrame(fileData, 2)
	require.NoError(t, err)
	require.Equal(t, format.CompressionZlib, compression)
	require.Equal(t, compressed, got)
	require.Equal(t, span, sectorSpan(frameHeaderSize+len(compressed)))
}

func TestReadChunkFrame_UnknownCompression(t *testing.T) {
	frame, _, err := buildChunkFrame(format.CompressionGzip, []byte("x"))
	require.NoError(t, err)
	frame[4] = 0xFF

	_, _, err = readChunkFrame(frame, 0)
	require.ErrorIs(t, err, errs.ErrUnknownCompression)
}

func TestReadChunkFrame_TruncatedPastEndOfFile(t *testing.T) {
	_, _, err := readChunkFrame(make([]byte, 4), 0)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}
