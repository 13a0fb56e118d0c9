package region

import (
	"testing"

	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/nbt"
	"github.com/stretchr/testify/require"
)

func sampleDoc(n int32) []nbt.Tag {
	return []nbt.Tag{nbt.NewCompound("", nbt.NewInt("n", n))}
}

func TestParseFilename(t *testing.T) {
	x, z, ok := ParseFilename("r.3.-1.mca")
	require.True(t, ok)
	require.Equal(t, int32(3), x)
	require.Equal(t, int32(-1), z)

	_, _, ok = ParseFilename("not-a-region-file.txt")
	require.False(t, ok)
}

// TestEmptyRegion_EncodeIsHeaderOnly covers the zero-occupied-cells boundary:
// a region with no chunks encodes to exactly HeaderSize bytes, all zero.
func TestEmptyRegion_EncodeIsHeaderOnly(t *testing.T) {
	r := New(0, 0)

	out, err := r.Encode()
	require.NoError(t, err)
	require.Len(t, out, HeaderSize)
	for _, b := range out {
		require.Zero(t, b)
	}
}

// TestSingleCell_DirectoryAndFileLength covers scenario S5: a region with
// exactly one occupied cell at (0, 0), verifying the directory entry and
// total file length match the spec's formula.
func TestSingleCell_DirectoryAndFileLength(t *testing.T) {
	r := New(5, -2)
	r.Set(0, 0, Cell{Document: sampleDoc(42), Timestamp: 1000, Compression: format.CompressionZlib})

	out, err := r.Encode()
	require.NoError(t, err)

	entry := parseDirectoryEntry(out[0:4])
	require.True(t, entry.Present())
	require.Equal(t, uint32(2), entry.Offset)

	n, _, err := readU32(out[HeaderSize:])
	require.NoError(t, err)
	compressedLen := int(n) - 1
	expectedSpan := sectorSpan(frameHeaderSize + compressedLen)
	require.Equal(t, uint8(expectedSpan), entry.Span)

	require.Equal(t, (2+expectedSpan)*SectorSize, len(out))

	// every other directory slot stays zero
	for idx := 4; idx < SectorSize; idx += 4 {
		require.False(t, parseDirectoryEntry(out[idx:idx+4]).Present())
	}
}

// TestRoundTrip_Structural covers testable property 3: re-encoding a decoded
// region preserves occupied cells, timestamps, compression and NBT trees,
// without requiring byte-exact output.
func TestRoundTrip_Structural(t *testing.T) {
	r := New(1, 1)
	r.Set(0, 0, Cell{Document: sampleDoc(1), Timestamp: 111, Compression: format.CompressionGzip})
	r.Set(31, 31, Cell{Document: sampleDoc(2), Timestamp: 222, Compression: format.CompressionZlib})
	r.Set(5, 17, Cell{Document: sampleDoc(3), Timestamp: 333, Compression: format.CompressionZlib})

	encoded, err := r.Encode()
	require.NoError(t, err)
	require.True(t, len(encoded) >= HeaderSize)
	require.Zero(t, len(encoded)%SectorSize)

	decoded, err := Decode(encoded)
	require.NoError(t, err)

	for coord, want := range r.Cells() {
		got := decoded.At(coord.X, coord.Z)
		require.Equal(t, want.Present(), got.Present(), "coord %v", coord)
		if !want.Present() {
			continue
		}
		require.Equal(t, want.Timestamp, got.Timestamp)
		require.Equal(t, want.Compression, got.Compression)
		require.Len(t, got.Document, len(want.Document))
		require.True(t, want.Document[0].Equal(got.Document[0]))
	}
}

// TestSectorArithmetic_MonotonicOffsets covers testable property 4: offsets
// for occupied cells strictly increase in iteration order and each span
// matches ceil((5+compressed_len)/4096).
func TestSectorArithmetic_MonotonicOffsets(t *testing.T) {
	r := New(0, 0)
	r.Set(0, 0, Cell{Document: sampleDoc(1), Compression: format.CompressionZlib})
	r.Set(0, 1, Cell{Document: sampleDoc(2), Compression: format.CompressionZlib})
	r.Set(2, 3, Cell{Document: sampleDoc(3), Compression: format.CompressionGzip})

	encoded, err := r.Encode()
	require.NoError(t, err)

	var lastOffset uint32
	first := true
	for z := 0; z < GridSize; z++ {
		for x := 0; x < GridSize; x++ {
			idx := cellIndex(x, z)
			entry := parseDirectoryEntry(encoded[idx : idx+4])
			if !entry.Present() {
				continue
			}
			if !first {
				require.Greater(t, entry.Offset, lastOffset)
			}
			lastOffset = entry.Offset
			first = false

			compressed, _, err := readChunkFrame(encoded, entry.Offset)
			require.NoError(t, err)
			require.Equal(t, uint8(sectorSpan(frameHeaderSize+len(compressed))), entry.Span)
		}
	}
}

// TestMultiSectorChunk covers the boundary of exactly one occupied cell
// spanning more than one sector.
func TestMultiSectorChunk(t *testing.T) {
	tags := make([]nbt.Tag, 0, 2000)
	for i := 0; i < 2000; i++ {
		tags = append(tags, nbt.NewInt("v", int32(i*2654435761)))
	}
	doc := []nbt.Tag{nbt.NewCompound("big", tags...)}

	r := New(0, 0)
	// Multiplicative-hash values leave zlib little redundancy to remove, so
	// 2000 ints compress to well over one sector.
	r.Set(0, 0, Cell{Document: doc, Compression: format.CompressionZlib})

	out, err := r.Encode()
	require.NoError(t, err)

	entry := parseDirectoryEntry(out[0:4])
	require.True(t, entry.Present())
	require.Greater(t, int(entry.Span), 1)

	decoded, err := Decode(out)
	require.NoError(t, err)
	require.True(t, decoded.At(0, 0).Present())
	require.True(t, doc[0].Equal(decoded.At(0, 0).Document[0]))
}

func TestRegion_Digest_StableAndDistinguishesAbsence(t *testing.T) {
	empty := New(0, 0)
	d1, err := empty.Digest()
	require.NoError(t, err)
	d2, err := empty.Digest()
	require.NoError(t, err)
	require.Equal(t, d1, d2)

	populated := New(0, 0)
	populated.Set(0, 0, Cell{Document: sampleDoc(1), Compression: format.CompressionZlib})
	d3, err := populated.Digest()
	require.NoError(t, err)
	require.NotEqual(t, d1, d3)
}
