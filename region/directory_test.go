package region

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDirectoryEntry_Present(t *testing.T) {
	require.False(t, DirectoryEntry{}.Present())
	require.True(t, DirectoryEntry{Offset: 2}.Present())
	require.True(t, DirectoryEntry{Span: 1}.Present())
}

func TestDirectoryEntry_RoundTrip(t *testing.T) {
	e := DirectoryEntry{Offset: 0x01ABCD, Span: 17}
	b := appendDirectoryEntry(nil, e)
	require.Len(t, b, 4)
	require.Equal(t, e, parseDirectoryEntry(b))
}

func TestCellIndex_ZMajorAddressing(t *testing.T) {
	require.Equal(t, 0, cellIndex(0, 0))
	require.Equal(t, 4, cellIndex(1, 0))
	require.Equal(t, 128, cellIndex(0, 1))
	require.Equal(t, 128*31+4*31, cellIndex(31, 31))
}
