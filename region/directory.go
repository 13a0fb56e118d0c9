package region

import "github.com/anvilcodec/anvil/endian"

var bigEndian = endian.GetBigEndianEngine()

// DirectoryEntry is a single 4-byte record from the region header's first
// 4 KiB sector: a 3-byte big-endian sector offset (in 4 KiB units, from the
// start of the file) and a 1-byte sector span. A zero-valued entry
// (Offset == 0 && Span == 0) marks the cell as absent.
type DirectoryEntry struct {
	Offset uint32
	Span   uint8
}

// Present reports whether the entry points at an actual chunk frame.
func (e DirectoryEntry) Present() bool {
	return e.Offset != 0 || e.Span != 0
}

// parseDirectoryEntry reads the 4-byte directory entry at the start of b.
func parseDirectoryEntry(b []byte) DirectoryEntry {
	offset := uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
	return DirectoryEntry{Offset: offset, Span: b[3]}
}

// appendDirectoryEntry writes e's 4-byte wire form to dst.
func appendDirectoryEntry(dst []byte, e DirectoryEntry) []byte {
	return append(dst, byte(e.Offset>>16), byte(e.Offset>>8), byte(e.Offset), e.Span)
}

// cellIndex returns the z-major metadata index for chunk offset (x, z), per
// the region format's `128*z + 4*x` addressing.
func cellIndex(x, z int) int {
	return 128*z + 4*x
}
