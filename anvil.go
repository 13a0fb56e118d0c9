// Package anvil implements the NBT (Named Binary Tag) codec and the
// Region/Anvil container format used by voxel-game world storage.
//
// NBT is a self-describing, big-endian tree format: every tag carries an
// explicit kind byte and (at the top level) a name, and a Compound tag
// nests further tags until a terminating End tag. Region files pack a
// 32x32 grid of independently gzip- or zlib-compressed NBT documents
// behind a fixed-size directory and timestamp table.
//
// # Basic usage
//
// Decoding and re-encoding an NBT document:
//
//	tags, err := anvil.DecodeDocument(data)
//	...
//	out, err := anvil.EncodeDocument(tags)
//
// Opening a region file and reading one chunk:
//
//	r, err := anvil.OpenRegion(data, "r.0.0.mca")
//	...
//	cell := r.At(12, 19)
//	if cell.Present() {
//	    // cell.Document is the chunk's decoded NBT tree
//	}
//
// The nbt and region packages expose the full encoder/decoder/option API;
// this file only re-exports the handful of entry points most callers need
// without an extra import.
package anvil

import (
	"github.com/anvilcodec/anvil/compress"
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/nbt"
	"github.com/anvilcodec/anvil/region"
)

// DecodeDocument parses every top-level tag in an uncompressed NBT byte
// stream. See nbt.DecodeDocument.
func DecodeDocument(data []byte) ([]nbt.Tag, error) {
	return nbt.DecodeDocument(data)
}

// EncodeDocument serializes a sequence of top-level tags. See
// nbt.EncodeDocument.
func EncodeDocument(tags []nbt.Tag) ([]byte, error) {
	return nbt.EncodeDocument(tags)
}

// DecodeFile parses an NBT file's bytes, auto-detecting a GZIP envelope by
// magic number. See nbt.DecodeFile.
func DecodeFile(data []byte) ([]nbt.Tag, error) {
	return nbt.DecodeFile(data)
}

// EncodeFile serializes tags, optionally wrapping the result in a GZIP
// envelope. See nbt.EncodeFile.
func EncodeFile(tags []nbt.Tag, gzipped bool) ([]byte, error) {
	return nbt.EncodeFile(tags, gzipped)
}

// NewRegion creates an empty region at region coordinates (x, z).
func NewRegion(x, z int32) *region.Region {
	return region.New(x, z)
}

// OpenRegion decodes a region file's bytes and assigns it the coordinates
// parsed from filename (r.<x>.<z>.mca / .mcr). A filename that doesn't
// match the convention leaves the region's X/Z at their zero value;
// callers who don't have a filename should call region.Decode directly.
func OpenRegion(data []byte, filename string) (*region.Region, error) {
	r, err := region.Decode(data)
	if err != nil {
		return nil, err
	}

	if x, z, ok := region.ParseFilename(filename); ok {
		r.X, r.Z = x, z
	}

	return r, nil
}

// Compression identifiers re-exported for callers who only need
// the top-level package.
const (
	CompressionGzip = format.CompressionGzip
	CompressionZlib = format.CompressionZlib
)

// DefaultSnapshotCodec returns the compress.Codec region.ExportSnapshot uses
// by default, re-exported for convenience.
func DefaultSnapshotCodec() compress.Codec {
	return region.DefaultSnapshotCodec()
}
