// Package region implements the Region/Anvil container format: a
// 32x32 grid of independently compressed NBT documents, addressed by
// chunk-local (x, z) coordinates.
package region

import (
	"fmt"
	"iter"
	"regexp"
	"strconv"

	"github.com/anvilcodec/anvil/compress"
	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/internal/hash"
	"github.com/anvilcodec/anvil/internal/pool"
	"github.com/anvilcodec/anvil/nbt"
)

// GridSize is the number of chunks along each axis of a region.
const GridSize = 32

// HeaderSize is the combined size of the directory and timestamp sectors
// that precede any chunk frame, present even in an empty region.
const HeaderSize = 2 * SectorSize

// Coord is a chunk-local coordinate within a region's 32x32 grid, in
// [0, GridSize) on each axis.
type Coord struct {
	X, Z int
}

// Cell holds one region slot: an optional NBT document, its opaque
// modification timestamp, and the compression algorithm used to store it.
// A Cell with a nil Document is absent; Encode emits a zero directory entry
// and a zero timestamp for it.
type Cell struct {
	Document    []nbt.Tag
	Timestamp   uint32
	Compression format.CompressionID

	// ObservedOffset and ObservedSpan record the directory entry this cell
	// was decoded from. Encode never reads them; they exist purely for
	// inspection and equality-adjacent debugging of a decoded region.
	ObservedOffset uint32
	ObservedSpan   uint8
}

// Present reports whether the cell holds a chunk.
func (c Cell) Present() bool {
	return c.Document != nil
}

// Digest returns an xxHash64 digest of the cell's re-encoded chunk frame
// (length, compression byte, and compressed bytes). An absent cell returns
// a fixed sentinel so Region.Digest can fold it in uniformly. This is not
// part of the wire format.
func (c Cell) Digest() (uint64, error) {
	if !c.Present() {
		return absentCellDigest, nil
	}

	compressed, err := compressDocument(c.Document, c.Compression)
	if err != nil {
		return 0, err
	}

	frame, _, err := buildChunkFrame(c.Compression, compressed)
	if err != nil {
		return 0, err
	}

	return hash.Bytes(frame), nil
}

// absentCellDigest is hash.ID("") reused as the fixed contribution of an
// absent cell to Region.Digest.
var absentCellDigest = hash.ID("")

// Region is a 32x32 grid of Cells plus the region's own coordinates,
// usually derived from its filename.
type Region struct {
	X, Z  int32
	cells [GridSize][GridSize]Cell // [z][x]
}

// New creates an empty region at the given region coordinates.
func New(x, z int32) *Region {
	return &Region{X: x, Z: z}
}

// At returns the cell at chunk-local coordinate (x, z).
func (r *Region) At(x, z int) Cell {
	return r.cells[z][x]
}

// Set stores cell at chunk-local coordinate (x, z).
func (r *Region) Set(x, z int, cell Cell) {
	r.cells[z][x] = cell
}

// Cells iterates all 1024 cells in z-major order (matching the on-disk
// directory layout), including absent ones.
func (r *Region) Cells() iter.Seq2[Coord, Cell] {
	return func(yield func(Coord, Cell) bool) {
		for z := 0; z < GridSize; z++ {
			for x := 0; x < GridSize; x++ {
				if !yield(Coord{X: x, Z: z}, r.cells[z][x]) {
					return
				}
			}
		}
	}
}

var filenamePattern = regexp.MustCompile(`r\.([-0-9]+)\.([-0-9]+)\.mc[ar]`)

// ParseFilename extracts region coordinates from a filename matching
// r.<x>.<z>.mcr or r.<x>.<z>.mca.
func ParseFilename(name string) (x, z int32, ok bool) {
	m := filenamePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}

	xi, err := strconv.ParseInt(m[1], 10, 32)
	if err != nil {
		return 0, 0, false
	}
	zi, err := strconv.ParseInt(m[2], 10, 32)
	if err != nil {
		return 0, 0, false
	}

	return int32(xi), int32(zi), true
}

// Decode parses a region file's bytes. Region coordinates are not encoded
// in the wire format; callers typically derive them from the filename via
// ParseFilename and assign them to the returned Region afterward.
//
// Decode enforces strict UTF-8 validation on every chunk's NBT document; use
// a Decoder with WithStrict(false) to relax that.
func Decode(data []byte) (*Region, error) {
	return decode(data, nbt.DecodeDocument)
}

func decode(data []byte, decodeDoc func([]byte) ([]nbt.Tag, error)) (*Region, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: region header", errs.ErrTruncatedInput)
	}

	r := &Region{}

	for z := 0; z < GridSize; z++ {
		for x := 0; x < GridSize; x++ {
			idx := cellIndex(x, z)
			entry := parseDirectoryEntry(data[idx : idx+4])
			if !entry.Present() {
				continue
			}

			timestampIdx := SectorSize + idx
			timestamp, _, err := readU32(data[timestampIdx:])
			if err != nil {
				return nil, fmt.Errorf("%w: chunk timestamp", errs.ErrTruncatedInput)
			}

			compressed, compression, err := readChunkFrame(data, entry.Offset)
			if err != nil {
				return nil, err
			}

			codec, err := compress.ForCompression(compression)
			if err != nil {
				return nil, err
			}

			raw, err := codec.Decompress(compressed)
			if err != nil {
				return nil, err
			}

			doc, err := decodeDoc(raw)
			if err != nil {
				return nil, err
			}

			r.cells[z][x] = Cell{
				Document:       doc,
				Timestamp:      timestamp,
				Compression:    compression,
				ObservedOffset: entry.Offset,
				ObservedSpan:   entry.Span,
			}
		}
	}

	return r, nil
}

func compressDocument(doc []nbt.Tag, compression format.CompressionID) ([]byte, error) {
	raw, err := nbt.EncodeDocument(doc)
	if err != nil {
		return nil, err
	}

	codec, err := compress.ForCompression(compression)
	if err != nil {
		return nil, err
	}

	return codec.Compress(raw)
}

// Encode serializes the region, recomputing every sector offset and span
// from scratch in z-major cell order; any offsets observed at decode time
// are discarded. The result is always a multiple of SectorSize and at least
// HeaderSize bytes.
func (r *Region) Encode() ([]byte, error) {
	directory := make([]byte, SectorSize)
	timestamps := make([]byte, SectorSize)

	chunkBuf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(chunkBuf)

	nextSector := uint32(2)

	for z := 0; z < GridSize; z++ {
		for x := 0; x < GridSize; x++ {
			cell := r.cells[z][x]
			idx := cellIndex(x, z)

			if !cell.Present() {
				continue
			}

			compressed, err := compressDocument(cell.Document, cell.Compression)
			if err != nil {
				return nil, err
			}

			frame, span, err := buildChunkFrame(cell.Compression, compressed)
			if err != nil {
				return nil, err
			}

			copy(directory[idx:idx+4], appendDirectoryEntry(nil, DirectoryEntry{Offset: nextSector, Span: uint8(span)}))
			writeU32(timestamps[idx:idx+4], cell.Timestamp)

			chunkBuf.MustWrite(frame)
			nextSector += uint32(span)
		}
	}

	out := make([]byte, 0, HeaderSize+chunkBuf.Len())
	out = append(out, directory...)
	out = append(out, timestamps...)
	out = append(out, chunkBuf.Bytes()...)

	return out, nil
}

// Digest folds every cell's Digest into a single value in z-major order via
// repeated hash.Combine. Not part of the wire format.
func (r *Region) Digest() (uint64, error) {
	var acc uint64

	for z := 0; z < GridSize; z++ {
		for x := 0; x < GridSize; x++ {
			d, err := r.cells[z][x].Digest()
			if err != nil {
				return 0, err
			}
			acc = hash.Combine(acc, d)
		}
	}

	return acc, nil
}
