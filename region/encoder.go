package region

import (
	"fmt"

	"github.com/anvilcodec/anvil/errs"
	"github.com/anvilcodec/anvil/format"
	"github.com/anvilcodec/anvil/nbt"
)

// Encoder incrementally assembles a Region's cells before serializing it.
// Building a region directly via New/Set is sufficient for callers who
// already have a Compression decided per cell; Encoder exists for callers
// who want a single default compression applied across chunks and bounds
// checking on chunk-local coordinates.
type Encoder struct {
	region             *Region
	defaultCompression format.CompressionID
}

// NewEncoder creates an Encoder for the region at coordinates (x, z).
// WithDefaultCompression sets the algorithm AddChunk uses; it defaults to
// format.CompressionZlib.
func NewEncoder(x, z int32, opts ...Option) (*Encoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Encoder{region: New(x, z), defaultCompression: cfg.defaultCompression}, nil
}

// AddChunk stores doc at chunk-local (x, z) using the encoder's default
// compression. It returns errs.ErrCoordOutOfRange if x or z falls outside
// [0, GridSize).
func (e *Encoder) AddChunk(x, z int, doc []nbt.Tag, timestamp uint32) error {
	return e.AddChunkWithCompression(x, z, doc, timestamp, e.defaultCompression)
}

// AddChunkWithCompression is AddChunk with an explicit per-chunk
// compression algorithm, overriding the encoder's default.
func (e *Encoder) AddChunkWithCompression(x, z int, doc []nbt.Tag, timestamp uint32, compression format.CompressionID) error {
	if x < 0 || x >= GridSize || z < 0 || z >= GridSize {
		return fmt.Errorf("%w: (%d, %d)", errs.ErrCoordOutOfRange, x, z)
	}

	e.region.Set(x, z, Cell{Document: doc, Timestamp: timestamp, Compression: compression})

	return nil
}

// Region returns the Encoder's underlying region for inspection (At, Cells)
// before or instead of calling Encode.
func (e *Encoder) Region() *Region {
	return e.region
}

// Encode serializes the accumulated region. See Region.Encode for the
// sector-allocation contract.
func (e *Encoder) Encode() ([]byte, error) {
	return e.region.Encode()
}
