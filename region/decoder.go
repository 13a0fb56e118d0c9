package region

import "github.com/anvilcodec/anvil/nbt"

// Decoder parses region files under an explicit strict/lenient UTF-8 policy
// for the NBT document inside each chunk. Decode is sufficient for the
// default (strict) behavior; Decoder exists for callers who need
// WithStrict(false).
type Decoder struct {
	nbtDecoder *nbt.Decoder
}

// NewDecoder creates a Decoder. WithStrict(false) accepts invalid UTF-8
// inside a chunk's NBT document instead of failing the whole region decode.
func NewDecoder(opts ...Option) (*Decoder, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	nbtDec, err := nbt.NewDecoder(nbt.WithStrict(cfg.strict))
	if err != nil {
		return nil, err
	}

	return &Decoder{nbtDecoder: nbtDec}, nil
}

// DecodeRegion parses data under this decoder's configured strictness.
func (d *Decoder) DecodeRegion(data []byte) (*Region, error) {
	return decode(data, d.nbtDecoder.DecodeDocument)
}
