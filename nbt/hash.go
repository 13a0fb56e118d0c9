package nbt

import (
	"math"

	"github.com/anvilcodec/anvil/internal/hash"
)

func float32bits(v float32) uint32 { return math.Float32bits(v) }
func float64bits(v float64) uint64 { return math.Float64bits(v) }

func hashBytes(b []byte) uint64 { return hash.Bytes(b) }
