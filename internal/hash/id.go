// Package hash provides the xxHash64-based digest primitives used for fast
// structural-equality checks (nbt.Tag.Digest, region.Cell.Digest).
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Bytes computes the xxHash64 of the given byte slice.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Combine folds a new digest into an accumulator, producing a single digest
// over an ordered sequence of values. Order-sensitive by construction: two
// sequences that contain the same digests in a different order combine to
// different results, which is what Region.Digest needs since cell order is
// part of the grid's identity.
func Combine(acc, next uint64) uint64 {
	// Mix next into acc with a 64-bit variant of boost::hash_combine's
	// golden-ratio constant, then run it through xxhash once more so a
	// single Combine call still looks like a well-distributed digest.
	acc ^= next + 0x9e3779b97f4a7c15 + (acc << 6) + (acc >> 2)

	var buf [8]byte
	for i := range buf {
		buf[i] = byte(acc >> (8 * i))
	}

	return xxhash.Sum64(buf[:])
}
