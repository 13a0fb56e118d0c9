// Package endian provides the byte order abstraction used by the primitive
// codec in the nbt and region packages.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine
// interface, matching how binary.BigEndian/binary.LittleEndian are already
// usable as drop-in values.
//
// # Basic Usage
//
// The NBT and Region wire formats are defined as big-endian only (per the
// format specification), so every call site in this module uses:
//
//	engine := endian.GetBigEndianEngine()
//	n, width := engine.Uint32(data), 4
//
// The interface exists (rather than calling binary.BigEndian directly
// everywhere) so the primitive codec and its tests can be written against an
// abstraction, the same way the rest of this module avoids hard-coding a
// concrete type where an interface documents intent.
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) avoids an intermediate
// allocation when building up an encoded buffer incrementally:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint32(buf, value)
//
//	// Using ByteOrder only
//	tmp := make([]byte, 4)
//	engine.PutUint32(tmp, value)
//	buf = append(buf, tmp...)  // extra allocation
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.BigEndian from the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine. Every numeric field in
// the NBT and Region wire formats is big-endian; this is the only engine
// this module's codecs use.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
