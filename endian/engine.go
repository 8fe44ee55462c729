// Package endian provides byte order utilities for binary frame encoding and decoding.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into a single
// EndianEngine, so frame builders can append fixed-width integers directly to a buffer
// and read them back with the same value.
//
// # Basic Usage
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint64(buf, checksum)
//	checksum = engine.Uint64(buf[offset:])
//
// # Thread Safety
//
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
