// Package endian provides byte order utilities for binary encoding.
//
// The package combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so encoders can both
// read fixed-width fields and append them to growing buffers through one
// value.
//
// The 7z container is a little-endian format, so GetLittleEndianEngine is the
// engine used throughout this module; the big-endian engine exists for
// completeness.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for byte order operations.
//
// The interface is satisfied by binary.LittleEndian and binary.BigEndian,
// so it composes with any code written against the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. Every structure of
// the 7z container is encoded with it.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
