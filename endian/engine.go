// Package endian provides byte order utilities for the chunked row store.
//
// It combines the ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single EndianEngine interface, so chunk serialization can use the
// faster Append* methods without a temporary scratch buffer.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian, so any code
// written against the standard library interfaces keeps working.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Native returns the host's byte order.
func Native() binary.ByteOrder {
	// 0x0100 is 256. On a little-endian host the low byte (0x00) sits at the
	// lowest address; on a big-endian host the high byte (0x01) does.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == binary.LittleEndian
}

// GetLittleEndianEngine returns the little-endian engine. This is the default
// for chunk serialization.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
