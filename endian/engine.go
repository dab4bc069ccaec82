// Package endian provides the byte order engines used by dicol's binary layouts.
//
// The column blob header records its byte order, and the fixed-width raw code
// codec writes codes in that order. EndianEngine joins binary.ByteOrder and
// binary.AppendByteOrder so writers can append without temporary buffers:
//
//	engine := endian.ForHeader(header.Flag.IsBigEndian())
//	buf = engine.AppendUint32(buf, code)
//
// All engines are stateless and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// hostBigEndian is the host byte order, probed once through binary.NativeEndian.
var hostBigEndian = func() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)

	return probe[0] == 0
}()

// Native returns the engine matching the host byte order.
func Native() EndianEngine {
	return ForHeader(hostBigEndian)
}

// IsNative reports whether engine matches the host byte order.
// A nil engine is treated as little-endian, like the raw code codec does.
func IsNative(engine EndianEngine) bool {
	if engine == nil {
		return !hostBigEndian
	}

	return engine == Native()
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// ForHeader returns the engine a column header's endianness bit selects.
func ForHeader(bigEndian bool) EndianEngine {
	if bigEndian {
		return GetBigEndianEngine()
	}

	return GetLittleEndianEngine()
}
