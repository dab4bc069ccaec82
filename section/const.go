package section

import (
	"math"

	"github.com/arloliu/dicol/format"
)

const (
	// Bit masks of the Options field
	DictionaryMask   = 0x0001 // Mask for dictionary payload bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicColumnV1Opt is the version 1 magic number of the column blob format (bits 4-15).
	MagicColumnV1Opt = 0xEC10

	CodeEncodingRaw     = uint8(format.TypeRaw)     // CodeEncodingRaw stores codes as fixed 4-byte integers.
	CodeEncodingVarByte = uint8(format.TypeVarByte) // CodeEncodingVarByte stores codes as 7-bit groups.

	PayloadCompressionNone = uint8(format.CompressionNone) // PayloadCompressionNone stores the code stream as-is.
	PayloadCompressionZstd = uint8(format.CompressionZstd) // PayloadCompressionZstd applies Zstandard to the code stream.
	PayloadCompressionS2   = uint8(format.CompressionS2)   // PayloadCompressionS2 applies S2 to the code stream.
	PayloadCompressionLZ4  = uint8(format.CompressionLZ4)  // PayloadCompressionLZ4 applies LZ4 to the code stream.
)

// offsets and sizes in the blob
const (
	HeaderSize        = 32             // fixed header size in bytes
	DictionaryOffset  = HeaderSize     // byte offset where the dictionary payload starts
	MaxColumnRows     = math.MaxUint32 // maximum rows of a single column blob
	MaxDictionarySize = math.MaxUint32 // maximum distinct keys of a single column blob

	RawCodeSize        = 4 // bytes per code in a raw code stream
	MaxVarByteCodeSize = 5 // longest variable-byte encoding of a uint32 code
)

var validCodeEncodings = map[uint8]struct{}{
	CodeEncodingRaw:     {},
	CodeEncodingVarByte: {},
}

var validPayloadCompressions = map[uint8]struct{}{
	PayloadCompressionNone: {},
	PayloadCompressionZstd: {},
	PayloadCompressionS2:   {},
	PayloadCompressionLZ4:  {},
}
