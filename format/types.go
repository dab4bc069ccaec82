// Package format defines the identifiers stored in dicol column blob headers.
package format

import "strings"

type (
	EncodingType    uint8
	CompressionType uint8
)

const (
	TypeRaw     EncodingType = 0x1 // TypeRaw stores every code as a fixed 4-byte integer.
	TypeVarByte EncodingType = 0x4 // TypeVarByte stores every code as 1-5 bytes of 7-bit groups.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (e EncodingType) String() string {
	switch e {
	case TypeRaw:
		return "Raw"
	case TypeVarByte:
		return "VarByte"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseEncodingType parses a case-insensitive encoding name such as "varbyte" or "raw".
func ParseEncodingType(s string) (EncodingType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return TypeRaw, true
	case "varbyte", "vbyte":
		return TypeVarByte, true
	default:
		return 0, false
	}
}

// ParseCompressionType parses a case-insensitive compression name such as "zstd" or "none".
func ParseCompressionType(s string) (CompressionType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return CompressionNone, true
	case "zstd":
		return CompressionZstd, true
	case "s2":
		return CompressionS2, true
	case "lz4":
		return CompressionLZ4, true
	default:
		return 0, false
	}
}
