package section

import (
	"fmt"

	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

// ColumnFlag is the packed first word of a column header.
type ColumnFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the dictionary flag, 1 means the dictionary payload follows the header.
	// Bit 1 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number 0xEC10 of the column blob format v1.
	Options uint16

	// CodeEncoding indicates how codes are laid out in the code stream.
	// Valid values: TypeRaw, TypeVarByte
	CodeEncoding uint8

	// PayloadCompression indicates the block compression applied to the code stream.
	// Valid values: CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4
	PayloadCompression uint8
}

// NewColumnFlag creates a ColumnFlag for a little-endian, variable-byte,
// uncompressed column with a dictionary payload.
func NewColumnFlag() ColumnFlag {
	flag := ColumnFlag{
		Options:            MagicColumnV1Opt,
		CodeEncoding:       CodeEncodingVarByte,
		PayloadCompression: PayloadCompressionNone,
	}
	flag.SetHasDictionary(true)
	flag.WithLittleEndian()

	return flag
}

// HasDictionary reports whether the dictionary payload is present.
func (f ColumnFlag) HasDictionary() bool {
	return (f.Options & DictionaryMask) != 0
}

// SetHasDictionary enables or disables the dictionary payload.
func (f *ColumnFlag) SetHasDictionary(enabled bool) {
	if enabled {
		f.Options |= DictionaryMask
	} else {
		f.Options &^= DictionaryMask
	}
}

// IsValidMagicNumber checks the magic number in the Options field.
func (f ColumnFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicColumnV1Opt
}

// GetMagicNumber returns the magic number from the Options field.
func (f ColumnFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsLittleEndian returns whether the header and codes are little-endian.
func (f ColumnFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the header and codes are big-endian.
func (f ColumnFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ColumnFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *ColumnFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// SetCodeEncoding sets the code encoding type.
func (f *ColumnFlag) SetCodeEncoding(encoding format.EncodingType) {
	f.CodeEncoding = uint8(encoding)
}

// GetCodeEncoding returns the code encoding type.
func (f ColumnFlag) GetCodeEncoding() format.EncodingType {
	return format.EncodingType(f.CodeEncoding)
}

// SetPayloadCompression sets the code stream compression type.
func (f *ColumnFlag) SetPayloadCompression(compression format.CompressionType) {
	f.PayloadCompression = uint8(compression)
}

// GetPayloadCompression returns the code stream compression type.
func (f ColumnFlag) GetPayloadCompression() format.CompressionType {
	return format.CompressionType(f.PayloadCompression)
}

// Validate checks the magic number, the reserved bits and the encoding and compression types.
func (f ColumnFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return fmt.Errorf("%w: reserved bits set in options 0x%04x", errs.ErrInvalidHeaderFlags, f.Options)
	}

	if _, ok := validCodeEncodings[f.CodeEncoding]; !ok {
		return fmt.Errorf("%w: code encoding 0x%02x", errs.ErrInvalidHeaderFlags, f.CodeEncoding)
	}

	if _, ok := validPayloadCompressions[f.PayloadCompression]; !ok {
		return fmt.Errorf("%w: payload compression 0x%02x", errs.ErrInvalidHeaderFlags, f.PayloadCompression)
	}

	return nil
}
