package encoding

import (
	"fmt"

	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

// CompressedColumn is an encoded column together with the codec that produced it.
type CompressedColumn struct {
	// Codec encoded Data and is used to decode it.
	Codec Codec
	// Data is the encoded code stream.
	Data []byte
	// Count is the number of codes in Data.
	Count int
}

// Encoding returns the codec type, or 0 when no codec is set.
func (c CompressedColumn) Encoding() format.EncodingType {
	if c.Codec == nil {
		return 0
	}

	return c.Codec.Type()
}

// Size returns the encoded size in bytes.
func (c CompressedColumn) Size() int {
	return len(c.Data)
}

// Ratio returns the encoded size divided by the size of the codes as 4-byte integers.
// It returns 0 for an empty column.
func (c CompressedColumn) Ratio() float64 {
	if c.Count == 0 {
		return 0
	}

	return float64(len(c.Data)) / float64(c.Count*rawCodeSize)
}

// Compress encodes codes with codec. A nil codec selects VarByteCodec.
func Compress(codes []uint32, codec Codec) CompressedColumn {
	if codec == nil {
		codec = NewVarByteCodec()
	}

	return CompressedColumn{
		Codec: codec,
		Data:  codec.Encode(nil, codes),
		Count: len(codes),
	}
}

// Decompress decodes the first count codes of c.
//
// It fails with errs.ErrMalformedStream when c.Data ends before count codes or
// holds a code that overflows 32 bits, and with errs.ErrUnsupportedEncoding when
// c carries no codec. Bytes after the count-th code are ignored.
func Decompress(c CompressedColumn, count int) ([]uint32, error) {
	if c.Codec == nil {
		return nil, fmt.Errorf("%w: compressed column has no codec", errs.ErrUnsupportedEncoding)
	}

	codes, _, err := c.Codec.DecodePrefix(c.Data, count)

	return codes, err
}
