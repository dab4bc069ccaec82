package encoding

import (
	"fmt"

	"github.com/arloliu/dicol/endian"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

// CreateCodec returns the codec for encType.
//
// Parameters:
//   - encType: encoding recorded in a column header
//   - engine: byte order for fixed-width encodings; ignored by byte-oriented ones
//
// Returns:
//   - Codec: the codec for encType
//   - error: errs.ErrUnsupportedEncoding if encType has no codec
func CreateCodec(encType format.EncodingType, engine endian.EndianEngine) (Codec, error) {
	switch encType {
	case format.TypeVarByte:
		return NewVarByteCodec(), nil
	case format.TypeRaw:
		return NewRawCodec(engine), nil
	default:
		return nil, fmt.Errorf("%w: %s (0x%02x)", errs.ErrUnsupportedEncoding, encType, uint8(encType))
	}
}
