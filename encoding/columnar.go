package encoding

import "github.com/arloliu/dicol/format"

// ColumnarEncoder accumulates a sequence of values into an encoded byte stream.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded values.
	Size() int

	// Reset discards the encoded values and keeps the internal buffer for reuse.
	Reset()

	// Finish returns buffer resources to the pool.
	//
	// After calling Finish, the encoder is no longer usable. Copy the result of
	// Bytes before calling Finish if it is still needed:
	//
	//	enc := encoding.NewVarByteEncoder()
	//	defer enc.Finish()
	//	enc.WriteSlice(codes)
	//	out := bytes.Clone(enc.Bytes())
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values.
	WriteSlice(values []T)
}

// Codec is a whole-column transform between codes and bytes.
//
// Implementations must be safe for concurrent use.
type Codec interface {
	// Type identifies the codec in persisted headers.
	Type() format.EncodingType

	// Encode appends the encoding of codes to dst and returns the extended slice.
	Encode(dst []byte, codes []uint32) []byte

	// Decode decodes exactly count codes from data.
	//
	// It returns errs.ErrMalformedStream when data is truncated, contains an
	// overflowing value, or has bytes left after the last code.
	Decode(data []byte, count int) ([]uint32, error)

	// DecodePrefix decodes the first count codes of data and returns them
	// with the number of bytes they occupy. Bytes after them are not read.
	DecodePrefix(data []byte, count int) ([]uint32, int, error)
}
