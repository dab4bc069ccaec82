package encoding

import (
	"fmt"

	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
	"github.com/arloliu/dicol/internal/pool"
)

const (
	// MaxVarByteLen is the maximum encoded length of a uint32 code.
	MaxVarByteLen = 5

	continuationBit = 0x80
	groupMask       = 0x7F
	// lastGroupMask covers the 4 bits of a uint32 that remain for the fifth byte.
	lastGroupMask = 0x0F
)

// AppendVarByte appends the variable-byte encoding of v to dst.
func AppendVarByte(dst []byte, v uint32) []byte {
	for v >= continuationBit {
		dst = append(dst, byte(v)|continuationBit)
		v >>= 7
	}

	return append(dst, byte(v))
}

// VarByteLen returns the number of bytes AppendVarByte writes for v.
func VarByteLen(v uint32) int {
	switch {
	case v < 1<<7:
		return 1
	case v < 1<<14:
		return 2
	case v < 1<<21:
		return 3
	case v < 1<<28:
		return 4
	default:
		return MaxVarByteLen
	}
}

// readVarByte decodes one code starting at data[off].
// It returns the value and the number of bytes consumed.
func readVarByte(data []byte, off int) (uint32, int, error) {
	// one-byte codes dominate low-cardinality columns
	if off < len(data) && data[off] < continuationBit {
		return uint32(data[off]), 1, nil
	}

	var v uint32
	for i := range MaxVarByteLen {
		if off+i >= len(data) {
			return 0, 0, fmt.Errorf("%w: stream ends inside a code at offset %d", errs.ErrMalformedStream, off)
		}

		b := data[off+i]
		if i == MaxVarByteLen-1 && b > lastGroupMask {
			return 0, 0, fmt.Errorf("%w: code at offset %d overflows 32 bits", errs.ErrMalformedStream, off)
		}

		v |= uint32(b&groupMask) << (7 * i)
		if b < continuationBit {
			return v, i + 1, nil
		}
	}

	// the fifth byte check above rejects any continuation bit
	return 0, 0, fmt.Errorf("%w: code at offset %d overflows 32 bits", errs.ErrMalformedStream, off)
}

// VarByteCodec is the variable-byte Codec.
type VarByteCodec struct{}

var _ Codec = VarByteCodec{}

// NewVarByteCodec creates a variable-byte codec.
func NewVarByteCodec() VarByteCodec {
	return VarByteCodec{}
}

// Type returns format.TypeVarByte.
func (VarByteCodec) Type() format.EncodingType {
	return format.TypeVarByte
}

// Encode appends the variable-byte encoding of codes to dst.
func (VarByteCodec) Encode(dst []byte, codes []uint32) []byte {
	size := 0
	for _, c := range codes {
		size += VarByteLen(c)
	}

	if cap(dst)-len(dst) < size {
		grown := make([]byte, len(dst), len(dst)+size)
		copy(grown, dst)
		dst = grown
	}

	for _, c := range codes {
		dst = AppendVarByte(dst, c)
	}

	return dst
}

// Decode decodes exactly count codes from data; data must hold nothing else.
func (c VarByteCodec) Decode(data []byte, count int) ([]uint32, error) {
	out, n, err := c.DecodePrefix(data, count)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d codes", errs.ErrMalformedStream, len(data)-n, count)
	}

	return out, nil
}

// DecodePrefix decodes the first count codes of data and reports how many
// bytes they occupy.
func (VarByteCodec) DecodePrefix(data []byte, count int) ([]uint32, int, error) {
	if count < 0 {
		return nil, 0, fmt.Errorf("%w: negative count %d", errs.ErrMalformedStream, count)
	}
	// every code takes at least one byte
	if count > len(data) {
		return nil, 0, fmt.Errorf("%w: %d bytes cannot hold %d codes", errs.ErrMalformedStream, len(data), count)
	}

	out := make([]uint32, count)
	off := 0
	for i := range out {
		v, n, err := readVarByte(data, off)
		if err != nil {
			return nil, 0, fmt.Errorf("code %d: %w", i, err)
		}
		out[i] = v
		off += n
	}

	return out, off, nil
}

// VarByteEncoder is the streaming variable-byte ColumnarEncoder.
//
// Note: The VarByteEncoder is NOT thread-safe.
type VarByteEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[uint32] = (*VarByteEncoder)(nil)

// NewVarByteEncoder creates a streaming encoder backed by a pooled buffer.
func NewVarByteEncoder() *VarByteEncoder {
	return &VarByteEncoder{buf: pool.GetColumnBuffer()}
}

// Write encodes a single code.
//
// Panics if Finish has been called.
func (e *VarByteEncoder) Write(code uint32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.B = AppendVarByte(e.buf.B, code)
	e.count++
}

// WriteSlice encodes codes, growing the buffer once for the whole slice.
//
// Panics if Finish has been called.
func (e *VarByteEncoder) WriteSlice(codes []uint32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	size := 0
	for _, c := range codes {
		size += VarByteLen(c)
	}
	e.buf.Grow(size)

	for _, c := range codes {
		e.buf.B = AppendVarByte(e.buf.B, c)
	}
	e.count += len(codes)
}

// Bytes returns the encoded stream.
func (e *VarByteEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded codes.
func (e *VarByteEncoder) Len() int {
	return e.count
}

// Size returns the encoded size in bytes.
func (e *VarByteEncoder) Size() int {
	return e.buf.Len()
}

// Reset discards the encoded codes.
func (e *VarByteEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

// Finish returns the buffer to the pool.
func (e *VarByteEncoder) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
}
