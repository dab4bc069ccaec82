package encoding

import (
	"fmt"

	"github.com/arloliu/dicol/endian"
	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

const rawCodeSize = 4

// RawCodec writes every code as a fixed 4-byte integer in its engine's byte order.
//
// It is the baseline the variable-byte codec is compared against and the
// layout of choice when codes are large and uniformly distributed.
type RawCodec struct {
	engine endian.EndianEngine
}

var _ Codec = RawCodec{}

// NewRawCodec creates a fixed-width codec using engine's byte order.
// A nil engine selects little-endian.
func NewRawCodec(engine endian.EndianEngine) RawCodec {
	if engine == nil {
		engine = endian.GetLittleEndianEngine()
	}

	return RawCodec{engine: engine}
}

// Type returns format.TypeRaw.
func (RawCodec) Type() format.EncodingType {
	return format.TypeRaw
}

// Engine returns the codec's byte order.
func (c RawCodec) Engine() endian.EndianEngine {
	return c.engine
}

// Encode appends 4 bytes per code to dst.
func (c RawCodec) Encode(dst []byte, codes []uint32) []byte {
	engine := c.engineOrDefault()

	size := len(codes) * rawCodeSize
	if cap(dst)-len(dst) < size {
		grown := make([]byte, len(dst), len(dst)+size)
		copy(grown, dst)
		dst = grown
	}

	for _, code := range codes {
		dst = engine.AppendUint32(dst, code)
	}

	return dst
}

// Decode decodes exactly count codes; data must be exactly 4*count bytes.
func (c RawCodec) Decode(data []byte, count int) ([]uint32, error) {
	out, n, err := c.DecodePrefix(data, count)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d codes", errs.ErrMalformedStream, len(data)-n, count)
	}

	return out, nil
}

// DecodePrefix decodes the first count codes of data, which occupy 4*count bytes.
func (c RawCodec) DecodePrefix(data []byte, count int) ([]uint32, int, error) {
	if count < 0 {
		return nil, 0, fmt.Errorf("%w: negative count %d", errs.ErrMalformedStream, count)
	}

	want := count * rawCodeSize
	if len(data) < want {
		return nil, 0, fmt.Errorf("%w: %d bytes cannot hold %d fixed-width codes", errs.ErrMalformedStream, len(data), count)
	}

	engine := c.engineOrDefault()
	out := make([]uint32, count)
	for i := range out {
		out[i] = engine.Uint32(data[i*rawCodeSize:])
	}

	return out, want, nil
}

// engineOrDefault keeps the zero RawCodec usable.
func (c RawCodec) engineOrDefault() endian.EndianEngine {
	if c.engine == nil {
		return endian.GetLittleEndianEngine()
	}

	return c.engine
}
