package encoding

import "github.com/arloliu/dicol/internal/pool"

// NewStreamEncoder returns a pooled streaming encoder producing codec's format.
//
// Variable-byte streams use VarByteEncoder; any other codec is driven through
// its Encode method. A nil codec selects variable-byte. Callers must Finish
// the encoder to return its buffer.
func NewStreamEncoder(codec Codec) ColumnarEncoder[uint32] {
	switch codec.(type) {
	case nil, VarByteCodec:
		return NewVarByteEncoder()
	default:
		return &codecEncoder{codec: codec, buf: pool.GetColumnBuffer()}
	}
}

// codecEncoder adapts a whole-column Codec to ColumnarEncoder.
type codecEncoder struct {
	codec Codec
	buf   *pool.ByteBuffer
	one   [1]uint32
	count int
}

func (e *codecEncoder) Write(code uint32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.one[0] = code
	e.buf.B = e.codec.Encode(e.buf.B, e.one[:])
	e.count++
}

func (e *codecEncoder) WriteSlice(codes []uint32) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.buf.B = e.codec.Encode(e.buf.B, codes)
	e.count += len(codes)
}

func (e *codecEncoder) Bytes() []byte { return e.buf.Bytes() }

func (e *codecEncoder) Len() int { return e.count }

func (e *codecEncoder) Size() int { return e.buf.Len() }

func (e *codecEncoder) Reset() {
	if e.buf != nil {
		e.buf.Reset()
	}
	e.count = 0
}

func (e *codecEncoder) Finish() {
	if e.buf != nil {
		pool.PutColumnBuffer(e.buf)
		e.buf = nil
	}
}
