package encoding

import (
	"bytes"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/dicol/errs"
	"github.com/arloliu/dicol/format"
)

func TestAppendVarByte(t *testing.T) {
	tests := []struct {
		name  string
		value uint32
		want  []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one byte max", 127, []byte{0x7F}},
		{"two bytes min", 128, []byte{0x80, 0x01}},
		{"300", 300, []byte{0xAC, 0x02}},
		{"two bytes max", 1<<14 - 1, []byte{0xFF, 0x7F}},
		{"three bytes min", 1 << 14, []byte{0x80, 0x80, 0x01}},
		{"max uint32", math.MaxUint32, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x0F}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AppendVarByte(nil, tt.value)
			require.Equal(t, tt.want, got)
			require.Equal(t, len(tt.want), VarByteLen(tt.value))
		})
	}
}

func TestVarByteCodec_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	random := make([]uint32, 1000)
	for i := range random {
		random[i] = rng.Uint32() >> rng.IntN(32)
	}

	tests := []struct {
		name  string
		codes []uint32
	}{
		{"empty", []uint32{}},
		{"single zero", []uint32{0}},
		{"low cardinality", []uint32{0, 1, 0, 2, 1, 0, 0, 3}},
		{"boundaries", []uint32{127, 128, 16383, 16384, 1<<21 - 1, 1 << 21, 1<<28 - 1, 1 << 28, math.MaxUint32}},
		{"random widths", random},
	}

	codec := NewVarByteCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := codec.Encode(nil, tt.codes)

			decoded, err := codec.Decode(data, len(tt.codes))
			require.NoError(t, err)
			require.Equal(t, tt.codes, decoded)
		})
	}
}

func TestVarByteCodec_EncodeAppends(t *testing.T) {
	codec := NewVarByteCodec()
	prefix := []byte{0xAA, 0xBB}

	out := codec.Encode(slices.Clone(prefix), []uint32{1, 300})
	require.Equal(t, []byte{0xAA, 0xBB, 0x01, 0xAC, 0x02}, out)
}

func TestVarByteCodec_SmallCodesTakeOneByte(t *testing.T) {
	codes := make([]uint32, 10_000)
	for i := range codes {
		codes[i] = uint32(i % 4) //nolint: gosec
	}

	data := NewVarByteCodec().Encode(nil, codes)
	require.Len(t, data, len(codes))
}

func TestVarByteCodec_Type(t *testing.T) {
	require.Equal(t, format.TypeVarByte, NewVarByteCodec().Type())
}

func TestVarByteCodec_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		data  []byte
		count int
	}{
		{"empty stream with count", nil, 1},
		{"truncated continuation", []byte{0x80}, 1},
		{"truncated second code", []byte{0x01, 0xFF, 0xFF}, 2},
		{"fifth byte too large", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0x10}, 1},
		{"continuation on fifth byte", []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, 1},
		{"trailing bytes", []byte{0x01, 0x02, 0x03}, 2},
		{"trailing bytes after empty", []byte{0x00}, 0},
		{"negative count", []byte{0x00}, -1},
	}

	codec := NewVarByteCodec()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := codec.Decode(tt.data, tt.count)
			require.ErrorIs(t, err, errs.ErrMalformedStream)
			require.Nil(t, decoded)
		})
	}
}

func TestVarByteCodec_DecodeNeverPanics(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	codec := NewVarByteCodec()

	for range 500 {
		data := make([]byte, rng.IntN(16))
		for i := range data {
			data[i] = byte(rng.UintN(256))
		}
		count := rng.IntN(20)

		require.NotPanics(t, func() {
			_, _ = codec.Decode(data, count)
		})
	}
}

func TestVarByteEncoder(t *testing.T) {
	enc := NewVarByteEncoder()
	defer enc.Finish()

	enc.Write(5)
	enc.WriteSlice([]uint32{300, math.MaxUint32})

	require.Equal(t, 3, enc.Len())
	require.Equal(t, 1+2+5, enc.Size())

	decoded, err := NewVarByteCodec().Decode(enc.Bytes(), enc.Len())
	require.NoError(t, err)
	require.Equal(t, []uint32{5, 300, math.MaxUint32}, decoded)

	enc.Reset()
	require.Equal(t, 0, enc.Len())
	require.Equal(t, 0, enc.Size())
}

func TestVarByteEncoder_WriteAfterFinish(t *testing.T) {
	enc := NewVarByteEncoder()
	enc.Finish()

	require.Panics(t, func() { enc.Write(1) })
	require.Panics(t, func() { enc.WriteSlice([]uint32{1}) })
}

func TestVarByteEncoder_MatchesCodec(t *testing.T) {
	codes := []uint32{0, 1, 128, 70000, 3}

	enc := NewVarByteEncoder()
	defer enc.Finish()
	for _, c := range codes {
		enc.Write(c)
	}

	require.True(t, bytes.Equal(NewVarByteCodec().Encode(nil, codes), enc.Bytes()))
}

func TestVarByteCodec_DecodePrefix(t *testing.T) {
	codes := []uint32{9, 128, 0, math.MaxUint32}
	data := NewVarByteCodec().Encode(nil, codes)
	codec := NewVarByteCodec()

	decoded, n, err := codec.DecodePrefix(data, 2)
	require.NoError(t, err)
	require.Equal(t, codes[:2], decoded)
	require.Equal(t, 1+2, n)

	decoded, n, err = codec.DecodePrefix(data, len(codes))
	require.NoError(t, err)
	require.Equal(t, codes, decoded)
	require.Equal(t, len(data), n)

	_, _, err = codec.DecodePrefix(data[:3], 3)
	require.ErrorIs(t, err, errs.ErrMalformedStream)
}

func BenchmarkVarByteCodec_Encode(b *testing.B) {
	codes := make([]uint32, 100_000)
	for i := range codes {
		codes[i] = uint32(i % 300) //nolint: gosec
	}
	codec := NewVarByteCodec()
	buf := make([]byte, 0, len(codes)*2)

	b.ReportAllocs()
	for b.Loop() {
		buf = codec.Encode(buf[:0], codes)
	}
}

func BenchmarkVarByteCodec_Decode(b *testing.B) {
	codes := make([]uint32, 100_000)
	for i := range codes {
		codes[i] = uint32(i % 300) //nolint: gosec
	}
	codec := NewVarByteCodec()
	data := codec.Encode(nil, codes)

	b.ReportAllocs()
	for b.Loop() {
		_, _ = codec.Decode(data, len(codes))
	}
}
