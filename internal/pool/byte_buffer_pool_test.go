package pool

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorWriter struct {
	err error
}

func (w *errorWriter) Write(_ []byte) (int, error) {
	return 0, w.err
}

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 1024, bb.Cap())
}

func TestByteBuffer_WriteAndReset(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	require.NoError(t, bb.WriteByte(' '))
	n, err := bb.Write([]byte("world"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, []byte("hello world"), bb.Bytes())

	capBefore := bb.Cap()
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, capBefore, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(ColumnBufferDefaultSize)
	bb.MustWrite([]byte("test data"))

	var buf bytes.Buffer
	n, err := bb.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "test data", buf.String())

	_, err = bb.WriteTo(&errorWriter{err: io.ErrShortWrite})
	require.ErrorIs(t, err, io.ErrShortWrite)
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		bb.Grow(100)
		assert.Equal(t, ColumnBufferDefaultSize, bb.Cap())
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		bb.MustWrite(make([]byte, ColumnBufferDefaultSize))
		bb.Grow(1)
		assert.Equal(t, 2*ColumnBufferDefaultSize, bb.Cap())
		assert.Equal(t, ColumnBufferDefaultSize, bb.Len())
	})

	t.Run("large request wins", func(t *testing.T) {
		bb := NewByteBuffer(ColumnBufferDefaultSize)
		bb.MustWrite(make([]byte, ColumnBufferDefaultSize))
		bb.Grow(10 * ColumnBufferDefaultSize)
		assert.GreaterOrEqual(t, bb.Cap(), 11*ColumnBufferDefaultSize)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("keep me"))
		bb.Grow(ColumnBufferDefaultSize * 2)
		assert.Equal(t, []byte("keep me"), bb.Bytes())
	})
}

func TestColumnBufferPool(t *testing.T) {
	bb := GetColumnBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.GreaterOrEqual(t, bb.Cap(), ColumnBufferDefaultSize)

	bb.MustWrite([]byte("sensitive"))
	PutColumnBuffer(bb)
	assert.Equal(t, 0, bb.Len(), "Put should reset the buffer")

	assert.NotPanics(t, func() { PutColumnBuffer(nil) })
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := NewByteBuffer(128)
	big.MustWrite([]byte("x"))
	p.Put(big)
	assert.Equal(t, 1, big.Len(), "oversized buffer is dropped without reset")

	small := p.Get()
	require.NotNil(t, small)
	assert.LessOrEqual(t, small.Cap(), 64)
}
