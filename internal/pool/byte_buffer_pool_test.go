package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	capacity := 1024
	bb := NewByteBuffer(capacity)

	require.NotNil(t, bb)
	require.NotNil(t, bb.B)
	assert.Equal(t, 0, len(bb.B), "new buffer should have zero length")
	assert.Equal(t, capacity, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_Bytes(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)
	bb.B = append(bb.B, []byte("hello")...)

	raw := bb.Bytes()

	assert.Equal(t, []byte("hello"), raw)
	// Should return the same underlying slice
	assert.True(t, &bb.B[0] == &raw[0], "Bytes() should return the same underlying slice")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)
	bb.B = append(bb.B, []byte("some data")...)
	originalCap := cap(bb.B)

	bb.Reset()

	assert.Equal(t, 0, len(bb.B), "Reset should clear the buffer length")
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_MustWrite(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)

	bb.MustWrite([]byte("hello"))
	assert.Equal(t, []byte("hello"), bb.B)

	bb.MustWrite([]byte(" world"))
	assert.Equal(t, []byte("hello world"), bb.B)
	assert.Equal(t, 11, bb.Len())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte("12345678"))

	bb.Grow(100)
	assert.GreaterOrEqual(t, bb.Cap()-bb.Len(), 100, "Grow should ensure requested headroom")
	assert.Equal(t, []byte("12345678"), bb.Bytes(), "Grow should preserve contents")
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)

	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []byte("abc"), bb.Bytes())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(TableBufferDefaultSize)
	bb.MustWrite([]byte("payload"))

	var dst bytes.Buffer
	n, err := bb.WriteTo(&dst)
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
	assert.Equal(t, "payload", dst.String())
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 256)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("data"))
	p.Put(bb)

	reused := p.Get()
	require.NotNil(t, reused)
	assert.Equal(t, 0, reused.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_Threshold(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	bb.Grow(1024)
	// Oversized buffers are discarded; Put must not panic.
	p.Put(bb)
	p.Put(nil)
}

func TestGetTableBuffer(t *testing.T) {
	bb := GetTableBuffer()
	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	PutTableBuffer(bb)
}
