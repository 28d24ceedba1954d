package compress

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatview/format"
	"github.com/arloliu/flatview/internal/pool"
	"github.com/arloliu/flatview/strtable"
	"github.com/arloliu/flatview/writer"
)

// serializedTable builds a representative string table payload: repetitive
// string data that every codec should shrink.
func serializedTable(t *testing.T) []byte {
	t.Helper()

	b := strtable.NewBuilder()
	for i := 0; i < 200; i++ {
		_, err := b.InternString("service.instance." + strings.Repeat("x", i%17))
		require.NoError(t, err)
	}

	buf := pool.NewByteBuffer(pool.TableBufferDefaultSize)
	require.NoError(t, b.Finalize(writer.New(buf)))

	return buf.Bytes()
}

func TestCodecRoundTrip(t *testing.T) {
	data := serializedTable(t)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
	for _, ct := range types {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := GetCodec(ct)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, restored)

			// The restored buffer must still open as a table.
			table, err := strtable.FromBytes(restored)
			require.NoError(t, err)
			require.Positive(t, table.Count())
		})
	}
}

func TestCodecCompressesRepetitiveData(t *testing.T) {
	data := serializedTable(t)

	for _, ct := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(data)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(data), "%s should shrink repetitive table data", ct)
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)
		require.Empty(t, compressed)

		restored, err := codec.Decompress(nil)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestNoOpSharesMemory(t *testing.T) {
	codec := NewNoOpCompressor()
	data := []byte("as-is")

	out, err := codec.Compress(data)
	require.NoError(t, err)
	require.True(t, &out[0] == &data[0], "no-op codec must not copy")
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "table")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xff), "table")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid table compression")
}

func TestGetCodec_Unsupported(t *testing.T) {
	_, err := GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestDecompressRejectsGarbage(t *testing.T) {
	garbage := []byte("definitely not a zstd frame")

	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	_, err = codec.Decompress(garbage)
	require.Error(t, err)
}
