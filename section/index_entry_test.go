package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatview/encoding"
	"github.com/arloliu/flatview/errs"
)

func TestIndexEntry_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		entry IndexEntry
	}{
		{"zero", IndexEntry{}},
		{"small", IndexEntry{Offset: 3, Length: 3}},
		{"multi-byte varints", IndexEntry{Offset: 300, Length: 70000}},
		{"max", IndexEntry{Offset: math.MaxUint32, Length: math.MaxUint32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := tt.entry.AppendTo(nil)

			got, n, err := ParseIndexEntry(buf)
			require.NoError(t, err)
			require.Equal(t, tt.entry, got)
			require.Equal(t, len(buf), n)
		})
	}
}

func TestIndexEntry_AppendToExtends(t *testing.T) {
	buf := []byte{0xff}
	buf = IndexEntry{Offset: 1, Length: 2}.AppendTo(buf)
	require.Equal(t, []byte{0xff, 0x1, 0x2}, buf)
}

func TestParseIndexEntry_Truncated(t *testing.T) {
	buf := IndexEntry{Offset: 300, Length: 300}.AppendTo(nil)

	for i := 0; i < len(buf); i++ {
		_, _, err := ParseIndexEntry(buf[:i])
		require.ErrorIs(t, err, errs.ErrTruncatedVarint, "prefix of %d bytes", i)
	}
}

func TestParseIndexEntry_ExceedsUint32(t *testing.T) {
	buf := encoding.AppendUvarint(nil, uint64(math.MaxUint32)+1)
	buf = encoding.AppendUvarint(buf, 1)

	_, _, err := ParseIndexEntry(buf)
	require.ErrorIs(t, err, errs.ErrCorruptIndex)
}

func TestIndexEntry_End(t *testing.T) {
	e := IndexEntry{Offset: math.MaxUint32, Length: math.MaxUint32}
	require.Equal(t, uint64(math.MaxUint32)*2, e.End())
}
