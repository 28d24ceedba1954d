package offsetset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/flatview/errs"
)

func TestSet_Insert(t *testing.T) {
	set := New[byte]()

	foo := set.Insert([]byte("foo"))
	bar := set.Insert([]byte("bar"))
	require.Equal(t, 0, foo)
	// "foo" occupies 1 length byte + 3 content bytes.
	require.Equal(t, 4, bar)
	require.Equal(t, 2, set.Len())

	got, err := Read[byte](set.Bytes(), foo)
	require.NoError(t, err)
	require.Equal(t, "foo", string(got))

	got, err = Read[byte](set.Bytes(), bar)
	require.NoError(t, err)
	require.Equal(t, "bar", string(got))
}

func TestSet_InsertDeduplicates(t *testing.T) {
	set := New[byte]()

	first := set.Insert([]byte("payload"))
	size := len(set.Bytes())

	for range 5 {
		require.Equal(t, first, set.Insert([]byte("payload")))
	}
	require.Equal(t, size, len(set.Bytes()), "duplicate insertions must not grow the buffer")
	require.Equal(t, 1, set.Len())
}

func TestSet_InsertEmpty(t *testing.T) {
	set := New[byte]()

	off := set.Insert(nil)
	require.Equal(t, 0, off)
	require.Equal(t, off, set.Insert([]byte{}))

	got, err := Read[byte](set.Bytes(), off)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSet_StructElements(t *testing.T) {
	type pair struct {
		Key uint8
		Val uint8
	}

	set := New[pair]()
	pairs := []pair{{1, 2}, {3, 4}}
	off := set.Insert(pairs)

	got, err := Read[pair](set.Bytes(), off)
	require.NoError(t, err)
	require.Equal(t, pairs, got)
}

func TestSet_Entries(t *testing.T) {
	set := New[byte]()
	offsets := []int{
		set.Insert([]byte("a")),
		set.Insert([]byte("bb")),
		set.Insert([]byte("ccc")),
	}

	var gotOffsets []int
	var gotValues []string
	for off, items := range set.Entries() {
		gotOffsets = append(gotOffsets, off)
		gotValues = append(gotValues, string(items))
	}
	require.Equal(t, offsets, gotOffsets)
	require.Equal(t, []string{"a", "bb", "ccc"}, gotValues)
}

func TestFromBytes(t *testing.T) {
	set := New[byte]()
	foo := set.Insert([]byte("foo"))
	bar := set.Insert([]byte("bar"))

	restored, err := FromBytes[byte](set.Bytes())
	require.NoError(t, err)
	require.Equal(t, set.Bytes(), restored.Bytes())

	// Re-inserting existing content yields the original offsets.
	require.Equal(t, foo, restored.Insert([]byte("foo")))
	require.Equal(t, bar, restored.Insert([]byte("bar")))

	// New content appends past the restored entries.
	baz := restored.Insert([]byte("baz"))
	require.Greater(t, baz, bar)
}

func TestFromBytes_Corrupt(t *testing.T) {
	set := New[byte]()
	set.Insert([]byte("foo"))

	data := set.Bytes()

	// Inflate the length prefix past the buffer.
	clone := append([]byte(nil), data...)
	clone[0] = 200
	_, err := FromBytes[byte](clone)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	// Truncated length prefix.
	_, err = FromBytes[byte]([]byte{0x80})
	require.ErrorIs(t, err, errs.ErrTruncatedVarint)
}

func TestRead_OutOfBounds(t *testing.T) {
	set := New[byte]()
	set.Insert([]byte("foo"))

	_, err := Read[byte](set.Bytes(), 100)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)

	_, err = Read[byte](set.Bytes(), -1)
	require.ErrorIs(t, err, errs.ErrOutOfBounds)
}

func TestNew_RejectsUnsupportedTypes(t *testing.T) {
	require.Panics(t, func() { New[uint32]() })
	require.Panics(t, func() { New[struct{}]() })
}
