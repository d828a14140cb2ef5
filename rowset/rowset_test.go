package rowset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/barch"
)

func compressRows(t *testing.T, rows ...[]byte) *barch.CompressedBitmap {
	t.Helper()
	width := uint(len(rows[0]))
	bm, err := barch.NewBitmap(width, uint(len(rows)), barch.White)
	require.NoError(t, err)
	for y, pixels := range rows {
		row, err := bm.RowAt(uint(y))
		require.NoError(t, err)
		copy(row, pixels)
	}
	compressed, err := barch.Compress(bm, nil)
	require.NoError(t, err)
	return compressed
}

func TestFromCompressed(t *testing.T) {
	compressed := compressRows(t,
		[]byte{0x00, 0x00, 0x00, 0x00},
		[]byte{0xFF, 0xFF, 0xFF, 0xFF},
		[]byte{0xDE, 0xAD, 0xBE, 0xEF},
		[]byte{0xFF, 0xFF, 0xFF, 0xFF},
	)

	set, err := FromCompressed(compressed)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), set.Cardinality())
	assert.True(t, set.Contains(0))
	assert.False(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(3))

	var rows []uint32
	for y := range set.Rows() {
		rows = append(rows, y)
	}
	assert.Equal(t, []uint32{0, 2}, rows)
}

func TestFromCompressedAllWhite(t *testing.T) {
	compressed := compressRows(t,
		[]byte{0xFF, 0xFF},
		[]byte{0xFF, 0xFF},
	)

	set, err := FromCompressed(compressed)
	require.NoError(t, err)
	assert.True(t, set.IsEmpty())
	assert.Equal(t, uint64(0), set.Cardinality())
}

func TestSetOperations(t *testing.T) {
	a := New()
	a.Add(1)
	a.Add(3)
	a.Add(5)

	b := New()
	b.Add(3)
	b.Add(5)
	b.Add(7)

	union := a.Clone()
	union.Or(b)
	assert.Equal(t, uint64(4), union.Cardinality())

	inter := a.Clone()
	inter.And(b)
	assert.Equal(t, uint64(2), inter.Cardinality())
	assert.True(t, inter.Contains(3))
	assert.False(t, inter.Contains(1))

	a.Remove(1)
	assert.False(t, a.Contains(1))

	// Clone is independent of its source.
	assert.True(t, union.Contains(1))
}
