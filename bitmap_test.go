package barch

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSizeValidation(t *testing.T) {
	tests := []struct {
		name    string
		width   uint
		height  uint
		wantErr error
	}{
		{"1x1", 1, 1, nil},
		{"wide", 10000, 1, nil},
		{"zero width", 0, 5, ErrTooSmall},
		{"zero height", 5, 0, ErrTooSmall},
		{"zero both", 0, 0, ErrTooSmall},
		{"overflow", math.MaxUint / 2, 3, ErrTooLarge},
		{"max by one", math.MaxUint, 2, ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size, err := NewSize(tt.width, tt.height)
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tt.width, size.Width())
				assert.Equal(t, tt.height, size.Height())
				assert.Equal(t, tt.width*tt.height, size.PixelCount())
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var sizeErr *InvalidSizeError
			require.ErrorAs(t, err, &sizeErr)
			assert.Equal(t, tt.width, sizeErr.Width)
			assert.Equal(t, tt.height, sizeErr.Height)
		})
	}
}

func TestNewBitmapFillsBackground(t *testing.T) {
	for _, background := range []Pixel{White, Black, 0x7F} {
		bm, err := NewBitmap(7, 3, background)
		require.NoError(t, err)

		assert.Equal(t, uint(7), bm.Width())
		assert.Equal(t, uint(3), bm.Height())
		assert.Equal(t, uint(21), bm.PixelCount())
		for _, p := range bm.Data() {
			assert.Equal(t, background, p)
		}
	}
}

func TestNewBitmapRejectsInvalidSizes(t *testing.T) {
	_, err := NewBitmap(0, 4, White)
	assert.ErrorIs(t, err, ErrTooSmall)

	_, err = NewBitmap(4, 0, White)
	assert.ErrorIs(t, err, ErrTooSmall)

	_, err = NewBitmap(math.MaxUint/2, 2, White)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestRowAt(t *testing.T) {
	bm, err := NewBitmap(4, 2, White)
	require.NoError(t, err)

	row, err := bm.RowAt(1)
	require.NoError(t, err)
	require.Len(t, row, 4)

	// Rows are views into the bitmap, not copies.
	row[2] = 0x42
	p, err := bm.PixelAt(2, 1)
	require.NoError(t, err)
	assert.Equal(t, Pixel(0x42), p)

	_, err = bm.RowAt(2)
	require.Error(t, err)
	var coordErr *InvalidCoordinateError
	require.ErrorAs(t, err, &coordErr)
	assert.Equal(t, AxisY, coordErr.Axis)
	assert.Equal(t, uint(2), coordErr.Value)
	assert.Equal(t, uint(2), coordErr.Limit)
}

func TestPixelAtBoundsChecks(t *testing.T) {
	bm, err := NewBitmap(3, 2, White)
	require.NoError(t, err)

	var coordErr *InvalidCoordinateError

	_, err = bm.PixelAt(3, 0)
	require.ErrorAs(t, err, &coordErr)
	assert.Equal(t, AxisX, coordErr.Axis)

	_, err = bm.PixelAt(0, 2)
	require.ErrorAs(t, err, &coordErr)
	assert.Equal(t, AxisY, coordErr.Axis)

	// X is checked before Y when both are out of range.
	_, err = bm.PixelAt(9, 9)
	require.ErrorAs(t, err, &coordErr)
	assert.Equal(t, AxisX, coordErr.Axis)

	require.Error(t, bm.SetPixelAt(3, 0, Black))
	require.Error(t, bm.SetPixelAt(0, 2, Black))
}

func TestSetPixelAt(t *testing.T) {
	bm, err := NewBitmap(3, 3, White)
	require.NoError(t, err)

	require.NoError(t, bm.SetPixelAt(1, 2, 0x55))
	p, err := bm.PixelAt(1, 2)
	require.NoError(t, err)
	assert.Equal(t, Pixel(0x55), p)
}

func TestBitmapEqualAndClone(t *testing.T) {
	a, err := NewBitmap(4, 4, White)
	require.NoError(t, err)
	b, err := NewBitmap(4, 4, White)
	require.NoError(t, err)

	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(b))

	require.NoError(t, b.SetPixelAt(0, 0, Black))
	assert.False(t, a.Equal(b))

	c, err := NewBitmap(4, 5, White)
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "differing dimensions are never equal")

	clone := b.Clone()
	assert.True(t, b.Equal(clone))
	require.NoError(t, clone.SetPixelAt(1, 1, Black))
	assert.False(t, b.Equal(clone), "clone must be deep")
}

func TestInvalidSizeErrorUnwraps(t *testing.T) {
	_, err := NewSize(0, 0)
	assert.True(t, errors.Is(err, ErrTooSmall))
	assert.False(t, errors.Is(err, ErrTooLarge))
}
