package barch

import "github.com/hupe1980/barch/bitset"

// CompressedBitmap is a compressed grayscale image: dimensions, a per-row
// lookup table recording which rows are non-empty, and the concatenated
// encoded rows in increasing y order.
//
// Only Compress and Uncompress populate or consume the pixel data; rows
// cannot be set individually.
type CompressedBitmap struct {
	size Size

	// rowLookupTable holds one bit per row, rounded up to whole words. A
	// set bit marks a non-empty row; empty rows contribute no pixel data.
	rowLookupTable *bitset.BitSet

	// pixelData holds the prefix-coded encodings of all non-empty rows.
	pixelData *bitset.BitSet
}

// NewCompressedBitmap creates an empty compressed bitmap of the given
// dimensions: the lookup table is all zero and the pixel data is empty.
func NewCompressedBitmap(width, height uint) (*CompressedBitmap, error) {
	size, err := NewSize(width, height)
	if err != nil {
		return nil, err
	}
	return &CompressedBitmap{
		size:           size,
		rowLookupTable: bitset.New(height),
		pixelData:      bitset.New(0),
	}, nil
}

// Width returns the width in pixels.
func (c *CompressedBitmap) Width() uint { return c.size.width }

// Height returns the height in pixels.
func (c *CompressedBitmap) Height() uint { return c.size.height }

// IsEmptyRowAt reports whether row y consists entirely of white pixels.
func (c *CompressedBitmap) IsEmptyRowAt(y uint) (bool, error) {
	if y >= c.size.height {
		return false, invalidY(y, c.size.height)
	}
	return !c.rowLookupTable.Test(y), nil
}

// PixelDataWordCount returns the number of words backing the pixel data.
func (c *CompressedBitmap) PixelDataWordCount() uint {
	return c.pixelData.WordCount()
}

// Equal reports structural equality: dimensions, lookup table words and
// pixel data words all match.
func (c *CompressedBitmap) Equal(other *CompressedBitmap) bool {
	if c == other {
		return true
	}
	if c.size != other.size {
		return false
	}
	return c.rowLookupTable.Equal(other.rowLookupTable) &&
		c.pixelData.Equal(other.pixelData)
}

// Clone returns a deep copy.
func (c *CompressedBitmap) Clone() *CompressedBitmap {
	return &CompressedBitmap{
		size:           c.size,
		rowLookupTable: c.rowLookupTable.Clone(),
		pixelData:      c.pixelData.Clone(),
	}
}
