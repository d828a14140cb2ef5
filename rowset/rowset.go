// Package rowset provides a compressed in-memory index of the non-empty
// rows of a compressed bitmap. It answers inventory questions (how many
// rows carry ink, which ones) without decoding any pixel data.
package rowset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/barch"
)

// RowSet is a set of row indexes backed by a Roaring Bitmap.
type RowSet struct {
	rb *roaring.Bitmap
}

// New creates an empty RowSet.
func New() *RowSet {
	return &RowSet{
		rb: roaring.New(),
	}
}

// FromCompressed builds the set of non-empty rows of c.
func FromCompressed(c *barch.CompressedBitmap) (*RowSet, error) {
	s := New()
	for y := uint(0); y < c.Height(); y++ {
		empty, err := c.IsEmptyRowAt(y)
		if err != nil {
			return nil, err
		}
		if !empty {
			s.rb.Add(uint32(y))
		}
	}
	return s, nil
}

// Add adds a row index to the set.
func (s *RowSet) Add(y uint32) {
	s.rb.Add(y)
}

// Remove removes a row index from the set.
func (s *RowSet) Remove(y uint32) {
	s.rb.Remove(y)
}

// Contains reports whether y is in the set.
func (s *RowSet) Contains(y uint32) bool {
	return s.rb.Contains(y)
}

// IsEmpty reports whether the set is empty.
func (s *RowSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of rows in the set.
func (s *RowSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy.
func (s *RowSet) Clone() *RowSet {
	return &RowSet{
		rb: s.rb.Clone(),
	}
}

// Rows iterates the set in increasing row order.
func (s *RowSet) Rows() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// And intersects s with other in place.
func (s *RowSet) And(other *RowSet) {
	s.rb.And(other.rb)
}

// Or unions other into s in place.
func (s *RowSet) Or(other *RowSet) {
	s.rb.Or(other.rb)
}
