// Package bitmap provides a compressed set of point identifiers used as
// a query-time allow-list filter.
package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a 32-bit Roaring Bitmap over external point identifiers.
// It wraps the official roaring implementation.
type Bitmap struct {
	rb *roaring.Bitmap
}

// New creates a new empty bitmap.
func New() *Bitmap {
	return &Bitmap{
		rb: roaring.New(),
	}
}

// Of creates a bitmap containing the given identifiers.
func Of(ids ...uint32) *Bitmap {
	return &Bitmap{
		rb: roaring.BitmapOf(ids...),
	}
}

// Add adds an identifier to the bitmap.
func (b *Bitmap) Add(id uint32) {
	b.rb.Add(id)
}

// Remove removes an identifier from the bitmap.
func (b *Bitmap) Remove(id uint32) {
	b.rb.Remove(id)
}

// Contains checks if an identifier is in the bitmap.
func (b *Bitmap) Contains(id uint32) bool {
	return b.rb.Contains(id)
}

// IsEmpty returns true if the bitmap is empty.
func (b *Bitmap) IsEmpty() bool {
	return b.rb.IsEmpty()
}

// Cardinality returns the number of identifiers in the bitmap.
func (b *Bitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// Clone returns a deep copy of the bitmap.
func (b *Bitmap) Clone() *Bitmap {
	return &Bitmap{
		rb: b.rb.Clone(),
	}
}

// And computes the intersection with another bitmap in place.
func (b *Bitmap) And(other *Bitmap) {
	b.rb.And(other.rb)
}

// Or computes the union with another bitmap in place.
func (b *Bitmap) Or(other *Bitmap) {
	b.rb.Or(other.rb)
}

// Iterator returns an iterator over the bitmap.
func (b *Bitmap) Iterator() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
