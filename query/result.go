package query

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Result holds the matching row ids of a query in strictly ascending order.
type Result struct {
	rows []uint32
}

// NewResult wraps rows, which must be strictly ascending. The Result takes
// ownership of the slice.
func NewResult(rows []uint32) Result {
	return Result{rows: rows}
}

// Rows returns the matching row ids. Callers must not modify the slice.
func (r Result) Rows() []uint32 {
	return r.rows
}

// Len returns the number of matching rows.
func (r Result) Len() int {
	return len(r.rows)
}

// Empty reports whether no row matched.
func (r Result) Empty() bool {
	return len(r.rows) == 0
}

// All yields the matching row ids in ascending order.
func (r Result) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, row := range r.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// Bitmap returns the matching rows as a compressed bitmap, for combining
// results with roaring set operations.
func (r Result) Bitmap() *roaring.Bitmap {
	return roaring.BitmapOf(r.rows...)
}
