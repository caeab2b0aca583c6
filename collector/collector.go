// Package collector implements candidate bookkeeping for spatial
// nearest-neighbour traversals.
//
// A traversal holds one collector for the lifetime of a query. At every
// visited point it calls Add with the squared distance and the dense
// internal identifier of the point; before descending into a subtree it
// calls FurthestDist2 to decide whether the subtree can be pruned. At
// query end the retained candidates are extracted, sorted or not, with
// unfilled sentinel slots stripped.
//
// Four interchangeable strategies cover the different query shapes:
//
//   - Best: exact top-1
//   - SortedSlice: exact top-k for small k (insertion-sorted array)
//   - MaxHeap: exact top-k for large k (capacity-bounded max-heap)
//   - Unbounded: radius-only queries with no fixed k
//
// All bounded strategies replace a retained candidate only on strict
// improvement; the first-seen candidate wins exact distance ties. This
// keeps results deterministic regardless of strategy.
package collector

import (
	"errors"

	"github.com/chewxy/math32"

	"github.com/hupe1980/kdsearch/core"
)

// ErrInvalidK is returned when a bounded strategy is constructed with a
// non-positive capacity.
var ErrInvalidK = errors.New("k must be positive")

// Collector is the capability every collection strategy implements and
// the only surface the tree traversal depends on.
type Collector interface {
	// Add records an observation. It may change the retained set.
	// dist2 must be finite or +Inf; a NaN distance is a caller contract
	// violation and panics.
	Add(dist2 float32, index core.LocalID)

	// FurthestDist2 returns the current pruning bound: the squared
	// distance beyond which no future observation can be retained. For
	// bounded strategies it is +Inf until the retained set is full and
	// non-increasing afterwards.
	FurthestDist2() float32
}

// ResultCollector extends Collector with result extraction. Extraction
// strips unfilled sentinel slots, so the returned slice holds exactly
// the observations retained so far.
type ResultCollector interface {
	Collector

	// Results returns the retained candidates in unspecified order.
	Results() []core.Neighbour

	// SortedResults returns the retained candidates ascending by
	// squared distance.
	SortedResults() []core.Neighbour
}

// smallK is the capacity at or below which the insertion-sorted slice is
// preferred over the max-heap: for small k the O(k) shift stays within a
// couple of cache lines and beats the heap's pointer chasing.
const smallK = 32

// New selects a bounded strategy for the requested k: Best for k = 1,
// SortedSlice up to smallK, MaxHeap beyond.
func New(k int) (ResultCollector, error) {
	switch {
	case k <= 0:
		return nil, ErrInvalidK
	case k == 1:
		return NewBest(), nil
	case k <= smallK:
		return NewSortedSlice(k)
	default:
		return NewMaxHeap(k)
	}
}

// assertDist2 enforces the non-NaN contract at the collection boundary.
// Distances are sums of squares upstream and can never be NaN in correct
// use, so this is a programmer error, not a runtime condition.
func assertDist2(dist2 float32) {
	if math32.IsNaN(dist2) {
		panic("collector: NaN squared distance")
	}
}
