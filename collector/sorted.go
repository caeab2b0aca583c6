package collector

import (
	"slices"

	"github.com/hupe1980/kdsearch/core"
)

// Compile time check to ensure SortedSlice satisfies the ResultCollector interface.
var _ ResultCollector = (*SortedSlice)(nil)

// SortedSlice retains the k closest observations in a fixed array of k
// slots kept sorted ascending by squared distance. Slots start as the
// unfilled sentinel (+Inf), so the sorted invariant places every
// unfilled slot at the tail.
//
// An accepted observation costs an O(k) insertion shift, but the shift
// is branch-predictable and allocation-free; for small k this beats the
// heap strategy comfortably.
type SortedSlice struct {
	items []core.Neighbour
}

// NewSortedSlice creates a SortedSlice with capacity k.
func NewSortedSlice(k int) (*SortedSlice, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	items := make([]core.Neighbour, k)
	for i := range items {
		items[i] = core.Unfilled()
	}

	return &SortedSlice{items: items}, nil
}

// Add rejects in O(1) any observation not strictly closer than the worst
// retained slot, then shifts larger entries one position toward the tail
// until the sorted position for the new entry is found. Equal distances
// are rejected, so the first-seen point wins ties.
func (s *SortedSlice) Add(dist2 float32, index core.LocalID) {
	assertDist2(dist2)

	n := len(s.items)
	if dist2 >= s.items[n-1].Dist2 {
		return
	}

	i := n - 1
	for i > 0 && s.items[i-1].Dist2 > dist2 {
		s.items[i] = s.items[i-1]
		i--
	}
	s.items[i] = core.Neighbour{Index: index, Dist2: dist2}
}

// FurthestDist2 returns the last slot's squared distance: the worst
// retained candidate, or +Inf while unfilled slots remain.
func (s *SortedSlice) FurthestDist2() float32 {
	return s.items[len(s.items)-1].Dist2
}

// Results returns the retained candidates. The slice is already sorted,
// so extraction only truncates at the first unfilled slot: the sorted
// invariant guarantees sentinels occur exclusively at the tail.
func (s *SortedSlice) Results() []core.Neighbour {
	for i, n := range s.items {
		if !n.Filled() {
			return slices.Clone(s.items[:i])
		}
	}

	return slices.Clone(s.items)
}

// SortedResults is identical to Results: the array is sorted at all times.
func (s *SortedSlice) SortedResults() []core.Neighbour {
	return s.Results()
}

// Reset restores every slot to the unfilled sentinel for reuse by a
// subsequent query.
func (s *SortedSlice) Reset() {
	for i := range s.items {
		s.items[i] = core.Unfilled()
	}
}
