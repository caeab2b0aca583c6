package collector

import (
	"slices"

	"github.com/chewxy/math32"

	"github.com/hupe1980/kdsearch/core"
)

// Compile time check to ensure MaxHeap satisfies the ResultCollector interface.
var _ ResultCollector = (*MaxHeap)(nil)

// MaxHeap retains the k closest observations in a capacity-bounded
// binary max-heap. The ordering deliberately puts the LARGEST retained
// distance at the top so the worst candidate can be evicted in O(log k);
// a min-heap of smallest distances would give the wrong eviction
// semantics. Storage is value-based for cache locality and stays at a
// single backing array for the whole query.
type MaxHeap struct {
	k     int
	items []core.Neighbour
}

// NewMaxHeap creates a MaxHeap with capacity k.
func NewMaxHeap(k int) (*MaxHeap, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	return &MaxHeap{
		k:     k,
		items: make([]core.Neighbour, 0, k),
	}, nil
}

// Add pushes observations until the heap is full. Once full, an
// observation strictly closer than the current maximum replaces it and
// the heap invariant is re-established; anything else is rejected in
// O(1). Equal distances are rejected, so the first-seen point wins ties.
func (h *MaxHeap) Add(dist2 float32, index core.LocalID) {
	assertDist2(dist2)

	if len(h.items) < h.k {
		h.items = append(h.items, core.Neighbour{Index: index, Dist2: dist2})
		h.siftUp(len(h.items) - 1)
		return
	}

	if dist2 < h.items[0].Dist2 {
		h.items[0] = core.Neighbour{Index: index, Dist2: dist2}
		h.siftDown(0)
	}
}

// FurthestDist2 returns +Inf while the heap is not yet full, so that no
// pruning is applied before k candidates exist, and the current maximum
// afterwards.
func (h *MaxHeap) FurthestDist2() float32 {
	if len(h.items) < h.k {
		return math32.Inf(1)
	}

	return h.items[0].Dist2
}

// Results returns the retained candidates in heap order.
func (h *MaxHeap) Results() []core.Neighbour {
	return slices.Clone(h.items)
}

// SortedResults returns the retained candidates ascending by squared
// distance in O(k log k).
func (h *MaxHeap) SortedResults() []core.Neighbour {
	out := slices.Clone(h.items)
	slices.SortStableFunc(out, core.Compare)

	return out
}

// Reset empties the heap for reuse by a subsequent query, keeping the
// backing array.
func (h *MaxHeap) Reset() {
	h.items = h.items[:0]
}

// less reports whether item i has priority over item j. Larger distance
// wins: the worst retained candidate surfaces at index 0.
func (h *MaxHeap) less(i, j int) bool {
	return h.items[i].Dist2 > h.items[j].Dist2
}

func (h *MaxHeap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *MaxHeap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(r, l) {
			best = r
		}
		if !h.less(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
