package collector

import (
	"slices"

	"github.com/hupe1980/kdsearch/core"
)

// Compile time check to ensure Unbounded satisfies the ResultCollector interface.
var _ ResultCollector = (*Unbounded)(nil)

// Unbounded retains every observation. It serves radius-only queries
// where the radius cap is applied by the traversal before Add, so no
// eviction ever happens here. The running maximum it reports from
// FurthestDist2 keeps the pruning bookkeeping symmetric with the bounded
// strategies; unlike theirs, it starts at zero and only grows.
type Unbounded struct {
	items    []core.Neighbour
	furthest float32
}

// NewUnbounded creates an Unbounded collector. capacity is a
// pre-allocation hint for the expected result count and may be zero.
func NewUnbounded(capacity int) *Unbounded {
	return &Unbounded{
		items: make([]core.Neighbour, 0, capacity),
	}
}

// Add retains the observation unconditionally and widens the running
// maximum if needed.
func (u *Unbounded) Add(dist2 float32, index core.LocalID) {
	assertDist2(dist2)

	u.items = append(u.items, core.Neighbour{Index: index, Dist2: dist2})
	if dist2 > u.furthest {
		u.furthest = dist2
	}
}

// FurthestDist2 returns the maximum squared distance observed so far,
// zero before any observation.
func (u *Unbounded) FurthestDist2() float32 {
	return u.furthest
}

// Results returns the retained candidates in observation order.
func (u *Unbounded) Results() []core.Neighbour {
	return slices.Clone(u.items)
}

// SortedResults returns the retained candidates ascending by squared
// distance.
func (u *Unbounded) SortedResults() []core.Neighbour {
	out := slices.Clone(u.items)
	slices.SortStableFunc(out, core.Compare)

	return out
}

// Reset empties the collector for reuse by a subsequent query, keeping
// the backing array.
func (u *Unbounded) Reset() {
	u.items = u.items[:0]
	u.furthest = 0
}
