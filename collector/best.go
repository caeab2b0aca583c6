package collector

import "github.com/hupe1980/kdsearch/core"

// Compile time check to ensure Best satisfies the ResultCollector interface.
var _ ResultCollector = (*Best)(nil)

// Best retains the single closest observation. It is the zero-allocation
// strategy for exact top-1 queries.
type Best struct {
	best core.Neighbour
}

// NewBest creates a Best collector holding the unfilled sentinel.
func NewBest() *Best {
	return &Best{best: core.Unfilled()}
}

// Add replaces the held observation only on strict improvement, so the
// first-seen point wins exact distance ties.
func (b *Best) Add(dist2 float32, index core.LocalID) {
	assertDist2(dist2)

	if dist2 < b.best.Dist2 {
		b.best = core.Neighbour{Index: index, Dist2: dist2}
	}
}

// FurthestDist2 returns the held squared distance, +Inf until the first
// observation arrives.
func (b *Best) FurthestDist2() float32 {
	return b.best.Dist2
}

// Results returns the held observation, or an empty slice if nothing has
// been observed yet.
func (b *Best) Results() []core.Neighbour {
	if !b.best.Filled() {
		return []core.Neighbour{}
	}

	return []core.Neighbour{b.best}
}

// SortedResults is identical to Results for a single-element strategy.
func (b *Best) SortedResults() []core.Neighbour {
	return b.Results()
}

// Reset restores the collector to its initial state for reuse by a
// subsequent query.
func (b *Best) Reset() {
	b.best = core.Unfilled()
}
