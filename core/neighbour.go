package core

import "github.com/chewxy/math32"

// Neighbour is the atomic unit of candidate bookkeeping during a search:
// an internal point identifier paired with its squared distance to the
// query. Dist2 is finite or +Inf and never NaN; that invariant is
// enforced upstream, where distances are produced as sums of squares.
//
// "Not yet found" is represented by a Dist2 of +Inf, never by absence.
type Neighbour struct {
	Index LocalID // Index is the dense internal identifier of the point.
	Dist2 float32 // Dist2 is the squared distance to the query.
}

// Unfilled returns a sentinel Neighbour marking a slot that has not been
// filled by any observation yet.
func Unfilled() Neighbour {
	return Neighbour{Index: 0, Dist2: math32.Inf(1)}
}

// Filled reports whether the neighbour holds a real observation rather
// than the unfilled sentinel.
func (n Neighbour) Filled() bool {
	return !math32.IsInf(n.Dist2, 1)
}

// Compare orders neighbours by squared distance ascending. The identifier
// never participates in the ordering; ties between distinct points are
// resolved by the collectors' first-seen-wins rule, not here.
func Compare(a, b Neighbour) int {
	switch {
	case a.Dist2 < b.Dist2:
		return -1
	case a.Dist2 > b.Dist2:
		return 1
	default:
		return 0
	}
}
