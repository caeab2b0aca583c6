package kdsearch

import "github.com/chewxy/math32"

// Parameters is the user-facing configuration for a single query.
// The zero value is not valid; use DefaultParameters as the base.
type Parameters struct {
	// Epsilon is the approximation tolerance. The search may return a
	// candidate up to (1+Epsilon) times farther than the true nearest,
	// in exchange for skipping more subtrees. Zero reproduces exact
	// search. Must be >= 0.
	Epsilon float32

	// MaxRadius is an absolute cap on the distance of any returned
	// candidate. Defaults to +Inf (no cap). Must be >= 0.
	MaxRadius float32

	// AllowSelfMatch controls whether a query for a point already
	// present in the index may return that point itself.
	AllowSelfMatch bool
}

// DefaultParameters returns the exact-search defaults: no approximation,
// no radius cap, self-matches allowed.
func DefaultParameters() Parameters {
	return Parameters{
		Epsilon:        0,
		MaxRadius:      math32.Inf(1),
		AllowSelfMatch: true,
	}
}

// Validate checks the parameters at query start.
func (p Parameters) Validate() error {
	if math32.IsNaN(p.Epsilon) || p.Epsilon < 0 {
		return ErrInvalidEpsilon
	}
	if math32.IsNaN(p.MaxRadius) || p.MaxRadius < 0 {
		return ErrInvalidRadius
	}

	return nil
}

// SearchParams are the internal scaling factors derived from Parameters
// once at query start and passed by value, unchanged, through every
// recursive traversal step.
//
// MaxError2 is always >= 1: an approximation tolerance can only make
// pruning more permissive than exact search, never more restrictive. A
// traversal multiplies a subtree's minimum possible squared distance by
// MaxError2 before comparing it against the collector's pruning bound.
type SearchParams struct {
	MaxError2      float32 // (1+epsilon)^2
	MaxRadius2     float32 // max_radius^2
	AllowSelfMatch bool
}

// NewSearchParams validates the user-facing parameters and derives the
// internal ones. The conversion is pure and performed once per query.
func NewSearchParams(p Parameters) (SearchParams, error) {
	if err := p.Validate(); err != nil {
		return SearchParams{}, err
	}

	maxError := 1 + p.Epsilon

	return SearchParams{
		MaxError2:      maxError * maxError,
		MaxRadius2:     p.MaxRadius * p.MaxRadius,
		AllowSelfMatch: p.AllowSelfMatch,
	}, nil
}
