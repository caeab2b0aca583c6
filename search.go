package kdsearch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kdsearch/bitmap"
	"github.com/hupe1980/kdsearch/collector"
	"github.com/hupe1980/kdsearch/core"
)

// SearchResult represents a single search result.
type SearchResult struct {
	// ID is the external identifier of the point.
	ID uint32

	// Distance is the squared L2 distance between the query and the point.
	Distance float32
}

// Search creates a fluent search builder for the given query vector.
//
// Example:
//
//	results, err := idx.Search(query).
//	    KNN(10).
//	    Epsilon(0.5).
//	    Execute(ctx)
func (ix *Index) Search(query []float32) *SearchBuilder {
	return &SearchBuilder{
		ix:     ix,
		query:  query,
		params: DefaultParameters(),
	}
}

// SearchByID creates a search builder whose query is a point already
// present in the index. The point's own identifier is known to the
// query, so AllowSelfMatch(false) can exclude it even at distance zero.
func (ix *Index) SearchByID(id uint32) *SearchBuilder {
	sb := &SearchBuilder{
		ix:     ix,
		params: DefaultParameters(),
	}

	li, ok := ix.byExternal[id]
	if !ok {
		sb.err = fmt.Errorf("search by id %d: %w", id, ErrNotFound)
		return sb
	}

	sb.query = ix.row(li)
	sb.self = li
	sb.hasSelf = true

	return sb
}

// SearchBuilder is a fluent builder for constructing queries. A zero k
// with a radius cap selects the unbounded strategy; otherwise the
// bounded strategy is chosen by the collector factory.
type SearchBuilder struct {
	ix      *Index
	query   []float32
	self    core.LocalID
	hasSelf bool
	err     error

	k      int
	params Parameters

	filterFunc   func(id uint32) bool
	filterBitmap *bitmap.Bitmap
}

// KNN sets the number of nearest neighbours to return.
func (sb *SearchBuilder) KNN(k int) *SearchBuilder {
	sb.k = k
	return sb
}

// Within caps results at the given radius (unsquared). Without KNN the
// query retains every point inside the radius.
func (sb *SearchBuilder) Within(radius float32) *SearchBuilder {
	sb.params.MaxRadius = radius
	return sb
}

// Epsilon sets the approximation tolerance. Zero reproduces exact search.
func (sb *SearchBuilder) Epsilon(epsilon float32) *SearchBuilder {
	sb.params.Epsilon = epsilon
	return sb
}

// AllowSelfMatch controls whether a SearchByID query may return the
// query point itself. Defaults to true.
func (sb *SearchBuilder) AllowSelfMatch(allow bool) *SearchBuilder {
	sb.params.AllowSelfMatch = allow
	return sb
}

// WithParameters replaces all query parameters at once.
func (sb *SearchBuilder) WithParameters(p Parameters) *SearchBuilder {
	sb.params = p
	return sb
}

// Filter sets a filter function for candidates. Only points where
// filter(id) returns true are considered. The id is the external one.
func (sb *SearchBuilder) Filter(fn func(id uint32) bool) *SearchBuilder {
	sb.filterFunc = fn
	return sb
}

// FilterBitmap restricts candidates to the external IDs present in the
// bitmap. Combines with Filter; both must accept.
func (sb *SearchBuilder) FilterBitmap(bm *bitmap.Bitmap) *SearchBuilder {
	sb.filterBitmap = bm
	return sb
}

// Execute runs the query and returns the results ascending by distance.
func (sb *SearchBuilder) Execute(ctx context.Context) ([]SearchResult, error) {
	coll, err := sb.run()
	if err != nil {
		sb.ix.logger.LogSearch(ctx, sb.k, 0, err)
		return nil, err
	}

	results := sb.ix.externaliseResults(coll.SortedResults())
	sb.ix.logger.LogSearch(ctx, sb.k, len(results), nil)

	return results, nil
}

// ExecuteUnordered runs the query and returns the results in unspecified
// order, skipping the final sort.
func (sb *SearchBuilder) ExecuteUnordered(ctx context.Context) ([]SearchResult, error) {
	coll, err := sb.run()
	if err != nil {
		sb.ix.logger.LogSearch(ctx, sb.k, 0, err)
		return nil, err
	}

	results := sb.ix.externaliseResults(coll.Results())
	sb.ix.logger.LogSearch(ctx, sb.k, len(results), nil)

	return results, nil
}

// run validates the query, derives the internal parameters once, selects
// the collector strategy and performs the scan. The collector lives on
// this call stack and is consumed exactly once by the caller.
func (sb *SearchBuilder) run() (collector.ResultCollector, error) {
	if sb.err != nil {
		return nil, sb.err
	}
	if err := sb.ix.validateVector(sb.query); err != nil {
		return nil, err
	}

	sp, err := NewSearchParams(sb.params)
	if err != nil {
		return nil, err
	}

	var coll collector.ResultCollector
	if sb.k > 0 {
		coll, err = collector.New(sb.k)
		if err != nil {
			return nil, err
		}
	} else {
		coll = collector.NewUnbounded(0)
	}

	sb.ix.scan(sb.query, sb.self, sb.hasSelf, sp, sb.acceptFunc(), coll)

	return coll, nil
}

// acceptFunc folds the configured filters into a single predicate, nil
// when no filtering is requested so the scan skips the indirect call.
func (sb *SearchBuilder) acceptFunc() func(id uint32) bool {
	fn, bm := sb.filterFunc, sb.filterBitmap
	switch {
	case fn != nil && bm != nil:
		return func(id uint32) bool { return bm.Contains(id) && fn(id) }
	case bm != nil:
		return bm.Contains
	default:
		return fn
	}
}

// externaliseResults maps surviving internal identifiers through the
// externalisation boundary.
func (ix *Index) externaliseResults(nbs []core.Neighbour) []SearchResult {
	results := make([]SearchResult, 0, len(nbs))
	for _, nb := range nbs {
		results = append(results, SearchResult{
			ID:       ix.Externalise(nb.Index),
			Distance: nb.Dist2,
		})
	}

	return results
}

// BatchSearchOptions contains configuration options for BatchSearch.
type BatchSearchOptions struct {
	// Parameters are the query parameters applied to every query.
	Parameters Parameters

	// Concurrency caps the number of queries running at once.
	// Defaults to GOMAXPROCS.
	Concurrency int
}

// BatchSearch runs one k-nearest-neighbour query per input vector,
// concurrently across queries. Every query owns its collector; the index
// must not be mutated while the batch runs. Results are ascending by
// distance, positionally matched to queries.
func (ix *Index) BatchSearch(ctx context.Context, queries [][]float32, k int, optFns ...func(o *BatchSearchOptions)) ([][]SearchResult, error) {
	opts := BatchSearchOptions{
		Parameters:  DefaultParameters(),
		Concurrency: runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	results := make([][]SearchResult, len(queries))
	for qi, q := range queries {
		g.Go(func() error {
			// A query runs to completion once started; cancellation is
			// only observed between queries.
			if err := ctx.Err(); err != nil {
				return err
			}

			sb := ix.Search(q).WithParameters(opts.Parameters)
			if k > 0 {
				sb = sb.KNN(k)
			}

			res, err := sb.Execute(ctx)
			if err != nil {
				return fmt.Errorf("query %d: %w", qi, err)
			}
			results[qi] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
