// Package kdsearch provides the candidate-bookkeeping core of a spatial
// nearest-neighbour search engine.
//
// During the traversal of a spatial partitioning index, every visited
// point must be tested against the current "best answers so far" set,
// and every subtree descent is gated by a pruning bound derived from
// that set. This package implements the bookkeeping: the collector
// strategies (see the collector subpackage), the per-query parameter
// adaptation, and the boundary that externalises dense internal point
// identifiers back into caller-meaningful IDs.
//
// A flat reference index exercises the core end to end:
//
//	idx, _ := kdsearch.New(2)
//	a, _ := idx.Insert([]float32{0, 0})
//	b, _ := idx.Insert([]float32{3, 4})
//
//	results, _ := idx.Search([]float32{1, 0}).
//	    KNN(1).
//	    Execute(ctx)
//	// results[0].ID == a
//
// Radius queries select the unbounded strategy:
//
//	results, _ := idx.Search(query).Within(5).Execute(ctx)
//
// Querying a point already present in the index can exclude the point
// itself:
//
//	results, _ := idx.SearchByID(b).
//	    KNN(3).
//	    AllowSelfMatch(false).
//	    Execute(ctx)
//
// Tree construction, persistence and intra-query parallelism are out of
// scope; external tree traversals plug into the same collector and
// SearchParams surfaces this package exposes.
package kdsearch
