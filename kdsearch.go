package kdsearch

import (
	"context"
	"slices"

	"github.com/hupe1980/kdsearch/collector"
	"github.com/hupe1980/kdsearch/core"
	"github.com/hupe1980/kdsearch/distance"
)

// Options contains configuration options for the index.
type Options struct {
	// Logger is the structured logger for operation tracing.
	// Defaults to a no-op logger.
	Logger *Logger
}

// WithLogger sets the structured logger for operation tracing.
func WithLogger(logger *Logger) func(o *Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Index is a flat in-memory point store that exercises the candidate
// collectors end to end. Points are held in a packed row-major array
// addressed by dense internal identifiers (core.LocalID); the index owns
// the mapping from internal identifiers to the stable external IDs the
// caller understands.
//
// The index is read-only during queries: concurrent queries on separate
// goroutines are safe as long as mutation is externally excluded. Each
// query owns its collector; no state is shared between queries.
type Index struct {
	dimension int
	data      []float32 // packed row-major point data

	// externalIDs maps a LocalID (position in data) to the external ID.
	externalIDs []uint32
	// byExternal is the reverse mapping, needed for Delete and SearchByID.
	byExternal map[uint32]core.LocalID
	// nextID is the next external ID to allocate. IDs are never reused.
	nextID uint32

	logger *Logger
}

// New creates a new index for points of the given dimensionality.
func New(dimension int, optFns ...func(o *Options)) (*Index, error) {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	if dimension <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dimension}
	}

	logger := opts.Logger
	if logger == nil {
		logger = NoopLogger()
	}

	return &Index{
		dimension:  dimension,
		byExternal: make(map[uint32]core.LocalID),
		logger:     logger,
	}, nil
}

// Insert adds a point to the index and returns its external ID.
func (ix *Index) Insert(v []float32) (uint32, error) {
	if err := ix.validateVector(v); err != nil {
		ix.logger.LogInsert(context.Background(), 0, len(v), err)
		return 0, err
	}

	id := ix.nextID
	ix.nextID++

	ix.byExternal[id] = core.LocalID(len(ix.externalIDs))
	ix.externalIDs = append(ix.externalIDs, id)
	ix.data = append(ix.data, v...)

	ix.logger.LogInsert(context.Background(), id, ix.dimension, nil)

	return id, nil
}

// BatchInsert adds multiple points and returns their external IDs.
// It fails on the first invalid vector; previously inserted points of
// the batch remain in the index.
func (ix *Index) BatchInsert(vs [][]float32) ([]uint32, error) {
	ids := make([]uint32, 0, len(vs))
	for _, v := range vs {
		id, err := ix.Insert(v)
		if err != nil {
			return ids, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// Delete removes the point with the given external ID. The last point is
// swapped into the freed slot so internal identifiers stay dense;
// external IDs are unaffected.
func (ix *Index) Delete(id uint32) error {
	li, ok := ix.byExternal[id]
	if !ok {
		ix.logger.LogDelete(context.Background(), id, ErrNotFound)
		return ErrNotFound
	}

	last := core.LocalID(len(ix.externalIDs) - 1)
	if li != last {
		copy(ix.row(li), ix.row(last))
		moved := ix.externalIDs[last]
		ix.externalIDs[li] = moved
		ix.byExternal[moved] = li
	}

	ix.data = ix.data[:int(last)*ix.dimension]
	ix.externalIDs = ix.externalIDs[:last]
	delete(ix.byExternal, id)

	ix.logger.LogDelete(context.Background(), id, nil)

	return nil
}

// Get returns a copy of the point with the given external ID.
func (ix *Index) Get(id uint32) ([]float32, error) {
	li, ok := ix.byExternal[id]
	if !ok {
		return nil, ErrNotFound
	}

	return slices.Clone(ix.row(li)), nil
}

// Len returns the number of points in the index.
func (ix *Index) Len() int {
	return len(ix.externalIDs)
}

// Dimension returns the dimensionality of the indexed points.
func (ix *Index) Dimension() int {
	return ix.dimension
}

// Externalise maps a dense internal identifier to the external ID the
// caller understands. It is a pure O(1) lookup, called once per
// surviving result after extraction.
func (ix *Index) Externalise(index core.LocalID) uint32 {
	return ix.externalIDs[index]
}

// row returns the backing slice of the point at the given internal
// identifier. Callers must not retain it across mutations.
func (ix *Index) row(index core.LocalID) []float32 {
	i := int(index) * ix.dimension
	return ix.data[i : i+ix.dimension]
}

func (ix *Index) validateVector(v []float32) error {
	if len(v) != ix.dimension {
		return &ErrDimensionMismatch{Expected: ix.dimension, Actual: len(v)}
	}
	if distance.HasNaN(v) {
		return ErrNaNVector
	}

	return nil
}

// scan is the query hot loop: it applies, in order, the caller's filter,
// the self-match exclusion and the radius cap, then feeds the surviving
// observation to the collector. The scan is exhaustive, so the derived
// MaxError2 cannot change its results; tree traversals use it to inflate
// subtree lower bounds before comparing against FurthestDist2.
func (ix *Index) scan(query []float32, self core.LocalID, hasSelf bool, sp SearchParams, accept func(id uint32) bool, coll collector.Collector) {
	dim := ix.dimension
	for i := range ix.externalIDs {
		li := core.LocalID(i)
		if hasSelf && !sp.AllowSelfMatch && li == self {
			continue
		}
		if accept != nil && !accept(ix.externalIDs[i]) {
			continue
		}

		d2 := distance.SquaredL2(query, ix.data[i*dim:(i+1)*dim])
		if d2 > sp.MaxRadius2 {
			continue
		}

		coll.Add(d2, li)
	}
}
