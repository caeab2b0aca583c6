package kdsearch

import (
	"context"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kdsearch/core"
)

func TestNewIndex(t *testing.T) {
	t.Run("RejectsInvalidDimension", func(t *testing.T) {
		_, err := New(0)
		require.Error(t, err)
		assert.IsType(t, &ErrInvalidDimension{}, err)
	})

	t.Run("Defaults", func(t *testing.T) {
		idx, err := New(3)
		require.NoError(t, err)
		assert.Equal(t, 3, idx.Dimension())
		assert.Equal(t, 0, idx.Len())
	})
}

func TestInsert(t *testing.T) {
	t.Run("AllocatesSequentialIDs", func(t *testing.T) {
		idx, err := New(2)
		require.NoError(t, err)

		a, err := idx.Insert([]float32{1, 2})
		require.NoError(t, err)
		b, err := idx.Insert([]float32{3, 4})
		require.NoError(t, err)

		assert.Equal(t, uint32(0), a)
		assert.Equal(t, uint32(1), b)
		assert.Equal(t, 2, idx.Len())
	})

	t.Run("RejectsDimensionMismatch", func(t *testing.T) {
		idx, err := New(3)
		require.NoError(t, err)

		_, err = idx.Insert([]float32{1, 2})
		require.Error(t, err)
		assert.IsType(t, &ErrDimensionMismatch{}, err)
	})

	t.Run("RejectsNaN", func(t *testing.T) {
		idx, err := New(2)
		require.NoError(t, err)

		_, err = idx.Insert([]float32{1, math32.NaN()})
		require.ErrorIs(t, err, ErrNaNVector)
	})

	t.Run("Batch", func(t *testing.T) {
		idx, err := New(1)
		require.NoError(t, err)

		ids, err := idx.BatchInsert([][]float32{{1}, {2}, {3}})
		require.NoError(t, err)
		assert.Equal(t, []uint32{0, 1, 2}, ids)
	})
}

func TestGet(t *testing.T) {
	idx, err := New(2)
	require.NoError(t, err)

	id, err := idx.Insert([]float32{1, 2})
	require.NoError(t, err)

	v, err := idx.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, v)

	// The returned vector is a copy.
	v[0] = 99
	v2, err := idx.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, v2)

	_, err = idx.Get(42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	t.Run("UnknownID", func(t *testing.T) {
		idx, err := New(1)
		require.NoError(t, err)
		require.ErrorIs(t, idx.Delete(0), ErrNotFound)
	})

	t.Run("KeepsInternalIDsDense", func(t *testing.T) {
		idx, err := New(1)
		require.NoError(t, err)

		ids, err := idx.BatchInsert([][]float32{{1}, {2}, {3}})
		require.NoError(t, err)

		// Deleting the middle point swaps the last one into its slot.
		require.NoError(t, idx.Delete(ids[1]))
		assert.Equal(t, 2, idx.Len())

		// Every remaining internal identifier still externalises to a
		// live external ID with the right vector.
		seen := map[uint32][]float32{}
		for i := range idx.Len() {
			ext := idx.Externalise(core.LocalID(i))
			v, err := idx.Get(ext)
			require.NoError(t, err)
			seen[ext] = v
		}
		assert.Equal(t, map[uint32][]float32{
			ids[0]: {1},
			ids[2]: {3},
		}, seen)

		_, err = idx.Get(ids[1])
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("SearchAfterDelete", func(t *testing.T) {
		idx, err := New(1)
		require.NoError(t, err)

		ids, err := idx.BatchInsert([][]float32{{1}, {2}, {3}})
		require.NoError(t, err)
		require.NoError(t, idx.Delete(ids[0]))

		results, err := idx.Search([]float32{0}).KNN(2).Execute(context.Background())
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, ids[1], results[0].ID)
		assert.Equal(t, ids[2], results[1].ID)
	})
}
