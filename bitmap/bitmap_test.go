package bitmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmap(t *testing.T) {
	t.Run("AddRemoveContains", func(t *testing.T) {
		bm := New()
		assert.True(t, bm.IsEmpty())

		bm.Add(3)
		bm.Add(7)
		assert.True(t, bm.Contains(3))
		assert.False(t, bm.Contains(4))
		assert.Equal(t, uint64(2), bm.Cardinality())

		bm.Remove(3)
		assert.False(t, bm.Contains(3))
	})

	t.Run("Of", func(t *testing.T) {
		bm := Of(1, 2, 3)
		assert.Equal(t, uint64(3), bm.Cardinality())
		assert.True(t, bm.Contains(2))
	})

	t.Run("AndOr", func(t *testing.T) {
		a := Of(1, 2, 3)
		a.And(Of(2, 3, 4))
		assert.Equal(t, uint64(2), a.Cardinality())

		b := Of(1)
		b.Or(Of(9))
		assert.True(t, b.Contains(1))
		assert.True(t, b.Contains(9))
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		a := Of(1)
		b := a.Clone()
		b.Add(2)

		assert.False(t, a.Contains(2))
		assert.True(t, b.Contains(2))
	})

	t.Run("Iterator", func(t *testing.T) {
		var got []uint32
		for id := range Of(5, 1, 9).Iterator() {
			got = append(got, id)
		}

		assert.Equal(t, []uint32{1, 5, 9}, got)
	})
}
