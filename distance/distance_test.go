package distance

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestSquaredL2(t *testing.T) {
	t.Run("Basic", func(t *testing.T) {
		a := []float32{0, 0}
		b := []float32{3, 4}
		assert.Equal(t, float32(25), SquaredL2(a, b))
	})

	t.Run("Identical", func(t *testing.T) {
		v := []float32{1.5, -2.5, 3}
		assert.Equal(t, float32(0), SquaredL2(v, v))
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, float32(0), SquaredL2(nil, nil))
	})

	t.Run("NeverNaNForFiniteInput", func(t *testing.T) {
		a := []float32{math32.MaxFloat32, -math32.MaxFloat32}
		b := []float32{-math32.MaxFloat32, math32.MaxFloat32}

		d := SquaredL2(a, b)
		assert.False(t, math32.IsNaN(d))
		assert.True(t, math32.IsInf(d, 1))
	})
}

func TestDot(t *testing.T) {
	assert.Equal(t, float32(11), Dot([]float32{1, 2}, []float32{3, 4}))
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, float32(5), Magnitude([]float32{3, 4}))
}

func TestHasNaN(t *testing.T) {
	assert.False(t, HasNaN([]float32{1, 2, 3}))
	assert.False(t, HasNaN(nil))
	assert.True(t, HasNaN([]float32{1, math32.NaN(), 3}))
}
