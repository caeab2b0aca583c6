package kdsearch

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameters(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		p := DefaultParameters()
		assert.Equal(t, float32(0), p.Epsilon)
		assert.True(t, math32.IsInf(p.MaxRadius, 1))
		assert.True(t, p.AllowSelfMatch)
		require.NoError(t, p.Validate())
	})

	t.Run("RejectsNegativeEpsilon", func(t *testing.T) {
		p := DefaultParameters()
		p.Epsilon = -0.1
		require.ErrorIs(t, p.Validate(), ErrInvalidEpsilon)
	})

	t.Run("RejectsNaNEpsilon", func(t *testing.T) {
		p := DefaultParameters()
		p.Epsilon = math32.NaN()
		require.ErrorIs(t, p.Validate(), ErrInvalidEpsilon)
	})

	t.Run("RejectsNegativeRadius", func(t *testing.T) {
		p := DefaultParameters()
		p.MaxRadius = -1
		require.ErrorIs(t, p.Validate(), ErrInvalidRadius)
	})

	t.Run("RejectsNaNRadius", func(t *testing.T) {
		p := DefaultParameters()
		p.MaxRadius = math32.NaN()
		require.ErrorIs(t, p.Validate(), ErrInvalidRadius)
	})
}

func TestNewSearchParams(t *testing.T) {
	t.Run("Derivation", func(t *testing.T) {
		p := DefaultParameters()
		p.Epsilon = 1
		p.MaxRadius = 3
		p.AllowSelfMatch = false

		sp, err := NewSearchParams(p)
		require.NoError(t, err)

		assert.Equal(t, float32(4), sp.MaxError2)
		assert.Equal(t, float32(9), sp.MaxRadius2)
		assert.False(t, sp.AllowSelfMatch)
	})

	t.Run("ExactSearchIsIdentity", func(t *testing.T) {
		sp, err := NewSearchParams(DefaultParameters())
		require.NoError(t, err)

		assert.Equal(t, float32(1), sp.MaxError2)
		assert.True(t, math32.IsInf(sp.MaxRadius2, 1))
	})

	t.Run("MaxError2NeverBelowOne", func(t *testing.T) {
		for _, eps := range []float32{0, 1e-8, 0.5, 2, 100} {
			p := DefaultParameters()
			p.Epsilon = eps

			sp, err := NewSearchParams(p)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, sp.MaxError2, float32(1), "epsilon=%v", eps)
		}
	})

	t.Run("PropagatesValidation", func(t *testing.T) {
		p := DefaultParameters()
		p.Epsilon = -1
		_, err := NewSearchParams(p)
		require.ErrorIs(t, err, ErrInvalidEpsilon)
	})
}
