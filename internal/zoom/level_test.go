package zoom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelInvertsIncrement(t *testing.T) {
	for n := -8; n <= 8; n++ {
		factor := math.Pow(FactorIncrement, float64(n))
		assert.InDelta(t, float64(n), Level(factor), 1e-12, "n=%d", n)
		assert.InDelta(t, factor, Factor(Level(factor)), 1e-12, "n=%d", n)
	}
	assert.Equal(t, 0.0, Level(1))
}

func TestClampScaleFactor(t *testing.T) {
	tests := []struct {
		in   float32
		want float32
	}{
		{in: -4, want: 1},
		{in: 0, want: 1},
		{in: 0.99, want: 1},
		{in: 1, want: 1},
		{in: 1.5, want: 1.5},
		{in: 3, want: 3},
		{in: 5, want: 3},
		{in: float32(math.Inf(1)), want: 3},
		{in: float32(math.Inf(-1)), want: 1},
		{in: float32(math.NaN()), want: 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampScaleFactor(tt.in), "in=%v", tt.in)
	}
}

func TestClampFactor(t *testing.T) {
	assert.Equal(t, MinFactor, clampFactor(0.05))
	assert.Equal(t, MinFactor, clampFactor(-1))
	assert.Equal(t, MinFactor, clampFactor(float32(math.NaN())))
	assert.Equal(t, float32(0.1), clampFactor(0.1))
	assert.Equal(t, float32(250), clampFactor(250))
}

func TestBindingStateString(t *testing.T) {
	assert.Equal(t, "unbound", Unbound.String())
	assert.Equal(t, "bound", Bound.String())
}
