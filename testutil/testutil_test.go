package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGReproducible(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64Range(0, 1), b.Float64Range(0, 1))
	}

	a.Reset()
	first := a.Intn(1000)
	a.Reset()
	assert.Equal(t, first, a.Intn(1000))
	assert.Equal(t, int64(42), a.Seed())
}

func TestProblemsHitTargetAtRoot(t *testing.T) {
	rng := NewRNG(7)

	for _, p := range rng.Problems(30) {
		assert.InDelta(t, p.Target, p.Compute(p.Root/p.Scale), 1e-9*(1+abs(p.Target)), p.Name)
		assert.Less(t, p.Lower, p.Root, p.Name)
		assert.Greater(t, p.Upper, p.Root, p.Name)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
