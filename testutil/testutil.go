package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// Problem is a goal seek with a known root. Compute receives the midpoint
// divided by Scale, as goalseek does by default.
type Problem struct {
	Name    string
	Target  float64
	Lower   float64
	Upper   float64
	Root    float64
	Scale   float64
	Compute func(float64) float64
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// LinearProblem returns f(p) = slope*p + offset with a root inside [0, 100]
// percent. Slope is positive so the bounds are ordered.
func (r *RNG) LinearProblem() Problem {
	slope := r.Float64Range(1, 1e5)
	offset := r.Float64Range(-1e3, 1e3)
	root := r.Float64Range(1, 99)

	return Problem{
		Name:    "linear",
		Target:  slope*root/100 + offset,
		Lower:   0,
		Upper:   100,
		Root:    root,
		Scale:   100,
		Compute: func(p float64) float64 { return slope*p + offset },
	}
}

// CubicProblem returns f(x) = x^3 + x, strictly increasing, with the root
// somewhere in [-10, 10] and a scale of 1.
func (r *RNG) CubicProblem() Problem {
	root := r.Float64Range(-9, 9)

	return Problem{
		Name:    "cubic",
		Target:  root*root*root + root,
		Lower:   -10,
		Upper:   10,
		Root:    root,
		Scale:   1,
		Compute: func(x float64) float64 { return x*x*x + x },
	}
}

// ExpProblem returns f(x) = exp(x), with the root in [-5, 5] and a scale of 1.
func (r *RNG) ExpProblem() Problem {
	root := r.Float64Range(-4, 4)

	return Problem{
		Name:    "exp",
		Target:  math.Exp(root),
		Lower:   -5,
		Upper:   5,
		Root:    root,
		Scale:   1,
		Compute: math.Exp,
	}
}

// Problems returns n problems cycling through the generators.
func (r *RNG) Problems(n int) []Problem {
	gens := []func() Problem{r.LinearProblem, r.CubicProblem, r.ExpProblem}

	problems := make([]Problem, n)
	for i := range problems {
		problems[i] = gens[i%len(gens)]()
	}
	return problems
}
