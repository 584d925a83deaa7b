// Package testutil provides testing utilities for goalseek.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible monotonic problems whose root is known, so
// convergence can be checked against ground truth.
//
//	rng := testutil.NewRNG(seed)
//	p := rng.LinearProblem()
//	x, err := goalseek.GoalSeek(p.Target, p.Lower, p.Upper, p.Compute)
//	// x ≈ p.Root
package testutil
