// Package goalseek finds the input of a function that produces a target
// output, using bisection over a bounded interval.
//
// It is meant for forward computations whose inverse has no closed form:
// "which percentage yields 27000 given f(x) = x * 100000?"
//
// # Quick Start
//
//	x, err := goalseek.GoalSeek(27000, 0, 100, func(p float64) float64 {
//	    return p * 100000
//	})
//
// The bounds are expressed in percent: the compute function receives the
// midpoint divided by 100. Use WithScale(1) to pass midpoints through as-is.
//
// # Seekers
//
// A Seeker carries configuration (threshold, iteration limit, logging,
// metrics, observers) and can run any number of seeks:
//
//	s, _ := goalseek.New(
//	    goalseek.WithThreshold(1e-8),
//	    goalseek.WithLogger(goalseek.NewTextLogger(slog.LevelDebug)),
//	)
//	res, err := s.Seek(ctx, goalseek.NewSearchInterval(27000, 0, 100), compute)
//
// SeekAll solves independent problems concurrently.
//
// # Convergence
//
// The error target - value is rounded half away from zero to six decimal
// places. A seek converges when that rounded error is exactly zero. It fails
// with ErrGoalNotFound when the interval half-width drops below the threshold,
// the rounded error falls within the threshold without reaching zero, or the
// iteration limit is exhausted.
//
// NaN and Inf values from the compute function do not abort a seek: the
// iteration is counted and the bounds are kept. A compute function that only
// ever returns NaN therefore runs until the iteration limit.
//
// The initial bounds are not checked to bracket a root. Non-monotonic
// functions may converge on any root or fail.
package goalseek
