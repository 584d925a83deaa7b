package goalseek

import "context"

// GoalSeek searches [lower, upper] for the input at which compute reaches target.
//
// compute receives the midpoint divided by the scale (100 by default, so the
// bounds are percentages). The converged midpoint is returned, or an error
// matching ErrGoalNotFound when the search runs out of interval or iterations.
//
//	x, err := goalseek.GoalSeek(27000, 0, 100, func(p float64) float64 {
//	    return p * 100000
//	})
//	// x ≈ 27
func GoalSeek(target, lower, upper float64, compute ComputeFunc, opts ...Option) (float64, error) {
	s, err := New(opts...)
	if err != nil {
		return 0, err
	}

	res, err := s.Seek(context.Background(), NewSearchInterval(target, lower, upper), compute)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}
