package goalseek

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// Problem is one independent goal seek for SeekAll.
type Problem struct {
	Target  float64
	Lower   float64
	Upper   float64
	Compute ComputeFunc
}

// BatchResult is the outcome of one Problem.
// Err is nil or matches ErrGoalNotFound.
type BatchResult struct {
	Result
	Err error `json:"-"`
}

// SeekAll solves the problems concurrently, at most WithConcurrency at a time.
// Results are returned in input order.
//
// A problem that does not converge only sets its BatchResult.Err. Any other
// error (nil compute, cancellation, observer error) cancels the remaining
// problems and is returned.
func (s *Seeker) SeekAll(ctx context.Context, problems []Problem) ([]BatchResult, error) {
	results := make([]BatchResult, len(problems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)

	for i, p := range problems {
		g.Go(func() error {
			res, err := s.Seek(gctx, NewSearchInterval(p.Target, p.Lower, p.Upper), p.Compute)
			if err != nil && !errors.Is(err, ErrGoalNotFound) {
				return err
			}
			results[i] = BatchResult{Result: res, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	s.opts.logger.LogBatch(ctx, len(problems), failed)

	return results, nil
}
