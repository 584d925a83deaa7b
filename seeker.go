package goalseek

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
)

// checkEvery is how often (in iterations) Seek polls the context.
const checkEvery = 4096

// ComputeFunc maps a candidate input to the value compared against the target.
// It is called synchronously once per iteration and should be pure.
type ComputeFunc func(float64) float64

// Result describes a converged seek.
type Result struct {
	// Value is the midpoint whose compute value matched the target. For a
	// seek stopped by an observer it is the midpoint of the current interval.
	Value      float64 `json:"value"`
	Iterations int     `json:"iterations"`
	// Skipped counts iterations whose compute value was NaN or Inf.
	Skipped int     `json:"skipped"`
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	// Error is the rounded error of the last finite value.
	Error float64 `json:"error"`
}

// Seeker runs bisection goal seeks. A Seeker holds only configuration, so
// it can be shared between goroutines; every Seek call works on its own
// SearchInterval.
type Seeker struct {
	opts options
}

// New creates a Seeker with the given options.
func New(optFns ...Option) (*Seeker, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Seeker{opts: opts}, nil
}

// Seek narrows iv until compute(iv.Midpoint()/scale) rounds to the target.
//
// Each iteration evaluates the midpoint. A finite value narrows the interval;
// once its rounded error is exactly zero the evaluated midpoint is returned.
// A NaN or Inf value leaves the bounds untouched and only consumes the
// iteration.
// The loop continues while the half-width and the rounded error both exceed
// the threshold and the iteration limit is not reached; ending any other way
// yields a *GoalNotFoundError.
func (s *Seeker) Seek(ctx context.Context, iv *SearchInterval, compute ComputeFunc) (Result, error) {
	if iv == nil {
		return Result{}, ErrNilInterval
	}
	if compute == nil {
		return Result{}, ErrNilCompute
	}

	logger := s.opts.logger.WithRunID(uuid.NewString()).WithTarget(iv.Target())
	debug := logger.Enabled(ctx, slog.LevelDebug)
	start := time.Now()

	res, err := s.run(ctx, logger, debug, iv, compute)

	s.opts.metricsCollector.RecordSeek(res.Iterations, res.Skipped, time.Since(start), err)
	logger.LogSeek(ctx, res, err)

	return res, err
}

func (s *Seeker) run(ctx context.Context, logger *Logger, debug bool, iv *SearchInterval, compute ComputeFunc) (Result, error) {
	var (
		counter = 1
		skipped int
		value   float64
		lastErr = math.NaN()
	)

	partial := func() Result {
		return Result{
			Value:      iv.Midpoint(),
			Iterations: counter,
			Skipped:    skipped,
			Lower:      iv.Lower(),
			Upper:      iv.Upper(),
			Error:      lastErr,
		}
	}

	for {
		if counter%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Result{Iterations: counter - 1, Skipped: skipped}, fmt.Errorf("%w: %w", ErrCanceled, err)
			}
		}

		mid := iv.Midpoint()
		input := mid / s.opts.scale
		value = compute(input)

		finite := isFinite(value)
		converged := false
		if finite {
			iv.Narrow(value)
			lastErr = iv.RoundedError(value)
			converged = lastErr == 0
		} else {
			skipped++
		}

		if s.opts.observer != nil || debug {
			step := Step{
				Iteration: counter,
				Lower:     iv.Lower(),
				Upper:     iv.Upper(),
				Midpoint:  mid,
				Input:     input,
				Value:     value,
				Error:     iv.RoundedError(value),
				Skipped:   !finite,
			}
			if debug {
				logger.LogStep(ctx, step)
			}
			if s.opts.observer != nil {
				if err := s.opts.observer(step); err != nil {
					return partial(), fmt.Errorf("iteration %d: %w", counter, err)
				}
			}
		}

		if converged {
			res := partial()
			res.Value = mid
			return res, nil
		}

		counter++

		if !(iv.halfWidth() >= s.opts.threshold &&
			s.outsideTolerance(iv, value) &&
			counter <= s.opts.iterationLimit) {
			break
		}
	}

	iterations := counter - 1
	return Result{Iterations: iterations, Skipped: skipped}, &GoalNotFoundError{
		Target:     iv.Target(),
		Lower:      iv.Lower(),
		Upper:      iv.Upper(),
		Iterations: iterations,
		Skipped:    skipped,
		LastError:  lastErr,
	}
}

// outsideTolerance reports whether the rounded error of value still exceeds
// the threshold. A NaN error never counts as within tolerance.
func (s *Seeker) outsideTolerance(iv *SearchInterval, value float64) bool {
	e := iv.RoundedError(value)
	return math.IsNaN(e) || math.Abs(e) > s.opts.threshold
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
