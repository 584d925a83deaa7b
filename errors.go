package goalseek

import (
	"errors"
	"fmt"
)

var (
	// ErrGoalNotFound is returned when the seek loop ends without the rounded
	// error reaching zero.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrStopped is returned by an Observer to end a seek early.
	// Seek returns it wrapped together with the partial Result.
	ErrStopped = errors.New("seek stopped by observer")

	// ErrCanceled is returned when the seek context is done.
	ErrCanceled = errors.New("seek canceled")

	// ErrNilCompute is returned when no compute function is supplied.
	ErrNilCompute = errors.New("compute function must not be nil")

	// ErrNilInterval is returned when no search interval is supplied.
	ErrNilInterval = errors.New("search interval must not be nil")

	// ErrInvalidOption is matched by every *InvalidOptionError.
	ErrInvalidOption = errors.New("invalid option")
)

// GoalNotFoundError describes a seek that terminated without converging.
//
// errors.Is(err, ErrGoalNotFound) reports true for it.
type GoalNotFoundError struct {
	Target     float64
	Lower      float64
	Upper      float64
	Iterations int
	Skipped    int
	// LastError is the rounded error of the last computed value.
	LastError float64
}

func (e *GoalNotFoundError) Error() string {
	return fmt.Sprintf("goal not found: target %g, interval [%g, %g] after %d iterations (%d skipped), last error %g",
		e.Target, e.Lower, e.Upper, e.Iterations, e.Skipped, e.LastError)
}

func (e *GoalNotFoundError) Unwrap() error { return ErrGoalNotFound }

// InvalidOptionError indicates an option value that cannot be used.
//
// errors.Is(err, ErrInvalidOption) reports true for it.
type InvalidOptionError struct {
	Name  string
	Value any
}

func (e *InvalidOptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %v", e.Name, e.Value)
}

func (e *InvalidOptionError) Unwrap() error { return ErrInvalidOption }
