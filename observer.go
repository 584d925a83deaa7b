package goalseek

// Step is the state of a seek after one iteration.
type Step struct {
	Iteration int     `json:"iteration"`
	Lower     float64 `json:"lower"`
	Upper     float64 `json:"upper"`
	// Midpoint is the point evaluated in this iteration, before narrowing.
	Midpoint float64 `json:"midpoint"`
	// Input is Midpoint divided by the configured scale.
	Input float64 `json:"input"`
	Value float64 `json:"value"`
	// Error is the rounded error of Value. It is NaN or Inf when Skipped.
	Error   float64 `json:"error"`
	Skipped bool    `json:"skipped"`
}

// Observer is called after every iteration of a seek.
// Returning ErrStopped ends the seek with the partial result; any other
// error ends it with that error.
type Observer func(Step) error

// Trace collects every step of a seek.
type Trace struct {
	Steps []Step `json:"steps"`
}

// Observe implements Observer.
func (t *Trace) Observe(step Step) error {
	t.Steps = append(t.Steps, step)
	return nil
}

// Last returns the most recent step and false if none was recorded.
func (t *Trace) Last() (Step, bool) {
	if len(t.Steps) == 0 {
		return Step{}, false
	}
	return t.Steps[len(t.Steps)-1], true
}

// StopAfter returns an Observer that stops the seek after n iterations.
func StopAfter(n int) Observer {
	return func(step Step) error {
		if step.Iteration >= n {
			return ErrStopped
		}
		return nil
	}
}
