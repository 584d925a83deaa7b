package goalseek

import (
	"math"

	"github.com/shopspring/decimal"
)

// errorPlaces is the number of fractional digits kept by RoundedError.
const errorPlaces = 6

// SearchInterval tracks the target value and the current search bounds of a
// single seek. It is owned by one seek for its whole lifetime and is not safe
// for concurrent use.
//
// The bounds are never re-sorted: lower <= upper holds as long as the compute
// function is monotonic over the interval.
type SearchInterval struct {
	target float64
	lower  float64
	upper  float64
}

// NewSearchInterval creates an interval searching for target within [lower, upper].
func NewSearchInterval(target, lower, upper float64) *SearchInterval {
	return &SearchInterval{
		target: target,
		lower:  lower,
		upper:  upper,
	}
}

// Target returns the value the seek is trying to reach.
func (iv *SearchInterval) Target() float64 { return iv.target }

// Lower returns the current lower bound.
func (iv *SearchInterval) Lower() float64 { return iv.lower }

// Upper returns the current upper bound.
func (iv *SearchInterval) Upper() float64 { return iv.upper }

// Width returns upper - lower.
func (iv *SearchInterval) Width() float64 { return iv.upper - iv.lower }

// Midpoint returns the average of the current bounds.
func (iv *SearchInterval) Midpoint() float64 {
	return (iv.lower + iv.upper) / 2
}

// RoundedError returns target - current rounded half away from zero to six
// fractional digits. Rounding works on the shortest decimal form of the
// difference, so it matches a fixed-point formatter rather than binary rounding.
//
// Non-finite differences are returned unrounded.
func (iv *SearchInterval) RoundedError(current float64) float64 {
	diff := iv.target - current
	if math.IsNaN(diff) || math.IsInf(diff, 0) {
		return diff
	}

	rounded := decimal.NewFromFloat(diff).Round(errorPlaces).InexactFloat64()
	if rounded == 0 {
		// Drop the sign of -0.
		return 0
	}

	return rounded
}

// Narrow replaces one bound with the midpoint: the upper bound when current
// overshoots the target, the lower bound otherwise.
func (iv *SearchInterval) Narrow(current float64) {
	mid := iv.Midpoint()
	if iv.RoundedError(current) < 0 {
		iv.upper = mid
	} else {
		iv.lower = mid
	}
}

// halfWidth is |lower - upper| / 2, the continuation measure of the seek loop.
func (iv *SearchInterval) halfWidth() float64 {
	return math.Abs(iv.lower-iv.upper) / 2
}
