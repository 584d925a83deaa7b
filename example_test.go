package goalseek_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/goalseek"
)

// ExampleGoalSeek finds the percentage that yields 27000 given f(x) = x * 100000.
func ExampleGoalSeek() {
	x, err := goalseek.GoalSeek(27000, 0, 100, func(p float64) float64 {
		return p * 100000
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.6f\n", x)
	// Output: 27.000000
}

// ExampleGoalSeek_notFound shows the error returned when the target is out of reach.
func ExampleGoalSeek_notFound() {
	_, err := goalseek.GoalSeek(1e9, 0, 1, func(x float64) float64 { return x })

	fmt.Println(errors.Is(err, goalseek.ErrGoalNotFound))
	// Output: true
}

// ExampleSeeker_Seek traces a seek with an observer.
func ExampleSeeker_Seek() {
	var trace goalseek.Trace
	s, err := goalseek.New(
		goalseek.WithScale(1),
		goalseek.WithObserver(trace.Observe),
	)
	if err != nil {
		log.Fatal(err)
	}

	res, err := s.Seek(context.Background(), goalseek.NewSearchInterval(9, 0, 8), func(x float64) float64 {
		return x * x
	})
	if err != nil {
		log.Fatal(err)
	}

	for _, step := range trace.Steps {
		fmt.Printf("%d: f(%g) = %g -> [%g, %g]\n", step.Iteration, step.Midpoint, step.Value, step.Lower, step.Upper)
	}
	fmt.Println(res.Value, res.Iterations)
	// Output:
	// 1: f(4) = 16 -> [0, 4]
	// 2: f(2) = 4 -> [2, 4]
	// 3: f(3) = 9 -> [3, 4]
	// 3 3
}
