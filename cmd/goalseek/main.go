// Command goalseek solves a single goal seek for an f(x) expression.
//
// Without flags it answers the classic example: which percentage yields
// 27000 given f(x) = x * 100000?
//
//	goalseek
//	goalseek --target 1000 --lower 0 --upper 100 --expr "pow(x*10, 2)" --format json
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/hupe1980/goalseek"
	"github.com/hupe1980/goalseek/codec"
	"github.com/hupe1980/goalseek/expr"
)

// seekFlags holds the command line configuration.
type seekFlags struct {
	Target         float64
	Lower          float64
	Upper          float64
	Expr           string
	Threshold      float64
	IterationLimit int
	Scale          float64
	Format         string
	Trace          bool
	LogLevel       string
}

func (flags *seekFlags) AsCliFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:        "target",
			Value:       27000,
			Usage:       "The value the expression should reach.",
			Destination: &flags.Target,
		},
		&cli.Float64Flag{
			Name:        "lower",
			Value:       0,
			Usage:       "Lower bound of the search interval.",
			Destination: &flags.Lower,
		},
		&cli.Float64Flag{
			Name:        "upper",
			Value:       100,
			Usage:       "Upper bound of the search interval.",
			Destination: &flags.Upper,
		},
		&cli.StringFlag{
			Name:        "expr",
			Value:       "x * 100000",
			Usage:       "The f(x) to invert. x is the midpoint divided by --scale.",
			Destination: &flags.Expr,
		},
		&cli.Float64Flag{
			Name:        "threshold",
			Value:       goalseek.DefaultThreshold,
			Usage:       "Convergence threshold for the interval half-width and the error.",
			Destination: &flags.Threshold,
		},
		&cli.IntFlag{
			Name:        "iteration-limit",
			Value:       goalseek.DefaultIterationLimit,
			Usage:       "Maximum number of iterations.",
			Destination: &flags.IterationLimit,
		},
		&cli.Float64Flag{
			Name:        "scale",
			Value:       goalseek.DefaultScale,
			Usage:       "Divisor applied to the midpoint before evaluating the expression.",
			Destination: &flags.Scale,
		},
		&cli.StringFlag{
			Name:        "format",
			Value:       "text",
			Usage:       "Output format: text or one of " + strings.Join(codec.Names(), ", ") + ".",
			Destination: &flags.Format,
		},
		&cli.BoolFlag{
			Name:        "trace",
			Usage:       "Print every iteration.",
			Destination: &flags.Trace,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Value:       "off",
			Usage:       "Log level written to stderr: off, debug, info, warn or error.",
			Destination: &flags.LogLevel,
		},
	}
}

func newApp(stdout io.Writer) *cli.App {
	var flags seekFlags
	return &cli.App{
		Name:      "goalseek",
		Usage:     "Find the input at which an expression reaches a target value.",
		Flags:     (&flags).AsCliFlags(),
		Writer:    stdout,
		ErrWriter: os.Stderr,
		Action: func(c *cli.Context) error {
			return run(c, &flags, stdout)
		},
	}
}

func run(c *cli.Context, flags *seekFlags, w io.Writer) error {
	e, err := expr.Compile(flags.Expr)
	if err != nil {
		return err
	}

	logger, err := newLogger(flags.LogLevel)
	if err != nil {
		return err
	}

	opts := []goalseek.Option{
		goalseek.WithThreshold(flags.Threshold),
		goalseek.WithIterationLimit(flags.IterationLimit),
		goalseek.WithScale(flags.Scale),
		goalseek.WithLogger(logger),
	}

	var trace goalseek.Trace
	if flags.Trace {
		opts = append(opts, goalseek.WithObserver(trace.Observe))
	}

	s, err := goalseek.New(opts...)
	if err != nil {
		return err
	}

	res, err := s.Seek(c.Context, goalseek.NewSearchInterval(flags.Target, flags.Lower, flags.Upper), e.Func())
	if err != nil {
		return err
	}

	if flags.Format == "text" {
		if flags.Trace {
			for _, step := range trace.Steps {
				fmt.Fprintf(w, "%d\t[%s, %s]\tf(%s) = %s\n", step.Iteration,
					formatFloat(step.Lower), formatFloat(step.Upper),
					formatFloat(step.Input), formatFloat(step.Value))
			}
		}
		_, err := fmt.Fprintln(w, formatFloat(res.Value))
		return err
	}

	enc, ok := codec.ByName(flags.Format)
	if !ok {
		return fmt.Errorf("unknown format %q", flags.Format)
	}

	out := output{Result: res}
	if flags.Trace {
		out.Steps = make([]outputStep, 0, len(trace.Steps))
		for _, step := range trace.Steps {
			out.Steps = append(out.Steps, newOutputStep(step))
		}
	}
	return codec.Encode(w, enc, out)
}

type output struct {
	goalseek.Result
	Steps []outputStep `json:"steps,omitempty"`
}

// outputStep is a Step whose NaN and Inf values encode as null.
type outputStep struct {
	Iteration int      `json:"iteration"`
	Lower     float64  `json:"lower"`
	Upper     float64  `json:"upper"`
	Input     float64  `json:"input"`
	Value     *float64 `json:"value"`
	Error     *float64 `json:"error"`
	Skipped   bool     `json:"skipped"`
}

func newOutputStep(s goalseek.Step) outputStep {
	return outputStep{
		Iteration: s.Iteration,
		Lower:     s.Lower,
		Upper:     s.Upper,
		Input:     s.Input,
		Value:     finiteOrNil(s.Value),
		Error:     finiteOrNil(s.Error),
		Skipped:   s.Skipped,
	}
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func newLogger(level string) (*goalseek.Logger, error) {
	if level == "" || level == "off" {
		return goalseek.NoopLogger(), nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return goalseek.NewTextLogger(l), nil
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		if errors.Is(err, goalseek.ErrGoalNotFound) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
