// Package expr compiles f(x) expressions into goal-seek compute functions.
//
// Expressions use govaluate syntax with the variable x and the functions
// sin, cos, tan, exp, log, sqrt, abs and pow. A comma between two digits is
// read as a decimal comma, so separate function arguments with ", ".
package expr

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/Knetic/govaluate"

	"github.com/hupe1980/goalseek"
)

// Variable is the name bound to the candidate input.
const Variable = "x"

var decimalComma = regexp.MustCompile(`(\d),(\d)`)

var functions = map[string]govaluate.ExpressionFunction{
	"sin":  unary(math.Sin),
	"cos":  unary(math.Cos),
	"tan":  unary(math.Tan),
	"exp":  unary(math.Exp),
	"log":  unary(math.Log),
	"sqrt": unary(math.Sqrt),
	"abs":  unary(math.Abs),
	"pow": func(args ...any) (any, error) {
		if len(args) != 2 {
			return nil, fmt.Errorf("pow: expected 2 arguments, got %d", len(args))
		}
		return math.Pow(toFloat(args[0]), toFloat(args[1])), nil
	},
}

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		return fn(toFloat(args[0])), nil
	}
}

// Expression is a compiled f(x). It is safe for concurrent use.
type Expression struct {
	src    string
	parsed *govaluate.EvaluableExpression
	params sync.Pool
}

// Compile parses src.
func Compile(src string) (*Expression, error) {
	normalized := decimalComma.ReplaceAllString(strings.TrimSpace(src), "$1.$2")
	if normalized == "" {
		return nil, fmt.Errorf("expr: empty expression")
	}

	parsed, err := govaluate.NewEvaluableExpressionWithFunctions(normalized, functions)
	if err != nil {
		return nil, fmt.Errorf("expr: parse %q: %w", src, err)
	}

	e := &Expression{src: src, parsed: parsed}
	e.params.New = func() any { return map[string]any{Variable: 0.0} }
	return e, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(src string) *Expression {
	e, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return e
}

// String returns the source expression.
func (e *Expression) String() string { return e.src }

// Eval evaluates the expression at x.
func (e *Expression) Eval(x float64) (float64, error) {
	params := e.params.Get().(map[string]any)
	defer e.params.Put(params)

	params[Variable] = x
	v, err := e.parsed.Evaluate(params)
	if err != nil {
		return math.NaN(), fmt.Errorf("expr: evaluate %q at %g: %w", e.src, x, err)
	}

	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case bool:
		return math.NaN(), fmt.Errorf("expr: %q is a condition, not a number", e.src)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("expr: %q returned %q: %w", e.src, t, err)
		}
		return f, nil
	default:
		return math.NaN(), fmt.Errorf("expr: %q returned %T", e.src, v)
	}
}

// Func adapts the expression to a compute function. Evaluation errors become
// NaN, which the seek treats as a skipped iteration.
func (e *Expression) Func() goalseek.ComputeFunc {
	return func(x float64) float64 {
		v, err := e.Eval(x)
		if err != nil {
			return math.NaN()
		}
		return v
	}
}

func toFloat(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
