package expr

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/goalseek"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name string
		src  string
		x    float64
		want float64
	}{
		{"Linear", "x * 100000", 0.27, 27000},
		{"DecimalComma", "x * 2,5", 2, 5},
		{"Pow", "pow(x, 3)", 2, 8},
		{"PowDecimalComma", "pow(x, 0,5)", 16, 4},
		{"Sqrt", "sqrt(x) + 1", 16, 5},
		{"Abs", "abs(x - 10)", 4, 6},
		{"Exp", "exp(x)", 0, 1},
		{"Log", "log(x)", 1, 0},
		{"Trig", "sin(x) + cos(x) + tan(x)", 0, 1},
		{"Constant", "42", 0, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Compile(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.src, e.String())

			got, err := e.Eval(tt.x)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := Compile("  ")
		assert.Error(t, err)
	})

	t.Run("Syntax", func(t *testing.T) {
		_, err := Compile("x * (")
		assert.Error(t, err)
	})

	t.Run("MustCompilePanics", func(t *testing.T) {
		assert.Panics(t, func() { MustCompile("x * (") })
	})
}

func TestEvalErrors(t *testing.T) {
	t.Run("Condition", func(t *testing.T) {
		e := MustCompile("x > 1")
		v, err := e.Eval(2)
		assert.Error(t, err)
		assert.True(t, math.IsNaN(v))
	})

	t.Run("UnknownVariable", func(t *testing.T) {
		e := MustCompile("y * 2")
		v, err := e.Eval(2)
		assert.Error(t, err)
		assert.True(t, math.IsNaN(v))
	})
}

func TestFunc(t *testing.T) {
	t.Run("GoalSeek", func(t *testing.T) {
		x, err := goalseek.GoalSeek(27000, 0, 100, MustCompile("x * 100000").Func())
		require.NoError(t, err)
		assert.InDelta(t, 27.0, x, 1e-6)
	})

	t.Run("ErrorsBecomeNaN", func(t *testing.T) {
		f := MustCompile("y").Func()
		assert.True(t, math.IsNaN(f(1)))
	})

	t.Run("Concurrent", func(t *testing.T) {
		e := MustCompile("x * 2")

		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					v, err := e.Eval(float64(i))
					assert.NoError(t, err)
					assert.Equal(t, float64(2*i), v)
				}
			}(i)
		}
		wg.Wait()
	})
}
