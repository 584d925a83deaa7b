package main

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/goalseek"
)

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newApp(&out).Run(append([]string{"goalseek"}, args...))
	return out.String(), err
}

func TestDefaultDemo(t *testing.T) {
	out, err := runApp(t)
	require.NoError(t, err)

	v, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	require.NoError(t, err)
	assert.InDelta(t, 27.0, v, 1e-6)
}

func TestJSONOutput(t *testing.T) {
	for _, format := range []string{"json", "go-json"} {
		t.Run(format, func(t *testing.T) {
			out, err := runApp(t, "--target", "9", "--lower", "0", "--upper", "8", "--scale", "1",
				"--expr", "x * x", "--format", format, "--trace")
			require.NoError(t, err)

			var got struct {
				goalseek.Result
				Steps []struct {
					Iteration int      `json:"iteration"`
					Value     *float64 `json:"value"`
				} `json:"steps"`
			}
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, 3.0, got.Value)
			assert.Equal(t, 3, got.Iterations)
			require.Len(t, got.Steps, 3)
			require.NotNil(t, got.Steps[0].Value)
			assert.Equal(t, 16.0, *got.Steps[0].Value)
		})
	}
}

func TestTextTrace(t *testing.T) {
	out, err := runApp(t, "--target", "9", "--lower", "0", "--upper", "8", "--scale", "1", "--expr", "x * x", "--trace")
	require.NoError(t, err)

	assert.Equal(t, "1\t[0, 4]\tf(4) = 16\n2\t[2, 4]\tf(2) = 4\n3\t[3, 4]\tf(3) = 9\n3\n", out)
}

func TestErrors(t *testing.T) {
	t.Run("GoalNotFound", func(t *testing.T) {
		_, err := runApp(t, "--target", "1e9", "--upper", "1", "--expr", "x")
		assert.ErrorIs(t, err, goalseek.ErrGoalNotFound)
	})

	t.Run("BadExpression", func(t *testing.T) {
		_, err := runApp(t, "--expr", "x * (")
		assert.Error(t, err)
	})

	t.Run("BadFormat", func(t *testing.T) {
		_, err := runApp(t, "--format", "xml")
		assert.ErrorContains(t, err, "unknown format")
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		_, err := runApp(t, "--log-level", "loud")
		assert.ErrorContains(t, err, "invalid log level")
	})

	t.Run("BadThreshold", func(t *testing.T) {
		_, err := runApp(t, "--threshold", "0")
		assert.ErrorIs(t, err, goalseek.ErrInvalidOption)
	})
}
