package rootfind_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patriarchy/rootfind"
)

type solver func(func(float64) float64, float64, float64, ...rootfind.Option) (float64, error)

var solvers = map[string]solver{
	"brent":  rootfind.Brent,
	"bisect": rootfind.Bisect,
}

// TestSolvers_KnownRoots checks both methods on smooth and kinked functions.
func TestSolvers_KnownRoots(t *testing.T) {
	tests := []struct {
		name   string
		f      func(float64) float64
		lo, hi float64
		want   float64
	}{
		{"sqrt2", func(x float64) float64 { return x*x - 2 }, 0, 2, math.Sqrt2},
		{"cubic", func(x float64) float64 { return x*x*x - x - 1 }, 1, 2, 1.324717957244746},
		{"cosine fixed point", func(x float64) float64 { return math.Cos(x) - x }, 0, 1, 0.7390851332151607},
		{"decreasing", func(x float64) float64 { return 3 - x }, -10, 10, 3},
		{"kink", func(x float64) float64 { return math.Abs(x-0.25) - 0.5 }, 0.25, 5, 0.75},
	}
	for name, solve := range solvers {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				x, err := solve(tc.f, tc.lo, tc.hi)
				require.NoError(t, err)
				assert.InDelta(t, tc.want, x, 1e-10)
			})
		}
	}
}

// TestSolvers_ExactEndpointRoot returns an endpoint that is already a root.
func TestSolvers_ExactEndpointRoot(t *testing.T) {
	for name, solve := range solvers {
		x, err := solve(func(x float64) float64 { return x - 1 }, 1, 4)
		require.NoError(t, err, name)
		assert.Equal(t, 1.0, x, name)

		x, err = solve(func(x float64) float64 { return x - 4 }, 1, 4)
		require.NoError(t, err, name)
		assert.Equal(t, 4.0, x, name)
	}
}

// TestSolvers_Errors covers every sentinel.
func TestSolvers_Errors(t *testing.T) {
	square := func(x float64) float64 { return x*x + 1 }
	for name, solve := range solvers {
		_, err := solve(square, -1, 1)
		assert.ErrorIs(t, err, rootfind.ErrNoBracket, name)

		_, err = solve(square, 1, 1)
		assert.ErrorIs(t, err, rootfind.ErrBadInterval, name)

		_, err = solve(square, math.NaN(), 1)
		assert.ErrorIs(t, err, rootfind.ErrBadInterval, name)

		_, err = solve(func(float64) float64 { return math.NaN() }, 0, 1)
		assert.ErrorIs(t, err, rootfind.ErrNotFinite, name)

		_, err = solve(func(x float64) float64 { return math.Cos(x) - x }, 0, 1, rootfind.WithMaxIter(2), rootfind.WithXTol(1e-15))
		assert.ErrorIs(t, err, rootfind.ErrMaxIterations, name)
	}
}

// TestBrent_FewerEvaluationsThanBisect confirms the superlinear phase.
func TestBrent_FewerEvaluationsThanBisect(t *testing.T) {
	count := func(calls *int) func(float64) float64 {
		return func(x float64) float64 {
			*calls++
			return math.Exp(x) - 10
		}
	}
	var brentCalls, bisectCalls int

	xb, err := rootfind.Brent(count(&brentCalls), 0, 5)
	require.NoError(t, err)
	xs, err := rootfind.Bisect(count(&bisectCalls), 0, 5)
	require.NoError(t, err)

	assert.InDelta(t, math.Log(10), xb, 1e-11)
	assert.InDelta(t, math.Log(10), xs, 1e-11)
	assert.Less(t, brentCalls, bisectCalls)
}

// TestOptions_CoarseTolerance stops early with a loose tolerance.
func TestOptions_CoarseTolerance(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }

	x, err := rootfind.Bisect(f, 0, 2, rootfind.WithXTol(1e-3), rootfind.WithRTol(0))
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, x, 1e-3)
	assert.Greater(t, math.Abs(x-math.Sqrt2), 1e-12)
}

// TestOptions_PanicOnInvalid mirrors the functional-option contract.
func TestOptions_PanicOnInvalid(t *testing.T) {
	assert.Panics(t, func() { rootfind.WithXTol(0) })
	assert.Panics(t, func() { rootfind.WithXTol(math.Inf(1)) })
	assert.Panics(t, func() { rootfind.WithRTol(-1) })
	assert.Panics(t, func() { rootfind.WithMaxIter(0) })
	assert.NotPanics(t, func() { rootfind.WithRTol(0) })
}
