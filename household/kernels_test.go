package household_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/patriarchy/household"
)

// TestAnalytical_QuadraticRoot verifies that Ratio solves the defining quadratic
// and that ny = r²·nx.
func TestAnalytical_QuadraticRoot(t *testing.T) {
	for _, tc := range []struct{ wx, wy, gamma float64 }{
		{2, 2, 0.9}, {2, 1, 0.9}, {1, 2, 0.9}, {1, 1, 0}, {5, 1, 0.5}, {1.01, 1, 5},
	} {
		out := household.SolveAnalyticalTestOnly(tc.wx, tc.wy, tc.gamma)
		require.True(t, out.Feasible, "%+v", tc)

		r := out.Ratio
		residual := tc.wy*r*r + (tc.wy*(1-tc.gamma)-tc.wx)*r - tc.wx
		assert.InDelta(t, 0, residual, 1e-9, "%+v", tc)
		assert.InDelta(t, r*r*out.HouseworkMan, out.HouseworkWoman, 1e-12, "%+v", tc)
		assert.InDelta(t, out.Consumption, out.LeisureMan*tc.wx, 1e-12, "%+v", tc)
		assert.InDelta(t, out.Consumption, out.LeisureWoman*tc.wy, 1e-12, "%+v", tc)
	}
}

// TestAnalytical_MixedMatchReference pins (H,L) and (L,H) at γ=0.9, w=2.
func TestAnalytical_MixedMatchReference(t *testing.T) {
	hl := household.SolveAnalyticalTestOnly(2, 1, 0.9)
	assert.InDelta(t, 2.653672503740082, hl.Ratio, 1e-12)
	assert.InDelta(t, 0.17210453148375512, hl.UtilityMan, 1e-12)
	assert.InDelta(t, 0.34420906296751025, hl.UtilityWoman, 1e-12)
	assert.InDelta(t, 0.25, hl.LeisureMan, 1e-12)
	assert.InDelta(t, 0.5, hl.LeisureWoman, 1e-12)

	lh := household.SolveAnalyticalTestOnly(1, 2, 0.9)
	assert.InDelta(t, 0.2587117307087384, lh.UtilityMan, 1e-12)
	assert.InDelta(t, 0.1293558653543692, lh.UtilityWoman, 1e-12)

	ll := household.SolveAnalyticalTestOnly(1, 1, 0.9)
	assert.InDelta(t, 0.12196930444244926, ll.UtilityMan, 1e-12)
	assert.Equal(t, ll.UtilityMan, ll.UtilityWoman)
}

// TestAnalytical_DegenerateWages exercises each infeasibility reason that the
// closed form can report on out-of-domain wages.
func TestAnalytical_DegenerateWages(t *testing.T) {
	// A negative wife wage with γ=1 leaves b² < 4ac.
	out := household.SolveAnalyticalTestOnly(1, -1, 1)
	assert.False(t, out.Feasible)
	assert.ErrorIs(t, out.Reason, household.ErrComplexRoot)
	assert.Equal(t, household.Infeasible, out.Kind)

	// Zero husband wage: c = 0 gives the double root r = 0.
	out = household.SolveAnalyticalTestOnly(0, 1, 0)
	assert.False(t, out.Feasible)
	assert.ErrorIs(t, out.Reason, household.ErrNonPositiveRoot)
}

// TestCorner_MatchesClosedFormWhenInterior: when the closed form is inside the
// corner box, the bounded search lands on it.
func TestCorner_MatchesClosedFormWhenInterior(t *testing.T) {
	closed := household.SolveAnalyticalTestOnly(2, 2, 0.9)
	corner := household.SolveCornerTestOnly(2, 2, 0.9)

	require.True(t, corner.Feasible, "reason: %v", corner.Reason)
	assert.Equal(t, household.CornerOptimized, corner.Kind)
	assert.InDelta(t, closed.UtilityMan, corner.UtilityMan, 1e-3)
	assert.InDelta(t, closed.UtilityWoman, corner.UtilityWoman, 1e-3)
	assert.InDelta(t, closed.HouseworkMan, corner.HouseworkMan, 1e-2)
	assert.InDelta(t, closed.HouseworkWoman, corner.HouseworkWoman, 1e-2)
}

// TestCorner_RespectsBox checks every returned variable against [0.01, 0.99]
// and both time budgets.
func TestCorner_RespectsBox(t *testing.T) {
	out := household.SolveCornerTestOnly(5, 1, 0.5)
	require.True(t, out.Feasible)

	for _, v := range []float64{out.HouseworkMan, out.HouseworkWoman, out.LeisureMan, out.LeisureWoman} {
		assert.GreaterOrEqual(t, v, 0.01-1e-6)
		assert.LessOrEqual(t, v, 0.99+1e-6)
	}
	assert.LessOrEqual(t, out.Time(household.Man), 1+1e-12)
	assert.LessOrEqual(t, out.Time(household.Woman), 1+1e-12)
	assert.InDelta(t, out.Consumption*out.LeisureMan*out.Value, out.UtilityMan, 1e-15)
}

// TestCorner_StartPointOutsideValueDomain documents why γ ≥ 4 fails: at the
// fixed start point nx = ny, so v = (4 − γ)·nx.
func TestCorner_StartPointOutsideValueDomain(t *testing.T) {
	start := household.CornerStartTestOnly()
	assert.Equal(t, [4]float64{0.2, 0.2, 0.3, 0.3}, start)

	nx, ny := start[0], start[1]
	v := math.Pow(math.Sqrt(nx)+math.Sqrt(ny), 2) - 5*nx
	assert.Less(t, v, 0.0)

	out := household.SolveCornerTestOnly(5, 1, 5)
	assert.False(t, out.Feasible)
	assert.ErrorIs(t, out.Reason, household.ErrOptimizationFailed)
}

// TestParams_Validate covers every rejection path.
func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name string
		p    household.Params
		want error
	}{
		{"ok paper", household.Params{Gamma: 0.9, W: 2}, nil},
		{"ok reality", household.Params{Gamma: 0, W: 1, Mode: household.Constrained}, nil},
		{"negative gamma", household.Params{Gamma: -0.1, W: 2}, household.ErrNegativeGamma},
		{"wage below one", household.Params{Gamma: 1, W: 0.99}, household.ErrWageRatioBelowOne},
		{"nan gamma", household.Params{Gamma: math.NaN(), W: 2}, household.ErrNotFinite},
		{"inf wage", household.Params{Gamma: 1, W: math.Inf(1)}, household.ErrNotFinite},
		{"bad mode", household.Params{Gamma: 1, W: 2, Mode: household.ConstraintMode(7)}, household.ErrUnknownMode},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestParse covers the string forms accepted by the CLI and config.
func TestParse(t *testing.T) {
	for in, want := range map[string]household.WageType{"H": household.High, "high": household.High, " l ": household.Low, "Low": household.Low} {
		got, err := household.ParseWageType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := household.ParseWageType("medium")
	assert.ErrorIs(t, err, household.ErrUnknownWageType)

	for in, want := range map[string]household.ConstraintMode{
		"paper": household.Unconstrained, "Unconstrained": household.Unconstrained,
		"REALITY": household.Constrained, "constrained": household.Constrained,
	} {
		got, err := household.ParseConstraintMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err = household.ParseConstraintMode("dream")
	assert.ErrorIs(t, err, household.ErrUnknownMode)
}

// TestStringers pins the labels used in reports.
func TestStringers(t *testing.T) {
	assert.Equal(t, "H", household.High.String())
	assert.Equal(t, "L", household.Low.String())
	assert.Equal(t, "paper", household.Unconstrained.String())
	assert.Equal(t, "reality", household.Constrained.String())
	assert.Equal(t, "man", household.Man.String())
	assert.Equal(t, "woman", household.Woman.String())
	assert.Equal(t, "analytical", household.Analytical.String())
	assert.Equal(t, "corner", household.CornerOptimized.String())
	assert.Equal(t, "infeasible", household.Infeasible.String())
	assert.Equal(t, "(H, L)", household.Pair{Man: household.High, Woman: household.Low}.String())

	pairs := household.Pairs()
	assert.Equal(t, household.Pair{Man: household.High, Woman: household.High}, pairs[0])
	assert.Equal(t, household.Pair{Man: household.Low, Woman: household.Low}, pairs[3])
}
