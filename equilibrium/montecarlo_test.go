package equilibrium_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/household"
)

// TestBestResponse_StaysInRange covers the γ=1.2, w=2 reality scenario on a
// grid of fixed shares for both responding sides.
func TestBestResponse_StaysInRange(t *testing.T) {
	fixed := floats.Span(make([]float64, 50), 0.01, 0.99)
	for _, side := range []equilibrium.Side{equilibrium.Men, equilibrium.Women} {
		curve := equilibrium.BestResponseCurve(fixed, side, 1.2, 2, household.Constrained)
		require.Len(t, curve, len(fixed))
		for i, pt := range curve {
			assert.Equal(t, fixed[i], pt.Fixed)
			assert.GreaterOrEqual(t, pt.Response, equilibrium.MinShare, "%v at %v", side, pt.Fixed)
			assert.LessOrEqual(t, pt.Response, equilibrium.MaxShare, "%v at %v", side, pt.Fixed)
		}
		assert.Equal(t, equilibrium.BestResponse(fixed[7], side, 1.2, 2, household.Constrained), curve[7].Response)
	}
}

// TestBestResponse_IsOneSidedIteration: with the other side held at its
// equilibrium share, the responding side reproduces a premium fixed point.
func TestBestResponse_IsOneSidedIteration(t *testing.T) {
	res := equilibrium.Find(0.9, 2, household.Unconstrained, equilibrium.WithInitialGuess(0.5, 0.5))
	require.True(t, res.Converged)

	men := equilibrium.BestResponse(res.PF, equilibrium.Men, 0.9, 2, household.Unconstrained)
	assert.InDelta(t, res.PM, men, 1e-4)
	assert.Equal(t, "men", equilibrium.Men.String())
	assert.Equal(t, "women", equilibrium.Women.String())
}

// TestMonteCarlo_ReproducibleAcrossParallelism: same seed, same batch.
func TestMonteCarlo_ReproducibleAcrossParallelism(t *testing.T) {
	ctx := context.Background()
	serial, err := equilibrium.MonteCarlo(ctx, 0.9, 2, household.Unconstrained,
		equilibrium.BatchOptions{Runs: 8, Seed: 42, Parallel: 1})
	require.NoError(t, err)
	parallel, err := equilibrium.MonteCarlo(ctx, 0.9, 2, household.Unconstrained,
		equilibrium.BatchOptions{Runs: 8, Seed: 42, Parallel: 4})
	require.NoError(t, err)

	if diff := cmp.Diff(serial, parallel, cmpopts.IgnoreFields(equilibrium.Batch{}, "ID")); diff != "" {
		t.Errorf("batch depends on parallelism (-serial +parallel):\n%s", diff)
	}
	assert.NotEmpty(t, serial.ID)
	assert.NotEqual(t, serial.ID, parallel.ID)
}

// TestMonteCarlo_Shape checks defaults, path lengths and the verdict rule.
func TestMonteCarlo_Shape(t *testing.T) {
	var n int
	batch, err := equilibrium.MonteCarlo(context.Background(), 0.9, 2, household.Unconstrained,
		equilibrium.BatchOptions{
			Seed:        7,
			IDGenerator: func() string { n++; return fmt.Sprintf("batch-%d", n) },
		})
	require.NoError(t, err)

	assert.Equal(t, "batch-1", batch.ID)
	require.Len(t, batch.Runs, equilibrium.DefaultRuns)
	assert.Len(t, batch.MeanMen, equilibrium.DefaultHorizon)
	assert.Len(t, batch.MeanWomen, equilibrium.DefaultHorizon)
	for i, r := range batch.Runs {
		assert.Equal(t, i, r.Run)
		assert.Len(t, r.Path, equilibrium.DefaultHorizon)
		assert.Equal(t, r.StartMen, r.Path[0].Men)
		assert.Equal(t, r.StartWomen, r.Path[0].Women)
		pm, pf := equilibrium.StreamStartTestOnly(7, i)
		assert.Equal(t, pm, r.StartMen)
		assert.Equal(t, pf, r.StartWomen)
		assert.GreaterOrEqual(t, r.StartMen, 0.0)
		assert.Less(t, r.StartMen, 1.0)
	}

	want := equilibrium.MultipleEquilibria
	if batch.FinalStdDevMen < equilibrium.DefaultStableStdDev {
		want = equilibrium.GloballyStable
	}
	assert.Equal(t, want, batch.Verdict)
}

// TestMonteCarlo_Errors covers invalid options and cancellation.
func TestMonteCarlo_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := equilibrium.MonteCarlo(ctx, 0.9, 2, household.Unconstrained, equilibrium.BatchOptions{Runs: -1})
	assert.ErrorIs(t, err, equilibrium.ErrBadRuns)

	_, err = equilibrium.MonteCarlo(ctx, 0.9, 2, household.Unconstrained, equilibrium.BatchOptions{Horizon: -1})
	assert.ErrorIs(t, err, equilibrium.ErrBadHorizon)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = equilibrium.MonteCarlo(cancelled, 0.9, 2, household.Unconstrained, equilibrium.BatchOptions{Runs: 4})
	assert.ErrorIs(t, err, context.Canceled)
}

// TestMonteCarlo_RecorderSeesEveryRun: one table, one observation per run.
func TestMonteCarlo_RecorderSeesEveryRun(t *testing.T) {
	rec := newCountingRecorder()
	_, err := equilibrium.MonteCarlo(context.Background(), 0.9, 2, household.Unconstrained,
		equilibrium.BatchOptions{Runs: 6, Seed: 3, Parallel: 3},
		equilibrium.WithRecorder(rec),
	)
	require.NoError(t, err)

	assert.Equal(t, 4, rec.households[household.Analytical])
	assert.Len(t, rec.runs, 6)
}

// TestSummarize_Verdict exercises the reducer on hand-built runs.
func TestSummarize_Verdict(t *testing.T) {
	path := func(men, women float64) equilibrium.Trajectory {
		return equilibrium.Trajectory{{Men: men, Women: women}}.Reindex(3)
	}

	stable := equilibrium.SummarizeTestOnly([]equilibrium.RunSummary{
		{PM: 0.2, Path: path(0.1, 0.3)},
		{PM: 0.2, Path: path(0.3, 0.5)},
	}, 3)
	assert.Equal(t, equilibrium.GloballyStable, stable.Verdict)
	assert.Equal(t, 0.0, stable.FinalStdDevMen)
	assert.InDeltaSlice(t, []float64{0.2, 0.2, 0.2}, stable.MeanMen, 1e-15)
	assert.InDeltaSlice(t, []float64{0.4, 0.4, 0.4}, stable.MeanWomen, 1e-15)

	split := equilibrium.SummarizeTestOnly([]equilibrium.RunSummary{
		{PM: 0.1, Path: path(0.1, 0.1)},
		{PM: 0.9, Path: path(0.9, 0.9)},
	}, 3)
	assert.Equal(t, equilibrium.MultipleEquilibria, split.Verdict)
	assert.InDelta(t, 0.4, split.FinalStdDevMen, 1e-12)
}

// TestStreamStarts are deterministic and distinct per run.
func TestStreamStarts(t *testing.T) {
	a1, b1 := equilibrium.StreamStartTestOnly(42, 0)
	a2, b2 := equilibrium.StreamStartTestOnly(42, 0)
	a3, _ := equilibrium.StreamStartTestOnly(42, 1)
	z1, _ := equilibrium.StreamStartTestOnly(0, 0)
	z2, _ := equilibrium.StreamStartTestOnly(1, 0)

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
	assert.NotEqual(t, a1, a3)
	assert.Equal(t, z1, z2, "seed 0 maps onto the default seed")
}

// TestParseSide accepts singular and plural forms.
func TestParseSide(t *testing.T) {
	for in, want := range map[string]equilibrium.Side{"men": equilibrium.Men, "Man": equilibrium.Men, " women ": equilibrium.Women, "WOMAN": equilibrium.Women} {
		got, err := equilibrium.ParseSide(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := equilibrium.ParseSide("children")
	assert.ErrorIs(t, err, equilibrium.ErrUnknownSide)
	assert.Equal(t, "women", equilibrium.Women.String())
}
