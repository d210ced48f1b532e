package equilibrium

import (
	"context"
	"runtime"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/market"
)

// Batch defaults.
const (
	DefaultRuns         = 20
	DefaultHorizon      = 100
	DefaultStableStdDev = 0.01
)

// Verdict classifies a Monte Carlo batch.
type Verdict string

const (
	// GloballyStable: every start ended at (nearly) the same men's share.
	GloballyStable Verdict = "globally stable"

	// MultipleEquilibria: the final men's share depends on the start.
	MultipleEquilibria Verdict = "multiple equilibria"
)

// BatchOptions configures MonteCarlo. Zero fields take the defaults.
type BatchOptions struct {
	// Runs is the number of independent starts (DefaultRuns).
	Runs int

	// Seed drives every random start. 0 is an alias of 1, so both seeds
	// give the same batch.
	Seed int64

	// Parallel bounds concurrent runs (GOMAXPROCS when ≤ 0).
	Parallel int

	// Horizon is the number of generations of the reindexed paths (DefaultHorizon).
	Horizon int

	// StableStdDev is the verdict threshold on the population standard
	// deviation of the final men's shares (DefaultStableStdDev).
	StableStdDev float64

	// IDGenerator names the batch (ULID when nil).
	IDGenerator func() string
}

// RunSummary is one run of a batch.
type RunSummary struct {
	Run        int        `json:"run" yaml:"run"`
	StartMen   float64    `json:"start_men" yaml:"start_men"`
	StartWomen float64    `json:"start_women" yaml:"start_women"`
	Converged  bool       `json:"converged" yaml:"converged"`
	PM         float64    `json:"pm" yaml:"pm"`
	PF         float64    `json:"pf" yaml:"pf"`
	Iterations int        `json:"iterations" yaml:"iterations"`
	Path       Trajectory `json:"path" yaml:"path"`
}

// Batch is the summary of a Monte Carlo stability analysis.
type Batch struct {
	ID        string       `json:"id" yaml:"id"`
	Runs      []RunSummary `json:"runs" yaml:"runs"`
	MeanMen   []float64    `json:"mean_men" yaml:"mean_men"`
	MeanWomen []float64    `json:"mean_women" yaml:"mean_women"`

	// FinalStdDevMen is the population standard deviation of the runs' PM.
	FinalStdDevMen float64 `json:"final_std_dev_men" yaml:"final_std_dev_men"`
	Verdict        Verdict `json:"verdict" yaml:"verdict"`
}

// MonteCarlo runs Find from bo.Runs uniform random starts in [0,1)² and
// summarizes where society ends up.
//
// Start i is drawn from a stream derived from (bo.Seed, i), so a batch is
// reproducible regardless of bo.Parallel. Paths are reindexed to bo.Horizon
// generations (forward-filled) and averaged per generation. opts apply to
// every run; an initial guess among them is overridden by the random start.
//
// Errors: ErrBadRuns, ErrBadHorizon, or ctx.Err() when cancelled between runs.
func MonteCarlo(ctx context.Context, gamma, w float64, mode household.ConstraintMode, bo BatchOptions, opts ...Option) (Batch, error) {
	bo, err := bo.withDefaults()
	if err != nil {
		return Batch{}, err
	}
	cfg := gatherOptions(opts...)
	id := bo.IDGenerator()
	log := cfg.logger.With(zap.String("batch", id))
	log.Info("monte carlo batch started",
		zap.Int("runs", bo.Runs),
		zap.Int64("seed", bo.Seed),
		zap.Int("parallel", bo.Parallel),
	)

	tbl := market.NewTable(gamma, w, mode)
	observeTable(tbl, cfg.recorder)

	runs := make([]RunSummary, bo.Runs)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bo.Parallel)
	for i := 0; i < bo.Runs; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			pm, pf := randomStart(streamRNG(bo.Seed, i))
			runCfg := cfg
			runCfg.pm, runCfg.pf = pm, pf
			runCfg.logger = log.With(zap.Int("run", i))

			res := iterate(tbl, runCfg)
			runs[i] = RunSummary{
				Run:        i,
				StartMen:   pm,
				StartWomen: pf,
				Converged:  res.Converged,
				PM:         res.PM,
				PF:         res.PF,
				Iterations: res.Iterations,
				Path:       res.Trajectory.Reindex(bo.Horizon),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("monte carlo batch aborted", zap.Error(err))
		return Batch{}, err
	}

	batch := summarize(id, runs, bo)
	log.Info("monte carlo batch finished",
		zap.Float64("final_std_dev_men", batch.FinalStdDevMen),
		zap.String("verdict", string(batch.Verdict)),
	)
	return batch, nil
}

// summarize computes the mean paths, the dispersion of final men's shares
// and the verdict.
func summarize(id string, runs []RunSummary, bo BatchOptions) Batch {
	var (
		meanMen   = make([]float64, bo.Horizon)
		meanWomen = make([]float64, bo.Horizon)
		column    = make([]float64, len(runs))
		finals    = make([]float64, len(runs))
	)
	for g := 0; g < bo.Horizon; g++ {
		for i, r := range runs {
			column[i] = r.Path[g].Men
		}
		meanMen[g] = stat.Mean(column, nil)
		for i, r := range runs {
			column[i] = r.Path[g].Women
		}
		meanWomen[g] = stat.Mean(column, nil)
	}
	for i, r := range runs {
		finals[i] = r.PM
	}

	std := stat.PopStdDev(finals, nil)
	verdict := MultipleEquilibria
	if std < bo.StableStdDev {
		verdict = GloballyStable
	}

	return Batch{
		ID:             id,
		Runs:           runs,
		MeanMen:        meanMen,
		MeanWomen:      meanWomen,
		FinalStdDevMen: std,
		Verdict:        verdict,
	}
}

// withDefaults validates bo and fills zero fields.
func (bo BatchOptions) withDefaults() (BatchOptions, error) {
	switch {
	case bo.Runs < 0:
		return bo, ErrBadRuns
	case bo.Runs == 0:
		bo.Runs = DefaultRuns
	}
	switch {
	case bo.Horizon < 0:
		return bo, ErrBadHorizon
	case bo.Horizon == 0:
		bo.Horizon = DefaultHorizon
	}
	if bo.Parallel <= 0 {
		bo.Parallel = runtime.GOMAXPROCS(0)
	}
	if bo.StableStdDev <= 0 {
		bo.StableStdDev = DefaultStableStdDev
	}
	if bo.IDGenerator == nil {
		bo.IDGenerator = func() string { return ulid.Make().String() }
	}
	return bo, nil
}
