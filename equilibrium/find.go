package equilibrium

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/market"
)

// Find runs the damped education iteration for (gamma, w, mode).
//
// The four households are solved once up front; each generation then costs
// O(1). The initial guess is clamped, so every share the iteration produces,
// including an exhausted result, lies in [MinShare, MaxShare], and
// the trajectory holds at most MaxGenerations+1 snapshots.
func Find(gamma, w float64, mode household.ConstraintMode, opts ...Option) Result {
	cfg := gatherOptions(opts...)
	tbl := market.NewTable(gamma, w, mode)
	observeTable(tbl, cfg.recorder)

	return iterate(tbl, cfg)
}

// observeTable reports the four solved households of tbl to rec.
func observeTable(tbl *market.Table, rec Recorder) {
	for _, pair := range household.Pairs() {
		rec.ObserveHousehold(tbl.Outcome(pair))
	}
}

// iterate is the generation loop of Find over a prepared table.
func iterate(tbl *market.Table, cfg config) Result {
	p := tbl.Params()
	log := cfg.logger.With(
		zap.Float64("gamma", p.Gamma),
		zap.Float64("w", p.W),
		zap.Stringer("mode", p.Mode),
	)

	pm, pf := Clamp(cfg.pm), Clamp(cfg.pf)
	log.Info("equilibrium search started", zap.Float64("pm", pm), zap.Float64("pf", pf))

	traj := make(Trajectory, 0, 128)
	for i := 0; i < cfg.maxGenerations; i++ {
		traj = append(traj, Snapshot{Generation: i, Men: pm, Women: pf})

		v := tbl.ExpectedValues(pm, pf)
		nextPM := Clamp(v.ManPremium())
		nextPF := Clamp(v.WomanPremium())

		if math.Abs(nextPM-pm) < Tolerance && math.Abs(nextPF-pf) < Tolerance {
			traj = append(traj, Snapshot{Generation: i + 1, Men: nextPM, Women: nextPF})
			res := Result{
				Converged:  true,
				PM:         nextPM,
				PF:         nextPF,
				Iterations: i,
				Reason:     ReasonConverged,
				Trajectory: traj,
			}
			log.Info("equilibrium converged",
				zap.Int("iterations", i),
				zap.Float64("pm", nextPM),
				zap.Float64("pf", nextPF),
			)
			cfg.recorder.ObserveRun(res)
			return res
		}

		log.Debug("generation",
			zap.Int("generation", i),
			zap.Float64("pm", pm),
			zap.Float64("pf", pf),
			zap.Float64("next_pm", nextPM),
			zap.Float64("next_pf", nextPF),
		)
		pm = (1-Damping)*pm + Damping*nextPM
		pf = (1-Damping)*pf + Damping*nextPF
	}

	res := Result{
		PM:         pm,
		PF:         pf,
		Iterations: cfg.maxGenerations,
		Reason:     ReasonExhausted,
		Trajectory: traj,
	}
	log.Warn("equilibrium not reached",
		zap.Int("generations", cfg.maxGenerations),
		zap.Float64("pm", pm),
		zap.Float64("pf", pf),
	)
	cfg.recorder.ObserveRun(res)
	return res
}
