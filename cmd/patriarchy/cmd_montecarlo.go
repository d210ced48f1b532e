package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patriarchy/config"
	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/report"
)

func newMonteCarloCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "montecarlo",
		Short: "Test equilibrium stability from random starting shares",
		Long: `Run the equilibrium search from --runs random starts and report the
mean trajectory. The batch is "globally stable" when the final men's
shares have a standard deviation below 0.01.

Starts are derived from --seed, so a batch is reproducible for any
--parallel value.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			batch, err := equilibrium.MonteCarlo(cmd.Context(), a.params.Gamma, a.params.W, a.params.Mode,
				a.cfg.MonteCarlo.BatchOptions(),
				equilibrium.WithMaxGenerations(a.cfg.Equilibrium.MaxGenerations),
				equilibrium.WithLogger(a.log),
				equilibrium.WithRecorder(a.rec),
			)
			if err != nil {
				return err
			}
			a.rec.ObserveBatch(batch)
			return a.write(cmd, report.MonteCarlo{
				Gamma: a.params.Gamma,
				W:     a.params.W,
				Mode:  a.params.Mode.String(),
				Batch: batch,
			})
		},
	}

	d := config.Default()
	f := cmd.Flags()
	f.Int("runs", d.MonteCarlo.Runs, "Number of random starts")
	f.Int64("seed", d.MonteCarlo.Seed, "Seed of the random starts")
	f.Int("parallel", d.MonteCarlo.Parallel, "Concurrent runs (0 = GOMAXPROCS)")
	f.Int("horizon", d.MonteCarlo.Horizon, "Generations of the averaged paths")
	f.Int("max-generations", d.Equilibrium.MaxGenerations, "Iteration cap per run")
	return cmd
}
