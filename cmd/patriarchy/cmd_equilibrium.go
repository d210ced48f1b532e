package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patriarchy/config"
	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/report"
)

func newEquilibriumCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "equilibrium",
		Short: "Iterate education shares to a stable equilibrium",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := a.cfg.Equilibrium
			res := equilibrium.Find(a.params.Gamma, a.params.W, a.params.Mode,
				equilibrium.WithInitialGuess(e.InitialMen, e.InitialWomen),
				equilibrium.WithMaxGenerations(e.MaxGenerations),
				equilibrium.WithLogger(a.log),
				equilibrium.WithRecorder(a.rec),
			)
			return a.write(cmd, report.NewEquilibrium(a.params.Gamma, a.params.W, a.params.Mode.String(), res))
		},
	}

	d := config.Default().Equilibrium
	f := cmd.Flags()
	f.Float64("initial-men", d.InitialMen, "Initial share of educated men")
	f.Float64("initial-women", d.InitialWomen, "Initial share of educated women")
	f.Int("max-generations", d.MaxGenerations, "Iteration cap")
	return cmd
}
