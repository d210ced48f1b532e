package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patriarchy/report"
)

func newHouseholdCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "household",
		Short: "Solve the four household compositions",
		Long: `Solve (H,H), (H,L), (L,H) and (L,L) for the configured gamma, wage
ratio and mode, flag partners whose time exceeds the budget, and show
whether high-wage agents prefer an assortative match.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep := report.Build(a.params)
			for _, o := range rep.Outcomes() {
				a.rec.ObserveHousehold(o)
			}
			return a.write(cmd, rep)
		},
	}
}
