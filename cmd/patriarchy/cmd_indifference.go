package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/patriarchy/config"
	"github.com/katalvlaran/patriarchy/indifference"
	"github.com/katalvlaran/patriarchy/report"
)

func newIndifferenceCmd(a *app) *cobra.Command {
	var agentName string
	cmd := &cobra.Command{
		Use:   "indifference",
		Short: "Find the wage ratio at which a high-wage agent is indifferent between partners",
		Long: `For each gamma on the grid, find w* where the high-wage agent gets the
same utility from a high-wage partner as from a low-wage one. "none"
means the utilities never cross on [1.01, 60].`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			agent, err := indifference.ParseAgent(agentName)
			if err != nil {
				return err
			}
			curve := indifference.Curve(a.cfg.Indifference.Gammas(), agent, a.params.Mode)
			return a.write(cmd, report.Indifference{
				Agent: agent.String(),
				Mode:  a.params.Mode.String(),
				Curve: curve,
			})
		},
	}

	d := config.Default().Indifference
	f := cmd.Flags()
	f.StringVar(&agentName, "agent", "man", "High-wage agent: man or woman")
	f.Float64("gamma-min", d.GammaMin, "Smallest gamma of the grid")
	f.Float64("gamma-max", d.GammaMax, "Largest gamma of the grid")
	f.Int("steps", d.Steps, "Grid points")
	return cmd
}
