package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/report"
)

func newBestResponseCmd(a *app) *cobra.Command {
	var flags struct {
		side   string
		points int
	}
	cmd := &cobra.Command{
		Use:   "bestresponse",
		Short: "Trace one side's best response to the other's education share",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			side, err := equilibrium.ParseSide(flags.side)
			if err != nil {
				return err
			}
			if flags.points < 2 {
				return fmt.Errorf("--points must be at least 2, got %d", flags.points)
			}
			fixed := floats.Span(make([]float64, flags.points), 0, 1)
			curve := equilibrium.BestResponseCurve(fixed, side, a.params.Gamma, a.params.W, a.params.Mode)
			return a.write(cmd, report.BestResponse{
				Gamma:      a.params.Gamma,
				W:          a.params.W,
				Mode:       a.params.Mode.String(),
				Responding: side.String(),
				Curve:      curve,
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.side, "side", "men", "Responding side: men or women")
	f.IntVar(&flags.points, "points", 11, "Grid points of the fixed share over [0, 1]")
	return cmd
}
