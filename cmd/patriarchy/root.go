package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/patriarchy/config"
	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/logging"
	"github.com/katalvlaran/patriarchy/metrics"
	"github.com/katalvlaran/patriarchy/report"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state shared by the subcommands of one invocation.
type app struct {
	configPath string

	cfg    config.Config
	params household.Params
	format report.Format
	log    *zap.Logger
	rec    *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}
	d := config.Default()

	root := &cobra.Command{
		Use:   "patriarchy",
		Short: "Household bargaining, marriage matching and education equilibria",
		Long: `patriarchy solves the four household types of the marriage market
(H/L man x H/L woman) under a household-production bias gamma and a
high-to-low wage ratio w, then iterates the education decisions of both
sexes to a stable equilibrium.

"paper" mode keeps the closed-form solution even when it breaks the time
budget; "reality" mode falls back to a bounded numerical solver.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&a.configPath, "config", "", "YAML configuration file")
	f.Float64("gamma", d.Model.Gamma, "Household-production bias (>= 0)")
	f.Float64("wage", d.Model.Wage, "High-to-low wage ratio (>= 1)")
	f.String("mode", d.Model.Mode, "Constraint mode: paper or reality")
	f.StringP("output", "o", d.Output.Format, "Output format: text, yaml or json")
	f.String("log-level", d.Log.Level, "Log level: debug, info, warn, error")
	f.String("log-format", d.Log.Format, "Log format: console or json")
	f.String("metrics-textfile", "", "Write Prometheus metrics to this file on exit")

	root.AddCommand(
		newHouseholdCmd(a),
		newEquilibriumCmd(a),
		newMonteCarloCmd(a),
		newBestResponseCmd(a),
		newIndifferenceCmd(a),
	)
	return root
}

// setup resolves the configuration and builds the logger and recorder.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	params, err := cfg.Model.Params()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	a.cfg, a.params, a.format, a.log = cfg, params, format, log
	a.rec = metrics.New()
	a.log.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.Float64("gamma", params.Gamma),
		zap.Float64("w", params.W),
		zap.Stringer("mode", params.Mode),
	)
	return nil
}

// teardown writes the metrics textfile when requested and flushes the logger.
func (a *app) teardown() error {
	if path := a.cfg.Metrics.Textfile; path != "" && a.rec != nil {
		if err := a.rec.WriteTextfile(path); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		a.log.Info("metrics written", zap.String("path", path))
	}
	_ = a.log.Sync()
	return nil
}

// write renders v to the command's output in the configured format.
func (a *app) write(cmd *cobra.Command, v report.Tabular) error {
	return report.Write(cmd.OutOrStdout(), a.format, v)
}
