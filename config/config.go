// Package config loads the layered configuration of the patriarchy binary.
//
// Precedence, lowest first: built-in defaults, the YAML file given with
// --config, PATRIARCHY_* environment variables, and explicitly set flags.
// Keys are dotted ("model.gamma"); the environment form upper-cases them
// and replaces dots with underscores (PATRIARCHY_MODEL_GAMMA).
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/logging"
	"github.com/katalvlaran/patriarchy/report"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PATRIARCHY"

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the full configuration tree.
type Config struct {
	Model        Model        `mapstructure:"model" yaml:"model"`
	Equilibrium  Equilibrium  `mapstructure:"equilibrium" yaml:"equilibrium"`
	MonteCarlo   MonteCarlo   `mapstructure:"montecarlo" yaml:"montecarlo"`
	Indifference Indifference `mapstructure:"indifference" yaml:"indifference"`
	Log          Log          `mapstructure:"log" yaml:"log"`
	Output       Output       `mapstructure:"output" yaml:"output"`
	Metrics      Metrics      `mapstructure:"metrics" yaml:"metrics"`
}

// Model holds the household parameters.
type Model struct {
	Gamma float64 `mapstructure:"gamma" yaml:"gamma"`
	Wage  float64 `mapstructure:"wage" yaml:"wage"`
	Mode  string  `mapstructure:"mode" yaml:"mode"`
}

// Equilibrium configures a single search.
type Equilibrium struct {
	InitialMen     float64 `mapstructure:"initial_men" yaml:"initial_men"`
	InitialWomen   float64 `mapstructure:"initial_women" yaml:"initial_women"`
	MaxGenerations int     `mapstructure:"max_generations" yaml:"max_generations"`
}

// MonteCarlo configures a stability batch. Parallel ≤ 0 means GOMAXPROCS.
type MonteCarlo struct {
	Runs     int   `mapstructure:"runs" yaml:"runs"`
	Seed     int64 `mapstructure:"seed" yaml:"seed"`
	Parallel int   `mapstructure:"parallel" yaml:"parallel"`
	Horizon  int   `mapstructure:"horizon" yaml:"horizon"`
}

// Indifference is the gamma grid of an indifference curve.
type Indifference struct {
	GammaMin float64 `mapstructure:"gamma_min" yaml:"gamma_min"`
	GammaMax float64 `mapstructure:"gamma_max" yaml:"gamma_max"`
	Steps    int     `mapstructure:"steps" yaml:"steps"`
}

// Log configures the logger (see package logging).
type Log struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Output selects the report encoding.
type Output struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// Metrics names the Prometheus textfile; empty disables the dump.
type Metrics struct {
	Textfile string `mapstructure:"textfile" yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model: Model{Gamma: 0.9, Wage: 2, Mode: household.Unconstrained.String()},
		Equilibrium: Equilibrium{
			InitialMen:     equilibrium.DefaultSeedMen,
			InitialWomen:   equilibrium.DefaultSeedWomen,
			MaxGenerations: equilibrium.DefaultMaxGenerations,
		},
		MonteCarlo: MonteCarlo{
			Runs:    equilibrium.DefaultRuns,
			Seed:    1,
			Horizon: equilibrium.DefaultHorizon,
		},
		Indifference: Indifference{GammaMin: 0, GammaMax: 3, Steps: 31},
		Log:          Log{Level: "info", Format: logging.FormatConsole},
		Output:       Output{Format: string(report.Text)},
	}
}

// FlagKeys maps flag names to configuration keys. Load binds the flags of
// this table that exist in the given flag set.
var FlagKeys = map[string]string{
	"gamma":            "model.gamma",
	"wage":             "model.wage",
	"mode":             "model.mode",
	"initial-men":      "equilibrium.initial_men",
	"initial-women":    "equilibrium.initial_women",
	"max-generations":  "equilibrium.max_generations",
	"runs":             "montecarlo.runs",
	"seed":             "montecarlo.seed",
	"parallel":         "montecarlo.parallel",
	"horizon":          "montecarlo.horizon",
	"gamma-min":        "indifference.gamma_min",
	"gamma-max":        "indifference.gamma_max",
	"steps":            "indifference.steps",
	"log-level":        "log.level",
	"log-format":       "log.format",
	"output":           "output.format",
	"metrics-textfile": "metrics.textfile",
}

// Load resolves the configuration from path (skipped when empty), the
// environment and flags (nil allowed), then validates it.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// setDefaults registers every key of d so that the environment can
// override keys absent from the file.
func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("model.gamma", d.Model.Gamma)
	v.SetDefault("model.wage", d.Model.Wage)
	v.SetDefault("model.mode", d.Model.Mode)
	v.SetDefault("equilibrium.initial_men", d.Equilibrium.InitialMen)
	v.SetDefault("equilibrium.initial_women", d.Equilibrium.InitialWomen)
	v.SetDefault("equilibrium.max_generations", d.Equilibrium.MaxGenerations)
	v.SetDefault("montecarlo.runs", d.MonteCarlo.Runs)
	v.SetDefault("montecarlo.seed", d.MonteCarlo.Seed)
	v.SetDefault("montecarlo.parallel", d.MonteCarlo.Parallel)
	v.SetDefault("montecarlo.horizon", d.MonteCarlo.Horizon)
	v.SetDefault("indifference.gamma_min", d.Indifference.GammaMin)
	v.SetDefault("indifference.gamma_max", d.Indifference.GammaMax)
	v.SetDefault("indifference.steps", d.Indifference.Steps)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("metrics.textfile", d.Metrics.Textfile)
}

// Validate checks every section; the first failure is returned wrapped in
// ErrInvalid together with the underlying package error.
func (c Config) Validate() error {
	if _, err := c.Model.Params(); err != nil {
		return invalid("model", err)
	}
	e := c.Equilibrium
	if e.InitialMen < 0 || e.InitialMen > 1 || e.InitialWomen < 0 || e.InitialWomen > 1 {
		return invalid("equilibrium", errors.New("initial shares must lie in [0, 1]"))
	}
	if e.MaxGenerations < 1 {
		return invalid("equilibrium", errors.New("max_generations must be at least 1"))
	}
	m := c.MonteCarlo
	if m.Runs < 1 {
		return invalid("montecarlo", equilibrium.ErrBadRuns)
	}
	if m.Horizon < 1 {
		return invalid("montecarlo", equilibrium.ErrBadHorizon)
	}
	i := c.Indifference
	if i.GammaMin < 0 || i.GammaMax < i.GammaMin {
		return invalid("indifference", errors.New("gamma range must satisfy 0 <= gamma_min <= gamma_max"))
	}
	if i.Steps < 2 {
		return invalid("indifference", errors.New("steps must be at least 2"))
	}
	if !logging.ValidLevel(c.Log.Level) {
		return invalid("log", fmt.Errorf("unknown level %q", c.Log.Level))
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case logging.FormatJSON, logging.FormatConsole, "":
	default:
		return invalid("log", logging.ErrUnknownFormat)
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return invalid("output", err)
	}
	return nil
}

// Params converts the model section.
func (m Model) Params() (household.Params, error) {
	mode, err := household.ParseConstraintMode(m.Mode)
	if err != nil {
		return household.Params{}, err
	}
	p := household.Params{Gamma: m.Gamma, W: m.Wage, Mode: mode}
	return p, p.Validate()
}

// BatchOptions converts the Monte Carlo section.
func (m MonteCarlo) BatchOptions() equilibrium.BatchOptions {
	return equilibrium.BatchOptions{Runs: m.Runs, Seed: m.Seed, Parallel: m.Parallel, Horizon: m.Horizon}
}

// Gammas returns Steps evenly spaced values from GammaMin to GammaMax.
func (i Indifference) Gammas() []float64 {
	return floats.Span(make([]float64, i.Steps), i.GammaMin, i.GammaMax)
}

func invalid(section string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInvalid, section, err)
}
