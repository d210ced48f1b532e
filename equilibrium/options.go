package equilibrium

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/patriarchy/household"
)

// Recorder observes solved households and finished runs (see package metrics).
// Implementations must be safe for concurrent use: MonteCarlo calls them from
// several goroutines.
type Recorder interface {
	ObserveHousehold(o household.Outcome)
	ObserveRun(r Result)
}

type nopRecorder struct{}

func (nopRecorder) ObserveHousehold(household.Outcome) {}
func (nopRecorder) ObserveRun(Result)                 {}

// Option configures Find.
type Option func(*config)

type config struct {
	pm, pf         float64
	maxGenerations int
	logger         *zap.Logger
	recorder       Recorder
}

// WithInitialGuess starts the iterator at (pm, pf) instead of the default seed.
func WithInitialGuess(pm, pf float64) Option {
	return func(c *config) { c.pm, c.pf = pm, pf }
}

// WithMaxGenerations overrides DefaultMaxGenerations. Panics if n < 1.
func WithMaxGenerations(n int) Option {
	if n < 1 {
		panic("equilibrium: WithMaxGenerations requires n >= 1")
	}
	return func(c *config) { c.maxGenerations = n }
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRecorder sets the metrics recorder; nil keeps the no-op recorder.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		if r != nil {
			c.recorder = r
		}
	}
}

func gatherOptions(user ...Option) config {
	c := config{
		pm:             DefaultSeedMen,
		pf:             DefaultSeedWomen,
		maxGenerations: DefaultMaxGenerations,
		logger:         zap.NewNop(),
		recorder:       nopRecorder{},
	}
	for _, set := range user {
		set(&c)
	}
	return c
}
