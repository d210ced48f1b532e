package optim

import (
	"errors"

	"gonum.org/v1/gonum/optimize"
)

// Bound is a closed interval [Lo, Hi] for one variable.
type Bound struct {
	Lo float64
	Hi float64
}

// Constraint is an inequality; x is feasible for it iff Constraint(x) ≥ 0.
type Constraint func(x []float64) float64

// Problem describes one bounded constrained minimization.
type Problem struct {
	// Func is the objective. It must not retain x.
	Func func(x []float64) float64

	// Bounds is either nil (unbounded) or one Bound per variable.
	Bounds []Bound

	// Inequalities are the g_j(x) ≥ 0 constraints.
	Inequalities []Constraint
}

// Settings tunes the penalty continuation. The zero value is not usable;
// start from DefaultSettings.
type Settings struct {
	// PenaltyStart is μ of the first stage.
	PenaltyStart float64

	// PenaltyGrowth multiplies μ between stages; must be > 1.
	PenaltyGrowth float64

	// Stages is the number of penalty stages; must be ≥ 1.
	Stages int

	// Tolerance is the absolute function change below which an inner
	// iteration counts as stalled.
	Tolerance float64

	// StallIterations is how many consecutive stalled iterations end a stage.
	StallIterations int

	// MaxIterations caps the inner iterations of each stage.
	MaxIterations int

	// FeasibilityTolerance is the largest accepted bound or constraint violation.
	FeasibilityTolerance float64
}

// DefaultSettings returns the settings used when Minimize receives nil.
func DefaultSettings() Settings {
	return Settings{
		PenaltyStart:         1e2,
		PenaltyGrowth:        10,
		Stages:               8,
		Tolerance:            1e-12,
		StallIterations:      200,
		MaxIterations:        50000,
		FeasibilityTolerance: 1e-6,
	}
}

// Result is the outcome of a successful Minimize call.
type Result struct {
	// X is the local minimizer.
	X []float64

	// F is the raw objective Func(X), without penalty terms.
	F float64

	// Violation is the largest bound or constraint violation at X.
	Violation float64

	// Stages is the number of penalty stages run.
	Stages int

	// Evaluations counts objective evaluations across all stages.
	Evaluations int

	// Status is the gonum termination status of the last stage.
	Status optimize.Status
}

// Sentinel errors.
var (
	ErrNilObjective      = errors.New("optim: nil objective")
	ErrDimensionMismatch = errors.New("optim: dimension mismatch")
	ErrBadBounds         = errors.New("optim: invalid bounds")
	ErrBadSettings       = errors.New("optim: invalid settings")
	ErrNotConverged      = errors.New("optim: local search did not converge")
	ErrInfeasible        = errors.New("optim: solution violates constraints")
)
