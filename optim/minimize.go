package optim

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/optimize"
)

// Minimize runs the penalty continuation described in the package doc from x0.
// x0 is not modified. A nil s selects DefaultSettings.
//
// Errors:
//   - ErrNilObjective, ErrDimensionMismatch, ErrBadBounds, ErrBadSettings: invalid input.
//   - ErrNotConverged: a stage stopped on an iteration limit or gonum failure
//     (wrapped with the gonum cause).
//   - ErrInfeasible: the final iterate violates a bound or constraint by more
//     than s.FeasibilityTolerance.
//
// Complexity: Stages × (inner Nelder–Mead iterations) objective evaluations.
func Minimize(p Problem, x0 []float64, s *Settings) (Result, error) {
	cfg := DefaultSettings()
	if s != nil {
		cfg = *s
	}
	if err := validate(p, x0, cfg); err != nil {
		return Result{}, err
	}

	var (
		x      = append([]float64(nil), x0...)
		mu     = cfg.PenaltyStart
		evals  int
		status optimize.Status
		stage  int
	)
	for stage = 0; stage < cfg.Stages; stage++ {
		weight := mu
		penalized := optimize.Problem{
			Func: func(z []float64) float64 {
				return p.Func(z) + weight*p.squaredViolation(z)
			},
		}
		settings := &optimize.Settings{
			MajorIterations: cfg.MaxIterations,
			Converger: &optimize.FunctionConverge{
				Absolute:   cfg.Tolerance,
				Iterations: cfg.StallIterations,
			},
		}

		res, err := optimize.Minimize(penalized, x, settings, &optimize.NelderMead{})
		if res != nil {
			evals += res.Stats.FuncEvaluations
		}
		if err != nil {
			return Result{}, fmt.Errorf("%w: stage %d: %v", ErrNotConverged, stage, err)
		}
		if res.Status.Early() {
			return Result{}, fmt.Errorf("%w: stage %d: %v", ErrNotConverged, stage, res.Status)
		}

		copy(x, res.X)
		status = res.Status
		mu *= cfg.PenaltyGrowth
	}

	violation := p.Violation(x)
	if violation > cfg.FeasibilityTolerance {
		return Result{}, ErrInfeasible
	}

	return Result{
		X:           x,
		F:           p.Func(x),
		Violation:   violation,
		Stages:      stage,
		Evaluations: evals,
		Status:      status,
	}, nil
}

// Violation returns the largest bound or inequality violation at x (0 when feasible).
func (p Problem) Violation(x []float64) float64 {
	var worst float64
	for i, b := range p.Bounds {
		worst = math.Max(worst, boundGap(x[i], b))
	}
	for _, g := range p.Inequalities {
		worst = math.Max(worst, -g(x))
	}
	return worst
}

// squaredViolation is the quadratic penalty term Σ gap².
func (p Problem) squaredViolation(x []float64) float64 {
	var sum float64
	for i, b := range p.Bounds {
		d := boundGap(x[i], b)
		sum += d * d
	}
	for _, g := range p.Inequalities {
		if v := g(x); v < 0 {
			sum += v * v
		}
	}
	return sum
}

// boundGap is the distance from v to [b.Lo, b.Hi].
func boundGap(v float64, b Bound) float64 {
	switch {
	case v < b.Lo:
		return b.Lo - v
	case v > b.Hi:
		return v - b.Hi
	default:
		return 0
	}
}

// validate checks the problem, the start point and the settings.
func validate(p Problem, x0 []float64, s Settings) error {
	if p.Func == nil {
		return ErrNilObjective
	}
	if len(x0) == 0 {
		return ErrDimensionMismatch
	}
	if p.Bounds != nil && len(p.Bounds) != len(x0) {
		return ErrDimensionMismatch
	}
	for _, b := range p.Bounds {
		if math.IsNaN(b.Lo) || math.IsNaN(b.Hi) || b.Lo > b.Hi {
			return ErrBadBounds
		}
	}
	for _, v := range x0 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrDimensionMismatch
		}
	}
	if s.Stages < 1 || s.PenaltyStart <= 0 || s.PenaltyGrowth <= 1 ||
		s.StallIterations < 1 || s.MaxIterations < 0 || s.Tolerance < 0 || s.FeasibilityTolerance < 0 {
		return ErrBadSettings
	}
	return nil
}
