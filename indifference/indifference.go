package indifference

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/rootfind"
)

// Agent is the High agent whose indifference is sought.
type Agent int

const (
	Man Agent = iota
	Woman
)

// String returns "man" or "woman".
func (a Agent) String() string {
	if a == Woman {
		return "woman"
	}
	return "man"
}

// ParseAgent accepts "man" or "woman".
func ParseAgent(s string) (Agent, error) {
	switch s {
	case "man", "men":
		return Man, nil
	case "woman", "women":
		return Woman, nil
	default:
		return 0, ErrUnknownAgent
	}
}

// Range is a closed wage-ratio interval.
type Range struct {
	Lo float64
	Hi float64
}

// DefaultRange is the searched wage-ratio interval.
var DefaultRange = Range{Lo: 1.01, Hi: 60}

// Gap sentinels for infeasible households.
const (
	InfeasibleAssortative = 1e9
	InfeasibleMixed       = -1e9
)

var (
	// ErrNoCrossing: the utility gap has the same sign at both ends of the range.
	ErrNoCrossing = errors.New("indifference: no crossing in range")

	// ErrUnknownAgent: ParseAgent got something else than man or woman.
	ErrUnknownAgent = errors.New("indifference: unknown agent")
)

// CurvePoint is w* for one gamma; Found is false when there is no crossing.
type CurvePoint struct {
	Gamma float64 `json:"gamma" yaml:"gamma"`
	W     float64 `json:"w" yaml:"w"`
	Found bool    `json:"found" yaml:"found"`
}

// UtilityGap is the High agent's utility in (H,H) minus the utility in the
// mixed household at wage ratio w.
func UtilityGap(gamma, w float64, agent Agent, mode household.ConstraintMode) float64 {
	enforce := mode.Enforces()
	hh := household.Solve(household.High, household.High, gamma, w, enforce)
	if !hh.Feasible {
		return InfeasibleAssortative
	}

	if agent == Woman {
		mixed := household.Solve(household.Low, household.High, gamma, w, enforce)
		if !mixed.Feasible {
			return InfeasibleMixed
		}
		return hh.UtilityWoman - mixed.UtilityWoman
	}

	mixed := household.Solve(household.High, household.Low, gamma, w, enforce)
	if !mixed.Feasible {
		return InfeasibleMixed
	}
	return hh.UtilityMan - mixed.UtilityMan
}

// Point returns w* in DefaultRange.
func Point(gamma float64, agent Agent, mode household.ConstraintMode) (float64, error) {
	return PointIn(DefaultRange, gamma, agent, mode)
}

// PointIn returns w* in r.
//
// Errors: ErrNoCrossing when the gap does not change sign over r; other
// root-finder failures are wrapped.
func PointIn(r Range, gamma float64, agent Agent, mode household.ConstraintMode) (float64, error) {
	gap := func(w float64) float64 { return UtilityGap(gamma, w, agent, mode) }

	w, err := rootfind.Brent(gap, r.Lo, r.Hi)
	switch {
	case err == nil:
		return w, nil
	case errors.Is(err, rootfind.ErrNoBracket):
		return 0, ErrNoCrossing
	default:
		return 0, fmt.Errorf("indifference: γ=%g %s: %w", gamma, agent, err)
	}
}

// Curve evaluates Point for every gamma.
func Curve(gammas []float64, agent Agent, mode household.ConstraintMode) []CurvePoint {
	out := make([]CurvePoint, len(gammas))
	for i, g := range gammas {
		w, err := Point(g, agent, mode)
		out[i] = CurvePoint{Gamma: g, W: w, Found: err == nil}
	}
	return out
}
