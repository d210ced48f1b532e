package household

import (
	"errors"
	"math"
	"strings"
)

// WageType is the binary education type of an agent.
type WageType int

const (
	// High is the educated type; its wage equals the wage ratio w.
	High WageType = iota

	// Low is the uneducated type; its wage is normalized to 1.
	Low
)

// String returns "H" or "L".
func (t WageType) String() string {
	switch t {
	case High:
		return "H"
	case Low:
		return "L"
	default:
		return "?"
	}
}

// Wage resolves the numeric wage of t under wage ratio w.
func (t WageType) Wage(w float64) float64 {
	if t == High {
		return w
	}
	return 1.0
}

// ParseWageType accepts "H", "High", "L" or "Low" in any case.
func ParseWageType(s string) (WageType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "h", "high":
		return High, nil
	case "l", "low":
		return Low, nil
	default:
		return 0, ErrUnknownWageType
	}
}

// ConstraintMode selects whether the per-person time budget is enforced.
type ConstraintMode int

const (
	// Unconstrained reproduces the closed-form model even when a partner's
	// housework plus leisure exceeds one unit of time ("paper" mode).
	Unconstrained ConstraintMode = iota

	// Constrained falls back to the numerical corner solver whenever the
	// closed form breaks the time budget ("reality" mode).
	Constrained
)

// String returns "paper" or "reality".
func (m ConstraintMode) String() string {
	if m == Constrained {
		return "reality"
	}
	return "paper"
}

// Enforces reports whether m enforces the time budget.
func (m ConstraintMode) Enforces() bool { return m == Constrained }

// ParseConstraintMode accepts "paper", "unconstrained", "reality" or "constrained".
func ParseConstraintMode(s string) (ConstraintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paper", "unconstrained":
		return Unconstrained, nil
	case "reality", "constrained":
		return Constrained, nil
	default:
		return 0, ErrUnknownMode
	}
}

// Role identifies a partner inside a household.
type Role int

const (
	Man Role = iota
	Woman
)

// String returns "man" or "woman".
func (r Role) String() string {
	if r == Woman {
		return "woman"
	}
	return "man"
}

// SolutionKind tags how an Outcome was obtained.
type SolutionKind int

const (
	// Infeasible marks an outcome with Feasible == false.
	Infeasible SolutionKind = iota

	// Analytical marks the closed-form interior solution.
	Analytical

	// CornerOptimized marks the bounded numerical solution.
	CornerOptimized
)

// String returns a lower-case label suitable for logs and metric labels.
func (k SolutionKind) String() string {
	switch k {
	case Analytical:
		return "analytical"
	case CornerOptimized:
		return "corner"
	default:
		return "infeasible"
	}
}

// Pair is a (husband type, wife type) household composition.
type Pair struct {
	Man   WageType
	Woman WageType
}

// String returns the "(H, L)" form used in reports.
func (p Pair) String() string {
	return "(" + p.Man.String() + ", " + p.Woman.String() + ")"
}

// Pairs returns the four compositions in canonical order: (H,H), (H,L), (L,H), (L,L).
func Pairs() [4]Pair {
	return [4]Pair{{High, High}, {High, Low}, {Low, High}, {Low, Low}}
}

// Params bundles the read-only model parameters shared by one invocation.
type Params struct {
	// Gamma is the household-production bias, γ ≥ 0.
	Gamma float64

	// W is the High-to-Low wage ratio, w ≥ 1.
	W float64

	// Mode selects paper or reality semantics.
	Mode ConstraintMode
}

// Validate checks the documented parameter ranges.
func (p Params) Validate() error {
	if math.IsNaN(p.Gamma) || math.IsInf(p.Gamma, 0) || math.IsNaN(p.W) || math.IsInf(p.W, 0) {
		return ErrNotFinite
	}
	if p.Gamma < 0 {
		return ErrNegativeGamma
	}
	if p.W < 1 {
		return ErrWageRatioBelowOne
	}
	if p.Mode != Unconstrained && p.Mode != Constrained {
		return ErrUnknownMode
	}
	return nil
}

// Numeric policy.
const (
	// TimeTolerance is the slack ε allowed on leisure + housework ≤ 1.
	TimeTolerance = 1e-4

	// cornerLower and cornerUpper bound every corner-solver variable.
	cornerLower = 0.01
	cornerUpper = 0.99

	// cornerFloor is the smallest value of a variable, of v or of income
	// that the corner objective still evaluates; below it the objective
	// returns cornerPenalty.
	cornerFloor   = 1e-6
	cornerPenalty = 1e11
)

// cornerStart is the fixed initial guess (nx, ny, lx, ly) of the corner solver.
var cornerStart = [4]float64{0.2, 0.2, 0.3, 0.3}

// Parameter errors, returned by Params.Validate and the Parse helpers.
var (
	ErrNegativeGamma     = errors.New("household: gamma must be non-negative")
	ErrWageRatioBelowOne = errors.New("household: wage ratio must be at least 1")
	ErrNotFinite         = errors.New("household: parameters must be finite")
	ErrUnknownWageType   = errors.New("household: unknown wage type")
	ErrUnknownMode       = errors.New("household: unknown constraint mode")
)

// Infeasibility reasons carried by Outcome.Reason. Solve never returns them
// as Go errors; callers compare with errors.Is.
var (
	// ErrComplexRoot: the housework-ratio quadratic has a negative discriminant.
	ErrComplexRoot = errors.New("household: complex r")

	// ErrNonPositiveRoot: the positive root of the quadratic is r ≤ 0.
	ErrNonPositiveRoot = errors.New("household: negative r")

	// ErrSingular: the housework denominator D is not positive.
	ErrSingular = errors.New("household: singularity")

	// ErrNonPositiveValue: the household value v is not positive.
	ErrNonPositiveValue = errors.New("household: negative value")

	// ErrOptimizationFailed: the corner solver did not reach a usable optimum.
	ErrOptimizationFailed = errors.New("household: optimization failed")
)
