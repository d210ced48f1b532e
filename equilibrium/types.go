package equilibrium

import (
	"errors"
	"math"
	"strings"
)

// Iteration policy.
const (
	// DefaultSeedMen and DefaultSeedWomen are the starting shares when no
	// initial guess is given: a patriarchal prior, not a neutral one.
	DefaultSeedMen   = 0.6
	DefaultSeedWomen = 0.4

	// DefaultMaxGenerations caps the iterator.
	DefaultMaxGenerations = 2000

	// Damping is the weight of the new share in p ← (1−Damping)·p + Damping·p_new.
	Damping = 0.1

	// Tolerance is the per-side convergence threshold on |p_new − p|.
	Tolerance = 1e-5

	// MinShare and MaxShare bound every proportion produced by the iterator.
	MinShare = 0.001
	MaxShare = 0.999

	// BestResponseRounds is the number of fixed-point rounds of BestResponse.
	BestResponseRounds = 20

	// bestResponseStart is the responding side's share in round zero.
	bestResponseStart = 0.5
)

// Termination reasons carried by Result.Reason.
const (
	ReasonConverged = "converged"
	ReasonExhausted = "iteration cap reached"
)

// Snapshot is the population state at one generation.
type Snapshot struct {
	Generation int     `json:"generation" yaml:"generation"`
	Men        float64 `json:"men" yaml:"men"`
	Women      float64 `json:"women" yaml:"women"`
}

// Trajectory is the ordered list of snapshots of one run, starting at
// generation 0 with consecutive generation numbers.
type Trajectory []Snapshot

// Last returns the final snapshot, or the zero Snapshot for an empty trajectory.
func (t Trajectory) Last() Snapshot {
	if len(t) == 0 {
		return Snapshot{}
	}
	return t[len(t)-1]
}

// Men returns the men's High shares in generation order.
func (t Trajectory) Men() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.Men
	}
	return out
}

// Women returns the women's High shares in generation order.
func (t Trajectory) Women() []float64 {
	out := make([]float64, len(t))
	for i, s := range t {
		out[i] = s.Women
	}
	return out
}

// Reindex returns exactly n snapshots for generations 0..n−1: longer
// trajectories are cut, shorter ones are extended with their last state.
// An empty trajectory yields nil.
func (t Trajectory) Reindex(n int) Trajectory {
	if len(t) == 0 || n <= 0 {
		return nil
	}
	out := make(Trajectory, n)
	last := t[0]
	for g := 0; g < n; g++ {
		if g < len(t) {
			last = t[g]
		}
		out[g] = Snapshot{Generation: g, Men: last.Men, Women: last.Women}
	}
	return out
}

// Result is the outcome of Find.
type Result struct {
	Converged bool    `json:"converged" yaml:"converged"`
	PM        float64 `json:"pm" yaml:"pm"`
	PF        float64 `json:"pf" yaml:"pf"`

	// Iterations is the index of the converging generation, or the cap when
	// the run was exhausted.
	Iterations int `json:"iterations" yaml:"iterations"`

	Reason     string     `json:"reason" yaml:"reason"`
	Trajectory Trajectory `json:"trajectory" yaml:"trajectory"`
}

// Side selects the responding population of BestResponse.
type Side int

const (
	Men Side = iota
	Women
)

// String returns "men" or "women".
func (s Side) String() string {
	if s == Women {
		return "women"
	}
	return "men"
}

// ParseSide accepts "men", "man", "women" or "woman" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "men", "man":
		return Men, nil
	case "women", "woman":
		return Women, nil
	default:
		return 0, ErrUnknownSide
	}
}

// Clamp bounds x to [MinShare, MaxShare].
func Clamp(x float64) float64 {
	return math.Max(MinShare, math.Min(MaxShare, x))
}

// Batch and parsing errors.
var (
	ErrBadRuns     = errors.New("equilibrium: runs must be positive")
	ErrBadHorizon  = errors.New("equilibrium: horizon must be positive")
	ErrUnknownSide = errors.New("equilibrium: unknown side")
)
