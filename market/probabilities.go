package market

import (
	"math"

	"github.com/katalvlaran/patriarchy/household"
)

// Probabilities are the four matching probabilities for a population mix.
type Probabilities struct {
	// HighManGetsHighWoman is min(1, pf/pm), or 0 when pm == 0.
	HighManGetsHighWoman float64

	// LowManGetsHighWoman is min(1, (pf−pm)/(1−pm)) when pf > pm, else 0.
	LowManGetsHighWoman float64

	// HighWomanGetsHighMan is min(1, pm/pf), or 0 when pf == 0.
	HighWomanGetsHighMan float64

	// LowWomanGetsHighMan is min(1, (pm−pf)/(1−pf)) when pm > pf, else 0.
	LowWomanGetsHighMan float64
}

// MatchProbabilities evaluates the scarcity heuristic for High shares pm
// (men) and pf (women). An empty residual population yields probability 0.
func MatchProbabilities(pm, pf float64) Probabilities {
	return Probabilities{
		HighManGetsHighWoman: highGetsHigh(pm, pf),
		LowManGetsHighWoman:  lowGetsSurplus(pm, pf),
		HighWomanGetsHighMan: highGetsHigh(pf, pm),
		LowWomanGetsHighMan:  lowGetsSurplus(pf, pm),
	}
}

// highGetsHigh: own High share `own` competes for the other side's High share.
func highGetsHigh(own, other float64) float64 {
	if own > 0 {
		return math.Min(1, other/own)
	}
	return 0
}

// lowGetsSurplus: the own Low share 1−own gets the other side's High surplus.
func lowGetsSurplus(own, other float64) float64 {
	if other <= own {
		return 0
	}
	low := 1 - own
	if low <= 0 {
		return 0
	}
	return math.Min(1, (other-own)/low)
}

// Floored returns the utility the partner in role r actually realizes:
// floor when o is infeasible, else max(utility, floor).
func Floored(o household.Outcome, r household.Role, floor float64) float64 {
	if !o.Feasible {
		return floor
	}
	return math.Max(o.Utility(r), floor)
}
