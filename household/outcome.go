package household

import "math"

// Outcome is the immutable result of solving one household.
//
// When Feasible is false only Reason and Kind (== Infeasible) are meaningful.
type Outcome struct {
	Feasible bool
	Reason   error
	Kind     SolutionKind

	UtilityMan   float64
	UtilityWoman float64

	LeisureMan     float64
	LeisureWoman   float64
	HouseworkMan   float64
	HouseworkWoman float64

	// Consumption is each partner's consumption c.
	Consumption float64

	// Value is the household value v produced by housework.
	Value float64

	// Ratio is the analytical housework ratio r; zero for corner solutions.
	Ratio float64
}

// infeasible builds a Feasible == false outcome with the given reason.
func infeasible(reason error) Outcome {
	return Outcome{Reason: reason, Kind: Infeasible}
}

// Utility returns the utility of the partner in role r.
func (o Outcome) Utility(r Role) float64 {
	if r == Woman {
		return o.UtilityWoman
	}
	return o.UtilityMan
}

// Leisure returns the leisure share of the partner in role r.
func (o Outcome) Leisure(r Role) float64 {
	if r == Woman {
		return o.LeisureWoman
	}
	return o.LeisureMan
}

// Housework returns the housework share of the partner in role r.
func (o Outcome) Housework(r Role) float64 {
	if r == Woman {
		return o.HouseworkWoman
	}
	return o.HouseworkMan
}

// Time returns leisure + housework of the partner in role r.
func (o Outcome) Time(r Role) float64 {
	return o.Leisure(r) + o.Housework(r)
}

// Job returns the implied market-work share max(0, 1 − leisure − housework).
func (o Outcome) Job(r Role) float64 {
	return math.Max(0, 1-o.Time(r))
}

// Overworked reports whether the partner in role r exceeds the time budget by more than eps.
func (o Outcome) Overworked(r Role, eps float64) bool {
	return o.Time(r) > 1+eps
}

// withinBudget reports whether both partners respect the budget up to TimeTolerance.
func (o Outcome) withinBudget() bool {
	return !o.Overworked(Man, TimeTolerance) && !o.Overworked(Woman, TimeTolerance)
}
