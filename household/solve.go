package household

// Solve returns the household outcome for a husband of type man and a wife
// of type woman under bias gamma and wage ratio w.
//
// Decision logic:
//   - The closed-form solution is always tried first.
//   - enforce == false: that result is returned as is, including outcomes
//     whose leisure + housework exceeds 1 and infeasible outcomes.
//   - enforce == true: when the closed form is infeasible or breaks the
//     time budget of either partner by more than TimeTolerance, the bounded
//     corner solver runs with the same wages and its result is returned.
//
// Solve never fails hard: infeasibility is reported through Outcome.Feasible
// and Outcome.Reason.
//
// Complexity: O(1) on the analytical path; one bounded local optimization on
// the corner path.
func Solve(man, woman WageType, gamma, w float64, enforce bool) Outcome {
	wx := man.Wage(w)
	wy := woman.Wage(w)

	out := solveAnalytical(wx, wy, gamma)
	if !enforce {
		return out
	}
	if out.Feasible && out.withinBudget() {
		return out
	}

	return solveCorner(wx, wy, gamma)
}

// SolvePair is Solve driven by Params.
func SolvePair(p Params, pair Pair) Outcome {
	return Solve(pair.Man, pair.Woman, p.Gamma, p.W, p.Mode.Enforces())
}
