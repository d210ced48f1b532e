// Package market turns solved households into the expected lifetime value of
// each (sex, education) type under a given population mix.
//
// 🧮 Steps for one (pm, pf):
//  1. Solve the four households (H,H), (H,L), (L,H), (L,L) once per (γ, w, mode);
//     see Table.
//  2. Floor every partner's utility at the single utility of his or her own
//     type: an infeasible match means staying single, a feasible one is taken
//     only if it weakly beats singlehood.
//  3. Weight the floored values by the scarcity-based matching probabilities
//     of MatchProbabilities.
//
// The matching rule is a scarcity heuristic, not a stable matching: the High
// side competing for the scarcer High partners gets them with probability
// min(1, supply/demand) and settles for a Low partner otherwise; the Low side
// only sees High partners left over by the High side.
//
// Usage:
//
//	tbl := market.NewTable(0.9, 2, household.Unconstrained)
//	v := tbl.ExpectedValues(0.6, 0.4)
//	fmt.Println(v.ManPremium(), v.WomanPremium())
package market
