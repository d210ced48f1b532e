// Package household solves the time-allocation problem of a two-partner
// household with binary education types.
//
// 🏠 What is solved?
//
//	Each partner splits one unit of time between housework n, leisure l and
//	market work 1−n−l. Market income is pooled and consumed, housework
//	produces a shared household value v = (√nx + √ny)² − γ·nx, and each
//	partner's utility is the Cobb-Douglas product c·l·v.
//
// ✨ Two regimes behind one contract:
//   - Unconstrained ("paper"): the closed-form interior optimum of the
//     theoretical model, returned even where implied time exceeds the budget.
//   - Constrained ("reality"): the same closed form while it respects the
//     budget, and a bounded numerical optimum (see package optim) wherever
//     it does not.
//
// ⚙️ Usage:
//
//	out := household.Solve(household.High, household.Low, 0.9, 2, true)
//	if !out.Feasible {
//	    // out.Reason is one of the sentinel reasons in types.go
//	}
//	fmt.Println(out.UtilityMan, out.UtilityWoman, out.Kind)
//
// SingleUtility gives the closed-form utility of an unmatched individual,
// used as the outside option by package market.
//
// Every function in this package is pure: no caches, no globals, no I/O.
package household
