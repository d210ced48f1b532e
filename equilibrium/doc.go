// Package equilibrium iterates the education choices of men and women to a
// fixed point of the marriage market.
//
// 🔁 One generation:
//  1. Record (pm, pf).
//  2. Evaluate the expected values of the four (sex, type) groups
//     (package market).
//  3. The new High shares are the clamped education premia
//     clamp(V_H − V_L, 0.001, 0.999), read directly as proportions
//     (mean-field adoption).
//  4. Stop if both shares move by less than Tolerance; otherwise damp:
//     p ← 0.9·p + 0.1·p_new.
//
// Terminal states: converged (the final state is appended to the trajectory)
// or exhausted after MaxGenerations (the last damped state is returned).
// Non-convergence is a Result, never an error.
//
// Also provided:
//   - BestResponse: one side's clamped premium iterated 20 rounds against a
//     fixed share of the other side.
//   - MonteCarlo: many runs from seeded random starts, in parallel, summarized
//     into mean paths and a stability verdict.
//
// Usage:
//
//	res := equilibrium.Find(0.9, 2, household.Unconstrained)
//	fmt.Println(res.Converged, res.PM, res.PF, res.Iterations)
//
//	batch, err := equilibrium.MonteCarlo(ctx, 0.9, 2, household.Constrained,
//	    equilibrium.BatchOptions{Runs: 20, Seed: 42})
package equilibrium
