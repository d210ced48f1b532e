// Package optim is a small bounded, inequality-constrained local minimizer
// for low-dimensional smooth-ish objectives.
//
// It is not a general nonlinear-programming library. The contract is:
//
//	minimize f(x)  subject to  lo_i ≤ x_i ≤ hi_i  and  g_j(x) ≥ 0
//
// solved to a local optimum from a caller-supplied start point.
//
// Method:
//
//	Quadratic-penalty continuation. Stage k minimizes
//
//	    f(x) + μ_k · ( Σ_i dist(x_i, [lo_i, hi_i])² + Σ_j min(0, g_j(x))² )
//
//	with gonum's Nelder–Mead simplex, warm-started from the previous stage,
//	and μ_{k+1} = growth · μ_k. The final iterate must violate no bound or
//	constraint by more than Settings.FeasibilityTolerance.
//
// Nelder–Mead needs no gradient, so objectives that return a large constant
// on undefined regions (a "penalty wall") are acceptable.
//
// Usage:
//
//	p := optim.Problem{
//	    Func:         func(x []float64) float64 { return (x[0]-2)*(x[0]-2) },
//	    Bounds:       []optim.Bound{{Lo: 0, Hi: 1}},
//	}
//	res, err := optim.Minimize(p, []float64{0.5}, nil)
//	// res.X[0] ≈ 1
package optim
