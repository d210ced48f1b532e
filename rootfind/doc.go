// Package rootfind locates a sign change of a scalar function on a bracket.
//
// Two methods share one contract:
//   - Brent: Brent–Dekker inverse-quadratic/secant steps guarded by bisection.
//     Superlinear on smooth functions, never slower than bisection.
//   - Bisect: plain interval halving, for reference and for functions with
//     jumps where interpolation gains nothing.
//
// Contract:
//
//	f(lo) and f(hi) must differ in sign (or one of them is exactly zero).
//	The returned x satisfies |x − x*| ≤ xtol + rtol·|x| for some root x*.
//
// Usage:
//
//	x, err := rootfind.Brent(func(x float64) float64 { return x*x - 2 }, 0, 2)
//	// x ≈ 1.4142135623730951
//
//	x, err = rootfind.Brent(f, 1.01, 60, rootfind.WithXTol(1e-9), rootfind.WithMaxIter(50))
//
// Errors are sentinels (ErrBadInterval, ErrNoBracket, ErrNotFinite,
// ErrMaxIterations); compare with errors.Is.
package rootfind
