// Package indifference finds the wage ratio w* at which a High agent is
// indifferent between an assortative (H,H) household and marrying down.
//
// For a High man the gap is U_man(H,H) − U_man(H,L); for a High woman it is
// U_woman(H,H) − U_woman(L,H). Infeasible households are mapped to large
// sentinels so that the gap still has a sign: +1e9 when (H,H) is infeasible,
// −1e9 when the mixed household is. Point runs Brent's method on the gap over
// DefaultRange and reports ErrNoCrossing when the gap does not change sign
// there.
package indifference
