package household

// SingleUtility returns the utility of an unmatched agent of type t.
//
// A single agent maximizes c·l·n with c = wage·(1 − l − n) and household
// value v = n. The optimum splits time in thirds, so c = wage/3 and
//
//	U = (wage/3)·(1/3)·(1/3) = wage/27.
func SingleUtility(t WageType, w float64) float64 {
	return t.Wage(w) / 27.0
}
