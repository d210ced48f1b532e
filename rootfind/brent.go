package rootfind

import "math"

// Brent returns a root of f in [lo, hi] by the Brent–Dekker method.
//
// Algorithm Outline:
//  1. Keep a bracket (xcur, xblk) with f of opposite signs and |f(xcur)| ≤ |f(xblk)|.
//  2. Propose a secant step (two distinct points) or an inverse quadratic
//     step (three), accept it only if it is short compared with the previous
//     step and with half the bracket; otherwise bisect.
//  3. Never step by less than the tolerance δ = (xtol + rtol·|xcur|)/2.
//  4. Stop when f(xcur) == 0 or half the bracket is below δ.
//
// On ErrMaxIterations the last iterate is returned with the error.
//
// Complexity: O(maxIter) evaluations of f.
func Brent(f func(float64) float64, lo, hi float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	xpre, xcur := lo, hi
	fpre, fcur, err := endpoints(f, lo, hi)
	if err != nil {
		return math.NaN(), err
	}
	if fpre == 0 {
		return xpre, nil
	}
	if fcur == 0 {
		return xcur, nil
	}

	var xblk, fblk, spre, scur float64
	for i := 0; i < o.maxIter; i++ {
		if fpre != 0 && fcur != 0 && math.Signbit(fpre) != math.Signbit(fcur) {
			xblk, fblk = xpre, fpre
			spre = xcur - xpre
			scur = spre
		}
		if math.Abs(fblk) < math.Abs(fcur) {
			xpre, xcur, xblk = xcur, xblk, xcur
			fpre, fcur, fblk = fcur, fblk, fcur
		}

		delta := (o.xtol + o.rtol*math.Abs(xcur)) / 2
		sbis := (xblk - xcur) / 2
		if fcur == 0 || math.Abs(sbis) < delta {
			return xcur, nil
		}

		if math.Abs(spre) > delta && math.Abs(fcur) < math.Abs(fpre) {
			var stry float64
			if xpre == xblk {
				// secant
				stry = -fcur * (xcur - xpre) / (fcur - fpre)
			} else {
				// inverse quadratic
				dpre := (fpre - fcur) / (xpre - xcur)
				dblk := (fblk - fcur) / (xblk - xcur)
				stry = -fcur * (fblk*dblk - fpre*dpre) / (dblk * dpre * (fblk - fpre))
			}
			if 2*math.Abs(stry) < math.Min(math.Abs(spre), 3*math.Abs(sbis)-delta) {
				spre, scur = scur, stry
			} else {
				spre, scur = sbis, sbis
			}
		} else {
			spre, scur = sbis, sbis
		}

		xpre, fpre = xcur, fcur
		if math.Abs(scur) > delta {
			xcur += scur
		} else if sbis > 0 {
			xcur += delta
		} else {
			xcur -= delta
		}

		fcur = f(xcur)
		if !isFinite(fcur) {
			return xcur, ErrNotFinite
		}
	}

	return xcur, ErrMaxIterations
}

// Bisect returns a root of f in [lo, hi] by interval halving. It honours the
// same options and errors as Brent.
//
// Complexity: O(log2((hi−lo)/xtol)) evaluations of f, capped by maxIter.
func Bisect(f func(float64) float64, lo, hi float64, opts ...Option) (float64, error) {
	o := gatherOptions(opts...)

	flo, fhi, err := endpoints(f, lo, hi)
	if err != nil {
		return math.NaN(), err
	}
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}

	mid := lo + (hi-lo)/2
	for i := 0; i < o.maxIter; i++ {
		mid = lo + (hi-lo)/2
		if (hi-lo)/2 < (o.xtol+o.rtol*math.Abs(mid))/2 {
			return mid, nil
		}

		fmid := f(mid)
		if !isFinite(fmid) {
			return mid, ErrNotFinite
		}
		if fmid == 0 {
			return mid, nil
		}
		if math.Signbit(fmid) == math.Signbit(flo) {
			lo, flo = mid, fmid
		} else {
			hi = mid
		}
	}

	return mid, ErrMaxIterations
}

// endpoints validates the bracket and evaluates f at both ends.
func endpoints(f func(float64) float64, lo, hi float64) (float64, float64, error) {
	if !isFinite(lo) || !isFinite(hi) || lo >= hi {
		return 0, 0, ErrBadInterval
	}
	flo, fhi := f(lo), f(hi)
	if !isFinite(flo) || !isFinite(fhi) {
		return 0, 0, ErrNotFinite
	}
	if flo != 0 && fhi != 0 && math.Signbit(flo) == math.Signbit(fhi) {
		return 0, 0, ErrNoBracket
	}
	return flo, fhi, nil
}

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
