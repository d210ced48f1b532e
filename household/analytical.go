package household

import "math"

// solveAnalytical evaluates the closed-form interior optimum for wages wx
// (husband) and wy (wife).
//
// Algorithm Outline:
//  1. r solves wy·r² + [wy(1−γ) − wx]·r − wx = 0 (positive root); it is the
//     square root of the wife-to-husband housework ratio, ny = r²·nx.
//  2. D = 2r·wy·((1+r)² − γ) + (1+r)(wx + wy·r²).
//  3. nx = (wx+wy)(1+r)/D, ny = r²·nx.
//  4. v = nx·((1+r)² − γ).
//  5. c = v·r·wy / (2(1+r)); lx = c/wx, ly = c/wy.
//  6. U_man = c·lx·v, U_woman = c·ly·v.
//
// The time budget is NOT checked here; see Solve.
//
// Complexity: O(1).
func solveAnalytical(wx, wy, gamma float64) Outcome {
	var (
		a = wy
		b = wy*(1-gamma) - wx
		c = -wx
	)
	delta := b*b - 4*a*c
	if delta < 0 {
		return infeasible(ErrComplexRoot)
	}
	r := (-b + math.Sqrt(delta)) / (2 * a)
	if r <= 0 {
		return infeasible(ErrNonPositiveRoot)
	}

	onePlusR := 1 + r
	spread := onePlusR*onePlusR - gamma
	denom := 2*r*wy*spread + onePlusR*(wx+wy*r*r)
	if denom <= 0 {
		return infeasible(ErrSingular)
	}

	nx := (wx + wy) * onePlusR / denom
	ny := r * r * nx
	v := nx * spread
	if v <= 0 {
		return infeasible(ErrNonPositiveValue)
	}

	consumption := v * r * wy / (2 * onePlusR)
	lx := consumption / wx
	ly := consumption / wy

	return Outcome{
		Feasible:       true,
		Kind:           Analytical,
		UtilityMan:     consumption * lx * v,
		UtilityWoman:   consumption * ly * v,
		LeisureMan:     lx,
		LeisureWoman:   ly,
		HouseworkMan:   nx,
		HouseworkWoman: ny,
		Consumption:    consumption,
		Value:          v,
		Ratio:          r,
	}
}
