package household

import (
	"math"

	"github.com/katalvlaran/patriarchy/optim"
)

// Index layout of the corner-solver vector.
const (
	idxNX = iota
	idxNY
	idxLX
	idxLY
)

// solveCorner maximizes the joint log-utility
//
//	2·ln(c) + ln(lx) + ln(ly) + 2·ln(v)
//
// of an equal-sharing household over (nx, ny, lx, ly) subject to
// nx + lx ≤ 1, ny + ly ≤ 1 and every variable in [0.01, 0.99], where
// v = (√nx + √ny)² − γ·nx and c = (wx(1−lx−nx) + wy(1−ly−ny)) / 2.
//
// The search starts from the fixed interior point cornerStart and stops at a
// local optimum; there is no global-optimality guarantee. A minimum that still
// sits on the penalty wall (the start point itself may have v ≤ 0 for large γ)
// is reported as ErrOptimizationFailed, as is any optimizer error.
func solveCorner(wx, wy, gamma float64) Outcome {
	bounds := make([]optim.Bound, len(cornerStart))
	for i := range bounds {
		bounds[i] = optim.Bound{Lo: cornerLower, Hi: cornerUpper}
	}

	problem := optim.Problem{
		Func: func(x []float64) float64 {
			return -cornerLogUtility(x, wx, wy, gamma)
		},
		Bounds: bounds,
		Inequalities: []optim.Constraint{
			func(x []float64) float64 { return 1 - x[idxNX] - x[idxLX] },
			func(x []float64) float64 { return 1 - x[idxNY] - x[idxLY] },
		},
	}

	res, err := optim.Minimize(problem, cornerStart[:], nil)
	if err != nil || res.F >= cornerPenalty/2 {
		return infeasible(ErrOptimizationFailed)
	}

	var (
		nx = res.X[idxNX]
		ny = res.X[idxNY]
		// Absorb the residual penalty slack so the budget holds exactly.
		lx = math.Min(res.X[idxLX], 1-nx)
		ly = math.Min(res.X[idxLY], 1-ny)
	)
	v := householdValue(nx, ny, gamma)
	consumption := (wx*(1-lx-nx) + wy*(1-ly-ny)) / 2
	if v <= 0 || consumption <= 0 || lx <= 0 || ly <= 0 {
		return infeasible(ErrOptimizationFailed)
	}

	return Outcome{
		Feasible:       true,
		Kind:           CornerOptimized,
		UtilityMan:     consumption * lx * v,
		UtilityWoman:   consumption * ly * v,
		LeisureMan:     lx,
		LeisureWoman:   ly,
		HouseworkMan:   nx,
		HouseworkWoman: ny,
		Consumption:    consumption,
		Value:          v,
	}
}

// cornerLogUtility is the joint log-utility of the corner problem, or
// −cornerPenalty for states where a logarithm would be undefined.
func cornerLogUtility(x []float64, wx, wy, gamma float64) float64 {
	nx, ny, lx, ly := x[idxNX], x[idxNY], x[idxLX], x[idxLY]
	if nx < cornerFloor || ny < cornerFloor || lx < cornerFloor || ly < cornerFloor {
		return -cornerPenalty
	}
	v := householdValue(nx, ny, gamma)
	if v <= cornerFloor {
		return -cornerPenalty
	}
	income := wx*(1-lx-nx) + wy*(1-ly-ny)
	if income <= cornerFloor {
		return -cornerPenalty
	}
	c := income / 2

	return 2*math.Log(c) + math.Log(lx) + math.Log(ly) + 2*math.Log(v)
}

// householdValue is v = (√nx + √ny)² − γ·nx.
func householdValue(nx, ny, gamma float64) float64 {
	s := math.Sqrt(nx) + math.Sqrt(ny)
	return s*s - gamma*nx
}
