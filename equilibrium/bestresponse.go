package equilibrium

import (
	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/market"
)

// ResponsePoint is one point of a best-response curve.
type ResponsePoint struct {
	Fixed    float64 `json:"fixed" yaml:"fixed"`
	Response float64 `json:"response" yaml:"response"`
}

// BestResponse returns the High share of the responding side when the other
// side's High share is held at fixed. Starting from 0.5, the responding
// share is replaced BestResponseRounds times by its clamped education
// premium; there is no damping and no convergence test.
func BestResponse(fixed float64, side Side, gamma, w float64, mode household.ConstraintMode) float64 {
	return bestResponse(market.NewTable(gamma, w, mode), fixed, side)
}

// BestResponseCurve evaluates BestResponse at every fixed share, solving
// the households once.
func BestResponseCurve(fixed []float64, side Side, gamma, w float64, mode household.ConstraintMode) []ResponsePoint {
	tbl := market.NewTable(gamma, w, mode)
	out := make([]ResponsePoint, len(fixed))
	for i, f := range fixed {
		out[i] = ResponsePoint{Fixed: f, Response: bestResponse(tbl, f, side)}
	}
	return out
}

func bestResponse(tbl *market.Table, fixed float64, side Side) float64 {
	p := bestResponseStart
	for round := 0; round < BestResponseRounds; round++ {
		if side == Women {
			p = Clamp(tbl.ExpectedValues(fixed, p).WomanPremium())
		} else {
			p = Clamp(tbl.ExpectedValues(p, fixed).ManPremium())
		}
	}
	return p
}
