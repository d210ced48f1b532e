package market

import "github.com/katalvlaran/patriarchy/household"

// Values are the expected utilities of the four (sex, type) groups.
type Values struct {
	ManHigh   float64 `json:"man_high" yaml:"man_high"`
	ManLow    float64 `json:"man_low" yaml:"man_low"`
	WomanHigh float64 `json:"woman_high" yaml:"woman_high"`
	WomanLow  float64 `json:"woman_low" yaml:"woman_low"`
}

// ManPremium is the education premium V_mH − V_mL.
func (v Values) ManPremium() float64 { return v.ManHigh - v.ManLow }

// WomanPremium is the education premium V_fH − V_fL.
func (v Values) WomanPremium() float64 { return v.WomanHigh - v.WomanLow }

// Premium returns ManPremium or WomanPremium for role r.
func (v Values) Premium(r household.Role) float64 {
	if r == household.Woman {
		return v.WomanPremium()
	}
	return v.ManPremium()
}

// ExpectedValues solves the four households for (gamma, w, mode) and returns
// the expected values at (pm, pf). Callers evaluating many population mixes
// for the same parameters should build a Table once instead.
func ExpectedValues(pm, pf, gamma, w float64, mode household.ConstraintMode) Values {
	return NewTable(gamma, w, mode).ExpectedValues(pm, pf)
}
