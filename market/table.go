package market

import "github.com/katalvlaran/patriarchy/household"

// Table memoizes the four household outcomes and both single utilities for
// one (γ, w, mode). A Table is immutable after NewTable and safe for
// concurrent use.
type Table struct {
	params   household.Params
	outcomes [4]household.Outcome
	single   [2]float64 // indexed by household.WageType
}

// NewTable solves (H,H), (H,L), (L,H) and (L,L) for the given parameters.
//
// Complexity: four household solves; at most four corner optimizations in
// reality mode.
func NewTable(gamma, w float64, mode household.ConstraintMode) *Table {
	p := household.Params{Gamma: gamma, W: w, Mode: mode}
	t := &Table{params: p}
	for _, pair := range household.Pairs() {
		t.outcomes[index(pair)] = household.SolvePair(p, pair)
	}
	t.single[household.High] = household.SingleUtility(household.High, w)
	t.single[household.Low] = household.SingleUtility(household.Low, w)

	return t
}

// Params returns the parameters the table was solved for.
func (t *Table) Params() household.Params { return t.params }

// Outcome returns the solved household for pair.
func (t *Table) Outcome(pair household.Pair) household.Outcome {
	return t.outcomes[index(pair)]
}

// Single returns the single utility of type wt.
func (t *Table) Single(wt household.WageType) float64 { return t.single[wt] }

// Value returns the floored utility of the partner in role r of pair.
func (t *Table) Value(pair household.Pair, r household.Role) float64 {
	own := pair.Man
	if r == household.Woman {
		own = pair.Woman
	}
	return Floored(t.Outcome(pair), r, t.single[own])
}

// ExpectedValues returns V_mH, V_mL, V_fH, V_fL at population mix (pm, pf).
func (t *Table) ExpectedValues(pm, pf float64) Values {
	var (
		hh = household.Pair{Man: household.High, Woman: household.High}
		hl = household.Pair{Man: household.High, Woman: household.Low}
		lh = household.Pair{Man: household.Low, Woman: household.High}
		ll = household.Pair{Man: household.Low, Woman: household.Low}
	)
	p := MatchProbabilities(pm, pf)

	return Values{
		ManHigh:   mix(p.HighManGetsHighWoman, t.Value(hh, household.Man), t.Value(hl, household.Man)),
		ManLow:    mix(p.LowManGetsHighWoman, t.Value(lh, household.Man), t.Value(ll, household.Man)),
		WomanHigh: mix(p.HighWomanGetsHighMan, t.Value(hh, household.Woman), t.Value(lh, household.Woman)),
		WomanLow:  mix(p.LowWomanGetsHighMan, t.Value(hl, household.Woman), t.Value(ll, household.Woman)),
	}
}

// mix is p·a + (1−p)·b.
func mix(p, a, b float64) float64 { return p*a + (1-p)*b }

// index maps (H,H), (H,L), (L,H), (L,L) to 0..3.
func index(pair household.Pair) int { return int(pair.Man)*2 + int(pair.Woman) }
