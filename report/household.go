package report

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/patriarchy/household"
)

// WarnTime is the leisure + housework level above which a partner is flagged.
const WarnTime = 1.001

// infeasibleUtility ranks an impossible household below every feasible one
// when preferences are compared.
const infeasibleUtility = -999.0

// Preference is a High agent's ranking of the assortative and the mixed match.
type Preference string

const (
	Assortative  Preference = "assortative"
	MarryingDown Preference = "marrying down"
)

// HouseholdRow is one solved household.
type HouseholdRow struct {
	Pair     string `json:"pair" yaml:"pair"`
	Feasible bool   `json:"feasible" yaml:"feasible"`
	Kind     string `json:"kind" yaml:"kind"`
	Reason   string `json:"reason,omitempty" yaml:"reason,omitempty"`

	UtilityMan     float64 `json:"utility_man" yaml:"utility_man"`
	UtilityWoman   float64 `json:"utility_woman" yaml:"utility_woman"`
	HouseworkMan   float64 `json:"housework_man" yaml:"housework_man"`
	HouseworkWoman float64 `json:"housework_woman" yaml:"housework_woman"`
	LeisureMan     float64 `json:"leisure_man" yaml:"leisure_man"`
	LeisureWoman   float64 `json:"leisure_woman" yaml:"leisure_woman"`
	JobMan         float64 `json:"job_man" yaml:"job_man"`
	JobWoman       float64 `json:"job_woman" yaml:"job_woman"`

	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Households is the household matrix for one parameter set.
type Households struct {
	Gamma float64 `json:"gamma" yaml:"gamma"`
	W     float64 `json:"w" yaml:"w"`
	Mode  string  `json:"mode" yaml:"mode"`

	Rows []HouseholdRow `json:"households" yaml:"households"`

	HighMan   Preference `json:"high_man" yaml:"high_man"`
	HighWoman Preference `json:"high_woman" yaml:"high_woman"`

	outcomes [4]household.Outcome
}

// Build solves the four households of p and derives the High agents'
// preferences: assortative when U(H,H) ≥ U(mixed), an infeasible household
// counting as −999.
func Build(p household.Params) Households {
	rep := Households{Gamma: p.Gamma, W: p.W, Mode: p.Mode.String()}
	for i, pair := range household.Pairs() {
		o := household.SolvePair(p, pair)
		rep.outcomes[i] = o
		rep.Rows = append(rep.Rows, newRow(pair, o))
	}

	hh, hl, lh := rep.outcomes[0], rep.outcomes[1], rep.outcomes[2]
	rep.HighMan = prefer(utilityOf(hh, household.Man), utilityOf(hl, household.Man))
	rep.HighWoman = prefer(utilityOf(hh, household.Woman), utilityOf(lh, household.Woman))

	return rep
}

// Outcomes returns the solved households in (H,H), (H,L), (L,H), (L,L) order.
func (h Households) Outcomes() [4]household.Outcome { return h.outcomes }

func newRow(pair household.Pair, o household.Outcome) HouseholdRow {
	row := HouseholdRow{Pair: pair.String(), Feasible: o.Feasible, Kind: o.Kind.String()}
	if !o.Feasible {
		if o.Reason != nil {
			row.Reason = o.Reason.Error()
		}
		return row
	}

	row.UtilityMan, row.UtilityWoman = o.UtilityMan, o.UtilityWoman
	row.HouseworkMan, row.HouseworkWoman = o.HouseworkMan, o.HouseworkWoman
	row.LeisureMan, row.LeisureWoman = o.LeisureMan, o.LeisureWoman
	row.JobMan, row.JobWoman = o.Job(household.Man), o.Job(household.Woman)

	for _, r := range []household.Role{household.Man, household.Woman} {
		if t := o.Time(r); t > WarnTime {
			row.Warnings = append(row.Warnings, fmt.Sprintf("%s time %.2f", r, t))
		}
	}
	return row
}

func utilityOf(o household.Outcome, r household.Role) float64 {
	if !o.Feasible {
		return infeasibleUtility
	}
	return o.Utility(r)
}

func prefer(assortative, mixed float64) Preference {
	if assortative >= mixed {
		return Assortative
	}
	return MarryingDown
}

// Tables renders the choices and the household matrix.
func (h Households) Tables() []table.Writer {
	title := fmt.Sprintf("Marriage market (γ=%g, w=%g, %s)", h.Gamma, h.W, h.Mode)

	choices := newTable(title, table.Row{"Agent", "Choice"})
	choices.AppendRow(table.Row{"H-man", string(h.HighMan)})
	choices.AppendRow(table.Row{"H-woman", string(h.HighWoman)})

	matrix := newTable("Households", table.Row{
		"Pair", "Kind", "U man", "U woman",
		"House man", "Leisure man", "Job man",
		"House woman", "Leisure woman", "Job woman", "Warnings",
	})
	for _, r := range h.Rows {
		if !r.Feasible {
			matrix.AppendRow(table.Row{r.Pair, "impossible", "-", "-", "-", "-", "-", "-", "-", "-", r.Reason})
			continue
		}
		matrix.AppendRow(table.Row{
			r.Pair, r.Kind, f4(r.UtilityMan), f4(r.UtilityWoman),
			f2(r.HouseworkMan), f2(r.LeisureMan), f2(r.JobMan),
			f2(r.HouseworkWoman), f2(r.LeisureWoman), f2(r.JobWoman),
			strings.Join(r.Warnings, "; "),
		})
	}
	return []table.Writer{choices, matrix}
}
