package report

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/katalvlaran/patriarchy/equilibrium"
	"github.com/katalvlaran/patriarchy/indifference"
)

// pathStride is the generation step of paths printed as text.
const pathStride = 10

// Regime labels the sign of the education gap pm − pf.
type Regime string

const (
	Patriarchal Regime = "patriarchal"
	Matriarchal Regime = "matriarchal"
)

// RegimeOf returns Patriarchal when gap > 0, else Matriarchal.
func RegimeOf(gap float64) Regime {
	if gap > 0 {
		return Patriarchal
	}
	return Matriarchal
}

// Equilibrium is the view of one equilibrium search.
type Equilibrium struct {
	Gamma  float64            `json:"gamma" yaml:"gamma"`
	W      float64            `json:"w" yaml:"w"`
	Mode   string             `json:"mode" yaml:"mode"`
	Result equilibrium.Result `json:"result" yaml:"result"`
	Gap    float64            `json:"gap" yaml:"gap"`
	Regime Regime             `json:"regime" yaml:"regime"`
}

// NewEquilibrium wraps res with its education gap.
func NewEquilibrium(gamma, w float64, mode string, res equilibrium.Result) Equilibrium {
	gap := res.PM - res.PF
	return Equilibrium{Gamma: gamma, W: w, Mode: mode, Result: res, Gap: gap, Regime: RegimeOf(gap)}
}

// Tables renders the summary and a strided trajectory.
func (e Equilibrium) Tables() []table.Writer {
	summary := newTable(fmt.Sprintf("Education equilibrium (γ=%g, w=%g, %s)", e.Gamma, e.W, e.Mode),
		table.Row{"Converged", "Reason", "Iterations", "Men", "Women", "Gap", "Regime"})
	summary.AppendRow(table.Row{
		e.Result.Converged, e.Result.Reason, e.Result.Iterations,
		f3(e.Result.PM), f3(e.Result.PF), f3(e.Gap), string(e.Regime),
	})
	return []table.Writer{summary, pathTable("Trajectory", e.Result.Trajectory)}
}

// MonteCarlo is the view of a stability batch.
type MonteCarlo struct {
	Gamma float64           `json:"gamma" yaml:"gamma"`
	W     float64           `json:"w" yaml:"w"`
	Mode  string            `json:"mode" yaml:"mode"`
	Batch equilibrium.Batch `json:"batch" yaml:"batch"`
}

// Tables renders the verdict, every run and the strided mean path.
func (m MonteCarlo) Tables() []table.Writer {
	summary := newTable(fmt.Sprintf("Monte Carlo stability (γ=%g, w=%g, %s)", m.Gamma, m.W, m.Mode),
		table.Row{"Batch", "Runs", "Std dev (men)", "Verdict"})
	summary.AppendRow(table.Row{m.Batch.ID, len(m.Batch.Runs), f4(m.Batch.FinalStdDevMen), string(m.Batch.Verdict)})

	runs := newTable("Runs", table.Row{"Run", "Start men", "Start women", "Men", "Women", "Converged", "Iterations"})
	for _, r := range m.Batch.Runs {
		runs.AppendRow(table.Row{r.Run, f3(r.StartMen), f3(r.StartWomen), f3(r.PM), f3(r.PF), r.Converged, r.Iterations})
	}

	mean := newTable("Mean path", table.Row{"Generation", "Men", "Women"})
	for g := 0; g < len(m.Batch.MeanMen); g += pathStride {
		mean.AppendRow(table.Row{g, f3(m.Batch.MeanMen[g]), f3(m.Batch.MeanWomen[g])})
	}
	return []table.Writer{summary, runs, mean}
}

// BestResponse is the view of a best-response curve.
type BestResponse struct {
	Gamma      float64                     `json:"gamma" yaml:"gamma"`
	W          float64                     `json:"w" yaml:"w"`
	Mode       string                      `json:"mode" yaml:"mode"`
	Responding string                      `json:"responding" yaml:"responding"`
	Curve      []equilibrium.ResponsePoint `json:"curve" yaml:"curve"`
}

// Tables renders the curve.
func (b BestResponse) Tables() []table.Writer {
	t := newTable(fmt.Sprintf("Best response of %s (γ=%g, w=%g, %s)", b.Responding, b.Gamma, b.W, b.Mode),
		table.Row{"Fixed", "Response"})
	for _, p := range b.Curve {
		t.AppendRow(table.Row{f3(p.Fixed), f4(p.Response)})
	}
	return []table.Writer{t}
}

// Indifference is the view of an indifference curve.
type Indifference struct {
	Agent string                    `json:"agent" yaml:"agent"`
	Mode  string                    `json:"mode" yaml:"mode"`
	Curve []indifference.CurvePoint `json:"curve" yaml:"curve"`
}

// Tables renders w* per gamma; missing crossings print as "none".
func (i Indifference) Tables() []table.Writer {
	t := newTable(fmt.Sprintf("Indifference wage ratio of the H-%s (%s)", i.Agent, i.Mode),
		table.Row{"Gamma", "w*"})
	for _, p := range i.Curve {
		w := "none"
		if p.Found {
			w = f4(p.W)
		}
		t.AppendRow(table.Row{f3(p.Gamma), w})
	}
	return []table.Writer{t}
}

func pathTable(title string, path equilibrium.Trajectory) table.Writer {
	t := newTable(title, table.Row{"Generation", "Men", "Women"})
	for g := 0; g < len(path); g += pathStride {
		s := path[g]
		t.AppendRow(table.Row{s.Generation, f3(s.Men), f3(s.Women)})
	}
	if n := len(path); n > 0 && (n-1)%pathStride != 0 {
		s := path[n-1]
		t.AppendRow(table.Row{s.Generation, f3(s.Men), f3(s.Women)})
	}
	return t
}
