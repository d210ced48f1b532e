// Package report assembles model results into printable views.
//
// Every view implements Tabular and can be written as text tables
// (go-pretty), YAML or JSON through Write:
//
//	rep := report.Build(household.Params{Gamma: 0.5, W: 5, Mode: household.Unconstrained})
//	_ = report.Write(os.Stdout, report.Text, rep)
//
// Build reproduces the household matrix view: the four households, their
// time allocation, budget warnings and the choices of High agents.
package report
