// Package patriarchy models how a household-production bias shapes
// marriage, time allocation and the education choices of men and women.
//
// Each married household chooses housework, leisure and consumption to
// maximize the product of its partners' utilities. The bias γ scales how
// much household value is lost when the housework split departs from the
// "traditional" one, and w is the wage premium of education.
//
// Under the hood, everything is organized in flat packages:
//
//	household/    - closed-form and corner-constrained household solutions
//	market/       - matching probabilities and expected values of education
//	equilibrium/  - damped education iteration, best responses, Monte Carlo stability
//	indifference/ - wage ratio at which a high-wage agent stops marrying up
//	report/       - household matrix and result views as text, YAML or JSON
//	optim/        - bounded constrained minimization over gonum's Nelder–Mead
//	rootfind/     - Brent and bisection on a bracketing interval
//	metrics/      - Prometheus counters of solver regimes and runs
//	config/       - defaults, YAML file, environment and flags
//	logging/      - zap logger construction
//
// The patriarchy command (cmd/patriarchy) exposes every model operation;
// runnable scenarios live in examples/.
package patriarchy
