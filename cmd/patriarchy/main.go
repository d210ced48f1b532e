// patriarchy solves the household model of endogenous education and
// marriage and iterates it to an education equilibrium.
//
// Usage:
//
//	patriarchy household    [--gamma=0.9] [--wage=2] [--mode=paper|reality]
//	patriarchy equilibrium  [--initial-men=0.6] [--initial-women=0.4] [--max-generations=2000]
//	patriarchy montecarlo   [--runs=20] [--seed=1] [--parallel=0] [--horizon=100]
//	patriarchy bestresponse [--side=men|women] [--points=11]
//	patriarchy indifference [--agent=man|woman] [--gamma-min=0] [--gamma-max=3] [--steps=31]
//
// Every command accepts --config, --output (text|yaml|json), --log-level,
// --log-format and --metrics-textfile.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
