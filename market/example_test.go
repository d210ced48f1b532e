package market_test

import (
	"fmt"

	"github.com/katalvlaran/patriarchy/household"
	"github.com/katalvlaran/patriarchy/market"
)

// ExampleTable_ExpectedValues evaluates the education premia at the
// patriarchal seed (0.6, 0.4).
func ExampleTable_ExpectedValues() {
	tbl := market.NewTable(0.9, 2, household.Unconstrained)
	v := tbl.ExpectedValues(0.6, 0.4)
	fmt.Printf("men: %.4f women: %.4f\n", v.ManPremium(), v.WomanPremium())
	// Output:
	// men: 0.0980 women: 0.0479
}
