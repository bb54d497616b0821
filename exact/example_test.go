// SPDX-License-Identifier: MIT

// Runnable examples for the exact solvers on the small harbor instances.
package exact_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/voyage/exact"
	"github.com/katalvlaran/voyage/market/markettest"
)

// ExampleRouteThenTrade solves the three-port harbor with a long time budget.
func ExampleRouteThenTrade() {
	res, err := exact.RouteThenTrade(context.Background(), markettest.LongHarbor(), exact.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f %v\n", res.Capital, res.Plan.Route)
	// Output: 8.00 [0 1 2 0]
}

// ExampleInterleaved prints the per-stop trades of the optimal plan.
func ExampleInterleaved() {
	res, err := exact.Interleaved(context.Background(), markettest.LongHarbor(), exact.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, st := range res.Plan.Stops {
		fmt.Printf("port %d: sold %d, bought %d, capital %.2f\n", st.Port, len(st.Sold), len(st.Bought), st.Capital)
	}
	// Output:
	// port 0: sold 0, bought 1, capital 0.00
	// port 1: sold 1, bought 1, capital 3.00
	// port 2: sold 1, bought 0, capital 8.00
	// port 0: sold 0, bought 0, capital 8.00
}

// ExampleProfitByRoute scores one fixed route with non-integer prices.
func ExampleProfitByRoute() {
	v, _ := exact.ProfitByRoute(markettest.Fractional(), []int{0, 1, 2, 0})
	fmt.Printf("%.2f\n", v)
	// Output: 27.37
}
