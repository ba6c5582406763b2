// Package bellmanford_test shows how the cycle analyzer is used on a station graph.
package bellmanford_test

import (
	"fmt"

	"github.com/katalvlaran/escaperoute/bellmanford"
	"github.com/katalvlaran/escaperoute/timegraph"
)

// ExampleNegativeCycle finds the refund loop between Start and the only target.
func ExampleNegativeCycle() {
	g, err := timegraph.New([][]int{
		{0, -3, 1}, // start: going to target 0 refunds 3
		{-2, 0, 1}, // target 0: coming back refunds 2
		{1, 1, 0},  // exit
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cycle, ok := bellmanford.NegativeCycle(g)
	fmt.Println(ok, cycle)
	// Output: true [0 1 0]
}
