package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escaperoute/bellmanford"
	"github.com/katalvlaran/escaperoute/timegraph"
)

func mustGraph(t *testing.T, times [][]int) *timegraph.Graph {
	t.Helper()
	g, err := timegraph.New(times)
	require.NoError(t, err)

	return g
}

func TestDistances_RefundMatrix(t *testing.T) {
	g := mustGraph(t, [][]int{
		{0, 2, 2, 2, -1},
		{9, 0, 2, 2, -1},
		{9, 3, 0, 2, -1},
		{9, 3, 2, 0, -1},
		{9, 3, 2, 2, 0},
	})

	dist, prev := bellmanford.Distances(g)
	assert.Equal(t, []int{0, 2, 1, 1, -1}, dist)
	assert.Equal(t, []timegraph.Node{-1, 0, 4, 4, 0}, prev)
	assert.False(t, bellmanford.HasNegativeCycle(g))
}

func TestNegativeCycle_Table(t *testing.T) {
	cases := []struct {
		name  string
		times [][]int
		cycle []timegraph.Node
	}{
		{
			name:  "start and target refund each other",
			times: [][]int{{0, -3, 1}, {-2, 0, 1}, {1, 1, 0}},
			cycle: []timegraph.Node{0, 1, 0},
		},
		{
			name: "cycle between two targets away from start",
			times: [][]int{
				{0, 5, 5, 5, 5},
				{5, 0, 5, 5, 5},
				{5, 5, 0, -4, 5},
				{5, 5, 3, 0, 5},
				{5, 5, 5, 5, 0},
			},
			cycle: []timegraph.Node{2, 3, 2},
		},
		{
			name:  "negative self-loop",
			times: [][]int{{0, 1, 1}, {1, -1, 1}, {1, 1, 0}},
			cycle: []timegraph.Node{1, 1},
		},
		{
			name:  "start and exit only",
			times: [][]int{{0, -1}, {0, 0}},
			cycle: []timegraph.Node{1, 0, 1},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGraph(t, tc.times)
			require.True(t, bellmanford.HasNegativeCycle(g))

			cycle, ok := bellmanford.NegativeCycle(g)
			require.True(t, ok)
			assert.Equal(t, tc.cycle, cycle)

			// the witness really is a negative closed walk
			sum := 0
			for i := 0; i+1 < len(cycle); i++ {
				sum += g.Weight(cycle[i], cycle[i+1])
			}
			assert.Negative(t, sum)
		})
	}
}

func TestNegativeCycle_None(t *testing.T) {
	for _, times := range [][][]int{
		{{0, 0}, {0, 0}},
		{{0, -1}, {1, 0}},
		{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}},
	} {
		g := mustGraph(t, times)
		cycle, ok := bellmanford.NegativeCycle(g)
		assert.False(t, ok, "%v", times)
		assert.Nil(t, cycle)
	}
}

func TestNegativeCycle_DoesNotMutateGraph(t *testing.T) {
	times := [][]int{{0, -3, 1}, {-2, 0, 1}, {1, 1, 0}}
	g := mustGraph(t, times)
	before := g.Rows()

	_ = bellmanford.HasNegativeCycle(g)
	assert.Equal(t, before, g.Rows())
}
