package rescue

import (
	"slices"

	"github.com/katalvlaran/escaperoute/combin"
)

// Selection is the outcome of the subset search.
type Selection struct {
	Targets   []int // winning subset, ascending; never nil
	Order     []int // cheapest visiting order of Targets
	Cost      int   // trip cost of Order
	Feasible  bool  // Cost ≤ limit
	Evaluated int   // visiting orders whose cost was computed
}

// Select searches every subset of targets and every visiting order of it.
//
// A subset is feasible when its cheapest order costs at most limit. The
// largest feasible subset wins; among equal sizes the lexicographically
// smallest ascending index list wins. Subsets that cannot beat the current
// best by those rules are skipped unevaluated, and the search stops once
// every target fits.
//
// The empty subset is the starting point: the direct Start→Exit trip.
func Select(o *Oracle, limit int) Selection {
	n := o.Targets()
	best := Selection{Targets: []int{}, Order: []int{}, Cost: o.TripCost(nil), Evaluated: 1}
	best.Feasible = best.Cost <= limit

	for s := range combin.Subsets(n) {
		size := s.Size()
		if size == 0 || size < len(best.Targets) {
			continue
		}
		members := combin.Members(s)
		if best.Feasible && size == len(best.Targets) && !combin.LexLess(members, best.Targets) {
			continue
		}

		order, cost, tried := cheapestOrder(o, members)
		best.Evaluated += tried
		if cost > limit {
			continue
		}
		best.Targets, best.Order, best.Cost, best.Feasible = members, order, cost, true
		if size == n {
			break
		}
	}

	return best
}

// cheapestOrder evaluates every ordering of members and returns the first
// cheapest one in lexicographic order, its cost, and how many were tried.
func cheapestOrder(o *Oracle, members []int) ([]int, int, int) {
	var (
		bestOrder []int
		bestCost  int
		tried     int
	)
	for perm := range combin.Permutations(members) {
		tried++
		cost := o.TripCost(perm)
		if bestOrder == nil || cost < bestCost {
			bestOrder = slices.Clone(perm)
			bestCost = cost
		}
	}

	return bestOrder, bestCost, tried
}
