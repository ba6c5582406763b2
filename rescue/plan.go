package rescue

import (
	"fmt"

	"github.com/katalvlaran/escaperoute/bellmanford"
	"github.com/katalvlaran/escaperoute/timegraph"
)

// Plan is the one-call entry point: it builds the graph from times and
// returns the rescued target indices in ascending order (never nil).
//
// times must be square with 2..timegraph.MaxNodes rows; see timegraph.New
// for the validation errors.
func Plan(times [][]int, timeLimit int) ([]int, error) {
	g, err := timegraph.New(times)
	if err != nil {
		return nil, err
	}
	res, err := Solve(g, timeLimit)
	if err != nil {
		return nil, err
	}

	return res.Targets, nil
}

// Solve runs the full pipeline on g: no-target short-circuit, negative-cycle
// check, all-pairs costs and the subset search.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadOption).
//  2. g must be non-nil (ErrNilGraph).
//  3. timeLimit ≥ 0 (ErrNegativeTimeLimit).
//  4. g.Targets() ≤ Options.MaxTargets (ErrTooManyTargets).
//
// g is only read; repeated calls with the same input give the same Result.
func Solve(g *timegraph.Graph, timeLimit int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if timeLimit < 0 {
		return Result{}, fmt.Errorf("rescue: time limit %d: %w", timeLimit, ErrNegativeTimeLimit)
	}
	n := g.Targets()
	if n > cfg.MaxTargets {
		return Result{}, fmt.Errorf("rescue: %d targets, max %d: %w", n, cfg.MaxTargets, ErrTooManyTargets)
	}
	log := cfg.Logger.With("targets", n, "time_limit", timeLimit)

	if n == 0 {
		log.Debug("no targets to rescue")
		return Result{Targets: []int{}, Feasible: true, Reason: ReasonNoTargets}, nil
	}

	if cycle, ok := bellmanford.NegativeCycle(g); ok {
		log.Debug("negative cycle, deadline cannot bind", "cycle", cycle)
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return Result{Targets: all, Feasible: true, Reason: ReasonNegativeCycle, Cycle: cycle}, nil
	}

	oracle, err := NewOracle(g)
	if err != nil {
		return Result{}, err
	}
	sel := Select(oracle, timeLimit)
	log.Debug("search finished",
		"rescued", sel.Targets, "order", sel.Order, "cost", sel.Cost, "evaluated", sel.Evaluated)

	res := Result{
		Targets:   sel.Targets,
		Order:     sel.Order,
		Cost:      sel.Cost,
		Feasible:  sel.Feasible,
		Reason:    ReasonSearch,
		Evaluated: sel.Evaluated,
	}
	if cfg.ReturnRoute {
		if res.Route, err = oracle.Route(sel.Order); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}
