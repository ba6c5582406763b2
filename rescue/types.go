package rescue

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/escaperoute/timegraph"
)

const (
	// DefaultMaxTargets is the largest target count accepted by default.
	DefaultMaxTargets = 5

	// MaxTimeLimit is the largest time budget a scenario may declare.
	MaxTimeLimit = 999
)

// Sentinel errors returned by Plan and Solve.
var (
	// ErrNilGraph indicates that a nil *timegraph.Graph was passed to Solve.
	ErrNilGraph = errors.New("rescue: graph is nil")

	// ErrNegativeTimeLimit indicates a time budget below zero.
	ErrNegativeTimeLimit = errors.New("rescue: time limit must be non-negative")

	// ErrTooManyTargets indicates more targets than Options.MaxTargets.
	ErrTooManyTargets = errors.New("rescue: too many targets")

	// ErrBadOption indicates an option constructed with an invalid argument.
	ErrBadOption = errors.New("rescue: invalid option")
)

// Reason tells which branch of the pipeline produced a Result.
type Reason int

const (
	// ReasonSearch: the subset search chose the targets.
	ReasonSearch Reason = iota

	// ReasonNoTargets: the graph has no targets; nothing was analyzed.
	ReasonNoTargets

	// ReasonNegativeCycle: a negative cycle exists, so every target is rescued.
	ReasonNegativeCycle
)

var reasonNames = [...]string{
	ReasonSearch:        "search",
	ReasonNoTargets:     "no-targets",
	ReasonNegativeCycle: "negative-cycle",
}

// String returns the stable name of r.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return fmt.Sprintf("Reason(%d)", int(r))
	}

	return reasonNames[r]
}

// MarshalText encodes r by name, so JSON, YAML and CBOR output stay readable.
func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Result is the full outcome of Solve.
type Result struct {
	// Targets are the rescued target indices, ascending. Never nil.
	Targets []int `json:"targets"`

	// Order is the cheapest visiting order of Targets found by the search.
	// Empty unless Reason == ReasonSearch.
	Order []int `json:"order,omitempty"`

	// Route is the complete node walk Start → … → Exit for Order, with every
	// intermediate hop. Only filled when WithRoute is set.
	Route []timegraph.Node `json:"route,omitempty"`

	// Cost is the trip cost of Order (the direct Start→Exit cost when no
	// target is rescued). Zero unless Reason == ReasonSearch.
	Cost int `json:"cost"`

	// Feasible reports whether Order fits the time limit. Always true for
	// ReasonNoTargets and ReasonNegativeCycle.
	Feasible bool `json:"feasible"`

	// Reason is the pipeline branch that produced the result.
	Reason Reason `json:"reason"`

	// Cycle is a witness negative cycle for ReasonNegativeCycle.
	Cycle []timegraph.Node `json:"cycle,omitempty"`

	// Evaluated counts the visiting orders whose cost was computed.
	Evaluated int `json:"evaluated"`
}

// Options configures Solve.
//
// Logger      – receives Debug records about the branch taken; defaults to a discard logger.
// ReturnRoute – if true, Result.Route is filled.
// MaxTargets  – graphs with more targets are rejected with ErrTooManyTargets. Must be > 0.
type Options struct {
	Logger      *slog.Logger
	ReturnRoute bool
	MaxTargets  int

	err error // first invalid option argument, reported by Solve
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRoute enables expansion of the winning order into Result.Route.
func WithRoute() Option {
	return func(o *Options) {
		o.ReturnRoute = true
	}
}

// WithMaxTargets overrides DefaultMaxTargets. k must be positive; otherwise
// Solve fails with ErrBadOption.
func WithMaxTargets(k int) Option {
	return func(o *Options) {
		if k <= 0 {
			o.err = fmt.Errorf("WithMaxTargets(%d): %w", k, ErrBadOption)
			return
		}
		o.MaxTargets = k
	}
}

// DefaultOptions returns the configuration Solve starts from:
//   - Logger:      discards everything.
//   - ReturnRoute: false.
//   - MaxTargets:  DefaultMaxTargets.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxTargets: DefaultMaxTargets,
	}
}
