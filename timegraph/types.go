package timegraph

import (
	"errors"
	"fmt"
)

const (
	// MaxNodes bounds the matrix order: Start, Exit and up to five targets.
	MaxNodes = 7

	// MaxWeight bounds |w| for every entry, keeping every path sum of at most
	// MaxNodes edges far from integer overflow.
	MaxWeight = 1 << 20
)

// Sentinel errors returned by New.
var (
	// ErrTooFewNodes indicates a matrix without room for both Start and Exit.
	ErrTooFewNodes = errors.New("timegraph: need at least start and exit")

	// ErrTooManyNodes indicates a matrix larger than MaxNodes.
	ErrTooManyNodes = errors.New("timegraph: too many nodes")

	// ErrWeightOutOfRange indicates an entry with |w| > MaxWeight.
	ErrWeightOutOfRange = errors.New("timegraph: weight out of range")
)

// Node is a vertex index in the shared scheme (0 = Start, n+1 = Exit).
type Node int

// Start is the departure node of every trip.
const Start Node = 0

// Edge is one directed transition with its time delta.
type Edge struct {
	From, To Node
	Weight   int
}

// String renders the edge as "from->to(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d(%d)", e.From, e.To, e.Weight)
}
