package absorb

import (
	"errors"
	"math/big"
)

// MaxStates is the largest chain Probabilities accepts.
const MaxStates = 10

// Sentinel errors returned by Probabilities and Solution.
var (
	// ErrNegativeCount indicates a negative transition count.
	ErrNegativeCount = errors.New("absorb: negative transition count")

	// ErrNoAbsorbingState indicates that no row sums to zero.
	ErrNoAbsorbingState = errors.New("absorb: no absorbing state")

	// ErrTooManyStates indicates more than MaxStates rows.
	ErrTooManyStates = errors.New("absorb: too many states")

	// ErrOverflow indicates a numerator or the denominator does not fit int64.
	ErrOverflow = errors.New("absorb: result does not fit int64")
)

// Result holds the absorption probabilities of every absorbing state,
// listed in ascending state order, over one common denominator.
type Result struct {
	// States are the absorbing state indices, ascending.
	States []int `json:"states" yaml:"states"`

	// Numerators[i] / Denominator is the probability of ending in States[i].
	// Unreachable absorbing states have numerator 0.
	Numerators []int64 `json:"numerators" yaml:"numerators"`

	// Denominator is the least common multiple of the reduced denominators.
	Denominator int64 `json:"denominator" yaml:"denominator"`
}

// Probability returns the probability of ending in States[i] as a reduced
// fraction. It panics if i is out of range.
func (r Result) Probability(i int) *big.Rat {
	return big.NewRat(r.Numerators[i], r.Denominator)
}

// Flat returns the numerators followed by the denominator.
func (r Result) Flat() []int {
	out := make([]int, 0, len(r.Numerators)+1)
	for _, v := range r.Numerators {
		out = append(out, int(v))
	}

	return append(out, int(r.Denominator))
}
