package absorb

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/escaperoute/matrix"
)

// Solution returns the absorption probabilities of counts in flat form:
// one numerator per absorbing state followed by the common denominator.
func Solution(counts [][]int) ([]int, error) {
	res, err := Probabilities(counts)
	if err != nil {
		return nil, err
	}

	return res.Flat(), nil
}

// Probabilities computes the exact probability of the chain, started in
// state 0, ending in each absorbing state.
//
// Validation order: size (ErrTooManyStates), shape (matrix.ErrBadShape,
// matrix.ErrNonSquare), sign (ErrNegativeCount), at least one absorbing
// state (ErrNoAbsorbingState). counts is never modified.
//
// Complexity: O(n³) big.Rat operations for n = len(counts) ≤ MaxStates.
func Probabilities(counts [][]int) (Result, error) {
	if len(counts) > MaxStates {
		return Result{}, fmt.Errorf("absorb: %d states, max %d: %w", len(counts), MaxStates, ErrTooManyStates)
	}
	m, err := matrix.NewSquare(counts)
	if err != nil {
		return Result{}, fmt.Errorf("absorb: %w", err)
	}

	n := m.Rows()
	sums := make([]*big.Int, n)
	var absorbing, transient []int
	var i, j int
	for i = 0; i < n; i++ {
		sums[i] = new(big.Int)
		for j = 0; j < n; j++ {
			v := counts[i][j]
			if v < 0 {
				return Result{}, fmt.Errorf("absorb: counts[%d][%d]=%d: %w", i, j, v, ErrNegativeCount)
			}
			sums[i].Add(sums[i], big.NewInt(int64(v)))
		}
		if sums[i].Sign() == 0 {
			absorbing = append(absorbing, i)
		} else {
			transient = append(transient, i)
		}
	}
	if len(absorbing) == 0 {
		return Result{}, ErrNoAbsorbingState
	}

	// State 0 absorbing, or nowhere else to go.
	if absorbing[0] == 0 || len(absorbing) == 1 {
		res := Result{States: absorbing, Numerators: make([]int64, len(absorbing)), Denominator: 1}
		res.Numerators[0] = 1
		return res, nil
	}

	row, err := startRow(counts, sums, transient, absorbing)
	if err != nil {
		return Result{}, err
	}

	return commonDenominator(absorbing, row)
}

// startRow returns row 0 of (I−Q)⁻¹·R. transient[0] is state 0.
func startRow(counts [][]int, sums []*big.Int, transient, absorbing []int) ([]*big.Rat, error) {
	t, a := len(transient), len(absorbing)
	q, err := matrix.NewRatDense(t, t)
	if err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}
	r, err := matrix.NewRatDense(t, a)
	if err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}

	p := new(big.Rat)
	for ti, s := range transient {
		for tj, d := range transient {
			p.SetFrac(big.NewInt(int64(counts[s][d])), sums[s])
			_ = q.Set(ti, tj, p)
		}
		for aj, d := range absorbing {
			p.SetFrac(big.NewInt(int64(counts[s][d])), sums[s])
			_ = r.Set(ti, aj, p)
		}
	}

	id, err := matrix.RatIdentity(t)
	if err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}
	iq, err := matrix.RatSub(id, q)
	if err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}
	fundamental, err := matrix.RatInverse(iq)
	if err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}
	b, err := matrix.RatMul(fundamental, r)
	if err != nil {
		return nil, fmt.Errorf("absorb: %w", err)
	}

	row := make([]*big.Rat, a)
	for j := range row {
		row[j], _ = b.At(0, j)
	}

	return row, nil
}

// commonDenominator rewrites probs over the LCM of their denominators.
func commonDenominator(states []int, probs []*big.Rat) (Result, error) {
	lcm := big.NewInt(1)
	g := new(big.Int)
	for _, p := range probs {
		d := p.Denom()
		g.GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}
	if !lcm.IsInt64() {
		return Result{}, fmt.Errorf("absorb: denominator %s: %w", lcm, ErrOverflow)
	}

	res := Result{States: states, Numerators: make([]int64, len(probs)), Denominator: lcm.Int64()}
	num := new(big.Int)
	for i, p := range probs {
		num.Quo(lcm, p.Denom())
		num.Mul(num, p.Num())
		if !num.IsInt64() {
			return Result{}, fmt.Errorf("absorb: numerator %s: %w", num, ErrOverflow)
		}
		res.Numerators[i] = num.Int64()
	}

	return res, nil
}
