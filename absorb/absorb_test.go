package absorb_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escaperoute/absorb"
	"github.com/katalvlaran/escaperoute/matrix"
)

func TestSolution_KnownChains(t *testing.T) {
	cases := []struct {
		name   string
		counts [][]int
		want   []int
	}{
		{"two transient", [][]int{
			{0, 2, 1, 0, 0},
			{0, 0, 0, 3, 4},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0},
		}, []int{7, 6, 8, 21}},
		{"loop back to start", [][]int{
			{0, 1, 0, 0, 0, 1},
			{4, 0, 0, 3, 2, 0},
			{0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0},
		}, []int{0, 3, 2, 9, 14}},
		{"start absorbing", [][]int{
			{0, 0, 0},
			{1, 0, 1},
			{0, 0, 0},
		}, []int{1, 0, 1}},
		{"single absorbing", [][]int{{0, 1}, {0, 0}}, []int{1, 1}},
		{"one state", [][]int{{0}}, []int{1, 1}},
		{"self loop", [][]int{
			{5, 1, 1},
			{0, 0, 0},
			{0, 0, 0},
		}, []int{1, 1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := absorb.Solution(tc.counts)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestProbabilities_Result(t *testing.T) {
	res, err := absorb.Probabilities([][]int{
		{0, 1, 0, 0, 0, 1},
		{4, 0, 0, 3, 2, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 4, 5}, res.States)
	assert.Equal(t, []int64{0, 3, 2, 9}, res.Numerators)
	assert.Equal(t, int64(14), res.Denominator)
	assert.Equal(t, "1/7", res.Probability(2).RatString())

	sum := new(big.Rat)
	for i := range res.States {
		sum.Add(sum, res.Probability(i))
	}
	assert.Equal(t, "1", sum.RatString())
}

func TestProbabilities_Errors(t *testing.T) {
	huge := (1 << 62) - 1
	cases := []struct {
		name   string
		counts [][]int
		want   error
	}{
		{"empty", nil, matrix.ErrBadShape},
		{"ragged", [][]int{{0, 1}, {0}}, matrix.ErrNonSquare},
		{"negative", [][]int{{0, -1}, {0, 0}}, absorb.ErrNegativeCount},
		{"no absorbing", [][]int{{1, 1}, {1, 1}}, absorb.ErrNoAbsorbingState},
		{"closed transient class", [][]int{
			{0, 1, 0, 0},
			{1, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, matrix.ErrSingular},
		{"too many", make([][]int, absorb.MaxStates+1), absorb.ErrTooManyStates},
		{"overflow", [][]int{
			{0, 1, huge, 0},
			{0, 0, 1, huge},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, absorb.ErrOverflow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := absorb.Probabilities(tc.counts)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestProbabilities_InputUntouched(t *testing.T) {
	counts := [][]int{
		{0, 2, 1, 0, 0},
		{0, 0, 0, 3, 4},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	_, err := absorb.Probabilities(counts)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 0, 0}, counts[0])
	assert.Equal(t, []int{0, 0, 0, 3, 4}, counts[1])
}
