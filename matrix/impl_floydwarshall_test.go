package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/escaperoute/matrix"
)

// far stands in for a missing edge: large enough never to be on a shortest
// walk, small enough that sums cannot overflow.
const far = 1000

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := matrix.FloydWarshall(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	ns, _ := matrix.NewDense(3, 4)
	_, err = matrix.FloydWarshall(ns)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// Classic CLRS example (5×5, directed, with negative edges but no negative cycles).
func TestFloydWarshall_CLRS_5x5(t *testing.T) {
	d := MustSquare(t, [][]int{
		{0, 3, 8, far, -4},
		{far, 0, far, 1, 7},
		{far, 4, 0, far, far},
		{2, far, -5, 0, far},
		{far, far, far, 6, 0},
	})

	next, err := matrix.FloydWarshall(d)
	require.NoError(t, err)

	CompareExact(t, [][]int{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}, d)
	CompareExact(t, [][]int{
		{0, 4, 4, 4, 4},
		{3, 1, 3, 3, 3},
		{1, 1, 2, 1, 1},
		{0, 2, 2, 3, 0},
		{3, 3, 3, 3, 4},
	}, next)

	walk, err := matrix.Walk(next, 0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{0, 4, 3, 2}, walk)
}

// Time refunds on every edge into the last node make detours through it cheaper.
func TestFloydWarshall_RefundMatrix(t *testing.T) {
	d := MustSquare(t, [][]int{
		{0, 2, 2, 2, -1},
		{9, 0, 2, 2, -1},
		{9, 3, 0, 2, -1},
		{9, 3, 2, 0, -1},
		{9, 3, 2, 2, 0},
	})
	next, err := matrix.FloydWarshall(d)
	require.NoError(t, err)

	CompareExact(t, [][]int{
		{0, 2, 1, 1, -1},
		{8, 0, 1, 1, -1},
		{8, 2, 0, 1, -1},
		{8, 2, 1, 0, -1},
		{9, 3, 2, 2, 0},
	}, d)

	walk, err := matrix.Walk(next, 1, 0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4, 0}, walk)
}

func TestWalk_Degenerate(t *testing.T) {
	d := MustSquare(t, [][]int{{0, 1}, {1, 0}})
	next, err := matrix.FloydWarshall(d)
	require.NoError(t, err)

	walk, err := matrix.Walk(next, 1, 1)
	require.NoError(t, err)
	require.Equal(t, []int{1}, walk)

	_, err = matrix.Walk(next, 0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
