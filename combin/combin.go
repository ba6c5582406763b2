package combin

import (
	"iter"
	"slices"

	"github.com/yourbasic/bit"
)

// Subsets yields every subset of {0..n-1} in bitmask order (0, {0}, {1},
// {0,1}, ...). Each yielded set is freshly allocated and owned by the caller.
// n ≤ 0 yields only the empty set.
func Subsets(n int) iter.Seq[*bit.Set] {
	return func(yield func(*bit.Set) bool) {
		if n < 0 {
			n = 0
		}
		var mask, i int
		for mask = 0; mask < 1<<n; mask++ {
			s := new(bit.Set)
			for i = 0; i < n; i++ {
				if mask&(1<<i) != 0 {
					s.Add(i)
				}
			}
			if !yield(s) {
				return
			}
		}
	}
}

// Members returns the elements of s in ascending order.
func Members(s *bit.Set) []int {
	out := make([]int, 0, s.Size())
	s.Visit(func(n int) (skip bool) {
		out = append(out, n)
		return false
	})

	return out
}

// Permutations yields every ordering of elems in lexicographic order, starting
// from the sorted order. Duplicate elements yield each distinct ordering once.
// The empty input yields a single empty ordering.
//
// The yielded slice is reused between iterations; copy it to retain it.
// elems itself is never modified.
func Permutations(elems []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		perm := slices.Clone(elems)
		slices.Sort(perm)
		for {
			if !yield(perm) {
				return
			}
			if !nextPermutation(perm) {
				return
			}
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed; the last ordering is left untouched.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}

// LexLess reports whether a precedes b lexicographically: the first differing
// element decides, and a proper prefix precedes the longer sequence.
func LexLess(a, b []int) bool {
	return slices.Compare(a, b) < 0
}

// Factorial returns k! for small k (k ≤ 20 fits in int64); k < 0 yields 0.
func Factorial(k int) int {
	if k < 0 {
		return 0
	}
	f := 1
	for i := 2; i <= k; i++ {
		f *= i
	}

	return f
}
