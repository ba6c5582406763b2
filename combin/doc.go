// Package combin provides the small combinatorial iterators the rescue search
// is built on: every subset of {0..n-1} as a bit set, and every ordering of a
// set of indices in lexicographic order.
//
// Both iterators are Go 1.23 range-over-func sequences: lazy, finite and
// restartable (ranging over the same sequence twice starts from the
// beginning again). Stopping a range loop early stops the generator.
//
//	for s := range combin.Subsets(3) {
//		for order := range combin.Permutations(combin.Members(s)) {
//			...
//		}
//	}
//
// Subsets are github.com/yourbasic/bit sets so membership tests and
// ascending traversal come for free.
package combin
