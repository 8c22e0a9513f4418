package strategy

import "iter"

// Skip is the sentinel value an Indexer may yield to signal that the
// engine should ignore this position. It exists so that policies which
// "hide" already-tried candidates can still produce a sequence of stable
// length n.
const Skip = -1

// Indexer lazily produces a finite sequence over [0, n): a permutation of
// the valid indices, possibly interleaved with Skip. The engine consumes
// the sequence in exactly the order given and ignores Skip values; any
// other value outside [0, n) is an iterator contract violation.
type Indexer func(n int) iter.Seq[int]

// Forward yields 0, 1, …, n-1. It is the default Indexer for both subset
// and complement iteration.
func Forward(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < n; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Backward yields n-1, n-2, …, 0.
func Backward(n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := n - 1; i >= 0; i-- {
			if !yield(i) {
				return
			}
		}
	}
}
