package strategy

import "fmt"

// Splitter partitions the index range [0, n) into exactly k contiguous,
// non-overlapping slices covering the whole range. n and k are both
// guaranteed positive by the caller, with k <= n.
type Splitter func(n, k int) []Slice

// Balanced distributes n across k contiguous slices so that sizes differ
// by at most one (the first n%k slices get one extra element). This is the
// classic delta-debugging balanced split — sometimes called the "Zeller"
// split, after the algorithm's original paper — and is the default
// Splitter.
func Balanced(n, k int) []Slice {
	if k <= 0 || k > n {
		panic(fmt.Sprintf("strategy: Balanced: invalid split request n=%d k=%d", n, k))
	}

	slices := make([]Slice, k)
	base, extra := n/k, n%k
	start := 0
	for i := 0; i < k; i++ {
		size := base
		if i < extra {
			size++
		}
		slices[i] = Slice{Start: start, Stop: start + size}
		start += size
	}
	return slices
}

// Zeller is an alias for Balanced.
var Zeller = Balanced

// Validate reports whether slices is a valid contiguous partition of
// [0, n) into exactly k parts, as every Splitter is required to produce.
func Validate(slices []Slice, n, k int) error {
	if len(slices) != k {
		return fmt.Errorf("splitter returned %d slices, want %d", len(slices), k)
	}
	pos := 0
	for i, s := range slices {
		if s.Start != pos || s.Stop < s.Start || s.Stop > n {
			return fmt.Errorf("slice %d = %s does not continue partition at offset %d (n=%d)", i, s, pos, n)
		}
		pos = s.Stop
	}
	if pos != n {
		return fmt.Errorf("slices cover [0,%d), want [0,%d)", pos, n)
	}
	return nil
}
