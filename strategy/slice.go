// Package strategy implements the pluggable policies ddmin's control loop
// drives: Splitter (how to partition a configuration into contiguous
// slices) and Indexer (the order candidates are probed within one reduce
// step). See spec.md §4.2.
package strategy

import "fmt"

// Slice is a half-open index range [Start, Stop) over a configuration.
// Slices within one partition are contiguous, non-overlapping, and
// together cover [0, n).
type Slice struct {
	Start, Stop int
}

// Len returns the number of elements the slice spans.
func (s Slice) Len() int { return s.Stop - s.Start }

func (s Slice) String() string { return fmt.Sprintf("[%d,%d)", s.Start, s.Stop) }
