// Package ddmin implements a minimizing delta-debugger: given an initial
// configuration — an ordered sequence of caller-defined units — known to
// exhibit an "interesting" property under a caller-supplied oracle, DDMIN
// reduces it to a 1-minimal subsequence that still exhibits the property:
// removing any single remaining unit makes the property disappear.
//
// The algorithm is the classical ddmin control loop, generalized over
// three pluggable collaborators:
//
//   - an outcome Cache (package cache), memoizing oracle verdicts so that
//     no subsequence is ever tested twice;
//   - a Splitter (package strategy), partitioning a configuration into
//     contiguous slices;
//   - Subset/Complement iterators (package strategy), controlling the
//     order candidates are probed within one reduce step.
//
// DDMIN is single-threaded and strictly sequential: the oracle is called
// synchronously, and the first interesting candidate found in a reduce
// sub-phase wins outright, with no further candidates probed in that
// sub-phase. A driver that wants to run many oracle calls concurrently is
// a separate, external concern; this package only requires that a Cache
// used in such a setting support concurrent Lookup/Add, which both
// cache.Trie and cache.Map do.
//
// # Basic usage
//
//	units := []rune("1234567890")
//	hasEight := func(config []rune) bool {
//		for _, u := range config {
//			if u == '8' {
//				return true
//			}
//		}
//		return false
//	}
//	test := func(config []rune, id ddmin.ConfigID) (ddmin.Outcome, error) {
//		if hasEight(config) {
//			return ddmin.Fail, nil
//		}
//		return ddmin.Pass, nil
//	}
//	minimal, err := ddmin.DDMIN(test, units, 2) // -> ['8']
//
// # Contract violations
//
// The oracle, Splitter, and Indexer implementations are all caller-supplied
// and form a contract the engine assumes holds (spec.md §7): the oracle is
// deterministic and reports the initial configuration as FAIL, a Splitter
// returns exactly the requested number of contiguous slices covering
// [0, n), and an Indexer only ever yields indices in [0, n) or strategy.Skip.
// Breaking one of these is a programmer error, not a recoverable run-time
// condition, so DDMIN panics with a *ContractViolationError rather than
// returning one. An error returned from Test itself is not a contract
// violation — it propagates out of DDMIN unchanged.
package ddmin
