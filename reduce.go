package ddmin

import (
	"fmt"

	"github.com/coregx/ddmin/strategy"
)

// reduce runs one outer iteration's reduce step: subset-reduce and
// complement-reduce, in the order e.config.SubsetFirst dictates. The first
// sub-phase to find an interesting candidate wins outright; the other is
// not attempted. found is false if neither sub-phase found anything, in
// which case nextSlices and newOffset are meaningless.
func (e *Engine[U]) reduce(run int, config []U, slices []strategy.Slice, offset int) (nextSlices []strategy.Slice, newOffset int, found bool, err error) {
	if e.config.SubsetFirst {
		if nextSlices, found, err = e.reduceToSubset(run, config, slices); found || err != nil {
			return nextSlices, 0, found, err
		}
		nextSlices, newOffset, found, err = e.reduceToComplement(run, config, slices, offset)
		return nextSlices, newOffset, found, err
	}
	if nextSlices, newOffset, found, err = e.reduceToComplement(run, config, slices, offset); found || err != nil {
		return nextSlices, newOffset, found, err
	}
	nextSlices, found, err = e.reduceToSubset(run, config, slices)
	return nextSlices, 0, found, err
}

// reduceToSubset probes each slice in isolation, in the order
// e.config.SubsetIterator dictates, and returns the first one the oracle
// reports as Fail.
func (e *Engine[U]) reduceToSubset(run int, config []U, slices []strategy.Slice) ([]strategy.Slice, bool, error) {
	n := len(slices)
	for i := range e.config.SubsetIterator(n) {
		if i == strategy.Skip {
			continue
		}
		if i < 0 || i >= n {
			violate("iterator", nil, "subset iterator yielded %d outside [0,%d)", i, n)
		}
		s := slices[i]
		id := withRun(e.config.IDPrefix, run, fmt.Sprintf("s%d", i))
		outcome, err := e.probe(config[s.Start:s.Stop], id)
		if err != nil {
			return nil, false, err
		}
		if outcome == Fail {
			e.config.Logger.Info().Int("run", run).Int("slice", i).Msg("subset reduced")
			return []strategy.Slice{s}, true, nil
		}
	}
	return nil, false, nil
}

// reduceToComplement probes each "all slices but one" complement, in the
// order e.config.ComplementIterator dictates and rotated by offset, and
// returns the first one the oracle reports as Fail.
func (e *Engine[U]) reduceToComplement(run int, config []U, slices []strategy.Slice, offset int) ([]strategy.Slice, int, bool, error) {
	n := len(slices)
	for j := range e.config.ComplementIterator(n) {
		if j == strategy.Skip {
			continue
		}
		if j < 0 || j >= n {
			violate("iterator", nil, "complement iterator yielded %d outside [0,%d)", j, n)
		}
		i := ((j+offset)%n + n) % n

		complement := make([]strategy.Slice, 0, n-1)
		complement = append(complement, slices[:i]...)
		complement = append(complement, slices[i+1:]...)

		id := withRun(e.config.IDPrefix, run, fmt.Sprintf("c%d", i))
		outcome, err := e.probe(concatSlices(config, complement), id)
		if err != nil {
			return nil, 0, false, err
		}
		if outcome == Fail {
			e.config.Logger.Info().Int("run", run).Int("slice", i).Msg("complement reduced")
			return complement, i, true, nil
		}
	}
	return nil, offset, false, nil
}

// probe consults the cache before calling the oracle, writing through on a
// miss. Assertion ids never reach probe (I4): only reduceToSubset and
// reduceToComplement call it, and neither constructs an "assert" token.
func (e *Engine[U]) probe(candidate []U, id ConfigID) (Outcome, error) {
	if id.isAssert() {
		violate("oracle", id, "probe called with an assertion id")
	}
	if outcome, ok := e.config.Cache.Lookup(candidate); ok {
		e.config.Logger.Debug().Str("id", id.String()).Msg("cache hit")
		return outcome, nil
	}
	outcome, err := e.test(candidate, id)
	if err != nil {
		return 0, err
	}
	e.config.Logger.Debug().Str("id", id.String()).Str("outcome", outcome.String()).Msg("probed")
	e.config.Cache.Add(candidate, outcome)
	return outcome, nil
}
