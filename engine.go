package ddmin

import (
	"fmt"

	"github.com/coregx/ddmin/strategy"
)

// Engine runs one or more DDMIN reductions sharing a Config — in
// particular, sharing a Cache, so repeated runs against overlapping
// configurations cost no extra subset/complement probes; the uncached
// assertion test still calls the oracle once per outer iteration.
type Engine[U comparable] struct {
	test   Test[U]
	config Config[U]
}

// NewEngine builds an Engine from an oracle and a Config. Unset Cache,
// Split, SubsetIterator and ComplementIterator fields are filled from
// DefaultConfig; SubsetFirst and Logger are used as given.
func NewEngine[U comparable](test Test[U], config Config[U]) (*Engine[U], error) {
	if test == nil {
		return nil, fmt.Errorf("ddmin: NewEngine: test must not be nil")
	}
	return &Engine[U]{test: test, config: config.withDefaults()}, nil
}

// DDMIN is a convenience wrapper over NewEngine + (*Engine).DDMIN and
// DefaultConfig, for callers who only need to run the algorithm once. n is
// the initial split ratio; pass 2 for the classic delta-debugging schedule.
func DDMIN[U comparable](test Test[U], config []U, n int) ([]U, error) {
	e, err := NewEngine[U](test, DefaultConfig[U]())
	if err != nil {
		return nil, err
	}
	return e.DDMIN(config, n)
}

// DDMIN reduces config to a 1-minimal subsequence that the oracle still
// reports as Fail. n is the initial split ratio (2 gives the classic
// delta-debugging schedule) and also the factor granularity is scaled by
// on each escalation.
//
// The engine re-asserts that the working configuration is Fail at the top
// of every outer iteration (I1), using a ConfigID ending in "assert"; a
// Pass result there is an oracle contract violation.
func (e *Engine[U]) DDMIN(config []U, n int) ([]U, error) {
	run := 0
	offset := 0
	var slices []strategy.Slice

	for {
		id := withRun(e.config.IDPrefix, run, "assert")
		outcome, err := e.test(config, id)
		if err != nil {
			return nil, err
		}
		if outcome != Fail {
			violate("oracle", id, "working configuration must be FAIL, got %s", outcome)
		}

		if len(config) < 2 {
			e.config.Logger.Info().Int("run", run).Int("size", len(config)).Msg("done")
			return config, nil
		}

		// Partition only if the current slice list is stale (start of
		// ddmin, or just after a successful reduction left fewer than 2
		// slices); otherwise granularity was already escalated and the
		// existing slices are reused (spec.md §4.3 step 3).
		if len(slices) < 2 {
			slices = split(e.config.Split, len(config), min(len(config), n))
		}

		nextSlices, newOffset, found, err := e.reduce(run, config, slices, offset)
		if err != nil {
			return nil, err
		}
		run++

		if found {
			config = concatSlices(config, nextSlices)
			slices = rebase(nextSlices)
			offset = newOffset
			continue
		}

		if len(slices) >= len(config) {
			// Finest granularity and nothing interesting: every singleton
			// subset and every |C|-1 complement was probed this
			// iteration, so config is 1-minimal (I5).
			e.config.Logger.Info().Int("run", run).Int("size", len(config)).Msg("done")
			return config, nil
		}

		newSlices := split(e.config.Split, len(config), min(len(config), len(slices)*n))
		// Offset rescale: project the "already explored" rotation into
		// the new, finer coordinate system. Uses Go's truncating integer
		// division (spec.md §9 leaves the choice of rounding open; this
		// is equivalent to floor for the non-negative operands here).
		offset = offset * len(newSlices) / len(slices)
		slices = newSlices
		e.config.Logger.Info().Int("run", run).Int("slices", len(slices)).Msg("granularity increased")
	}
}

// split partitions [0, total) into k contiguous slices via sp, validating
// the result (spec.md §7: a Splitter is caller-supplied and therefore
// untrusted).
func split(sp strategy.Splitter, total, k int) []strategy.Slice {
	slices := sp(total, k)
	if err := strategy.Validate(slices, total, k); err != nil {
		violate("splitter", nil, "%s", err)
	}
	return slices
}

// concatSlices rebuilds the sequence formed by the given slices of config,
// in the order given.
func concatSlices[U any](config []U, slices []strategy.Slice) []U {
	out := make([]U, 0, len(config))
	for _, s := range slices {
		out = append(out, config[s.Start:s.Stop]...)
	}
	return out
}

// rebase re-anchors slices at origin 0, preserving each slice's length and
// order. This is how a successful reduce step's next_slices become the
// partition of the new, smaller configuration (spec.md §4.3 step 4):
// granularity is not force-reset to a single span, just translated.
func rebase(slices []strategy.Slice) []strategy.Slice {
	out := make([]strategy.Slice, len(slices))
	pos := 0
	for i, s := range slices {
		size := s.Stop - s.Start
		out[i] = strategy.Slice{Start: pos, Stop: pos + size}
		pos += size
	}
	return out
}
