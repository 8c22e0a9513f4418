package ddmin

import (
	"github.com/rs/zerolog"

	"github.com/coregx/ddmin/cache"
	"github.com/coregx/ddmin/strategy"
)

// Test is the oracle: it runs config (tagged with id for logging/artifact
// purposes) and reports whether it exhibits the interesting property. A
// returned error aborts the run immediately and is not a contract
// violation — it propagates out of DDMIN unchanged. Test must be
// deterministic and must report the engine's initial configuration as Fail;
// breaking either is an oracle contract violation (spec.md §7).
type Test[U comparable] func(config []U, id ConfigID) (Outcome, error)

// Config holds the pluggable collaborators and tunables for one DDMIN run.
// The zero Config is not meaningful — SubsetFirst's zero value (false)
// contradicts the documented default (true) — so callers must start from
// DefaultConfig and override only what they need, the same convention the
// regex engine this package is descended from uses for its own Config type.
type Config[U comparable] struct {
	// Cache memoizes oracle verdicts across the whole run. Defaults to a
	// fresh cache.Trie.
	Cache cache.Cache[U]
	// IDPrefix is prepended to every ConfigID this run produces, so that a
	// caller composing several DDMIN runs can tell their logs apart.
	IDPrefix ConfigID
	// Split partitions a configuration into contiguous candidate slices.
	// Defaults to strategy.Balanced.
	Split strategy.Splitter
	// SubsetFirst selects which half of a reduce step runs first: probing
	// subsets before complements (true, the default) finds a shrinking
	// candidate in fewer oracle calls whenever interesting units cluster
	// together, which is the common case.
	SubsetFirst bool
	// SubsetIterator controls the order subset candidates are probed in.
	// Defaults to strategy.Forward.
	SubsetIterator strategy.Indexer
	// ComplementIterator controls the order complement candidates are
	// probed in. Defaults to strategy.Forward.
	ComplementIterator strategy.Indexer
	// Logger receives structured debug/info events for each probe and
	// granularity change. The zero Logger is a safe no-op sink.
	Logger zerolog.Logger
}

// DefaultConfig returns the Config DDMIN uses when a caller does not
// override a field: a fresh cache.Trie, strategy.Balanced splitting,
// subset-first reduction with forward iteration in both phases, and a
// no-op logger.
func DefaultConfig[U comparable]() Config[U] {
	return Config[U]{
		Cache:              cache.NewTrie[U](),
		Split:              strategy.Balanced,
		SubsetFirst:        true,
		SubsetIterator:     strategy.Forward,
		ComplementIterator: strategy.Forward,
		Logger:             zerolog.Nop(),
	}
}

// withDefaults fills any unset collaborator with DefaultConfig's, leaving
// every explicitly set field untouched.
func (c Config[U]) withDefaults() Config[U] {
	d := DefaultConfig[U]()
	if c.Cache == nil {
		c.Cache = d.Cache
	}
	if c.Split == nil {
		c.Split = d.Split
	}
	if c.SubsetIterator == nil {
		c.SubsetIterator = d.SubsetIterator
	}
	if c.ComplementIterator == nil {
		c.ComplementIterator = d.ComplementIterator
	}
	return c
}
