package oracle

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/coregx/ddmin"
	"github.com/coregx/ddmin/cache"
)

// WarmCache runs test against every config not already present in c,
// concurrently, and writes the results through to c. It is meant to run
// ahead of a real ddmin.Engine.DDMIN call sharing the same cache: priming
// a batch of known candidates (e.g. the classic granularity-2 subsets and
// complements of the initial configuration) in parallel before the
// strictly sequential control loop starts consulting it. WarmCache never
// touches the engine's control loop itself (spec.md §5 keeps that
// sequential); it only populates the Cache the loop will later read.
//
// If ctx is cancelled, or any call to test returns an error, WarmCache
// stops launching new calls and returns the first error encountered.
func WarmCache[U comparable](ctx context.Context, c cache.Cache[U], test ddmin.Test[U], configs [][]U, id ddmin.ConfigID) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, config := range configs {
		config := config
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if _, ok := c.Lookup(config); ok {
				return nil
			}
			outcome, err := test(config, id)
			if err != nil {
				return err
			}
			c.Add(config, outcome)
			return nil
		})
	}
	return g.Wait()
}
