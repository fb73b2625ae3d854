package controller

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// loadSections runs every page section loader concurrently and waits for all
// of them. Loaders never fail: each one leaves its own placeholder value on a
// provider error, so the group only joins and shares the request context.
func loadSections(ctx context.Context, loaders ...func(ctx context.Context)) {
	g, gctx := errgroup.WithContext(ctx)
	for _, load := range loaders {
		g.Go(func() error {
			load(gctx)
			return nil
		})
	}
	_ = g.Wait()
}
