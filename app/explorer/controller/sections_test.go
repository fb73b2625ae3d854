package controller

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadSections_RunsConcurrently(t *testing.T) {
	const n = 4
	var (
		started sync.WaitGroup
		ran     atomic.Int32
	)
	started.Add(n)
	allStarted := make(chan struct{})
	go func() {
		started.Wait()
		close(allStarted)
	}()

	loader := func(context.Context) {
		started.Done()
		// every loader waits for the others, which only works if they overlap
		select {
		case <-allStarted:
			ran.Add(1)
		case <-time.After(2 * time.Second):
		}
	}
	loadSections(context.Background(), loader, loader, loader, loader)
	assert.Equal(t, int32(n), ran.Load())
}

func TestLoadSections_SharesRequestContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var seen atomic.Int32
	loadSections(ctx,
		func(ctx context.Context) {
			if ctx.Err() != nil {
				seen.Add(1)
			}
		},
		func(ctx context.Context) {
			if ctx.Err() != nil {
				seen.Add(1)
			}
		},
	)
	assert.Equal(t, int32(2), seen.Load())
}
