package chaindata

import (
	"context"
	"sort"
	"sync"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"go.uber.org/zap"
)

// LatestBlockNumber returns the chain head, or 0.
func (r *Reader) LatestBlockNumber(ctx context.Context) uint64 {
	if r.ledger == nil {
		return r.analyticsLatestBlock(ctx, errNoProvider)
	}
	n, err := r.ledger.LatestBlockNumber(ctx)
	if err != nil {
		if r.useAnalytics(err) {
			return r.analyticsLatestBlock(ctx, err)
		}
		r.warn("Failed to fetch latest block number", err)
		return 0
	}
	return n
}

func (r *Reader) analyticsLatestBlock(ctx context.Context, cause error) uint64 {
	if r.analytics == nil {
		r.warn("Failed to fetch latest block number", cause)
		return 0
	}
	n, err := r.analytics.LatestBlock(ctx)
	if err != nil {
		r.warn("Failed to fetch latest block number from analytics", err)
		return 0
	}
	return n
}

// Block returns block number, or nil when it cannot be read.
func (r *Reader) Block(ctx context.Context, number uint64) *models.Block {
	if r.ledger == nil {
		return nil
	}
	b, err := r.ledger.BlockByNumber(ctx, number)
	if err != nil {
		r.warn("Failed to fetch block", err, zap.Uint64("number", number))
		return nil
	}
	models.SortNewestFirst(b.Transactions)
	return b
}

// LatestBlocks returns up to n of the newest blocks, newest first.
// Blocks that fail to load are left out.
func (r *Reader) LatestBlocks(ctx context.Context, n int) []models.Block {
	if n <= 0 || r.ledger == nil {
		return []models.Block{}
	}
	head := r.LatestBlockNumber(ctx)
	if head == 0 {
		return []models.Block{}
	}

	var (
		mu     sync.Mutex
		blocks = make([]models.Block, 0, n)
	)
	group := r.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	for i := 0; i < n && uint64(i) <= head; i++ {
		number := head - uint64(i)
		group.Submit(func() {
			if err := groupCtx.Err(); err != nil {
				return
			}
			b, err := r.ledger.BlockByNumber(groupCtx, number)
			if err != nil {
				r.warn("Failed to fetch block", err, zap.Uint64("number", number))
				return
			}
			// list pages only need the count
			b.Transactions = nil
			mu.Lock()
			blocks = append(blocks, *b)
			mu.Unlock()
		})
	}
	r.wait(group, "latest blocks")

	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Number > blocks[j].Number })
	return blocks
}
