package moralis

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
)

// LatestBlockNumber resolves the block closest to the current time.
func (c *HTTPClient) LatestBlockNumber(ctx context.Context) (uint64, error) {
	var resp dateToBlockResp
	q := url.Values{"date": []string{time.Now().UTC().Format(time.RFC3339)}}
	if err := c.get(ctx, dateToBlockPath, q, &resp); err != nil {
		return 0, fmt.Errorf("latest block: %w", err)
	}
	n := format.ParseUint(resp.Block.String())
	if n == 0 {
		return 0, fmt.Errorf("latest block: empty block number")
	}
	return n, nil
}

// BlockByNumber returns the block with its transactions.
func (c *HTTPClient) BlockByNumber(ctx context.Context, number uint64) (*models.Block, error) {
	var resp Block
	if err := c.get(ctx, fmt.Sprintf(blockPath, number), nil, &resp); err != nil {
		return nil, fmt.Errorf("block %d: %w", number, err)
	}
	if resp.Hash == "" {
		return nil, fmt.Errorf("block %d: %w", number, ErrNotFound)
	}
	return resp.ToModel(), nil
}
