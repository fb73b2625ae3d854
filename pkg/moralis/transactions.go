package moralis

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/kripto-transakcije/explorer/pkg/models"
)

// Transaction returns one transaction with its receipt fields.
func (c *HTTPClient) Transaction(ctx context.Context, hash string) (*models.Transaction, error) {
	var resp Transaction
	if err := c.get(ctx, fmt.Sprintf(transactionPath, hash), nil, &resp); err != nil {
		return nil, fmt.Errorf("transaction %s: %w", hash, err)
	}
	if resp.Hash == "" {
		return nil, fmt.Errorf("transaction %s: %w", hash, ErrNotFound)
	}
	tx := resp.ToModel()
	return &tx, nil
}

// AddressTransactions returns the newest native transactions sent or received by address.
func (c *HTTPClient) AddressTransactions(ctx context.Context, address string, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = 10
	}
	q := url.Values{
		"limit": []string{strconv.Itoa(limit)},
		"order": []string{"DESC"},
	}
	var resp verboseResp
	if err := c.get(ctx, fmt.Sprintf(verbosePath, address), q, &resp); err != nil {
		return nil, fmt.Errorf("transactions of %s: %w", address, err)
	}
	out := make([]models.Transaction, 0, len(resp.Result))
	for _, tx := range resp.Result {
		out = append(out, tx.ToModel())
	}
	return out, nil
}
