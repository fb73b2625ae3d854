package moralis

import (
	"context"
	"fmt"
)

// Balance returns the native balance of address in wei.
func (c *HTTPClient) Balance(ctx context.Context, address string) (string, error) {
	var resp balanceResp
	if err := c.get(ctx, fmt.Sprintf(balancePath, address), nil, &resp); err != nil {
		return "", fmt.Errorf("balance of %s: %w", address, err)
	}
	return resp.Balance.String(), nil
}

// WalletStats returns activity counters of address.
func (c *HTTPClient) WalletStats(ctx context.Context, address string) (*WalletStats, error) {
	var resp WalletStats
	if err := c.get(ctx, fmt.Sprintf(walletStatsPath, address), nil, &resp); err != nil {
		return nil, fmt.Errorf("stats of %s: %w", address, err)
	}
	return &resp, nil
}

// TransactionCount returns the total number of transactions of address.
func (c *HTTPClient) TransactionCount(ctx context.Context, address string) (uint64, error) {
	stats, err := c.WalletStats(ctx, address)
	if err != nil {
		return 0, err
	}
	return stats.TxCount(), nil
}
