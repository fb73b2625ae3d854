package moralis

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kripto-transakcije/explorer/pkg/models"
)

// TokenBalances returns the ERC-20 holdings of address, skipping tokens flagged as spam.
func (c *HTTPClient) TokenBalances(ctx context.Context, address string) ([]models.Token, error) {
	var resp []TokenBalance
	if err := c.get(ctx, fmt.Sprintf(erc20BalancesPath, address), nil, &resp); err != nil {
		return nil, fmt.Errorf("tokens of %s: %w", address, err)
	}
	out := make([]models.Token, 0, len(resp))
	for _, tb := range resp {
		if tb.PossibleSpam {
			continue
		}
		out = append(out, tb.ToModel())
	}
	return out, nil
}

// TokenMetadata looks up name, symbol, and decimals of ERC-20 contracts.
func (c *HTTPClient) TokenMetadata(ctx context.Context, contracts ...string) ([]models.Token, error) {
	if len(contracts) == 0 {
		return nil, nil
	}
	q := url.Values{}
	for _, addr := range contracts {
		q.Add("addresses[]", addr)
	}
	var resp []TokenMetadata
	if err := c.get(ctx, erc20MetadataPath, q, &resp); err != nil {
		return nil, fmt.Errorf("token metadata: %w", err)
	}
	out := make([]models.Token, 0, len(resp))
	for _, md := range resp {
		if md.Symbol == "" && md.Name == "" {
			continue
		}
		out = append(out, md.ToModel())
	}
	return out, nil
}
