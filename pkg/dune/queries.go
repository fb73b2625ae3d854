package dune

import (
	"context"
	"math"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
)

// Offsets added to the base gas price for faster confirmation tiers, in Gwei.
const (
	proposeGasOffset = 5
	fastGasOffset    = 10
)

// EthPrice returns the latest ETH/USD price.
func (c *HTTPClient) EthPrice(ctx context.Context) (float64, error) {
	row, err := c.first(ctx, c.queries.EthPrice, nil)
	if err != nil {
		return 0, err
	}
	return row.Float("price"), nil
}

// LatestBlock returns the newest block number Dune has ingested.
func (c *HTTPClient) LatestBlock(ctx context.Context) (uint64, error) {
	row, err := c.first(ctx, c.queries.LatestBlock, nil)
	if err != nil {
		return 0, err
	}
	return row.Uint("number", "block_number"), nil
}

// TxCount returns the total number of Ethereum transactions.
func (c *HTTPClient) TxCount(ctx context.Context) (uint64, error) {
	row, err := c.first(ctx, c.queries.TxCount, nil)
	if err != nil {
		return 0, err
	}
	return row.Uint("count"), nil
}

// GasPrices returns the current gas price tiers in Gwei.
func (c *HTTPClient) GasPrices(ctx context.Context) (models.GasPrices, error) {
	row, err := c.first(ctx, c.queries.GasPrice, nil)
	if err != nil {
		return models.GasPrices{}, err
	}
	safe := math.Round(format.GweiFloat(row.String("gas_price")))
	return models.GasPrices{
		Safe:    safe,
		Propose: safe + proposeGasOffset,
		Fast:    safe + fastGasOffset,
	}, nil
}

// PriceHistory returns daily ETH/USD prices for the last days.
func (c *HTTPClient) PriceHistory(ctx context.Context, days int) ([]models.PricePoint, error) {
	rows, err := c.Run(ctx, c.queries.PriceHistory, map[string]any{"days": days})
	if err != nil {
		return nil, err
	}
	out := make([]models.PricePoint, 0, len(rows))
	for _, row := range rows {
		ts, _ := format.ParseTimestamp(row.String("date", "day"))
		out = append(out, models.PricePoint{Time: ts, Price: row.Float("price")})
	}
	return out, nil
}

// RecentTransactions returns the newest Ethereum transactions.
func (c *HTTPClient) RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error) {
	rows, err := c.Run(ctx, c.queries.RecentTransactions, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return rowsToTransactions(rows), nil
}

// AddressTransactions returns the newest transactions of address.
func (c *HTTPClient) AddressTransactions(ctx context.Context, address string, limit int) ([]models.Transaction, error) {
	rows, err := c.Run(ctx, c.queries.AddressTransactions, map[string]any{
		"address": strings.ToLower(address),
		"limit":   limit,
	})
	if err != nil {
		return nil, err
	}
	return rowsToTransactions(rows), nil
}

// Balance returns the balance of address in wei.
func (c *HTTPClient) Balance(ctx context.Context, address string) (string, error) {
	row, err := c.first(ctx, c.queries.Balance, map[string]any{"address": strings.ToLower(address)})
	if err != nil {
		return "", err
	}
	return row.String("balance"), nil
}

func rowsToTransactions(rows []Row) []models.Transaction {
	out := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		ts, _ := format.ParseTimestamp(row.String("block_time", "block_timestamp"))
		tx := models.Transaction{
			Hash:        row.String("hash"),
			BlockNumber: row.Uint("block_number"),
			Timestamp:   ts,
			From:        row.String("from_address", "from"),
			To:          row.String("to_address", "to"),
			Value:       row.String("value"),
			Gas:         row.String("gas", "gas_limit"),
			GasPrice:    row.String("gas_price"),
			GasUsed:     row.String("gas_used"),
		}
		if success, ok := row["success"].(bool); ok {
			tx.Status = models.TxStatusFailed
			if success {
				tx.Status = models.TxStatusSuccess
			}
		}
		if tx.Hash == "" {
			continue
		}
		out = append(out, tx)
	}
	models.SortNewestFirst(out)
	return out
}
