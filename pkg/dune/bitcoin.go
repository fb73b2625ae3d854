package dune

import (
	"context"
	"sort"

	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
)

// BitcoinLatestBlock returns the height of the newest Bitcoin block.
func (c *HTTPClient) BitcoinLatestBlock(ctx context.Context) (uint64, error) {
	row, err := c.first(ctx, c.queries.BitcoinLatestBlock, nil)
	if err != nil {
		return 0, err
	}
	return row.Uint("height", "block_number", "number", "block", "latest_block"), nil
}

// BitcoinTxCount returns the number of Bitcoin transactions in the last 24 hours.
func (c *HTTPClient) BitcoinTxCount(ctx context.Context) (uint64, error) {
	row, err := c.first(ctx, c.queries.BitcoinTxCount, nil)
	if err != nil {
		return 0, err
	}
	return row.Uint("tx_count", "transactions", "count", "transaction_count"), nil
}

// BitcoinAvgFee returns the average transaction fee in BTC.
func (c *HTTPClient) BitcoinAvgFee(ctx context.Context) (float64, error) {
	row, err := c.first(ctx, c.queries.BitcoinAvgFee, nil)
	if err != nil {
		return 0, err
	}
	return row.Float("avg_fee", "fee", "fee_rate", "avg_fee_rate"), nil
}

// BitcoinRecentTransactions returns the newest Bitcoin transactions.
func (c *HTTPClient) BitcoinRecentTransactions(ctx context.Context, limit int) ([]models.BitcoinTransaction, error) {
	rows, err := c.Run(ctx, c.queries.BitcoinRecentTransactions, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	return rowsToBitcoinTransactions(rows, limit), nil
}

// BitcoinBlocks returns the newest Bitcoin blocks, highest first.
func (c *HTTPClient) BitcoinBlocks(ctx context.Context, limit int) ([]models.BitcoinBlock, error) {
	rows, err := c.Run(ctx, c.queries.BitcoinBlocks, map[string]any{"limit": limit})
	if err != nil {
		return nil, err
	}
	out := make([]models.BitcoinBlock, 0, len(rows))
	for _, row := range rows {
		ts, _ := format.ParseTimestamp(row.String("time", "block_time", "timestamp"))
		b := models.BitcoinBlock{
			Height:  row.Uint("height", "block_height", "number"),
			Hash:    row.String("hash", "block_hash"),
			Time:    ts,
			TxCount: row.Uint("tx_count", "transaction_count"),
			Size:    row.Uint("size"),
		}
		if b.Height == 0 && b.Hash == "" {
			continue
		}
		out = append(out, b)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Height > out[j].Height })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// BitcoinAddress returns the summary of a Bitcoin address.
func (c *HTTPClient) BitcoinAddress(ctx context.Context, address string) (*models.BitcoinAddress, error) {
	row, err := c.first(ctx, c.queries.BitcoinAddress, map[string]any{"address": address})
	if err != nil {
		return nil, err
	}
	first, _ := format.ParseTimestamp(row.String("first_seen"))
	last, _ := format.ParseTimestamp(row.String("last_seen"))
	return &models.BitcoinAddress{
		Address:   address,
		Balance:   row.String("balance"),
		Received:  row.String("received", "total_received"),
		Sent:      row.String("sent", "total_sent"),
		TxCount:   row.Uint("tx_count"),
		FirstSeen: first,
		LastSeen:  last,
	}, nil
}

// BitcoinAddressTransactions returns the newest transactions touching address.
func (c *HTTPClient) BitcoinAddressTransactions(ctx context.Context, address string, limit int) ([]models.BitcoinTransaction, error) {
	rows, err := c.Run(ctx, c.queries.BitcoinAddressTransactions, map[string]any{
		"address": address,
		"limit":   limit,
	})
	if err != nil {
		return nil, err
	}
	return rowsToBitcoinTransactions(rows, limit), nil
}

func rowsToBitcoinTransactions(rows []Row, limit int) []models.BitcoinTransaction {
	out := make([]models.BitcoinTransaction, 0, len(rows))
	for _, row := range rows {
		ts, _ := format.ParseTimestamp(row.String("block_time", "timestamp", "time"))
		tx := models.BitcoinTransaction{
			TxID:          row.String("txid", "tx_id", "hash"),
			BlockHeight:   row.Uint("block_height", "height"),
			Time:          ts,
			Sender:        row.String("sender"),
			Recipient:     row.String("recipient"),
			Value:         row.String("value"),
			Fee:           row.String("fee"),
			Confirmations: row.Uint("confirmations"),
		}
		// is_input marks the address as a spender
		if input, ok := row["is_input"].(bool); ok {
			tx.Direction = models.DirectionIn
			if input {
				tx.Direction = models.DirectionOut
			}
		}
		if tx.TxID == "" {
			continue
		}
		out = append(out, tx)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].BlockHeight != out[j].BlockHeight {
			return out[i].BlockHeight > out[j].BlockHeight
		}
		return out[i].Time.After(out[j].Time)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
