package chaindata

import (
	"context"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"go.uber.org/zap"
)

// Transaction returns the transaction with hash, or nil.
func (r *Reader) Transaction(ctx context.Context, hash string) *models.Transaction {
	if r.ledger == nil {
		return nil
	}
	tx, err := r.ledger.Transaction(ctx, hash)
	if err != nil {
		r.warn("Failed to fetch transaction", err, zap.String("hash", hash))
		return nil
	}
	return tx
}

// LatestTransactions returns the newest network transactions, newest first.
func (r *Reader) LatestTransactions(ctx context.Context, n int) []models.Transaction {
	if r.analytics == nil {
		return []models.Transaction{}
	}
	txs, err := r.analytics.RecentTransactions(ctx, n)
	if err != nil {
		r.warn("Failed to fetch latest transactions", err)
		return []models.Transaction{}
	}
	if len(txs) > n {
		txs = txs[:n]
	}
	models.SortNewestFirst(txs)
	return txs
}

// AddressTransactions returns the newest transactions of address, newest first.
func (r *Reader) AddressTransactions(ctx context.Context, address string, n int) []models.Transaction {
	var (
		txs []models.Transaction
		err = errNoProvider
	)
	if r.ledger != nil {
		txs, err = r.ledger.AddressTransactions(ctx, address, n)
	}
	if err != nil && (r.ledger == nil || r.useAnalytics(err)) && r.analytics != nil {
		txs, err = r.analytics.AddressTransactions(ctx, address, n)
	}
	if err != nil {
		r.warn("Failed to fetch address transactions", err, zap.String("address", address))
		return []models.Transaction{}
	}
	models.SortNewestFirst(txs)
	return txs
}
