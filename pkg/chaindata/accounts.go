package chaindata

import (
	"context"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"go.uber.org/zap"
)

// AddressStatus returns balance and transaction count, or nil when the
// balance cannot be read. A missing count is left at zero.
func (r *Reader) AddressStatus(ctx context.Context, address string) *models.AddressStatus {
	balance, err := r.balance(ctx, address)
	if err != nil {
		r.warn("Failed to fetch address balance", err, zap.String("address", address))
		return nil
	}
	status := &models.AddressStatus{Address: address, Balance: balance}
	if r.ledger != nil {
		count, err := r.ledger.TransactionCount(ctx, address)
		if err != nil {
			r.warn("Failed to fetch address transaction count", err, zap.String("address", address))
		} else {
			status.TxCount = count
		}
	}
	return status
}

func (r *Reader) balance(ctx context.Context, address string) (string, error) {
	err := errNoProvider
	if r.ledger != nil {
		var balance string
		if balance, err = r.ledger.Balance(ctx, address); err == nil {
			return balance, nil
		}
	}
	if (r.ledger == nil || r.useAnalytics(err)) && r.analytics != nil {
		return r.analytics.Balance(ctx, address)
	}
	return "", err
}

// TokenBalances returns the ERC-20 holdings of address.
func (r *Reader) TokenBalances(ctx context.Context, address string) []models.Token {
	if r.ledger == nil {
		return []models.Token{}
	}
	tokens, err := r.ledger.TokenBalances(ctx, address)
	if err != nil {
		r.warn("Failed to fetch token balances", err, zap.String("address", address))
		return []models.Token{}
	}
	return tokens
}

// TokenMetadata returns metadata of an ERC-20 contract, or nil.
func (r *Reader) TokenMetadata(ctx context.Context, contract string) *models.Token {
	if r.ledger == nil {
		return nil
	}
	tokens, err := r.ledger.TokenMetadata(ctx, contract)
	if err != nil {
		r.warn("Failed to fetch token metadata", err, zap.String("contract", contract))
		return nil
	}
	if len(tokens) == 0 {
		return nil
	}
	return &tokens[0]
}

func etherOf(wei string) float64 {
	return format.EtherFloat(wei)
}

// AddressStats summarises txs from the point of view of address.
func AddressStats(txs []models.Transaction, address string) models.AddressStats {
	stats := models.AddressStats{Window: len(txs)}
	var totalGas float64
	for _, tx := range txs {
		value := format.EtherFloat(tx.Value)
		switch {
		case strings.EqualFold(tx.From, address):
			stats.Sent++
			stats.SentValue += value
			totalGas += float64(format.ParseUint(tx.Gas))
			gas := tx.GasUsed
			if gas == "" {
				gas = tx.Gas
			}
			stats.TotalFees += format.FeeFloat(gas, tx.GasPrice)
		case strings.EqualFold(tx.To, address):
			stats.Received++
			stats.ReceivedValue += value
		}
	}
	if stats.Sent > 0 {
		stats.AvgGas = totalGas / float64(stats.Sent)
	}
	return stats
}
