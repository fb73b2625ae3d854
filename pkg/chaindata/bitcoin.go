package chaindata

import (
	"context"
	"strconv"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"go.uber.org/zap"
)

const bitcoinID = "bitcoin"

// BitcoinAnalytics is the subset of the Dune client that answers Bitcoin reads.
type BitcoinAnalytics interface {
	BitcoinLatestBlock(ctx context.Context) (uint64, error)
	BitcoinTxCount(ctx context.Context) (uint64, error)
	BitcoinAvgFee(ctx context.Context) (float64, error)
	BitcoinRecentTransactions(ctx context.Context, limit int) ([]models.BitcoinTransaction, error)
	BitcoinBlocks(ctx context.Context, limit int) ([]models.BitcoinBlock, error)
	BitcoinAddress(ctx context.Context, address string) (*models.BitcoinAddress, error)
	BitcoinAddressTransactions(ctx context.Context, address string, limit int) ([]models.BitcoinTransaction, error)
}

// BitcoinPrice returns the BTC/USD price, or 0.
func (r *Reader) BitcoinPrice(ctx context.Context) float64 {
	return r.quote(ctx, bitcoinID, "usd")
}

// EthBtcPrice returns the ETH/BTC price, or 0.
func (r *Reader) EthBtcPrice(ctx context.Context) float64 {
	return r.quote(ctx, ethereumID, "btc")
}

func (r *Reader) quote(ctx context.Context, id, vs string) float64 {
	if r.market == nil {
		return 0
	}
	price, err := r.market.SimplePrice(ctx, id, vs)
	if err != nil {
		r.warn("Failed to fetch price", err, zap.String("coin", id), zap.String("vs", vs))
		return 0
	}
	return price
}

// BitcoinPriceHistory returns BTC/USD samples for the last days, oldest first.
func (r *Reader) BitcoinPriceHistory(ctx context.Context, days int) []models.PricePoint {
	if r.market == nil {
		return []models.PricePoint{}
	}
	points, err := r.market.MarketChart(ctx, bitcoinID, "usd", days)
	if err != nil {
		r.warn("Failed to fetch bitcoin price history", err)
		return []models.PricePoint{}
	}
	return points
}

// BitcoinLatestBlock returns the newest Bitcoin block height, or 0.
func (r *Reader) BitcoinLatestBlock(ctx context.Context) uint64 {
	if r.bitcoin == nil {
		return 0
	}
	n, err := r.bitcoin.BitcoinLatestBlock(ctx)
	if err != nil {
		r.warn("Failed to fetch bitcoin latest block", err)
		return 0
	}
	return n
}

// BitcoinTxCount returns the number of Bitcoin transactions in the last day, or 0.
func (r *Reader) BitcoinTxCount(ctx context.Context) uint64 {
	if r.bitcoin == nil {
		return 0
	}
	n, err := r.bitcoin.BitcoinTxCount(ctx)
	if err != nil {
		r.warn("Failed to fetch bitcoin transaction count", err)
		return 0
	}
	return n
}

// BitcoinAvgFee returns the average Bitcoin fee in BTC, or 0.
func (r *Reader) BitcoinAvgFee(ctx context.Context) float64 {
	if r.bitcoin == nil {
		return 0
	}
	fee, err := r.bitcoin.BitcoinAvgFee(ctx)
	if err != nil {
		r.warn("Failed to fetch bitcoin average fee", err)
		return 0
	}
	return fee
}

// BitcoinStatus reads the Bitcoin widget values in parallel. Each field
// defaults to zero independently.
func (r *Reader) BitcoinStatus(ctx context.Context) models.BitcoinStatus {
	var status models.BitcoinStatus

	group := r.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(
		func() { status.Price = r.BitcoinPrice(groupCtx) },
		func() { status.LatestBlock = r.BitcoinLatestBlock(groupCtx) },
		func() { status.TxCount24h = r.BitcoinTxCount(groupCtx) },
		func() { status.AvgFee = r.BitcoinAvgFee(groupCtx) },
	)
	r.wait(group, "bitcoin status")

	status.UpdatedAt = r.now().UTC()
	return status
}

// BitcoinLatestTransactions returns the newest Bitcoin transactions, or none.
func (r *Reader) BitcoinLatestTransactions(ctx context.Context, limit int) []models.BitcoinTransaction {
	if r.bitcoin == nil {
		return []models.BitcoinTransaction{}
	}
	txs, err := r.bitcoin.BitcoinRecentTransactions(ctx, limit)
	if err != nil {
		r.warn("Failed to fetch bitcoin transactions", err)
		return []models.BitcoinTransaction{}
	}
	return txs
}

// BitcoinLatestBlocks returns the newest Bitcoin blocks, or none.
func (r *Reader) BitcoinLatestBlocks(ctx context.Context, limit int) []models.BitcoinBlock {
	if r.bitcoin == nil {
		return []models.BitcoinBlock{}
	}
	blocks, err := r.bitcoin.BitcoinBlocks(ctx, limit)
	if err != nil {
		r.warn("Failed to fetch bitcoin blocks", err)
		return []models.BitcoinBlock{}
	}
	return blocks
}

// BitcoinAddressTransactions returns the newest transactions of address, or none.
func (r *Reader) BitcoinAddressTransactions(ctx context.Context, address string, limit int) []models.BitcoinTransaction {
	if r.bitcoin == nil {
		return []models.BitcoinTransaction{}
	}
	txs, err := r.bitcoin.BitcoinAddressTransactions(ctx, address, limit)
	if err != nil {
		r.warn("Failed to fetch bitcoin address transactions", err)
		return []models.BitcoinTransaction{}
	}
	return txs
}

// BitcoinAddressOverview is everything the Bitcoin address page shows.
type BitcoinAddressOverview struct {
	Address      *models.BitcoinAddress
	Transactions []models.BitcoinTransaction
	Price        float64
}

// Found reports whether the address summary could be read.
func (o BitcoinAddressOverview) Found() bool {
	return o.Address != nil
}

// BalanceUSD is the balance valued at Price.
func (o BitcoinAddressOverview) BalanceUSD() float64 {
	if o.Address == nil {
		return 0
	}
	balance, err := strconv.ParseFloat(strings.TrimSpace(o.Address.Balance), 64)
	if err != nil {
		return 0
	}
	return balance * o.Price
}

// BitcoinAddressOverview loads the summary, history, and price in parallel.
func (r *Reader) BitcoinAddressOverview(ctx context.Context, address string, txLimit int) BitcoinAddressOverview {
	out := BitcoinAddressOverview{Transactions: []models.BitcoinTransaction{}}
	if r.bitcoin == nil {
		return out
	}

	group := r.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(
		func() {
			summary, err := r.bitcoin.BitcoinAddress(groupCtx, address)
			if err != nil {
				r.warn("Failed to fetch bitcoin address", err)
				return
			}
			out.Address = summary
		},
		func() { out.Transactions = r.BitcoinAddressTransactions(groupCtx, address, txLimit) },
		func() { out.Price = r.BitcoinPrice(groupCtx) },
	)
	r.wait(group, "bitcoin address overview")
	return out
}
