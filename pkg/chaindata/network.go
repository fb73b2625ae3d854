package chaindata

import (
	"context"
	"errors"

	"github.com/kripto-transakcije/explorer/pkg/models"
)

const ethereumID = "ethereum"

// EthPrice returns the ETH/USD price from the configured source, or 0.
func (r *Reader) EthPrice(ctx context.Context) float64 {
	var (
		price float64
		err   = errNoProvider
	)
	switch {
	case r.priceSource == PriceSourceDune && r.analytics != nil:
		price, err = r.analytics.EthPrice(ctx)
	case r.priceSource != PriceSourceDune && r.market != nil:
		price, err = r.market.SimplePrice(ctx, ethereumID, "usd")
	}
	if err != nil {
		r.warn("Failed to fetch ETH price", err)
		return 0
	}
	return price
}

// PriceHistory returns ETH/USD samples for the last days, oldest first.
func (r *Reader) PriceHistory(ctx context.Context, days int) []models.PricePoint {
	var (
		points []models.PricePoint
		err    = errNoProvider
	)
	switch {
	case r.priceSource == PriceSourceDune && r.analytics != nil:
		points, err = r.analytics.PriceHistory(ctx, days)
	case r.priceSource != PriceSourceDune && r.market != nil:
		points, err = r.market.MarketChart(ctx, ethereumID, "usd", days)
	}
	if err != nil {
		r.warn("Failed to fetch price history", err)
		return []models.PricePoint{}
	}
	return points
}

// GasPrices returns Gwei tiers, zero on failure.
func (r *Reader) GasPrices(ctx context.Context) models.GasPrices {
	if r.analytics == nil {
		return models.GasPrices{}
	}
	gas, err := r.analytics.GasPrices(ctx)
	if err != nil {
		r.warn("Failed to fetch gas prices", err)
		return models.GasPrices{}
	}
	return gas
}

// TotalTxCount returns the number of transactions ever made on the network, or 0.
func (r *Reader) TotalTxCount(ctx context.Context) uint64 {
	if r.analytics == nil {
		return 0
	}
	n, err := r.analytics.TxCount(ctx)
	if err != nil {
		r.warn("Failed to fetch transaction count", err)
		return 0
	}
	return n
}

// NetworkStatus reads every status widget value in parallel. Each field
// defaults to zero independently.
func (r *Reader) NetworkStatus(ctx context.Context) models.NetworkStatus {
	status := models.NetworkStatus{Chain: r.chain}

	group := r.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(
		func() { status.LatestBlock = r.LatestBlockNumber(groupCtx) },
		func() { status.GasPrice = r.GasPrices(groupCtx).Safe },
		func() { status.EthPrice = r.EthPrice(groupCtx) },
		func() { status.TxCount = r.TotalTxCount(groupCtx) },
	)
	r.wait(group, "network status")

	status.UpdatedAt = r.now().UTC()
	return status
}

// AddressOverview is everything the address page shows.
type AddressOverview struct {
	Status       *models.AddressStatus
	Transactions []models.Transaction
	Tokens       []models.Token
	EthPrice     float64
	Stats        models.AddressStats
}

// Found reports whether the address could be read at all.
func (o AddressOverview) Found() bool {
	return o.Status != nil
}

// BalanceUSD is the ETH balance valued at EthPrice.
func (o AddressOverview) BalanceUSD() float64 {
	if o.Status == nil {
		return 0
	}
	return etherOf(o.Status.Balance) * o.EthPrice
}

// AddressOverview loads status, transactions, tokens, and price in parallel.
// Stats are computed over up to statsWindow transactions.
func (r *Reader) AddressOverview(ctx context.Context, address string, txLimit, statsWindow int) AddressOverview {
	var (
		out      AddressOverview
		statsTxs []models.Transaction
	)
	if statsWindow < txLimit {
		statsWindow = txLimit
	}

	group := r.pool.NewGroupContext(ctx)
	groupCtx := group.Context()
	group.Submit(
		func() { out.Status = r.AddressStatus(groupCtx, address) },
		func() { statsTxs = r.AddressTransactions(groupCtx, address, statsWindow) },
		func() { out.Tokens = r.TokenBalances(groupCtx, address) },
		func() { out.EthPrice = r.EthPrice(groupCtx) },
	)
	r.wait(group, "address overview")

	if errors.Is(ctx.Err(), context.Canceled) {
		return out
	}
	out.Stats = AddressStats(statsTxs, address)
	out.Transactions = statsTxs
	if len(out.Transactions) > txLimit {
		out.Transactions = out.Transactions[:txLimit]
	}
	return out
}
