// Package chaindata is the explorer's single read path over the providers.
// Every method logs provider failures and returns an empty or zero value
// instead of an error, so pages can always render.
package chaindata

import (
	"context"
	"errors"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/kripto-transakcije/explorer/pkg/coingecko"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/moralis"
	"go.uber.org/zap"
)

// Analytics is the subset of the Dune client the reader uses.
type Analytics interface {
	EthPrice(ctx context.Context) (float64, error)
	LatestBlock(ctx context.Context) (uint64, error)
	TxCount(ctx context.Context) (uint64, error)
	GasPrices(ctx context.Context) (models.GasPrices, error)
	PriceHistory(ctx context.Context, days int) ([]models.PricePoint, error)
	RecentTransactions(ctx context.Context, limit int) ([]models.Transaction, error)
	AddressTransactions(ctx context.Context, address string, limit int) ([]models.Transaction, error)
	Balance(ctx context.Context, address string) (string, error)
}

// Price sources.
const (
	PriceSourceCoinGecko = "coingecko"
	PriceSourceDune      = "dune"
)

// Reader fans requests out to Moralis, Dune, and CoinGecko.
type Reader struct {
	ledger      moralis.Client
	analytics   Analytics
	bitcoin     BitcoinAnalytics
	market      coingecko.Client
	priceSource string
	chain       string
	logger      *zap.Logger
	pool        pond.Pool
	now         func() time.Time
}

// Opts is the set of options for a new Reader.
type Opts struct {
	Ledger      moralis.Client
	Analytics   Analytics
	Bitcoin     BitcoinAnalytics
	Market      coingecko.Client
	PriceSource string
	Chain       string
	Workers     int
	Logger      *zap.Logger
}

// New creates a Reader. Nil providers are treated as always failing.
func New(o Opts) *Reader {
	if o.Workers <= 0 {
		o.Workers = 16
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.PriceSource == "" {
		o.PriceSource = PriceSourceCoinGecko
	}
	if o.Chain == "" {
		o.Chain = moralis.DefaultChain
	}
	return &Reader{
		ledger:      o.Ledger,
		analytics:   o.Analytics,
		bitcoin:     o.Bitcoin,
		market:      o.Market,
		priceSource: o.PriceSource,
		chain:       o.Chain,
		logger:      o.Logger,
		pool:        pond.NewPool(o.Workers, pond.WithQueueSize(256)),
		now:         time.Now,
	}
}

// Close stops the worker pool after in-flight lookups finish.
func (r *Reader) Close() {
	r.pool.StopAndWait()
}

// Chain is the network key used for status snapshots.
func (r *Reader) Chain() string {
	return r.chain
}

var errNoProvider = errors.New("provider not configured")

// useAnalytics reports whether a ledger read that failed with err should be
// answered by Dune instead. This only happens when Moralis has no API key.
func (r *Reader) useAnalytics(err error) bool {
	return r.analytics != nil && errors.Is(err, moralis.ErrNoAPIKey)
}

func (r *Reader) warn(msg string, err error, fields ...zap.Field) {
	if errors.Is(err, context.Canceled) {
		return
	}
	r.logger.Warn(msg, append(fields, zap.Error(err))...)
}

// wait blocks on a task group, ignoring cancellation noise the way every fan-out does.
func (r *Reader) wait(group pond.TaskGroup, op string) {
	if err := group.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, pond.ErrGroupStopped) {
		r.logger.Warn("parallel fetch encountered error", zap.String("op", op), zap.Error(err))
	}
}
