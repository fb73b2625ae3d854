package chaindata

import (
	"context"
	"errors"
	"sync"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/moralis"
)

var errBoom = errors.New("boom")

type fakeLedger struct {
	mu       sync.Mutex
	head     uint64
	headErr  error
	blocks   map[uint64]*models.Block
	txs      map[string]*models.Transaction
	history  []models.Transaction
	histErr  error
	balance  string
	balErr   error
	count    uint64
	countErr error
	tokens   []models.Token
	meta     []models.Token
	calls    []string
}

func (f *fakeLedger) record(name string) {
	f.mu.Lock()
	f.calls = append(f.calls, name)
	f.mu.Unlock()
}

func (f *fakeLedger) LatestBlockNumber(context.Context) (uint64, error) {
	f.record("head")
	return f.head, f.headErr
}

func (f *fakeLedger) BlockByNumber(_ context.Context, n uint64) (*models.Block, error) {
	f.record("block")
	b, ok := f.blocks[n]
	if !ok {
		return nil, moralis.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeLedger) Transaction(_ context.Context, hash string) (*models.Transaction, error) {
	tx, ok := f.txs[hash]
	if !ok {
		return nil, moralis.ErrNotFound
	}
	return tx, nil
}

func (f *fakeLedger) AddressTransactions(_ context.Context, _ string, limit int) ([]models.Transaction, error) {
	f.record("address txs")
	if f.histErr != nil {
		return nil, f.histErr
	}
	out := append([]models.Transaction(nil), f.history...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeLedger) Balance(context.Context, string) (string, error) {
	return f.balance, f.balErr
}

func (f *fakeLedger) TransactionCount(context.Context, string) (uint64, error) {
	return f.count, f.countErr
}

func (f *fakeLedger) TokenBalances(context.Context, string) ([]models.Token, error) {
	return f.tokens, nil
}

func (f *fakeLedger) TokenMetadata(context.Context, ...string) ([]models.Token, error) {
	return f.meta, nil
}

type fakeAnalytics struct {
	price    float64
	priceErr error
	head     uint64
	count    uint64
	gas      models.GasPrices
	gasErr   error
	history  []models.PricePoint
	recent   []models.Transaction
	addrTxs  []models.Transaction
	balance  string
}

func (f *fakeAnalytics) EthPrice(context.Context) (float64, error) { return f.price, f.priceErr }
func (f *fakeAnalytics) LatestBlock(context.Context) (uint64, error) { return f.head, nil }
func (f *fakeAnalytics) TxCount(context.Context) (uint64, error)     { return f.count, nil }
func (f *fakeAnalytics) GasPrices(context.Context) (models.GasPrices, error) {
	return f.gas, f.gasErr
}
func (f *fakeAnalytics) PriceHistory(context.Context, int) ([]models.PricePoint, error) {
	return f.history, nil
}
func (f *fakeAnalytics) RecentTransactions(context.Context, int) ([]models.Transaction, error) {
	return f.recent, nil
}
func (f *fakeAnalytics) AddressTransactions(context.Context, string, int) ([]models.Transaction, error) {
	return f.addrTxs, nil
}
func (f *fakeAnalytics) Balance(context.Context, string) (string, error) { return f.balance, nil }

type fakeMarket struct {
	price   float64
	quotes  map[string]float64
	err     error
	history []models.PricePoint
}

// SimplePrice answers quotes["id/vs"] when present, price otherwise.
func (f *fakeMarket) SimplePrice(_ context.Context, id, vs string) (float64, error) {
	if q, ok := f.quotes[id+"/"+vs]; ok {
		return q, f.err
	}
	return f.price, f.err
}

func (f *fakeMarket) MarketChart(context.Context, string, string, int) ([]models.PricePoint, error) {
	return f.history, f.err
}

type fakeBitcoin struct {
	head    uint64
	headErr error
	count   uint64
	fee     float64
	recent  []models.BitcoinTransaction
	blocks  []models.BitcoinBlock
	summary *models.BitcoinAddress
	sumErr  error
	addrTxs []models.BitcoinTransaction
}

func (f *fakeBitcoin) BitcoinLatestBlock(context.Context) (uint64, error) { return f.head, f.headErr }
func (f *fakeBitcoin) BitcoinTxCount(context.Context) (uint64, error)     { return f.count, nil }
func (f *fakeBitcoin) BitcoinAvgFee(context.Context) (float64, error)     { return f.fee, nil }
func (f *fakeBitcoin) BitcoinRecentTransactions(context.Context, int) ([]models.BitcoinTransaction, error) {
	return f.recent, nil
}
func (f *fakeBitcoin) BitcoinBlocks(context.Context, int) ([]models.BitcoinBlock, error) {
	return f.blocks, nil
}
func (f *fakeBitcoin) BitcoinAddress(context.Context, string) (*models.BitcoinAddress, error) {
	return f.summary, f.sumErr
}
func (f *fakeBitcoin) BitcoinAddressTransactions(context.Context, string, int) ([]models.BitcoinTransaction, error) {
	return f.addrTxs, nil
}
