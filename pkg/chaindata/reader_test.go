package chaindata

import (
	"context"
	"testing"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/moralis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const addr = "0x742d35cc6634c0532925a3b844bc454e4438f44e"

func newReader(t *testing.T, o Opts) *Reader {
	t.Helper()
	o.Logger = zaptest.NewLogger(t)
	r := New(o)
	t.Cleanup(r.Close)
	return r
}

func TestLatestBlocks(t *testing.T) {
	ledger := &fakeLedger{head: 100, blocks: map[uint64]*models.Block{}}
	for n := uint64(90); n <= 100; n++ {
		ledger.blocks[n] = &models.Block{Number: n, TransactionCount: int(n), Transactions: []models.Transaction{{Hash: "0x1"}}}
	}
	// one block in the window is missing
	delete(ledger.blocks, 98)

	r := newReader(t, Opts{Ledger: ledger})
	blocks := r.LatestBlocks(context.Background(), 5)

	require.Len(t, blocks, 4)
	numbers := make([]uint64, 0, len(blocks))
	for _, b := range blocks {
		numbers = append(numbers, b.Number)
		assert.Nil(t, b.Transactions)
	}
	assert.Equal(t, []uint64{100, 99, 97, 96}, numbers)
}

func TestLatestBlocks_HeadUnavailable(t *testing.T) {
	r := newReader(t, Opts{Ledger: &fakeLedger{headErr: errBoom}})
	blocks := r.LatestBlocks(context.Background(), 15)
	require.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestLatestBlocks_ShortChain(t *testing.T) {
	ledger := &fakeLedger{head: 1, blocks: map[uint64]*models.Block{
		0: {Number: 0},
		1: {Number: 1},
	}}
	r := newReader(t, Opts{Ledger: ledger})
	assert.Len(t, r.LatestBlocks(context.Background(), 15), 2)
}

func TestBlockAndTransactionMissing(t *testing.T) {
	r := newReader(t, Opts{Ledger: &fakeLedger{}})
	assert.Nil(t, r.Block(context.Background(), 7))
	assert.Nil(t, r.Transaction(context.Background(), "0xabc"))

	r = newReader(t, Opts{})
	assert.Nil(t, r.Block(context.Background(), 7))
	assert.Zero(t, r.LatestBlockNumber(context.Background()))
}

func TestFallsBackToAnalyticsWithoutMoralisKey(t *testing.T) {
	ledger := &fakeLedger{headErr: moralis.ErrNoAPIKey, histErr: moralis.ErrNoAPIKey, balErr: moralis.ErrNoAPIKey}
	analytics := &fakeAnalytics{
		head:    19000000,
		balance: "1000000000000000000",
		addrTxs: []models.Transaction{{Hash: "0xa", Timestamp: time.Unix(10, 0)}, {Hash: "0xb", Timestamp: time.Unix(20, 0)}},
	}
	r := newReader(t, Opts{Ledger: ledger, Analytics: analytics})
	ctx := context.Background()

	assert.Equal(t, uint64(19000000), r.LatestBlockNumber(ctx))

	txs := r.AddressTransactions(ctx, addr, 20)
	require.Len(t, txs, 2)
	assert.Equal(t, "0xb", txs[0].Hash)

	status := r.AddressStatus(ctx, addr)
	require.NotNil(t, status)
	assert.Equal(t, "1000000000000000000", status.Balance)
}

func TestNoFallbackOnOtherLedgerErrors(t *testing.T) {
	ledger := &fakeLedger{headErr: errBoom, balErr: errBoom}
	r := newReader(t, Opts{Ledger: ledger, Analytics: &fakeAnalytics{head: 5, balance: "1"}})
	assert.Zero(t, r.LatestBlockNumber(context.Background()))
	assert.Nil(t, r.AddressStatus(context.Background(), addr))
}

func TestAddressStatus_CountFailureKeepsBalance(t *testing.T) {
	r := newReader(t, Opts{Ledger: &fakeLedger{balance: "42", countErr: errBoom}})
	status := r.AddressStatus(context.Background(), addr)
	require.NotNil(t, status)
	assert.Equal(t, "42", status.Balance)
	assert.Zero(t, status.TxCount)
}

func TestEthPriceSources(t *testing.T) {
	ctx := context.Background()
	market := &fakeMarket{price: 3120.5, history: []models.PricePoint{{Price: 1}}}
	analytics := &fakeAnalytics{price: 3000, history: []models.PricePoint{{Price: 2}, {Price: 3}}}

	tests := []struct {
		name    string
		source  string
		price   float64
		history int
	}{
		{name: "default uses coingecko", source: "", price: 3120.5, history: 1},
		{name: "coingecko", source: PriceSourceCoinGecko, price: 3120.5, history: 1},
		{name: "dune", source: PriceSourceDune, price: 3000, history: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReader(t, Opts{Market: market, Analytics: analytics, PriceSource: tt.source})
			assert.Equal(t, tt.price, r.EthPrice(ctx))
			assert.Len(t, r.PriceHistory(ctx, 7), tt.history)
		})
	}

	r := newReader(t, Opts{Market: &fakeMarket{err: errBoom}})
	assert.Zero(t, r.EthPrice(ctx))
	assert.Empty(t, r.PriceHistory(ctx, 7))
}

func TestNetworkStatus(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	r := newReader(t, Opts{
		Ledger:    &fakeLedger{head: 19876543},
		Analytics: &fakeAnalytics{count: 2_400_000_000, gas: models.GasPrices{Safe: 12, Propose: 17, Fast: 22}},
		Market:    &fakeMarket{err: errBoom},
	})
	r.now = func() time.Time { return now }

	status := r.NetworkStatus(context.Background())
	assert.Equal(t, models.NetworkStatus{
		Chain:       "eth",
		LatestBlock: 19876543,
		GasPrice:    12,
		EthPrice:    0,
		TxCount:     2_400_000_000,
		UpdatedAt:   now,
	}, status)
}

func TestLatestTransactions(t *testing.T) {
	analytics := &fakeAnalytics{recent: []models.Transaction{
		{Hash: "0x1", Timestamp: time.Unix(1, 0)},
		{Hash: "0x3", Timestamp: time.Unix(3, 0)},
		{Hash: "0x2", Timestamp: time.Unix(2, 0)},
	}}
	r := newReader(t, Opts{Analytics: analytics})
	txs := r.LatestTransactions(context.Background(), 2)
	require.Len(t, txs, 2)
	assert.Equal(t, "0x3", txs[0].Hash)

	assert.Empty(t, newReader(t, Opts{}).LatestTransactions(context.Background(), 20))
}

func TestAddressStats(t *testing.T) {
	txs := []models.Transaction{
		{From: addr, To: "0xb", Value: "1000000000000000000", Gas: "21000", GasUsed: "21000", GasPrice: "20000000000"},
		{From: "0xB", To: "0x742D35CC6634C0532925A3B844BC454E4438F44E", Value: "500000000000000000"},
		{From: addr, To: "0xc", Value: "0", Gas: "50000", GasPrice: "10000000000"},
		{From: "0xd", To: "0xe", Value: "7"},
	}

	stats := AddressStats(txs, addr)
	assert.Equal(t, 2, stats.Sent)
	assert.Equal(t, 1, stats.Received)
	assert.Equal(t, 4, stats.Window)
	assert.InDelta(t, 1.0, stats.SentValue, 1e-9)
	assert.InDelta(t, 0.5, stats.ReceivedValue, 1e-9)
	assert.InDelta(t, 35500, stats.AvgGas, 1e-9)
	assert.InDelta(t, 0.00092, stats.TotalFees, 1e-12)

	empty := AddressStats(nil, addr)
	assert.Zero(t, empty.AvgGas)
	assert.Zero(t, empty.Sent)
}

func TestAddressOverview(t *testing.T) {
	history := make([]models.Transaction, 0, 30)
	for i := 0; i < 30; i++ {
		history = append(history, models.Transaction{
			Hash:      "0x" + string(rune('a'+i%26)),
			From:      addr,
			Value:     "1000000000000000000",
			Timestamp: time.Unix(int64(1000-i), 0),
		})
	}
	ledger := &fakeLedger{balance: "2000000000000000000", count: 30, history: history, tokens: []models.Token{{Symbol: "USDT"}}}
	r := newReader(t, Opts{Ledger: ledger, Market: &fakeMarket{price: 2000}})

	o := r.AddressOverview(context.Background(), addr, 20, 25)
	require.True(t, o.Found())
	assert.Len(t, o.Transactions, 20)
	assert.Equal(t, 25, o.Stats.Window)
	assert.Equal(t, 25, o.Stats.Sent)
	assert.Len(t, o.Tokens, 1)
	assert.InDelta(t, 4000, o.BalanceUSD(), 1e-9)

	missing := newReader(t, Opts{Ledger: &fakeLedger{balErr: moralis.ErrNotFound}}).AddressOverview(context.Background(), addr, 20, 20)
	assert.False(t, missing.Found())
	assert.Zero(t, missing.BalanceUSD())
}

func TestTokenMetadata(t *testing.T) {
	r := newReader(t, Opts{Ledger: &fakeLedger{meta: []models.Token{{Symbol: "PEPE", Decimals: 18}}}})
	tok := r.TokenMetadata(context.Background(), "0x6982508145454ce325ddbe47a25d4ec3d2311933")
	require.NotNil(t, tok)
	assert.Equal(t, "PEPE", tok.Symbol)

	assert.Nil(t, newReader(t, Opts{Ledger: &fakeLedger{}}).TokenMetadata(context.Background(), "0x1"))
}
