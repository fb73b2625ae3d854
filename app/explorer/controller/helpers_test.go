package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kripto-transakcije/explorer/app/explorer/types"
	"github.com/kripto-transakcije/explorer/pkg/catalog"
	"github.com/kripto-transakcije/explorer/pkg/chaindata"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/moralis"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const (
	testAddr = "0x742d35cc6634c0532925a3b844bc454e4438f44e"
	testHash = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a7135cb1"
)

var testTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type stubLedger struct {
	head    uint64
	blocks  map[uint64]*models.Block
	txs     map[string]*models.Transaction
	history []models.Transaction
	balance string
	count   uint64
	tokens  []models.Token
	meta    []models.Token
}

func (s *stubLedger) LatestBlockNumber(context.Context) (uint64, error) {
	if s.head == 0 {
		return 0, moralis.ErrNotFound
	}
	return s.head, nil
}

func (s *stubLedger) BlockByNumber(_ context.Context, n uint64) (*models.Block, error) {
	b, ok := s.blocks[n]
	if !ok {
		return nil, moralis.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (s *stubLedger) Transaction(_ context.Context, hash string) (*models.Transaction, error) {
	tx, ok := s.txs[hash]
	if !ok {
		return nil, moralis.ErrNotFound
	}
	return tx, nil
}

func (s *stubLedger) AddressTransactions(context.Context, string, int) ([]models.Transaction, error) {
	return s.history, nil
}

func (s *stubLedger) Balance(context.Context, string) (string, error) {
	if s.balance == "" {
		return "", moralis.ErrNotFound
	}
	return s.balance, nil
}

func (s *stubLedger) TransactionCount(context.Context, string) (uint64, error) {
	return s.count, nil
}

func (s *stubLedger) TokenBalances(context.Context, string) ([]models.Token, error) {
	return s.tokens, nil
}

func (s *stubLedger) TokenMetadata(context.Context, ...string) ([]models.Token, error) {
	return s.meta, nil
}

type stubAnalytics struct {
	recent []models.Transaction
	gas    models.GasPrices
	count  uint64
}

func (s *stubAnalytics) EthPrice(context.Context) (float64, error)   { return 0, moralis.ErrNotFound }
func (s *stubAnalytics) LatestBlock(context.Context) (uint64, error) { return 0, moralis.ErrNotFound }
func (s *stubAnalytics) TxCount(context.Context) (uint64, error)     { return s.count, nil }
func (s *stubAnalytics) GasPrices(context.Context) (models.GasPrices, error) {
	return s.gas, nil
}
func (s *stubAnalytics) PriceHistory(context.Context, int) ([]models.PricePoint, error) {
	return nil, moralis.ErrNotFound
}
func (s *stubAnalytics) RecentTransactions(context.Context, int) ([]models.Transaction, error) {
	return s.recent, nil
}
func (s *stubAnalytics) AddressTransactions(context.Context, string, int) ([]models.Transaction, error) {
	return nil, moralis.ErrNotFound
}
func (s *stubAnalytics) Balance(context.Context, string) (string, error) {
	return "", moralis.ErrNotFound
}

type stubMarket struct {
	price   float64
	quotes  map[string]float64
	history []models.PricePoint
}

func (s *stubMarket) SimplePrice(_ context.Context, id, vs string) (float64, error) {
	if q, ok := s.quotes[id+"/"+vs]; ok {
		return q, nil
	}
	return s.price, nil
}

func (s *stubMarket) MarketChart(context.Context, string, string, int) ([]models.PricePoint, error) {
	return s.history, nil
}

// fixture is a small, consistent chain used by the page tests.
func fixture() (*stubLedger, *stubAnalytics, *stubMarket) {
	tx := &models.Transaction{
		Hash:        testHash,
		BlockNumber: 19000000,
		Timestamp:   testTime,
		From:        testAddr,
		To:          "0xdac17f958d2ee523a2206206994597c13d831ec7",
		Value:       "1500000000000000000",
		Gas:         "21000",
		GasUsed:     "21000",
		GasPrice:    "20000000000",
		Status:      models.TxStatusSuccess,
	}
	creation := models.Transaction{
		Hash:      "0x" + "ab" + testHash[4:],
		Timestamp: testTime.Add(-time.Minute),
		From:      testAddr,
		Value:     "0",
		Gas:       "500000",
		GasPrice:  "10000000000",
		Status:    models.TxStatusFailed,
	}
	ledger := &stubLedger{
		head: 19000000,
		blocks: map[uint64]*models.Block{
			19000000: {
				Number:           19000000,
				Hash:             "0x" + "cd" + testHash[4:],
				ParentHash:       "0x" + "ef" + testHash[4:],
				Timestamp:        testTime,
				Miner:            "0x95222290dd7278aa3ddd389cc1e1d165cc4bafe5",
				GasLimit:         "30000000",
				GasUsed:          "12000000",
				Size:             2048,
				TransactionCount: 2,
				Transactions:     []models.Transaction{*tx, creation},
			},
			18999999: {Number: 18999999, Timestamp: testTime.Add(-12 * time.Second)},
		},
		txs:     map[string]*models.Transaction{testHash: tx, creation.Hash: &creation},
		history: []models.Transaction{*tx, creation},
		balance: "1500000000000000000",
		count:   42,
		tokens:  []models.Token{{Symbol: "USDT", Name: "Tether USD", Balance: "2500000", Decimals: 6, ContractAddress: "0xdac17f958d2ee523a2206206994597c13d831ec7"}},
	}
	analytics := &stubAnalytics{
		recent: []models.Transaction{*tx},
		gas:    models.GasPrices{Safe: 12, Propose: 17, Fast: 22},
		count:  2400000000,
	}
	market := &stubMarket{price: 3000, quotes: map[string]float64{"ethereum/btc": 0.05, "bitcoin/usd": 64000}, history: []models.PricePoint{{Time: testTime, Price: 2900}, {Time: testTime.Add(24 * time.Hour), Price: 3000}}}
	return ledger, analytics, market
}

func newTestApp(t *testing.T, ledger moralis.Client, analytics chaindata.Analytics, market *stubMarket) *types.App {
	t.Helper()
	return newAppWith(t, chaindata.Opts{Ledger: ledger, Analytics: analytics}, market)
}

func newBitcoinTestApp(t *testing.T, btc chaindata.BitcoinAnalytics, market *stubMarket) *types.App {
	t.Helper()
	return newAppWith(t, chaindata.Opts{Bitcoin: btc}, market)
}

func newAppWith(t *testing.T, opts chaindata.Opts, market *stubMarket) *types.App {
	t.Helper()
	logger := zaptest.NewLogger(t)
	opts.Logger = logger
	if market != nil {
		opts.Market = market
	}
	reader := chaindata.New(opts)
	t.Cleanup(reader.Close)

	return &types.App{
		Reader:  reader,
		Catalog: catalog.Default(),
		Config: types.Config{
			BlocksPageSize:     15,
			TxsPageSize:        20,
			AddressTxsPageSize: 20,
			AddressStatsWindow: 100,
		},
		Logger: logger,
	}
}

func newTestHandler(t *testing.T, app *types.App) http.Handler {
	t.Helper()
	router, err := NewController(app).NewRouter()
	require.NoError(t, err)
	return WithCORS(router)
}

func get(t *testing.T, h http.Handler, target string, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
