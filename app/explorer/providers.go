package explorer

import (
	"time"

	"github.com/kripto-transakcije/explorer/pkg/coingecko"
	"github.com/kripto-transakcije/explorer/pkg/dune"
	"github.com/kripto-transakcije/explorer/pkg/moralis"
	"github.com/kripto-transakcije/explorer/pkg/utils"
	"go.uber.org/zap"
)

// NewMoralis builds the Moralis client from MORALIS_* variables.
func NewMoralis() *moralis.HTTPClient {
	return moralis.NewHTTPWithOpts(moralis.Opts{
		Endpoints: utils.EnvList("MORALIS_ENDPOINTS", []string{moralis.DefaultEndpoint}),
		APIKey:    utils.Env("MORALIS_API_KEY", ""),
		Chain:     utils.Env("MORALIS_CHAIN", moralis.DefaultChain),
		Timeout:   utils.EnvDuration("MORALIS_TIMEOUT", 15*time.Second),
		RPS:       utils.EnvInt("MORALIS_RPS", 20),
	})
}

// NewDune builds the Dune client from DUNE_* variables.
func NewDune(logger *zap.Logger) *dune.HTTPClient {
	q := dune.DefaultQueries()
	return dune.NewHTTPWithOpts(dune.Opts{
		Endpoint:     utils.Env("DUNE_ENDPOINT", dune.DefaultEndpoint),
		APIKey:       utils.Env("DUNE_API_KEY", ""),
		PollAttempts: utils.EnvInt("DUNE_POLL_ATTEMPTS", 5),
		PollInterval: utils.EnvDuration("DUNE_POLL_INTERVAL", 2*time.Second),
		Timeout:      utils.EnvDuration("DUNE_TIMEOUT", 30*time.Second),
		Queries: dune.Queries{
			EthPrice:            utils.EnvInt("DUNE_QUERY_ETH_PRICE", q.EthPrice),
			LatestBlock:         utils.EnvInt("DUNE_QUERY_LATEST_BLOCK", q.LatestBlock),
			TxCount:             utils.EnvInt("DUNE_QUERY_TX_COUNT", q.TxCount),
			GasPrice:            utils.EnvInt("DUNE_QUERY_GAS_PRICE", q.GasPrice),
			RecentTransactions:  utils.EnvInt("DUNE_QUERY_RECENT_TXS", q.RecentTransactions),
			PriceHistory:        utils.EnvInt("DUNE_QUERY_PRICE_HISTORY", q.PriceHistory),
			AddressTransactions: utils.EnvInt("DUNE_QUERY_ADDRESS_TXS", q.AddressTransactions),
			Balance:             utils.EnvInt("DUNE_QUERY_BALANCE", q.Balance),

			BitcoinLatestBlock:         utils.EnvInt("DUNE_QUERY_BTC_LATEST_BLOCK", q.BitcoinLatestBlock),
			BitcoinTxCount:             utils.EnvInt("DUNE_QUERY_BTC_TX_COUNT", q.BitcoinTxCount),
			BitcoinAvgFee:              utils.EnvInt("DUNE_QUERY_BTC_AVG_FEE", q.BitcoinAvgFee),
			BitcoinRecentTransactions:  utils.EnvInt("DUNE_QUERY_BTC_RECENT_TXS", q.BitcoinRecentTransactions),
			BitcoinBlocks:              utils.EnvInt("DUNE_QUERY_BTC_BLOCKS", q.BitcoinBlocks),
			BitcoinAddress:             utils.EnvInt("DUNE_QUERY_BTC_ADDRESS", q.BitcoinAddress),
			BitcoinAddressTransactions: utils.EnvInt("DUNE_QUERY_BTC_ADDRESS_TXS", q.BitcoinAddressTransactions),
		},
		Logger: logger.Named("dune"),
	})
}

// NewCoinGecko builds the CoinGecko client from COINGECKO_* variables.
func NewCoinGecko() *coingecko.HTTPClient {
	return coingecko.NewHTTPWithOpts(coingecko.Opts{
		Endpoints: utils.EnvList("COINGECKO_ENDPOINT", []string{coingecko.DefaultEndpoint}),
		APIKey:    utils.Env("COINGECKO_API_KEY", ""),
		Timeout:   utils.EnvDuration("COINGECKO_TIMEOUT", 10*time.Second),
	})
}
