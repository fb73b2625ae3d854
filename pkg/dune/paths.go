package dune

const (
	DefaultEndpoint = "https://api.dune.com/api/v1"

	executePath = "/query/%d/execute"
	statusPath  = "/execution/%s/status"
	resultsPath = "/execution/%s/results"
)

// Execution states reported by Dune.
const (
	StatePending   = "QUERY_STATE_PENDING"
	StateExecuting = "QUERY_STATE_EXECUTING"
	StateCompleted = "QUERY_STATE_COMPLETED"
	StatePartial   = "QUERY_STATE_COMPLETED_PARTIAL"
	StateFailed    = "QUERY_STATE_FAILED"
	StateCancelled = "QUERY_STATE_CANCELLED"
	StateExpired   = "QUERY_STATE_EXPIRED"
)

// Queries holds the saved Dune query ids the explorer executes.
type Queries struct {
	EthPrice            int
	LatestBlock         int
	TxCount             int
	GasPrice            int
	RecentTransactions  int
	PriceHistory        int
	AddressTransactions int
	Balance             int

	BitcoinLatestBlock         int
	BitcoinTxCount             int
	BitcoinAvgFee              int
	BitcoinRecentTransactions  int
	BitcoinBlocks              int
	BitcoinAddress             int
	BitcoinAddressTransactions int
}

// DefaultQueries returns the published explorer queries.
func DefaultQueries() Queries {
	return Queries{
		EthPrice:            2360237,
		LatestBlock:         2360238,
		TxCount:             2360239,
		GasPrice:            2360240,
		RecentTransactions:  2360241,
		PriceHistory:        2360242,
		AddressTransactions: 2360243,
		Balance:             2360244,

		BitcoinLatestBlock:         5134347,
		BitcoinTxCount:             5134423,
		BitcoinAvgFee:              5134500,
		BitcoinRecentTransactions:  2538412,
		BitcoinBlocks:              2538415,
		BitcoinAddress:             5134600,
		BitcoinAddressTransactions: 5134601,
	}
}
