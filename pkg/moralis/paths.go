package moralis

// Moralis EVM API paths. Address and hash segments are appended by callers.
const (
	DefaultEndpoint = "https://deep-index.moralis.io/api/v2.2"
	DefaultChain    = "eth"

	dateToBlockPath   = "/dateToBlock"
	blockPath         = "/block/%d"
	transactionPath   = "/transaction/%s"
	verbosePath       = "/%s/verbose"
	balancePath       = "/%s/balance"
	walletStatsPath   = "/wallets/%s/stats"
	erc20BalancesPath = "/%s/erc20"
	erc20MetadataPath = "/erc20/metadata"
)
