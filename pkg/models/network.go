package models

import "time"

// GasPrices are Gwei quotes for three confirmation speeds.
type GasPrices struct {
	Safe    float64 `json:"safe"`
	Propose float64 `json:"propose"`
	Fast    float64 `json:"fast"`
}

// NetworkStatus is the payload of the status widget.
type NetworkStatus struct {
	Chain       string    `json:"chain"`
	LatestBlock uint64    `json:"latest_block"`
	GasPrice    float64   `json:"gas_price"`
	EthPrice    float64   `json:"eth_price"`
	TxCount     uint64    `json:"tx_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PricePoint is one sample of a price history.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Price float64   `json:"price"`
}
