package models

// AddressStatus holds the balance (wei) and transaction count of an account.
type AddressStatus struct {
	Address string `json:"address"`
	Balance string `json:"balance"`
	TxCount uint64 `json:"tx_count"`
}

// AddressStats summarises a window of an address's transactions.
// Values and fees are in ETH, AvgGas in gas units of sent transactions.
type AddressStats struct {
	Sent          int     `json:"sent"`
	Received      int     `json:"received"`
	SentValue     float64 `json:"sent_value"`
	ReceivedValue float64 `json:"received_value"`
	AvgGas        float64 `json:"avg_gas"`
	TotalFees     float64 `json:"total_fees"`
	Window        int     `json:"window"`
}
