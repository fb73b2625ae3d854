package models

import "time"

// BitcoinStatus is the payload of the Bitcoin dashboard widgets.
// AvgFee is in BTC.
type BitcoinStatus struct {
	LatestBlock uint64    `json:"latest_block"`
	TxCount24h  uint64    `json:"tx_count_24h"`
	AvgFee      float64   `json:"avg_fee"`
	Price       float64   `json:"price"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Directions of a Bitcoin transaction relative to a looked-up address.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// BitcoinTransaction is one Bitcoin transaction. Value and Fee are BTC
// decimal strings. Direction is set only for address histories.
type BitcoinTransaction struct {
	TxID          string    `json:"txid"`
	BlockHeight   uint64    `json:"block_height"`
	Time          time.Time `json:"time"`
	Sender        string    `json:"sender,omitempty"`
	Recipient     string    `json:"recipient,omitempty"`
	Value         string    `json:"value"`
	Fee           string    `json:"fee"`
	Direction     string    `json:"direction,omitempty"`
	Confirmations uint64    `json:"confirmations,omitempty"`
}

// BitcoinBlock is one mined Bitcoin block.
type BitcoinBlock struct {
	Height  uint64    `json:"height"`
	Hash    string    `json:"hash"`
	Time    time.Time `json:"time"`
	TxCount uint64    `json:"tx_count"`
	Size    uint64    `json:"size"`
}

// BitcoinAddress summarises a Bitcoin address. Amounts are BTC decimal strings.
type BitcoinAddress struct {
	Address   string    `json:"address"`
	Balance   string    `json:"balance"`
	Received  string    `json:"received"`
	Sent      string    `json:"sent"`
	TxCount   uint64    `json:"tx_count"`
	FirstSeen time.Time `json:"first_seen"`
	LastSeen  time.Time `json:"last_seen"`
}
