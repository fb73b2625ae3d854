package models

import (
	"sort"
	"time"
)

// Receipt status values as reported by providers.
const (
	TxStatusSuccess = "1"
	TxStatusFailed  = "0"
)

// Transaction is the read-only projection of a provider transaction.
// To is empty for contract creations.
type Transaction struct {
	Hash        string    `json:"hash"`
	BlockNumber uint64    `json:"block_number"`
	BlockHash   string    `json:"block_hash,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Value       string    `json:"value"`
	Gas         string    `json:"gas"`
	GasPrice    string    `json:"gas_price"`
	GasUsed     string    `json:"gas_used"`
	Nonce       string    `json:"nonce"`
	Input       string    `json:"input,omitempty"`
	Status      string    `json:"status"`
}

// IsContractCreation reports whether the transaction has no recipient.
func (t Transaction) IsContractCreation() bool {
	return t.To == ""
}

// SortNewestFirst orders by timestamp, then block number, descending.
func SortNewestFirst(txs []Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if !txs[i].Timestamp.Equal(txs[j].Timestamp) {
			return txs[i].Timestamp.After(txs[j].Timestamp)
		}
		return txs[i].BlockNumber > txs[j].BlockNumber
	})
}
