package models

import "time"

// Block is the read-only projection of a provider block response.
// Numeric fields stay as the decimal strings the provider sent.
type Block struct {
	Number           uint64        `json:"number"`
	Hash             string        `json:"hash"`
	ParentHash       string        `json:"parent_hash"`
	Timestamp        time.Time     `json:"timestamp"`
	Miner            string        `json:"miner"`
	Difficulty       string        `json:"difficulty"`
	GasLimit         string        `json:"gas_limit"`
	GasUsed          string        `json:"gas_used"`
	Nonce            string        `json:"nonce"`
	Size             uint64        `json:"size"`
	TransactionCount int           `json:"transaction_count"`
	Transactions     []Transaction `json:"transactions,omitempty"`
}

// HasParent reports whether the block links to a previous block.
func (b *Block) HasParent() bool {
	return b != nil && b.Number > 0
}

// ParentNumber is Number-1, or 0 for genesis.
func (b *Block) ParentNumber() uint64 {
	if !b.HasParent() {
		return 0
	}
	return b.Number - 1
}
