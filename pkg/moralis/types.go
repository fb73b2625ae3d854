package moralis

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/kripto-transakcije/explorer/pkg/format"
	"github.com/kripto-transakcije/explorer/pkg/models"
)

// flexString decodes a JSON string or number into its textual form.
// Moralis is not consistent about quoting numeric fields.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

// Transaction is a Moralis transaction as returned by /transaction and /verbose.
type Transaction struct {
	Hash             string     `json:"hash"`
	Nonce            flexString `json:"nonce"`
	FromAddress      string     `json:"from_address"`
	ToAddress        string     `json:"to_address"`
	Value            flexString `json:"value"`
	Gas              flexString `json:"gas"`
	GasPrice         flexString `json:"gas_price"`
	Input            string     `json:"input"`
	ReceiptGasUsed   flexString `json:"receipt_gas_used"`
	ReceiptStatus    flexString `json:"receipt_status"`
	ReceiptContract  string     `json:"receipt_contract_address"`
	BlockTimestamp   string     `json:"block_timestamp"`
	BlockNumber      flexString `json:"block_number"`
	BlockHash        string     `json:"block_hash"`
	TransactionIndex flexString `json:"transaction_index"`
}

// ToModel converts the wire transaction into the explorer model.
func (t Transaction) ToModel() models.Transaction {
	ts, _ := format.ParseTimestamp(t.BlockTimestamp)
	return models.Transaction{
		Hash:        t.Hash,
		BlockNumber: format.ParseUint(t.BlockNumber.String()),
		BlockHash:   t.BlockHash,
		Timestamp:   ts,
		From:        t.FromAddress,
		To:          t.ToAddress,
		Value:       t.Value.String(),
		Gas:         t.Gas.String(),
		GasPrice:    t.GasPrice.String(),
		GasUsed:     t.ReceiptGasUsed.String(),
		Nonce:       t.Nonce.String(),
		Input:       t.Input,
		Status:      t.ReceiptStatus.String(),
	}
}

// Block is a Moralis block with its full transactions.
type Block struct {
	Timestamp        string        `json:"timestamp"`
	Number           flexString    `json:"number"`
	Hash             string        `json:"hash"`
	ParentHash       string        `json:"parent_hash"`
	Nonce            string        `json:"nonce"`
	Miner            string        `json:"miner"`
	Difficulty       flexString    `json:"difficulty"`
	Size             flexString    `json:"size"`
	GasLimit         flexString    `json:"gas_limit"`
	GasUsed          flexString    `json:"gas_used"`
	TransactionCount flexString    `json:"transaction_count"`
	Transactions     []Transaction `json:"transactions"`
}

// ToModel converts the wire block into the explorer model.
func (b Block) ToModel() *models.Block {
	ts, _ := format.ParseTimestamp(b.Timestamp)
	txs := make([]models.Transaction, 0, len(b.Transactions))
	for _, tx := range b.Transactions {
		m := tx.ToModel()
		if m.Timestamp.IsZero() {
			m.Timestamp = ts
		}
		txs = append(txs, m)
	}
	count := int(format.ParseUint(b.TransactionCount.String()))
	if count == 0 {
		count = len(txs)
	}
	return &models.Block{
		Number:           format.ParseUint(b.Number.String()),
		Hash:             b.Hash,
		ParentHash:       b.ParentHash,
		Timestamp:        ts,
		Miner:            b.Miner,
		Difficulty:       b.Difficulty.String(),
		GasLimit:         b.GasLimit.String(),
		GasUsed:          b.GasUsed.String(),
		Nonce:            b.Nonce,
		Size:             format.ParseUint(b.Size.String()),
		TransactionCount: count,
		Transactions:     txs,
	}
}

type dateToBlockResp struct {
	Block     flexString `json:"block"`
	Timestamp flexString `json:"timestamp"`
	Hash      string     `json:"hash"`
}

type verboseResp struct {
	Cursor   string        `json:"cursor"`
	PageSize int           `json:"page_size"`
	Result   []Transaction `json:"result"`
}

type balanceResp struct {
	Balance flexString `json:"balance"`
}

type totalResp struct {
	Total flexString `json:"total"`
}

// WalletStats is the subset of /wallets/{address}/stats the explorer shows.
type WalletStats struct {
	NFTs           flexString `json:"nfts"`
	Collections    flexString `json:"collections"`
	Transactions   totalResp  `json:"transactions"`
	NFTTransfers   totalResp  `json:"nft_transfers"`
	TokenTransfers totalResp  `json:"token_transfers"`
}

// TxCount is the total number of transactions of the wallet.
func (w WalletStats) TxCount() uint64 {
	return format.ParseUint(w.Transactions.Total.String())
}

// TokenBalance is one entry of /{address}/erc20.
type TokenBalance struct {
	TokenAddress string     `json:"token_address"`
	Name         string     `json:"name"`
	Symbol       string     `json:"symbol"`
	Logo         string     `json:"logo"`
	Thumbnail    string     `json:"thumbnail"`
	Decimals     flexString `json:"decimals"`
	Balance      flexString `json:"balance"`
	PossibleSpam bool       `json:"possible_spam"`
}

// ToModel converts the wire balance into the explorer model.
func (t TokenBalance) ToModel() models.Token {
	logo := t.Logo
	if logo == "" {
		logo = t.Thumbnail
	}
	return models.Token{
		Symbol:          t.Symbol,
		Name:            t.Name,
		Balance:         t.Balance.String(),
		Decimals:        int(format.ParseUint(t.Decimals.String())),
		ContractAddress: t.TokenAddress,
		Logo:            logo,
	}
}

// TokenMetadata is one entry of /erc20/metadata.
type TokenMetadata struct {
	Address  string     `json:"address"`
	Name     string     `json:"name"`
	Symbol   string     `json:"symbol"`
	Decimals flexString `json:"decimals"`
	Logo     string     `json:"logo"`
}

// ToModel converts the metadata into a balance-less token.
func (t TokenMetadata) ToModel() models.Token {
	return models.Token{
		Symbol:          t.Symbol,
		Name:            t.Name,
		Decimals:        int(format.ParseUint(t.Decimals.String())),
		ContractAddress: strings.ToLower(t.Address),
		Logo:            t.Logo,
	}
}
