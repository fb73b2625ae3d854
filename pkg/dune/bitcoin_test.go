package dune

import (
	"context"
	"testing"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitcoinSingleValues(t *testing.T) {
	tests := []struct {
		name    string
		queryID int
		row     map[string]any
		read    func(c *HTTPClient) (float64, error)
		want    float64
	}{
		{
			name: "latest block by height", queryID: 5134347,
			row: map[string]any{"height": 840123},
			read: func(c *HTTPClient) (float64, error) {
				n, err := c.BitcoinLatestBlock(context.Background())
				return float64(n), err
			},
			want: 840123,
		},
		{
			name: "latest block by alternate column", queryID: 5134347,
			row: map[string]any{"latest_block": "840124"},
			read: func(c *HTTPClient) (float64, error) {
				n, err := c.BitcoinLatestBlock(context.Background())
				return float64(n), err
			},
			want: 840124,
		},
		{
			name: "tx count", queryID: 5134423,
			row: map[string]any{"transactions": 412345},
			read: func(c *HTTPClient) (float64, error) {
				n, err := c.BitcoinTxCount(context.Background())
				return float64(n), err
			},
			want: 412345,
		},
		{
			name: "avg fee", queryID: 5134500,
			row: map[string]any{"avg_fee": "0.00004210"},
			read: func(c *HTTPClient) (float64, error) {
				return c.BitcoinAvgFee(context.Background())
			},
			want: 0.0000421,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newFake(t, &fakeDune{
				queryID: tt.queryID,
				states:  []string{StateCompleted},
				rows:    []map[string]any{tt.row},
			})
			got, err := tt.read(client)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestBitcoinAddress(t *testing.T) {
	f := &fakeDune{
		queryID: 5134600,
		states:  []string{StateCompleted},
		rows: []map[string]any{{
			"balance":    "68.96930678",
			"received":   "68.96930678",
			"sent":       "0.00000000",
			"tx_count":   3624,
			"first_seen": 1231006505,
			"last_seen":  "2024-05-01 12:00:00.000 UTC",
		}},
	}
	client := newFake(t, f)

	addr, err := client.BitcoinAddress(context.Background(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa")
	require.NoError(t, err)
	assert.Equal(t, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", f.params["address"])
	assert.Equal(t, "68.96930678", addr.Balance)
	assert.Equal(t, "0.00000000", addr.Sent)
	assert.Equal(t, uint64(3624), addr.TxCount)
	assert.Equal(t, 2009, addr.FirstSeen.Year())
	assert.True(t, addr.LastSeen.Equal(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)))
}

func TestBitcoinAddress_NoRows(t *testing.T) {
	client := newFake(t, &fakeDune{queryID: 5134600, states: []string{StateCompleted}})
	_, err := client.BitcoinAddress(context.Background(), "bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh")
	require.ErrorIs(t, err, ErrNoRows)
}

func TestBitcoinAddressTransactions(t *testing.T) {
	f := &fakeDune{
		queryID: 5134601,
		states:  []string{StateCompleted},
		rows: []map[string]any{
			{"txid": "aa", "block_height": 170, "block_time": 1231469665, "fee": "0.00000000", "is_input": true, "value": "10.00000000"},
			{"txid": "bb", "block_height": 100000, "block_time": 1293623863, "fee": "0.00050000", "is_input": false, "value": "5.00000000", "confirmations": 700000},
			{"block_height": 1},
		},
	}
	client := newFake(t, f)

	txs, err := client.BitcoinAddressTransactions(context.Background(), "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", 10)
	require.NoError(t, err)
	assert.Equal(t, float64(10), f.params["limit"])
	require.Len(t, txs, 2)
	assert.Equal(t, "bb", txs[0].TxID)
	assert.Equal(t, models.DirectionIn, txs[0].Direction)
	assert.Equal(t, uint64(700000), txs[0].Confirmations)
	assert.Equal(t, models.DirectionOut, txs[1].Direction)
	assert.Equal(t, 2009, txs[1].Time.Year())
}

func TestBitcoinRecentAndBlocks(t *testing.T) {
	f := &fakeDune{
		queryID: 2538412,
		states:  []string{StateCompleted},
		rows: []map[string]any{
			{"txid": "t1", "block_height": 840000, "sender": "bc1qsender", "recipient": "bc1qrecipient", "value": 0.5, "fee": "0.0001"},
			{"txid": "t2", "block_height": 840001, "value": "1.25", "fee": "0.0002"},
		},
	}
	client := newFake(t, f)
	txs, err := client.BitcoinRecentTransactions(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "t2", txs[0].TxID)
	assert.Empty(t, txs[0].Direction)

	f = &fakeDune{
		queryID: 2538415,
		states:  []string{StateCompleted},
		rows: []map[string]any{
			{"height": 839999, "hash": "00000000000000000001", "time": "2024-04-19 23:50:00.000 UTC", "tx_count": 3000, "size": 1500000},
			{"height": 840000, "hash": "00000000000000000002", "time": "2024-04-20 00:09:27.000 UTC", "tx_count": 3050, "size": 2325617},
			{"tx_count": 1},
		},
	}
	client = newFake(t, f)
	blocks, err := client.BitcoinBlocks(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, uint64(840000), blocks[0].Height)
	assert.Equal(t, uint64(2325617), blocks[0].Size)
	assert.Equal(t, 20, blocks[0].Time.Day())
}
