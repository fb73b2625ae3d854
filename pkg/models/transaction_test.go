package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortNewestFirst(t *testing.T) {
	base := time.Date(2025, 4, 29, 9, 0, 0, 0, time.UTC)
	txs := []Transaction{
		{Hash: "a", Timestamp: base, BlockNumber: 1},
		{Hash: "b", Timestamp: base.Add(time.Minute), BlockNumber: 2},
		{Hash: "c", Timestamp: base, BlockNumber: 3},
	}
	SortNewestFirst(txs)
	assert.Equal(t, []string{"b", "c", "a"}, []string{txs[0].Hash, txs[1].Hash, txs[2].Hash})
}

func TestBlockParent(t *testing.T) {
	var nilBlock *Block
	assert.False(t, nilBlock.HasParent())
	assert.False(t, (&Block{Number: 0}).HasParent())
	assert.Equal(t, uint64(41), (&Block{Number: 42}).ParentNumber())
	assert.True(t, Transaction{}.IsContractCreation())
}
