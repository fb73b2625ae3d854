package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/search"
)

type transactionsData struct {
	Transactions []models.Transaction
}

func (c *Controller) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	txs := c.App.Reader.LatestTransactions(r.Context(), c.App.Config.TxsPageSize)
	c.render(w, http.StatusOK, "transactions", page{
		Title: "Transakcije",
		Nav:   "transakcije",
		Data:  transactionsData{Transactions: txs},
	})
}

type transactionData struct {
	Tx *models.Transaction
}

func (c *Controller) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	hash := mux.Vars(r)["hash"]
	if !search.IsTxHash(hash) {
		c.notFound(w, "Transakcija nije pronađena", hash)
		return
	}

	tx := c.App.Reader.Transaction(r.Context(), hash)
	if tx == nil {
		c.notFound(w, "Transakcija nije pronađena", hash)
		return
	}

	c.render(w, http.StatusOK, "transaction", page{
		Title: "Transakcija " + hash,
		Nav:   "transakcije",
		Data:  transactionData{Tx: tx},
	})
}
