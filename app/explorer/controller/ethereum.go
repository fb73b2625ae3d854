package controller

import (
	"context"
	"net/http"

	"github.com/kripto-transakcije/explorer/pkg/models"
)

const (
	dashboardBlocks    = 5
	dashboardTxs       = 10
	dashboardPriceDays = 7
)

type dashboardData struct {
	Status       models.NetworkStatus
	Gas          models.GasPrices
	PriceHistory []models.PricePoint
	Blocks       []models.Block
	Transactions []models.Transaction
}

// HandleEthereum renders the network dashboard. Sections load concurrently
// and each falls back to its own placeholder.
func (c *Controller) HandleEthereum(w http.ResponseWriter, r *http.Request) {
	var data dashboardData
	reader := c.App.Reader

	loadSections(r.Context(),
		func(ctx context.Context) { data.Status = c.networkStatus(ctx) },
		func(ctx context.Context) { data.Gas = reader.GasPrices(ctx) },
		func(ctx context.Context) { data.PriceHistory = reader.PriceHistory(ctx, dashboardPriceDays) },
		func(ctx context.Context) { data.Blocks = reader.LatestBlocks(ctx, dashboardBlocks) },
		func(ctx context.Context) { data.Transactions = reader.LatestTransactions(ctx, dashboardTxs) },
	)

	c.render(w, http.StatusOK, "ethereum", page{Title: "Ethereum", Nav: "pocetna", Data: data})
}
