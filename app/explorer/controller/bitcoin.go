package controller

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/kripto-transakcije/explorer/pkg/chaindata"
	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/search"
)

const (
	bitcoinBlocks     = 5
	bitcoinTxs        = 10
	bitcoinAddressTxs = 20
)

type bitcoinData struct {
	Status       models.BitcoinStatus
	PriceHistory []models.PricePoint
	Blocks       []models.BitcoinBlock
	Transactions []models.BitcoinTransaction
}

// HandleBitcoin renders the Bitcoin dashboard.
func (c *Controller) HandleBitcoin(w http.ResponseWriter, r *http.Request) {
	var data bitcoinData
	reader := c.App.Reader

	loadSections(r.Context(),
		func(ctx context.Context) { data.Status = reader.BitcoinStatus(ctx) },
		func(ctx context.Context) { data.PriceHistory = reader.BitcoinPriceHistory(ctx, dashboardPriceDays) },
		func(ctx context.Context) { data.Blocks = reader.BitcoinLatestBlocks(ctx, bitcoinBlocks) },
		func(ctx context.Context) { data.Transactions = reader.BitcoinLatestTransactions(ctx, bitcoinTxs) },
	)

	c.render(w, http.StatusOK, "bitcoin", page{Title: "Bitcoin", Nav: "bitcoin", Data: data})
}

// HandleBitcoinSearch sends a Bitcoin address to its page. Blank input goes
// back to the dashboard.
func (c *Controller) HandleBitcoinSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("upit"))
	switch {
	case query == "":
		http.Redirect(w, r, "/bitcoin", http.StatusSeeOther)
	case search.IsBitcoinAddress(query):
		http.Redirect(w, r, search.BitcoinAddressPath(query), http.StatusSeeOther)
	default:
		c.notFound(w, "Neispravna Bitcoin adresa", query)
	}
}

type bitcoinAddressData struct {
	Address  string
	Overview chaindata.BitcoinAddressOverview
}

func (c *Controller) HandleBitcoinAddress(w http.ResponseWriter, r *http.Request) {
	address := mux.Vars(r)["adresa"]
	if !search.IsBitcoinAddress(address) {
		c.notFound(w, "Bitcoin adresa nije pronađena", address)
		return
	}

	overview := c.App.Reader.BitcoinAddressOverview(r.Context(), address, bitcoinAddressTxs)
	if !overview.Found() {
		c.notFound(w, "Bitcoin adresa nije pronađena", address)
		return
	}

	c.render(w, http.StatusOK, "bitcoin_address", page{
		Title: "Bitcoin adresa " + address,
		Nav:   "bitcoin",
		Data:  bitcoinAddressData{Address: address, Overview: overview},
	})
}

// HandleBtcAPI answers ?action= queries for the Bitcoin widgets in the same
// envelope as /api/eth.
func (c *Controller) HandleBtcAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	qs := r.URL.Query()
	reader := c.App.Reader
	address := qs.Get("address")

	needsAddress := func() bool {
		if search.IsBitcoinAddress(address) {
			return true
		}
		writeJSON(w, http.StatusBadRequest, notOK("Neispravna adresa"))
		return false
	}

	switch action := qs.Get("action"); action {
	case "price":
		writeJSON(w, http.StatusOK, ok(strconv.FormatFloat(reader.BitcoinPrice(ctx), 'f', -1, 64)))

	case "pricehistory":
		days := boundedInt(qs.Get("days"), defaultDays, maxDays)
		points := reader.BitcoinPriceHistory(ctx, days)
		out := make([]pricePointResult, 0, len(points))
		for _, p := range points {
			out = append(out, pricePointResult{Price: p.Price, Date: p.Time.UTC().Format(time.RFC3339)})
		}
		writeJSON(w, http.StatusOK, ok(out))

	case "stats":
		writeJSON(w, http.StatusOK, ok(reader.BitcoinStatus(ctx)))

	case "blockcount":
		writeJSON(w, http.StatusOK, ok(strconv.FormatUint(reader.BitcoinLatestBlock(ctx), 10)))

	case "txcount":
		writeJSON(w, http.StatusOK, ok(strconv.FormatUint(reader.BitcoinTxCount(ctx), 10)))

	case "feerate":
		writeJSON(w, http.StatusOK, ok(strconv.FormatFloat(reader.BitcoinAvgFee(ctx), 'f', -1, 64)))

	case "blocks":
		limit := boundedInt(qs.Get("limit"), bitcoinBlocks, maxLimit)
		writeJSON(w, http.StatusOK, ok(reader.BitcoinLatestBlocks(ctx, limit)))

	case "txlist":
		limit := boundedInt(qs.Get("limit"), defaultLimit, maxLimit)
		if address == "" {
			writeJSON(w, http.StatusOK, ok(reader.BitcoinLatestTransactions(ctx, limit)))
			return
		}
		if needsAddress() {
			writeJSON(w, http.StatusOK, ok(reader.BitcoinAddressTransactions(ctx, address, limit)))
		}

	case "address":
		if !needsAddress() {
			return
		}
		overview := reader.BitcoinAddressOverview(ctx, address, 1)
		if !overview.Found() {
			writeJSON(w, http.StatusNotFound, notOK("Adresa nije pronađena"))
			return
		}
		writeJSON(w, http.StatusOK, ok(overview.Address))

	default:
		writeJSON(w, http.StatusNotFound, notOK("Nepodržana akcija: "+action))
	}
}
