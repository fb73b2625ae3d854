package controller

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/search"
)

const (
	defaultLimit = 20
	maxLimit     = 100
	defaultDays  = 7
	maxDays      = 365
)

// HandleStatus serves the status widget payload.
func (c *Controller) HandleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, c.networkStatus(r.Context()))
}

// envelope is the Etherscan-style response used by /api/eth.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Result  any    `json:"result"`
}

func ok(result any) envelope {
	return envelope{Status: "1", Message: "OK", Result: result}
}

func notOK(reason string) envelope {
	return envelope{Status: "0", Message: "NOTOK", Result: reason}
}

type ethPriceResult struct {
	EthBTC          string `json:"ethbtc"`
	EthBTCTimestamp string `json:"ethbtc_timestamp"`
	EthUSD          string `json:"ethusd"`
	EthUSDTimestamp string `json:"ethusd_timestamp"`
}

type pricePointResult struct {
	Price float64 `json:"cijena"`
	Date  string  `json:"datum"`
}

type gasResult struct {
	SafeGasPrice    string `json:"SafeGasPrice"`
	ProposeGasPrice string `json:"ProposeGasPrice"`
	FastGasPrice    string `json:"FastGasPrice"`
}

// HandleEthAPI answers ?action= queries in the envelope the browser widgets read.
// Upstream failures still answer OK with an empty or zero result.
func (c *Controller) HandleEthAPI(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	qs := r.URL.Query()
	reader := c.App.Reader
	address := qs.Get("address")

	needsAddress := func() bool {
		if search.IsAddress(address) {
			return true
		}
		writeJSON(w, http.StatusBadRequest, notOK("Neispravna adresa"))
		return false
	}

	switch action := qs.Get("action"); action {
	case "ethprice":
		var usd, btc float64
		loadSections(ctx,
			func(ctx context.Context) { usd = reader.EthPrice(ctx) },
			func(ctx context.Context) { btc = reader.EthBtcPrice(ctx) },
		)
		now := time.Now().UTC().Format(time.RFC3339)
		writeJSON(w, http.StatusOK, ok(ethPriceResult{
			EthBTC:          strconv.FormatFloat(btc, 'f', -1, 64),
			EthBTCTimestamp: now,
			EthUSD:          strconv.FormatFloat(usd, 'f', -1, 64),
			EthUSDTimestamp: now,
		}))

	case "pricehistory":
		days := boundedInt(qs.Get("days"), defaultDays, maxDays)
		points := reader.PriceHistory(ctx, days)
		out := make([]pricePointResult, 0, len(points))
		for _, p := range points {
			out = append(out, pricePointResult{Price: p.Price, Date: p.Time.UTC().Format(time.RFC3339)})
		}
		writeJSON(w, http.StatusOK, ok(out))

	case "latestblock", "blocks":
		writeJSON(w, http.StatusOK, ok(strconv.FormatUint(reader.LatestBlockNumber(ctx), 10)))

	case "txcount":
		writeJSON(w, http.StatusOK, ok(strconv.FormatUint(reader.TotalTxCount(ctx), 10)))

	case "gastracker":
		gas := reader.GasPrices(ctx)
		writeJSON(w, http.StatusOK, ok(gasResult{
			SafeGasPrice:    strconv.FormatFloat(gas.Safe, 'f', -1, 64),
			ProposeGasPrice: strconv.FormatFloat(gas.Propose, 'f', -1, 64),
			FastGasPrice:    strconv.FormatFloat(gas.Fast, 'f', -1, 64),
		}))

	case "txlist":
		limit := boundedInt(qs.Get("limit"), defaultLimit, maxLimit)
		if address == "" {
			writeJSON(w, http.StatusOK, ok(reader.LatestTransactions(ctx, limit)))
			return
		}
		if needsAddress() {
			writeJSON(w, http.StatusOK, ok(reader.AddressTransactions(ctx, address, limit)))
		}

	case "balance":
		if !needsAddress() {
			return
		}
		balance := "0"
		if status := reader.AddressStatus(ctx, address); status != nil {
			balance = status.Balance
		}
		writeJSON(w, http.StatusOK, ok(balance))

	case "tokens":
		if needsAddress() {
			writeJSON(w, http.StatusOK, ok(reader.TokenBalances(ctx, address)))
		}

	default:
		writeJSON(w, http.StatusNotFound, notOK("Nepodržana akcija: "+action))
	}
}

// boundedInt parses a positive integer, falling back to def and capping at max.
func boundedInt(raw string, def, max int) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}
