// Package coingecko reads spot prices and price history from the CoinGecko API.
package coingecko

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/models"
	"github.com/kripto-transakcije/explorer/pkg/rest"
)

const (
	DefaultEndpoint = "https://api.coingecko.com/api/v3"

	simplePricePath = "/simple/price"
	marketChartPath = "/coins/%s/market_chart"
)

// Client captures the CoinGecko calls used by the explorer.
type Client interface {
	SimplePrice(ctx context.Context, id, vs string) (float64, error)
	MarketChart(ctx context.Context, id, vs string, days int) ([]models.PricePoint, error)
}

// HTTPClient talks to the public CoinGecko API.
type HTTPClient struct {
	rest *rest.Client
}

// Opts is the set of options for a new HTTPClient.
type Opts struct {
	Endpoints  []string
	APIKey     string
	Timeout    time.Duration
	RPS        int
	HTTPClient *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPWithOpts creates a new HTTPClient with the given options.
func NewHTTPWithOpts(o Opts) *HTTPClient {
	if len(o.Endpoints) == 0 {
		o.Endpoints = []string{DefaultEndpoint}
	}
	if o.RPS <= 0 {
		// public tier allows roughly thirty calls a minute
		o.RPS = 1
	}
	return &HTTPClient{rest: rest.New(rest.Opts{
		Endpoints:  o.Endpoints,
		Headers:    map[string]string{"x-cg-demo-api-key": o.APIKey},
		Timeout:    o.Timeout,
		RPS:        o.RPS,
		Burst:      5,
		HTTPClient: o.HTTPClient,
	})}
}

// SimplePrice returns the price of coin id in currency vs.
func (c *HTTPClient) SimplePrice(ctx context.Context, id, vs string) (float64, error) {
	q := url.Values{"ids": []string{id}, "vs_currencies": []string{vs}}
	var resp map[string]map[string]float64
	if err := c.rest.GetJSON(ctx, simplePricePath, q, &resp); err != nil {
		return 0, fmt.Errorf("price of %s: %w", id, err)
	}
	price, ok := resp[id][strings.ToLower(vs)]
	if !ok {
		return 0, fmt.Errorf("price of %s: no %s quote", id, vs)
	}
	return price, nil
}

type marketChartResp struct {
	Prices [][2]float64 `json:"prices"`
}

// MarketChart returns the price history of coin id over the last days.
func (c *HTTPClient) MarketChart(ctx context.Context, id, vs string, days int) ([]models.PricePoint, error) {
	if days <= 0 {
		days = 7
	}
	q := url.Values{"vs_currency": []string{vs}, "days": []string{strconv.Itoa(days)}}
	var resp marketChartResp
	if err := c.rest.GetJSON(ctx, fmt.Sprintf(marketChartPath, url.PathEscape(id)), q, &resp); err != nil {
		return nil, fmt.Errorf("market chart of %s: %w", id, err)
	}
	out := make([]models.PricePoint, 0, len(resp.Prices))
	for _, p := range resp.Prices {
		out = append(out, models.PricePoint{
			Time:  time.UnixMilli(int64(p[0])).UTC(),
			Price: p[1],
		})
	}
	return out, nil
}
