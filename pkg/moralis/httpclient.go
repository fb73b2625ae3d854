package moralis

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/rest"
)

// ErrNotFound is returned when Moralis answers 404 for a block, transaction, or address.
var ErrNotFound = errors.New("moralis: not found")

// ErrNoAPIKey is returned before any request when no key is configured.
var ErrNoAPIKey = errors.New("moralis: api key not configured")

// HTTPClient talks to the Moralis EVM API.
type HTTPClient struct {
	rest   *rest.Client
	chain  string
	hasKey bool
}

// Opts is the set of options for a new HTTPClient.
type Opts struct {
	Endpoints  []string
	APIKey     string
	Chain      string
	Timeout    time.Duration
	RPS        int
	HTTPClient *http.Client
}

// NewHTTPWithOpts creates a new HTTPClient with the given options.
func NewHTTPWithOpts(o Opts) *HTTPClient {
	if len(o.Endpoints) == 0 {
		o.Endpoints = []string{DefaultEndpoint}
	}
	if o.Chain == "" {
		o.Chain = DefaultChain
	}
	return &HTTPClient{
		rest: rest.New(rest.Opts{
			Endpoints:  o.Endpoints,
			Headers:    map[string]string{"X-API-Key": o.APIKey},
			Timeout:    o.Timeout,
			RPS:        o.RPS,
			HTTPClient: o.HTTPClient,
		}),
		chain:  o.Chain,
		hasKey: o.APIKey != "",
	}
}

// Configured reports whether an API key was supplied.
func (c *HTTPClient) Configured() bool {
	return c.hasKey
}

func (c *HTTPClient) params(extra url.Values) url.Values {
	q := url.Values{"chain": []string{c.chain}}
	for k, v := range extra {
		q[k] = v
	}
	return q
}

func (c *HTTPClient) get(ctx context.Context, path string, extra url.Values, out any) error {
	if !c.hasKey {
		return ErrNoAPIKey
	}
	err := c.rest.GetJSON(ctx, path, c.params(extra), out)
	if rest.IsStatus(err, http.StatusNotFound) {
		return ErrNotFound
	}
	return err
}
