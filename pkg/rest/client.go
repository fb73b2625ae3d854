// Package rest is the HTTP transport shared by the provider clients: a
// token-bucket throttle and a per-endpoint circuit-breaker in front of JSON
// requests. A failed request is never repeated against the same endpoint.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/utils"
)

// ErrNoEndpoints is returned when no base URL is configured or every breaker is open.
var ErrNoEndpoints = errors.New("no available endpoints")

// StatusError carries a non-2xx response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http %d", e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}

// IsStatus reports whether err is a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// Client is a wrapper around an http.Client that implements a circuit-breaker and token-bucket.
type Client struct {
	endpoints []string
	client    *http.Client
	headers   http.Header

	// token-bucket
	tokens      int64
	maxTokens   int64
	refillEvery time.Duration
	lastRefill  atomic.Value // time.Time

	// circuit-breaker
	mu       sync.Mutex
	failures map[string]int
	opened   map[string]time.Time

	breakerThreshold int
	breakerCooldown  time.Duration
}

// Opts is the set of options for a new Client.
type Opts struct {
	Endpoints       []string
	Headers         map[string]string
	Timeout         time.Duration
	RPS             int
	Burst           int
	BreakerFailures int
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
}

// New creates a new Client with the given options.
func New(o Opts) *Client {
	if o.RPS <= 0 {
		o.RPS = 20
	}
	if o.Burst <= 0 {
		o.Burst = 40
	}
	if o.Timeout <= 0 {
		o.Timeout = 15 * time.Second
	}
	if o.BreakerFailures <= 0 {
		o.BreakerFailures = 3
	}
	if o.BreakerCooldown <= 0 {
		o.BreakerCooldown = 5 * time.Second
	}

	client := o.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: o.Timeout}
	} else if client.Timeout == 0 {
		client.Timeout = o.Timeout
	}

	headers := http.Header{}
	headers.Set("Accept", "application/json")
	for k, v := range o.Headers {
		if v != "" {
			headers.Set(k, v)
		}
	}

	c := &Client{
		endpoints:        utils.Dedup(o.Endpoints),
		client:           client,
		headers:          headers,
		maxTokens:        int64(o.Burst),
		refillEvery:      time.Second / time.Duration(o.RPS),
		failures:         map[string]int{},
		opened:           map[string]time.Time{},
		breakerThreshold: o.BreakerFailures,
		breakerCooldown:  o.BreakerCooldown,
	}
	c.tokens = c.maxTokens
	c.lastRefill.Store(time.Now())
	return c
}

// Endpoints returns the configured base URLs.
func (c *Client) Endpoints() []string {
	return append([]string(nil), c.endpoints...)
}

// refill adds one token when refillEvery has elapsed.
func (c *Client) refill() {
	last := c.lastRefill.Load().(time.Time)
	now := time.Now()
	if now.Sub(last) >= c.refillEvery {
		if atomic.LoadInt64(&c.tokens) < c.maxTokens {
			atomic.AddInt64(&c.tokens, 1)
		}
		c.lastRefill.Store(now)
	}
}

// acquire takes a token, waiting for a refill if the bucket is empty.
func (c *Client) acquire(ctx context.Context) error {
	for {
		c.refill()
		if atomic.LoadInt64(&c.tokens) > 0 {
			atomic.AddInt64(&c.tokens, -1)
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.refillEvery / 2):
		}
	}
}

// isOpen returns true while the endpoint's breaker is OPEN.
func (c *Client) isOpen(ep string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	until, ok := c.opened[ep]
	if !ok {
		return false
	}
	if time.Now().After(until) {
		delete(c.opened, ep)
		c.failures[ep] = 0
		return false
	}
	return true
}

// noteFailure counts a transport or 5xx failure and opens the breaker at the threshold.
func (c *Client) noteFailure(ep string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[ep]++
	if c.failures[ep] >= c.breakerThreshold {
		c.opened[ep] = time.Now().Add(c.breakerCooldown)
	}
}

func (c *Client) noteSuccess(ep string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failures[ep] = 0
}

// GetJSON issues a GET with the given query and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON issues a POST with a JSON payload and decodes the body into out.
func (c *Client) PostJSON(ctx context.Context, path string, payload any, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, payload, out)
}

// doJSON sends one request per available endpoint until one answers.
// Endpoints with an open breaker are skipped; 4xx answers end the loop since
// another endpoint would answer the same.
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, payload any, out any) error {
	if len(c.endpoints) == 0 {
		return ErrNoEndpoints
	}

	var bodyBytes []byte
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode payload: %w", err)
		}
		bodyBytes = b
	}

	lastErr := ErrNoEndpoints
	for _, ep := range c.endpoints {
		if c.isOpen(ep) {
			continue
		}
		if err := c.acquire(ctx); err != nil {
			return err
		}

		target := ep + path
		if len(query) > 0 {
			target += "?" + query.Encode()
		}

		req, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(bodyBytes))
		if err != nil {
			return err
		}
		for k, vs := range c.headers {
			req.Header[k] = vs
		}
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
			c.noteFailure(ep)
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = &StatusError{Code: resp.StatusCode, Body: readSnippet(resp.Body)}
			c.noteFailure(ep)
			_ = utils.DrainAndClose(resp.Body)
			continue
		}
		if resp.StatusCode >= 300 {
			err := &StatusError{Code: resp.StatusCode, Body: readSnippet(resp.Body)}
			_ = utils.DrainAndClose(resp.Body)
			return err
		}

		c.noteSuccess(ep)
		if out != nil {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				_ = utils.DrainAndClose(resp.Body)
				return fmt.Errorf("decode %s: %w", path, err)
			}
		}
		return utils.DrainAndClose(resp.Body)
	}

	return lastErr
}

func readSnippet(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return string(bytes.TrimSpace(b))
}
