// Package dune executes saved Dune Analytics queries and reads their results.
package dune

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/kripto-transakcije/explorer/pkg/rest"
	"github.com/kripto-transakcije/explorer/pkg/retry"
	"go.uber.org/zap"
)

var (
	// ErrExecutionFailed is returned when Dune reports a failed, cancelled, or expired execution.
	ErrExecutionFailed = errors.New("dune: execution failed")
	// ErrNotReady is returned when the execution did not finish within the polling window.
	ErrNotReady = errors.New("dune: execution not ready")
	// ErrNoRows is returned by single-value queries that produced no rows.
	ErrNoRows = errors.New("dune: no rows")
	// ErrNoAPIKey is returned before any request when no key is configured.
	ErrNoAPIKey = errors.New("dune: api key not configured")

	errPending = errors.New("execution pending")
)

// HTTPClient talks to the Dune API.
type HTTPClient struct {
	rest    *rest.Client
	logger  *zap.Logger
	poll    retry.Config
	queries Queries
	hasKey  bool
}

// Opts is the set of options for a new HTTPClient.
type Opts struct {
	Endpoint     string
	APIKey       string
	PollAttempts int
	PollInterval time.Duration
	Queries      Queries
	Timeout      time.Duration
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// NewHTTPWithOpts creates a new HTTPClient with the given options.
func NewHTTPWithOpts(o Opts) *HTTPClient {
	if o.Endpoint == "" {
		o.Endpoint = DefaultEndpoint
	}
	if o.PollAttempts <= 0 {
		o.PollAttempts = 5
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 2 * time.Second
	}
	if o.Queries == (Queries{}) {
		o.Queries = DefaultQueries()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return &HTTPClient{
		rest: rest.New(rest.Opts{
			Endpoints:  []string{o.Endpoint},
			Headers:    map[string]string{"X-Dune-API-Key": o.APIKey},
			Timeout:    o.Timeout,
			RPS:        5,
			Burst:      10,
			HTTPClient: o.HTTPClient,
		}),
		logger:  o.Logger,
		poll:    retry.PollConfig(o.PollAttempts, o.PollInterval),
		queries: o.Queries,
		hasKey:  o.APIKey != "",
	}
}

type executeReq struct {
	QueryParameters map[string]any `json:"query_parameters,omitempty"`
}

type executeResp struct {
	ExecutionID string `json:"execution_id"`
	State       string `json:"state"`
}

type statusResp struct {
	ExecutionID string `json:"execution_id"`
	State       string `json:"state"`
}

type resultsResp struct {
	ExecutionID string `json:"execution_id"`
	State       string `json:"state"`
	Result      struct {
		Rows []Row `json:"rows"`
	} `json:"result"`
}

// Execute starts a saved query and returns the execution id.
func (c *HTTPClient) Execute(ctx context.Context, queryID int, params map[string]any) (string, error) {
	if !c.hasKey {
		return "", ErrNoAPIKey
	}
	var resp executeResp
	if err := c.rest.PostJSON(ctx, fmt.Sprintf(executePath, queryID), executeReq{QueryParameters: params}, &resp); err != nil {
		return "", fmt.Errorf("execute query %d: %w", queryID, err)
	}
	if resp.ExecutionID == "" {
		return "", fmt.Errorf("execute query %d: empty execution id", queryID)
	}
	return resp.ExecutionID, nil
}

// Status returns the execution state.
func (c *HTTPClient) Status(ctx context.Context, executionID string) (string, error) {
	var resp statusResp
	if err := c.rest.GetJSON(ctx, fmt.Sprintf(statusPath, executionID), nil, &resp); err != nil {
		return "", fmt.Errorf("status of %s: %w", executionID, err)
	}
	return resp.State, nil
}

// Results returns the rows of a finished execution.
func (c *HTTPClient) Results(ctx context.Context, executionID string) ([]Row, error) {
	var resp resultsResp
	if err := c.rest.GetJSON(ctx, fmt.Sprintf(resultsPath, executionID), nil, &resp); err != nil {
		return nil, fmt.Errorf("results of %s: %w", executionID, err)
	}
	return resp.Result.Rows, nil
}

// Run executes queryID, waits for completion, and returns its rows.
// Status is checked at most PollAttempts times, PollInterval apart.
func (c *HTTPClient) Run(ctx context.Context, queryID int, params map[string]any) ([]Row, error) {
	executionID, err := c.Execute(ctx, queryID, params)
	if err != nil {
		return nil, err
	}

	op := fmt.Sprintf("dune query %d", queryID)
	err = retry.WithBackoff(ctx, c.poll, c.logger, op, func() error {
		state, err := c.Status(ctx, executionID)
		if err != nil {
			return retry.Permanent(err)
		}
		switch state {
		case StateCompleted, StatePartial:
			return nil
		case StateFailed, StateCancelled, StateExpired:
			return retry.Permanent(fmt.Errorf("%w: %s", ErrExecutionFailed, state))
		default:
			return errPending
		}
	})
	if errors.Is(err, errPending) {
		return nil, fmt.Errorf("%s: %w", op, ErrNotReady)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c.Results(ctx, executionID)
}

func (c *HTTPClient) first(ctx context.Context, queryID int, params map[string]any) (Row, error) {
	rows, err := c.Run(ctx, queryID, params)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dune query %d: %w", queryID, ErrNoRows)
	}
	return rows[0], nil
}
