// Package client provides a typed HTTP client for the league API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/festy23/league_manager/internal/config"
	"github.com/festy23/league_manager/internal/league/model"
	"github.com/festy23/league_manager/pkg/retry"
)

// APIError is a non-2xx answer from the league API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("league api returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("league api returned status %d: %s", e.StatusCode, e.Message)
}

// Unwrap lets callers match a 404 with errors.Is(err, model.ErrLeagueNotFound).
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusNotFound {
		return model.ErrLeagueNotFound
	}
	return nil
}

// Client talks to the league API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	readRetry  retry.Config
}

// New creates a client from configuration.
func New(cfg config.ClientConfig) *Client {
	c := NewWithHTTPClient(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
	c.readRetry.MaxAttempts = cfg.ReadAttempts
	return c
}

// NewWithHTTPClient creates a client that sends requests through httpClient.
// Reads are tried once.
func NewWithHTTPClient(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		readRetry: retry.Config{
			MaxAttempts:     1,
			InitialDelay:    200 * time.Millisecond,
			MaxDelay:        2 * time.Second,
			Multiplier:      2.0,
			RetryableErrors: retry.ConnectionErrors(),
		},
	}
}

// List fetches every league.
func (c *Client) List(ctx context.Context) ([]model.League, error) {
	return retry.DoWithResult(ctx, c.readRetry, func() ([]model.League, error) {
		var leagues []model.League
		if err := c.do(ctx, http.MethodGet, "/leagues", nil, &leagues); err != nil {
			return nil, err
		}
		if leagues == nil {
			leagues = []model.League{}
		}
		return leagues, nil
	})
}

// Get fetches the leagues matching id: one record, or none.
func (c *Client) Get(ctx context.Context, id string) ([]model.League, error) {
	return retry.DoWithResult(ctx, c.readRetry, func() ([]model.League, error) {
		var leagues []model.League
		if err := c.do(ctx, http.MethodGet, leaguePath(id), nil, &leagues); err != nil {
			return nil, err
		}
		if leagues == nil {
			leagues = []model.League{}
		}
		return leagues, nil
	})
}

// Create stores a new league.
func (c *Client) Create(ctx context.Context, req model.CreateLeagueRequest) (*model.League, error) {
	var league model.League
	if err := c.do(ctx, http.MethodPost, "/leagues", req, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

// Update changes the submitted fields of a league.
func (c *Client) Update(ctx context.Context, id string, req model.UpdateLeagueRequest) (*model.League, error) {
	var league model.League
	if err := c.do(ctx, http.MethodPut, leaguePath(id), req, &league); err != nil {
		return nil, err
	}
	return &league, nil
}

// Delete removes a league.
func (c *Client) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, leaguePath(id), nil, nil)
}

// Invite records email as the league's member.
func (c *Client) Invite(ctx context.Context, id, email string) error {
	return c.do(ctx, http.MethodPost, "/leagues/invite/"+url.PathEscape(id), model.InviteRequest{Email: email}, nil)
}

func leaguePath(id string) string {
	return "/leagues/" + url.PathEscape(id)
}

// do sends one request and decodes a 2xx body into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var msg model.MessageResponse
		if json.Unmarshal(respBody, &msg) == nil {
			apiErr.Message = msg.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// IsNotFound reports whether err is the API saying the league does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, model.ErrLeagueNotFound)
}
