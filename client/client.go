// Package client is a typed HTTP client for the todod API, used by the
// todoctl CLI and available to other Go programs.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"todod"
)

// DefaultEndpoint is the endpoint used when a profile does not set one.
const DefaultEndpoint = "http://localhost:8080/api/todos"

// Client issues todo API calls against a single endpoint with a single
// credential.
type Client struct {
	endpoint string
	token    string
	header   string
	hc       *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// WithCredentialHeader overrides the header name carrying the token.
func WithCredentialHeader(header string) Option {
	return func(c *Client) { c.header = header }
}

// New creates a Client for the given endpoint. token may be empty when
// talking to a server with the gate disabled.
func New(endpoint, token string, opts ...Option) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	c := &Client{
		endpoint: endpoint,
		token:    token,
		header:   "X-Auth-Token",
		hc:       &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// List fetches every item.
func (c *Client) List(ctx context.Context) ([]todod.Item, error) {
	var items []todod.Item
	if err := c.do(ctx, http.MethodGet, nil, &items); err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	return items, nil
}

// Create adds an item with the given title.
func (c *Client) Create(ctx context.Context, title string) (todod.Item, error) {
	var item todod.Item
	req := todod.CreateItemRequest{Title: title}
	if err := c.do(ctx, http.MethodPost, req, &item); err != nil {
		return todod.Item{}, fmt.Errorf("create: %w", err)
	}
	return item, nil
}

// SetCompleted toggles the completed flag on the item matching id.
func (c *Client) SetCompleted(ctx context.Context, id string, completed bool) (todod.Item, error) {
	var item todod.Item
	req := todod.UpdateItemRequest{ID: id, Completed: &completed}
	if err := c.do(ctx, http.MethodPut, req, &item); err != nil {
		return todod.Item{}, fmt.Errorf("update: %w", err)
	}
	return item, nil
}

// Delete removes the item matching id. Idempotent server-side.
func (c *Client) Delete(ctx context.Context, id string) (todod.DeleteResult, error) {
	var result todod.DeleteResult
	req := todod.DeleteItemRequest{ID: id}
	if err := c.do(ctx, http.MethodDelete, req, &result); err != nil {
		return todod.DeleteResult{}, fmt.Errorf("delete: %w", err)
	}
	return result, nil
}

// apiError mirrors the server's error envelope.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, method string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set(c.header, c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		switch resp.StatusCode {
		case http.StatusNotFound:
			return todod.ErrNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			return todod.ErrUnauthorized
		}

		if apiErr.Error != "" {
			return fmt.Errorf("server returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server returned %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}
