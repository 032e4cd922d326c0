// Package backend talks JSON to the list REST API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/thelist/internal/listing"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:3001"

// ListPath is the collection endpoint for reads and creates.
const ListPath = "/list"

// ErrDecode wraps response bodies that are not valid JSON.
var ErrDecode = errors.New("decode response")

// Client performs the HTTP calls. Status codes are not inspected: any body that
// parses as JSON counts as a success.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets a per-request timeout. Zero leaves the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for baseURL. An empty baseURL falls back to DefaultBaseURL.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the resolved base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// List fetches all items. An empty body, null, or any valid JSON that is not
// an array yields no items and no error. Only malformed JSON is ErrDecode.
func (c *Client) List(ctx context.Context) ([]listing.Item, error) {
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodGet, ListPath, nil, &raw); err != nil {
		return nil, err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		if len(raw) > 0 && !bytes.Equal(raw, []byte("null")) {
			c.log.Warn().Int("bytes", len(raw)).Msg("list response is not an array")
		}
		return nil, nil
	}
	var items []listing.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("get %s: %w: %w", ListPath, ErrDecode, err)
	}
	return items, nil
}

// Create posts a new item. The response only has to be valid JSON; when it
// also looks like an item the echoed fields are returned.
func (c *Client) Create(ctx context.Context, it listing.Item) (listing.Item, error) {
	it.ID = ""
	var raw json.RawMessage
	if err := c.Do(ctx, http.MethodPost, ListPath, it, &raw); err != nil {
		return listing.Item{}, err
	}
	var created listing.Item
	if err := json.Unmarshal(raw, &created); err != nil {
		c.log.Debug().Err(err).Msg("create response is not an item")
		return listing.Item{}, nil
	}
	return created, nil
}

// Do sends body as JSON to endpoint and decodes the response into out.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out any) error {
	reqID := uuid.NewString()
	op := fmt.Sprintf("%s %s", strings.ToLower(method), endpoint)

	var rd io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", op, err)
		}
		rd = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, rd)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "thelist")
	req.Header.Set("X-Request-ID", reqID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", op, err)
	}
	c.log.Debug().
		Str("method", method).
		Str("endpoint", endpoint).
		Str("request_id", reqID).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("backend response")

	if len(bytes.TrimSpace(data)) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrDecode, err)
	}
	return nil
}
