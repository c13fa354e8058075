// Package fetch retrieves UI documents from the address info service. A fetch
// is a single GET request without retries; failures are reported as *Error
// values carrying a short reason string.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/goliatone/go-insightui/pkg/schema"
)

const (
	DefaultBaseURL    = "https://app.onchaintrust.org/api/getAddressInfo"
	DefaultClientName = "metamask"
	DefaultTimeout    = 10 * time.Second

	maxBodyBytes = 4 << 20
)

// Request identifies the transaction target being looked up.
type Request struct {
	Address string `json:"address"`
	Origin  string `json:"origin"`
	ChainID string `json:"chainId"`
}

// Fetcher is implemented by Client and by test doubles.
type Fetcher interface {
	Fetch(ctx context.Context, req Request) (schema.Payload, error)
}

// Option customises a Client.
type Option func(*Client)

// WithBaseURL overrides the endpoint.
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		if raw != "" {
			c.baseURL = raw
		}
	}
}

// WithHTTPClient injects a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout caps each request. Zero leaves the HTTP client's own timeout in
// charge.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithClientName sets the client query parameter.
func WithClientName(name string) Option {
	return func(c *Client) {
		if name != "" {
			c.clientName = name
		}
	}
}

// WithCache stores successful response bodies for ttl.
func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithLogger sets the logger used for failures and cache errors.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client fetches UI payloads over HTTP.
type Client struct {
	baseURL    string
	clientName string
	http       *http.Client
	timeout    time.Duration
	cache      Cache
	cacheTTL   time.Duration
	logger     *slog.Logger
}

var _ Fetcher = (*Client)(nil)

// New constructs a Client with the default endpoint and timeout.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		clientName: DefaultClientName,
		http:       http.DefaultClient,
		timeout:    DefaultTimeout,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// URL builds the request URL for req.
func (c *Client) URL(req Request) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("fetch: parse base url: %w", err)
	}
	q := u.Query()
	q.Set("address", req.Address)
	q.Set("origin", req.Origin)
	q.Set("chain_id", req.ChainID)
	q.Set("client", c.clientName)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch performs one GET request and returns the validated payload. Errors are
// always *Error values.
func (c *Client) Fetch(ctx context.Context, req Request) (schema.Payload, error) {
	endpoint, err := c.URL(req)
	if err != nil {
		return schema.Payload{}, transportError(err)
	}

	if payload, ok := c.cached(ctx, endpoint); ok {
		return payload, nil
	}

	body, err := c.get(ctx, endpoint)
	if err != nil {
		c.logger.Warn("fetch: request failed", "url", endpoint, "reason", Reason(err), "error", err)
		return schema.Payload{}, err
	}

	payload, err := decodePayload(body)
	if err != nil {
		fetchErr := payloadError(http.StatusOK, err)
		c.logger.Warn("fetch: invalid payload", "url", endpoint, "error", err)
		return schema.Payload{}, fetchErr
	}

	c.store(ctx, endpoint, body)
	return payload, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	reqCtx := ctx
	var cancel context.CancelFunc
	if c.timeout > 0 {
		reqCtx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := http.NewRequestWithContext(reqCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, transportError(err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, transportError(err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, statusError(resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err)
	}
	return data, nil
}

// decodePayload validates the generic JSON shape before decoding into typed
// elements.
func decodePayload(body []byte) (schema.Payload, error) {
	var generic any
	if err := json.Unmarshal(body, &generic); err != nil {
		return schema.Payload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := ValidatePayload(generic); err != nil {
		return schema.Payload{}, err
	}

	var payload schema.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return schema.Payload{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return payload, nil
}

func (c *Client) cached(ctx context.Context, key string) (schema.Payload, bool) {
	if c.cache == nil {
		return schema.Payload{}, false
	}
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("fetch: cache lookup failed", "key", key, "error", err)
		return schema.Payload{}, false
	}
	if !ok {
		return schema.Payload{}, false
	}
	var payload schema.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("fetch: cached payload unreadable", "key", key, "error", err)
		return schema.Payload{}, false
	}
	c.logger.Debug("fetch: cache hit", "key", key)
	return payload, true
}

func (c *Client) store(ctx context.Context, key string, body []byte) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, key, body, c.cacheTTL); err != nil {
		c.logger.Warn("fetch: cache store failed", "key", key, "error", err)
	}
}
