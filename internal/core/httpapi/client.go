// Package httpapi implements the client's request/response pipeline against
// the travel-planner backend: bearer credential attachment from the
// persisted session record, response body unwrapping, error normalization,
// and the global 401 forced-logout side effect.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/storage"
	"github.com/arx-shy/AI-Travel-Planner-Pro/middleware"
)

// maxResponseSize limits response bodies to prevent memory exhaustion.
const maxResponseSize = 10 * 1024 * 1024 // 10MB

// DefaultTimeout is the request timeout for ordinary calls.
const DefaultTimeout = 120 * time.Second

// LongTimeout suits generation-style calls that are expected to take longer.
const LongTimeout = 180 * time.Second

// Client issues requests against the backend. The credential is read from
// the persisted session record on every request, never from in-memory
// session state, so the client stays decoupled from session ownership.
type Client struct {
	baseURL string
	http    *http.Client
	store   storage.Store
	logger  zerolog.Logger

	// onSessionInvalidated is invoked once per request that fails with 401,
	// after the persisted record has been cleared. The navigation layer
	// subscribes to redirect to the login screen.
	onSessionInvalidated func()
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTransport replaces the underlying round-tripper.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.http.Transport = rt
	}
}

// WithSessionInvalidatedHook registers the callback fired when a request
// fails with 401.
func WithSessionInvalidatedHook(fn func()) Option {
	return func(c *Client) {
		c.onSessionInvalidated = fn
	}
}

// New creates a Client for the given backend base URL. The default
// transport chain records Prometheus metrics and logs every request.
func New(baseURL string, store storage.Store, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		logger:  zerolog.Nop(),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http.Transport == nil {
		c.http.Transport = &middleware.MetricsTransport{
			Base: &middleware.LoggingTransport{Logger: c.logger},
		}
	}
	return c
}

// Get issues a GET request and unwraps the response body into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and unwraps the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body and unwraps the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request and unwraps the response into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The credential comes from durable storage, the persisted projection of
	// the session, so a request issued right after startup is authenticated
	// even before the in-memory session has been hydrated.
	if token, ok := c.store.Get(storage.TokenKey); ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("read response %s %s: %w", method, path, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode, Message: errorMessage(raw)}
		if resp.StatusCode == http.StatusUnauthorized {
			c.invalidateSession()
		}
		return apiErr
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response %s %s: %w", method, path, err)
		}
	}
	return nil
}

// invalidateSession clears the persisted session record and notifies the
// subscriber. Any call returning 401 means the session is gone, regardless
// of which endpoint it was.
func (c *Client) invalidateSession() {
	c.logger.Warn().Msg("Received 401, clearing persisted session")
	if err := c.store.Delete(storage.TokenKey); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear stored token")
	}
	if err := c.store.Delete(storage.UserKey); err != nil {
		c.logger.Error().Err(err).Msg("Failed to clear stored user")
	}
	if c.onSessionInvalidated != nil {
		c.onSessionInvalidated()
	}
}

// errorMessage pulls a human-readable message out of an error body.
// The backend answers with {"error": ...}; FastAPI-era deployments used
// {"detail": ...} and some endpoints return {"message": ...}.
func errorMessage(raw []byte) string {
	var body struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	switch {
	case body.Error != "":
		return body.Error
	case body.Detail != "":
		return body.Detail
	default:
		return body.Message
	}
}
