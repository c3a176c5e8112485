// Package rest implements the backend gateway over the REST collaborator's
// JSON resource collections (/startups, /events, /discussions, /users).
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
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/digitalhub/internal/domain/repository"
)

// Client performs JSON requests against the REST collaborator.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout bounds each request. Zero keeps requests unbounded.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithLogger(l *logrus.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New constructs a Client pointing at the provided backend base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = "http://localhost:3011"
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}
	cli := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, v any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &repository.TransportError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{"method": method, "path": path, "status": resp.StatusCode}).Debug("backend request")
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s %s: %w", method, path, repository.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &repository.TransportError{Method: method, Path: path, Status: resp.StatusCode, Message: extractError(resp.Body)}
	}

	if v == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &repository.TransportError{Method: method, Path: path, Status: resp.StatusCode, Message: "decode response", Err: err}
	}
	return nil
}

func extractError(body io.Reader) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(body, 4<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return strings.TrimSpace(string(data))
	}
	if payload.Error != "" {
		return strings.TrimSpace(payload.Error)
	}
	return strings.TrimSpace(payload.Message)
}
