// Package client is the booking app's side of the HTTP API: it validates the
// appointment form, submits it, and keeps the logged-in employee's session.
package client

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds every HTTP call made by the client.
	DefaultTimeout = 10 * time.Second
	// BannerDuration is how long a login error banner stays visible.
	BannerDuration = 4 * time.Second
)

type Client struct {
	baseURL  string
	http     *http.Client
	sessions SessionStore
	logger   *slog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

func WithSessionStore(store SessionStore) Option {
	return func(c *Client) { c.sessions = store }
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New returns a client for the API at baseURL. Without options it uses a
// 10 second HTTP timeout, keeps the session in memory and discards logs.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: DefaultTimeout},
		sessions: NewMemorySessionStore(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) url(path string) string {
	return c.baseURL + path
}
