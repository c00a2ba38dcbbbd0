// Package discord provides a minimal Discord REST client for the gateway
package discord

import (
	"context"
	"io"
	"net/http"
	"time"

	perr "rolegate/internal/platform/errors"
	"rolegate/internal/platform/logger"
)

const (
	baseURLDefault = "https://discord.com/api"
	defaultTimeout = 10 * time.Second
	defaultUA      = "rolegate"
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// OAuth2 application credentials
	ClientID     string
	ClientSecret string
	RedirectURI  string

	// BotToken enables the privileged member lookup; empty disables it
	BotToken string
}

// Client is a Discord REST client bounded by a per-call timeout.
// It never retries: authorization codes are single-use, so a failed
// exchange cannot succeed on a second attempt anyway.
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("discord"),
		now:  time.Now,
	}
}

// CanRecheck reports whether the privileged member lookup is configured
func (c *Client) CanRecheck() bool { return c.opts.BotToken != "" }

// do issues one request with common headers and returns the raw response
// callers own status handling; transport failures map to Unavailable
func (c *Client) do(ctx context.Context, method, path, contentType, authz string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "discord new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "discord %s %s failed", method, path)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("discord http response")

	return resp, nil
}
