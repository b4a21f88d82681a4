// Copyright (c) 2026 pinboat contributors.
// All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

// Package pinboard is a minimal client for the pinboard.in v1 API. Only the
// posts/add endpoint is implemented.
//
// See https://pinboard.in/api/ for API details.
package pinboard

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pinboat/pinboat"
	"github.com/pinboat/pinboat/pkg/logging"
)

const (
	// DefaultBaseURL is the pinboard.in v1 API endpoint.
	DefaultBaseURL = "https://api.pinboard.in/v1"

	// DefaultTimeout bounds the single outbound request.
	DefaultTimeout = 30 * time.Second
)

var log = logging.GetLogger("pinboard")

// Client calls the pinboard.in API on behalf of a single account.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient returns a Client authenticating with the given token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Add posts a bookmark with a single GET to posts/add. The response body is
// discarded; anything other than a 200 status is an error. Callers treat
// errors as best-effort failures, the bookmark is simply reported as not
// saved.
func (c *Client) Add(ctx context.Context, bk *pinboat.Bookmark) error {
	params := payload(bk, c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/posts/add", nil)
	if err != nil {
		return err
	}
	req.URL.RawQuery = params.Encode()

	log.Debug("posting bookmark", "url", bk.URL, "params", params)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("for %v: %w", params, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status code %d for %v", resp.StatusCode, params)
	}

	return nil
}
