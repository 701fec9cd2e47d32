// Package stubapi is the HTTP client for the stub services (GET /api/message, POST /events)
package stubapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"stubdemo/internal/platform/config"
	perr "stubdemo/internal/platform/errors"
	"stubdemo/internal/platform/logger"
	pnet "stubdemo/internal/platform/net"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	// DefaultBaseURL is where both stub variants listen by default
	DefaultBaseURL = "http://localhost:8081"

	maxErrBody = 2048
)

// Options configures the Client
type Options struct {
	BaseURL string
	// HTTPClient defaults to a client without timeout; set one here if you need it
	HTTPClient *http.Client
}

// FromConfig reads STUB_CLIENT_BASE_URL (absolute http(s) URL, default DefaultBaseURL)
func FromConfig(cfg config.Conf) Options {
	u := cfg.Prefix("STUB_CLIENT_").MayURL("BASE_URL", DefaultBaseURL)
	return Options{BaseURL: u.String()}
}

// Client issues one plain request per call: no retries, no caching
type Client struct {
	http *http.Client
	base string
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client, filling defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{}
	}
	return &Client{
		http: o.HTTPClient,
		base: strings.TrimRight(o.BaseURL, "/"),
		log:  *logger.Named("stubapi"),
		now:  time.Now,
	}
}

// BaseURL returns the normalized base URL
func (c *Client) BaseURL() string { return c.base }

// do sends one request. On success the caller owns resp.Body.
// Transport failures map to ErrorCodeUnavailable, non-2xx to a wrapped *HTTPError.
// A caller that cancelled or timed out its ctx gets ErrorCodeUnknown with the ctx error in the chain
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "stubapi new request failed")
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if rid := pnet.RequestID(ctx); rid != "" {
		req.Header.Set(chimw.RequestIDHeader, rid)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil && errors.Is(err, cerr) {
			c.log.Debug().Err(err).Str("method", method).Str("path", path).Dur("latency", lat).Msg("stubapi request abandoned")
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "stubapi %s %s abandoned", method, path)
		}
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Dur("latency", lat).Msg("stubapi transport error")
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "stubapi %s %s failed", method, path)
	}

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("stubapi http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		_ = drainAndClose(resp.Body)
		herr := &HTTPError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(tail)}
		return nil, perr.Wrapf(herr, perr.CodeFromHTTPStatus(resp.StatusCode), "stubapi %s %s", method, path)
	}
	return resp, nil
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 64<<10))
	return rc.Close()
}
