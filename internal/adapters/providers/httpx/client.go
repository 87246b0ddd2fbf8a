// Package httpx is the small JSON-over-HTTP client every REST provider adapter
// shares. It maps upstream statuses to project error codes and leaves retries
// to the gateway
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	perr "navline/internal/platform/errors"
	"navline/internal/platform/logger"
)

const (
	defaultTimeout = 15 * time.Second
	defaultUA      = "navline/1.0 (+ivr)"
	maxBody        = 2 << 20
)

// Options configures a Client
type Options struct {
	Name      string // provider label for logs and errors
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Header    http.Header // sent on every request
}

// Client is safe for concurrent use
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// New builds a Client; the per-attempt deadline normally comes from ctx
func New(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("provider." + o.Name),
		now:  time.Now,
	}
}

// WithHTTPClient swaps the transport, used by tests
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	c.http = h
	return c
}

// GetJSON issues GET base+path?query and decodes a JSON body into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// PostJSON posts in as JSON and decodes the reply into out
func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "%s encode request", c.opts.Name)
	}
	return c.do(ctx, http.MethodPost, path, query, b, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte, out any) error {
	u := c.opts.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Name)
	}
	for k, vs := range c.opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s transport error", c.opts.Name)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("close body failed")
		}
	}()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("provider http response")

	if err := statusError(c.opts.Name, resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s read body", c.opts.Name)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "%s decode body", c.opts.Name)
	}
	return nil
}

// statusError maps non-2xx responses; the body tail is kept for diagnostics
func statusError(name string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	tail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	msg := name + " status " + strconv.Itoa(resp.StatusCode) + ": " + strings.TrimSpace(string(tail))

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return perr.New(perr.ErrorCodeUnauthorized, msg)
	case resp.StatusCode == http.StatusNotFound:
		return perr.New(perr.ErrorCodeNotFound, msg)
	case resp.StatusCode == http.StatusTooManyRequests:
		return perr.New(perr.ErrorCodeTooManyRequests, msg)
	case resp.StatusCode == http.StatusRequestTimeout, resp.StatusCode >= 500:
		return perr.New(perr.ErrorCodeUnavailable, msg)
	default:
		return perr.New(perr.ErrorCodeInvalidArgument, msg)
	}
}

// RequireKey returns a fatal error when a provider credential is missing
func RequireKey(name, key string) error {
	if strings.TrimSpace(key) == "" {
		return perr.Unauthorizedf("%s api key not configured", name)
	}
	return nil
}
