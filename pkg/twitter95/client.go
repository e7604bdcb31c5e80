package twitter95

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/twitter95-hq/t95client/internal/config"
	"github.com/twitter95-hq/t95client/pkg/httpclient"
	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client talks to the twitter95 API. It holds the immutable base URL selected
// at construction time and is safe for concurrent use; each call owns its own
// request/response cycle.
type Client struct {
	baseURL string
	http    httpclient.Client
	log     *zap.SugaredLogger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient injects an alternative transport, typically a mock in tests.
func WithHTTPClient(h httpclient.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger injects a structured logger for request failures. Without it the
// client stays silent.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New builds a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpclient.NewRestyClient(defaultTimeout),
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig builds a Client from loaded configuration, using the
// environment-selected base URL and the configured HTTP timeout.
func NewFromConfig(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	base := []Option{WithHTTPClient(httpclient.NewRestyClient(cfg.HTTPTimeout))}
	return New(cfg.BaseURL(), append(base, opts...)...), nil
}

// endpoint joins the base URL with a path and optional query string.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// getJSON performs a GET against path and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.endpoint(path, query)

	resp, err := c.http.Get(ctx, u, nil)
	if err != nil {
		c.log.Errorw("request failed", "url", u, "error", err)
		return fmt.Errorf("get %s: %w", path, err)
	}
	return c.decode(resp, u, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	u := c.endpoint(path, nil)

	resp, err := c.http.Post(ctx, u, nil, body)
	if err != nil {
		c.log.Errorw("request failed", "url", u, "error", err)
		return fmt.Errorf("post %s: %w", path, err)
	}
	return c.decode(resp, u, out)
}

// deleteReq performs a DELETE against path, discarding any response body.
func (c *Client) deleteReq(ctx context.Context, path string) error {
	u := c.endpoint(path, nil)

	resp, err := c.http.Delete(ctx, u, nil)
	if err != nil {
		c.log.Errorw("request failed", "url", u, "error", err)
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return c.decode(resp, u, nil)
}

// decode checks the response status and unmarshals the body into out when the
// caller wants one. Every failure is logged before being returned.
func (c *Client) decode(resp httpclient.Response, u string, out any) error {
	body := resp.Body()
	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		apiErr := &APIError{
			StatusCode: resp.StatusCode(),
			URL:        u,
			Snippet:    responseSnippet(body),
		}
		c.log.Errorw("request returned error status", "url", u, "status", apiErr.StatusCode)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Errorw("response decode failed", "url", u, "error", err)
		return fmt.Errorf("decode %s response: %w", u, err)
	}
	return nil
}

// listQuery translates ListOptions into the backend's shared query params.
func listQuery(opts *ListOptions) url.Values {
	q := url.Values{}
	if opts == nil {
		return q
	}
	if opts.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", opts.Limit))
	}
	if opts.Ascending {
		q.Set("ascending", "true")
	}
	return q
}
