package modrinth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/mythitorium/swagrinth/pkg/buildinfo"
	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/integrations"
)

// DefaultBaseURL is the production Modrinth v2 API root.
const DefaultBaseURL = "https://api.modrinth.com/v2/"

// Client provides access to the Modrinth v2 REST API.
//
// Each endpoint method issues exactly one GET request and never retries.
// The client holds the authorization token and the rate-limit snapshot from
// the latest response; both are guarded by a mutex, so a Client is safe for
// concurrent use.
type Client struct {
	*integrations.Client
	baseURL string

	mu    sync.RWMutex
	token string
	rate  RateLimit
}

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// WithBaseURL overrides the API root (for mirrors, staging or tests).
func WithBaseURL(u string) Option {
	return func(o *options) { o.baseURL = u }
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpClient = h }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(o *options) { o.userAgent = ua }
}

// DefaultUserAgent identifies the library to Modrinth, as its API policy asks.
func DefaultUserAgent() string {
	return fmt.Sprintf("swagrinth/%s (github.com/mythitorium/swagrinth)", buildinfo.Version)
}

// NewClient creates a Modrinth client. token may be empty for anonymous
// access; it is sent verbatim in the Authorization header.
func NewClient(token string, opts ...Option) *Client {
	o := options{baseURL: DefaultBaseURL, userAgent: DefaultUserAgent()}
	for _, opt := range opts {
		opt(&o)
	}
	headers := map[string]string{
		"User-Agent": o.userAgent,
		"Accept":     "application/json",
	}
	return &Client{
		Client:  integrations.NewClient(o.httpClient, headers),
		baseURL: o.baseURL,
		token:   token,
		rate:    unknownRateLimit(),
	}
}

// SetToken replaces the authorization token used by subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Token returns the current authorization token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BaseURL returns the API root this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// RateLimit returns the snapshot reported by the most recent response.
// It is purely observational; the client never throttles on it.
func (c *Client) RateLimit() RateLimit {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.rate
}

// resource names what a request is about, for NotFoundError.
type resource struct {
	id   string
	kind string
}

// fetch GETs the endpoint and decodes a 200 body into v.
// The rate-limit snapshot is updated from every response, whatever its status.
func (c *Client) fetch(ctx context.Context, res resource, query url.Values, v any, segments ...string) error {
	u := integrations.JoinURL(c.baseURL, segments...)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	token := c.Token()
	resp, err := c.Get(ctx, u, map[string]string{"Authorization": token})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.rate = c.rate.merge(resp.Header)
	c.mu.Unlock()

	switch resp.StatusCode {
	case http.StatusOK:
		return resp.Decode(v)
	case http.StatusUnauthorized:
		reason := "token rejected"
		if token == "" {
			reason = "no token"
		}
		return &errors.AccessError{Reason: reason}
	default:
		return &errors.NotFoundError{ID: res.id, Kind: res.kind, Status: resp.StatusCode}
	}
}
