package integrations

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/mythitorium/swagrinth/pkg/errors"
	"github.com/mythitorium/swagrinth/pkg/observability"
)

// maxBodySize caps how much of a response body is read into memory.
const maxBodySize = 32 << 20

// Client provides shared HTTP functionality for API clients.
// It applies default headers, reports request events to
// [observability.HTTP], and maps transport failures to coded errors.
//
// Status codes are not interpreted: every HTTP response, successful or not,
// is returned as a [Response] so the API client can decide what a status
// means for the endpoint it called.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// Response is a fully read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the response status is 200.
func (r *Response) OK() bool { return r.StatusCode == http.StatusOK }

// Decode JSON-decodes the body into v.
// A malformed body yields an INVALID_FORMAT error.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode response body")
	}
	return nil
}

// NewClient creates a Client with the given HTTP client and default headers.
// A nil httpClient uses [NewHTTPClient]. Headers are applied to all requests
// made through this client; pass nil if no default headers are needed.
func NewClient(httpClient *http.Client, headers map[string]string) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient()
	}
	return &Client{
		http:    httpClient,
		headers: headers,
	}
}

// Get performs an HTTP GET with additional headers merged with defaults.
// Request-specific headers override client defaults for the same key.
//
// Only transport failures are returned as errors (code NETWORK_ERROR, or
// TIMEOUT when the context deadline expired). The returned error wraps the
// underlying cause, so errors.Is(err, context.Canceled) works as expected.
func (c *Client) Get(ctx context.Context, url string, headers map[string]string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, transportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, transportError(ctx, err)
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func transportError(ctx context.Context, err error) error {
	if stderrors.Is(ctx.Err(), context.DeadlineExceeded) {
		return errors.Wrap(errors.ErrCodeTimeout, err, "request timed out")
	}
	return errors.Wrap(errors.ErrCodeNetwork, err, "request failed")
}
