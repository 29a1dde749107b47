package nhl

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a Client. The zero value is not usable directly;
// start from DefaultOptions.
type Options struct {
	// Timeout bounds the whole request, connect through body read.
	Timeout time.Duration
	// TLSVerify toggles certificate verification.
	TLSVerify bool
	// FollowRedirects toggles automatic redirect following.
	FollowRedirects bool
	// Logger receives a debug trace per request. Defaults to a no-op
	// logger when left as the zero value via DefaultOptions.
	Logger zerolog.Logger
	// BaseURLs overrides individual endpoint bases, used by tests to
	// point the client at a local server.
	BaseURLs map[Endpoint]string
}

// DefaultOptions returns the stock configuration: 10 second timeout,
// TLS verification on, redirects followed.
func DefaultOptions() Options {
	return Options{
		Timeout:         10 * time.Second,
		TLSVerify:       true,
		FollowRedirects: true,
		Logger:          zerolog.Nop(),
	}
}

// Client is an immutable handle over the request pipeline. It holds no
// mutable state beyond the connection pool, so concurrent use from any
// number of goroutines is safe without locking.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	baseURLs   map[Endpoint]string
}

// NewClient creates a client with default options.
func NewClient() *Client {
	return NewClientWithOptions(DefaultOptions())
}

// NewClientWithOptions creates a client bound to the given options.
func NewClientWithOptions(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultOptions().Timeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !opts.TLSVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	httpClient := &http.Client{
		Timeout:   opts.Timeout,
		Transport: transport,
	}
	if !opts.FollowRedirects {
		httpClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	baseURLs := make(map[Endpoint]string, len(endpointBaseURLs))
	for e, base := range endpointBaseURLs {
		baseURLs[e] = base
	}
	for e, base := range opts.BaseURLs {
		baseURLs[e] = base
	}

	return &Client{
		httpClient: httpClient,
		logger:     opts.Logger,
		baseURLs:   baseURLs,
	}
}

// get resolves the URL, performs a single GET attempt and classifies
// the response. It returns the raw body on any 2xx status. A transport
// failure (no response at all) surfaces as a RequestError; status
// codes are mapped by the classifier, never interpreted here.
func (c *Client) get(ctx context.Context, endpoint Endpoint, query url.Values, segments ...string) ([]byte, error) {
	fullURL, err := resolveURL(c.baseURLs[endpoint], query, segments...)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, &RequestError{URL: fullURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().
			Str("method", http.MethodGet).
			Str("url", fullURL).
			Dur("elapsed", time.Since(start)).
			Err(err).
			Msg("NHL API request failed")
		return nil, &RequestError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RequestError{URL: fullURL, Err: err}
	}

	c.logger.Debug().
		Str("method", http.MethodGet).
		Str("url", fullURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("NHL API request")

	if err := classifyStatus(resp.StatusCode, fullURL); err != nil {
		return nil, err
	}
	return body, nil
}

// fetch is the generic fetch-and-decode entry point the high-level
// operations compose: resolve, execute, classify, decode.
func fetch[T any](ctx context.Context, c *Client, endpoint Endpoint, query url.Values, segments ...string) (*T, error) {
	body, err := c.get(ctx, endpoint, query, segments...)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := decodeJSON(body, out); err != nil {
		return nil, err
	}
	return out, nil
}
