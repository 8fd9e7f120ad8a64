// Package http provides an HTTP-based implementation of pressgate.Fetcher
// for retrieving raw article documents from static sites.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/pressgate/pressgate"
)

// DefaultFetchTimeout bounds a single fetch attempt. Requests still in
// flight when it expires are canceled and surfaced as transport failures.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is the fixed identity string sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (compatible; pressgate/1.0; +https://github.com/pressgate/pressgate)"

// acceptHeader advertises the document types the pipeline can process.
const acceptHeader = "text/html,application/xhtml+xml"

// Ensure Fetcher implements pressgate.Fetcher at compile time.
var _ pressgate.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves documents over HTTP. It performs a single attempt per
// call with no retries; retry policy, if any, belongs to the caller.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the identity string sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a single GET request against the URL. Any HTTP status is
// returned as a Response; only transport-level failures (timeout, DNS,
// connection reset) return an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pressgate.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &pressgate.Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
