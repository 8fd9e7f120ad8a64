package pressgate

import "context"

// Response is a raw HTTP response as seen by the pipeline: the status code
// and the body as a string. Non-2xx responses are returned as data, not as
// errors; status-code policy belongs to the pipeline.
type Response struct {
	StatusCode int
	Body       string
}

// Fetcher retrieves raw documents from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response.
	// It returns an error only for transport-level failures (timeout, DNS,
	// connection reset); any HTTP status is returned as a Response.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
