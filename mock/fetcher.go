package mock

import (
	"context"

	"github.com/pressgate/pressgate"
)

var _ pressgate.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pressgate.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pressgate.Response, error)
	CloseFn func() error

	// FetchInvoked counts Fetch calls, for asserting that short-circuit
	// paths never reach the network.
	FetchInvoked int
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pressgate.Response, error) {
	f.FetchInvoked++
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
