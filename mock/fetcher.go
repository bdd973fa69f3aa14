package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagesift.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagesift.RawDocument, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagesift.RawDocument, error) {
	return f.FetchFn(ctx, url)
}
