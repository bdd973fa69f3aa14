package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.FeedReader = (*FeedReader)(nil)

// FeedReader is a mock implementation of pagesift.FeedReader.
type FeedReader struct {
	ReadFn func(ctx context.Context, feedURL string) ([]pagesift.FeedItem, error)
}

func (r *FeedReader) Read(ctx context.Context, feedURL string) ([]pagesift.FeedItem, error) {
	return r.ReadFn(ctx, feedURL)
}
