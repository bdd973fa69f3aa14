package pagesift

import "context"

// FeedItem is one entry from an RSS or Atom feed.
type FeedItem struct {
	Title     string `json:"title"`
	Link      string `json:"link"`
	Summary   string `json:"summary"`
	Published string `json:"published,omitempty"`
}

// FeedReader retrieves and parses an RSS or Atom feed.
type FeedReader interface {
	// Read returns the feed's items in document order.
	// Returns EMALFORMED for unparseable XML and EEMPTY for a feed
	// with no items.
	Read(ctx context.Context, feedURL string) ([]FeedItem, error)
}
