package http

import (
	"context"
	"io"
	"net/http"

	"github.com/beevik/etree"
	"github.com/pagesift/pagesift"
)

// Ensure FeedService implements pagesift.FeedReader at compile time.
var _ pagesift.FeedReader = (*FeedService)(nil)

// FeedService reads RSS 2.0 and Atom feeds via HTTP.
type FeedService struct {
	client *http.Client
}

// NewFeedService creates a new FeedService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewFeedService(client *http.Client) *FeedService {
	if client == nil {
		client = http.DefaultClient
	}
	return &FeedService{client: client}
}

// Read fetches and parses the feed at feedURL.
func (s *FeedService) Read(ctx context.Context, feedURL string) ([]pagesift.FeedItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid feed URL %q: %v", feedURL, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, transportError(err, feedURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(pagesift.FetchDirect, resp.StatusCode, feedURL, directStatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err, feedURL)
	}

	return parseFeed(body)
}

// parseFeed decodes RSS 2.0 or Atom XML into feed items.
func parseFeed(data []byte) ([]pagesift.FeedItem, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, pagesift.Errorf(pagesift.EMALFORMED, "unparseable feed XML: %v", err)
	}

	var items []pagesift.FeedItem
	for _, el := range doc.FindElements("//item") {
		items = append(items, pagesift.FeedItem{
			Title:     childText(el, "title"),
			Link:      childText(el, "link"),
			Summary:   childText(el, "description"),
			Published: childText(el, "pubDate"),
		})
	}

	if len(items) == 0 {
		// Atom: entries carry links as href attributes.
		for _, el := range doc.FindElements("//entry") {
			item := pagesift.FeedItem{
				Title:     childText(el, "title"),
				Summary:   childText(el, "summary"),
				Published: childText(el, "published"),
			}
			if link := el.SelectElement("link"); link != nil {
				item.Link = link.SelectAttrValue("href", "")
			}
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil, pagesift.Errorf(pagesift.EEMPTY, "feed contains no items")
	}
	return items, nil
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}
