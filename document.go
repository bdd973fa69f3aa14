package pagesift

import (
	"context"
	"time"
)

// FetchProvider identifies a fetch backend.
type FetchProvider string

// Known fetch backends. Direct performs a plain HTTP GET; the rest are
// hosted scraping APIs that proxy the request past anti-bot measures.
const (
	FetchDirect      FetchProvider = "direct"
	FetchScraperAPI  FetchProvider = "scraperapi"
	FetchScrapingBee FetchProvider = "scrapingbee"
	FetchScrapingDog FetchProvider = "scrapingdog"
	FetchZenRows     FetchProvider = "zenrows"
)

// FetchProviders lists all known fetch backends.
func FetchProviders() []FetchProvider {
	return []FetchProvider{
		FetchDirect,
		FetchScraperAPI,
		FetchScrapingBee,
		FetchScrapingDog,
		FetchZenRows,
	}
}

// FetchConfig carries caller-resolved settings for a fetch backend.
// Credentials are resolved by the caller (flags or environment); the
// core never reads configuration sources directly and never persists
// a config.
type FetchConfig struct {
	// APIKey authenticates against a scraping API. Unused by direct.
	APIKey string

	// Timeout bounds each fetch call. Zero means the backend default.
	Timeout time.Duration

	// RenderJS asks the backend to execute JavaScript before returning
	// markup. Only some backends support it.
	RenderJS bool
}

// Validate returns an error if the config is unusable for the given
// provider.
func (c FetchConfig) Validate(provider FetchProvider) error {
	if provider != FetchDirect && c.APIKey == "" {
		return Errorf(EAUTH, "API key required for provider %q", provider)
	}
	return nil
}

// RawDocument is the immutable result of one fetch. It is owned by the
// caller; the core holds no state between requests.
type RawDocument struct {
	ID        string        `json:"id"`
	URL       string        `json:"url"`
	HTML      string        `json:"html"`
	Provider  FetchProvider `json:"provider"`
	FetchedAt time.Time     `json:"fetchedAt"`
}

// Fetcher retrieves raw markup from a URL.
// Every variant maps backend-specific failures onto the shared error
// codes (ETIMEOUT, EAUTH, ERATELIMITED, EBLOCKED, EUNREACHABLE), so
// callers can swap providers without branching on type. Fetchers do
// not retry; retry policy belongs to the caller.
type Fetcher interface {
	// Fetch retrieves the markup at url. The context controls timeout
	// and cancellation; a deadline overrun is reported as ETIMEOUT,
	// never as a partial document.
	Fetch(ctx context.Context, url string) (*RawDocument, error)
}
