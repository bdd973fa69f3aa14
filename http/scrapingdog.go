package http

import (
	"net/url"

	"github.com/pagesift/pagesift"
)

// scrapingDogEndpoint is the ScrapingDog scrape endpoint.
// https://www.scrapingdog.com/documentation
const scrapingDogEndpoint = "https://api.scrapingdog.com/scrape"

// NewScrapingDogFetcher creates a fetcher backed by ScrapingDog.
func NewScrapingDogFetcher(cfg pagesift.FetchConfig, opts ...Option) *APIFetcher {
	return newAPIFetcher(pagesift.FetchScrapingDog, scrapingDogEndpoint, cfg, scrapingDogQuery, apiStatusCode, opts...)
}

func scrapingDogQuery(cfg pagesift.FetchConfig, target string) url.Values {
	q := url.Values{}
	q.Set("api_key", cfg.APIKey)
	q.Set("url", target)
	if cfg.RenderJS {
		q.Set("dynamic", "true")
	}
	return q
}
