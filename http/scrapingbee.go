package http

import (
	"net/url"

	"github.com/pagesift/pagesift"
)

// scrapingBeeEndpoint is the ScrapingBee API endpoint.
// https://www.scrapingbee.com/documentation/
const scrapingBeeEndpoint = "https://app.scrapingbee.com/api/v1"

// NewScrapingBeeFetcher creates a fetcher backed by ScrapingBee.
func NewScrapingBeeFetcher(cfg pagesift.FetchConfig, opts ...Option) *APIFetcher {
	return newAPIFetcher(pagesift.FetchScrapingBee, scrapingBeeEndpoint, cfg, scrapingBeeQuery, apiStatusCode, opts...)
}

func scrapingBeeQuery(cfg pagesift.FetchConfig, target string) url.Values {
	q := url.Values{}
	q.Set("api_key", cfg.APIKey)
	q.Set("url", target)
	if cfg.RenderJS {
		q.Set("render_js", "true")
	}
	return q
}
