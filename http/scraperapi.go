package http

import (
	"net/url"

	"github.com/pagesift/pagesift"
)

// scraperAPIEndpoint is the ScraperAPI proxy endpoint.
// https://www.scraperapi.com/documentation/
const scraperAPIEndpoint = "https://api.scraperapi.com"

// NewScraperAPIFetcher creates a fetcher backed by ScraperAPI.
func NewScraperAPIFetcher(cfg pagesift.FetchConfig, opts ...Option) *APIFetcher {
	return newAPIFetcher(pagesift.FetchScraperAPI, scraperAPIEndpoint, cfg, scraperAPIQuery, apiStatusCode, opts...)
}

func scraperAPIQuery(cfg pagesift.FetchConfig, target string) url.Values {
	q := url.Values{}
	q.Set("api_key", cfg.APIKey)
	q.Set("url", target)
	q.Set("render", boolParam(cfg.RenderJS))
	return q
}

func boolParam(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
