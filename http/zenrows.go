package http

import (
	"net/http"
	"net/url"

	"github.com/pagesift/pagesift"
)

// zenRowsEndpoint is the ZenRows API endpoint.
// https://docs.zenrows.com/
const zenRowsEndpoint = "https://api.zenrows.com/v1/"

// NewZenRowsFetcher creates a fetcher backed by ZenRows.
func NewZenRowsFetcher(cfg pagesift.FetchConfig, opts ...Option) *APIFetcher {
	return newAPIFetcher(pagesift.FetchZenRows, zenRowsEndpoint, cfg, zenRowsQuery, zenRowsStatusCode, opts...)
}

func zenRowsQuery(cfg pagesift.FetchConfig, target string) url.Values {
	q := url.Values{}
	q.Set("apikey", cfg.APIKey)
	q.Set("url", target)
	if cfg.RenderJS {
		q.Set("js_render", "true")
	}
	return q
}

// zenRowsStatusCode extends the shared mapping: ZenRows reports an
// unscrapable (blocked) target with 422.
func zenRowsStatusCode(status int) string {
	if status == http.StatusUnprocessableEntity {
		return pagesift.EBLOCKED
	}
	return apiStatusCode(status)
}
