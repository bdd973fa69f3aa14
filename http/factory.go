package http

import "github.com/pagesift/pagesift"

// New returns the fetcher for the named provider. The provider set is
// closed; callers select a variant by name and never branch on the
// concrete type behind the interface.
func New(provider pagesift.FetchProvider, cfg pagesift.FetchConfig, opts ...Option) (pagesift.Fetcher, error) {
	switch provider {
	case pagesift.FetchDirect:
		return NewFetcher(cfg), nil
	case pagesift.FetchScraperAPI:
		return NewScraperAPIFetcher(cfg, opts...), nil
	case pagesift.FetchScrapingBee:
		return NewScrapingBeeFetcher(cfg, opts...), nil
	case pagesift.FetchScrapingDog:
		return NewScrapingDogFetcher(cfg, opts...), nil
	case pagesift.FetchZenRows:
		return NewZenRowsFetcher(cfg, opts...), nil
	default:
		return nil, pagesift.Errorf(pagesift.EINVALID, "unknown fetch provider %q", provider)
	}
}
