package http

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/pagesift/pagesift"
)

// Ensure APIFetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*APIFetcher)(nil)

// APIFetcher is the shared engine behind the scraping-API variants.
// Each variant supplies its endpoint, query shape, and status-code
// mapping; transport, response bounding, and document assembly are
// identical across backends.
type APIFetcher struct {
	provider pagesift.FetchProvider
	endpoint string
	cfg      pagesift.FetchConfig
	client   *http.Client
	query    func(cfg pagesift.FetchConfig, target string) url.Values
	status   func(status int) string
}

// Option configures an APIFetcher.
type Option func(*APIFetcher)

// WithEndpoint overrides the backend endpoint. Used by tests.
func WithEndpoint(endpoint string) Option {
	return func(f *APIFetcher) {
		f.endpoint = endpoint
	}
}

func newAPIFetcher(provider pagesift.FetchProvider, endpoint string, cfg pagesift.FetchConfig,
	query func(pagesift.FetchConfig, string) url.Values, status func(int) string, opts ...Option) *APIFetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	f := &APIFetcher{
		provider: provider,
		endpoint: endpoint,
		cfg:      cfg,
		client:   &http.Client{Timeout: timeout},
		query:    query,
		status:   status,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch forwards the target URL and credential to the backend and
// returns the markup it proxied.
func (f *APIFetcher) Fetch(ctx context.Context, target string) (*pagesift.RawDocument, error) {
	if err := f.cfg.Validate(f.provider); err != nil {
		return nil, err
	}

	reqURL := f.endpoint + "?" + f.query(f.cfg, target).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid request for %q: %v", target, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(err, target)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(f.provider, resp.StatusCode, target, f.status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err, target)
	}

	return newDocument(f.provider, target, string(body)), nil
}

// Provider returns the backend identity.
func (f *APIFetcher) Provider() pagesift.FetchProvider {
	return f.provider
}

// apiStatusCode is the mapping shared by the scraping APIs: a 401/403
// from the API means the credential was rejected, 429 is the API's
// rate limit, and a 5xx means the backend gave up on the target
// (typically an anti-bot block it could not get past).
func apiStatusCode(status int) string {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return pagesift.EAUTH
	case status == http.StatusTooManyRequests:
		return pagesift.ERATELIMITED
	case status >= 500:
		return pagesift.EBLOCKED
	default:
		return pagesift.EUNREACHABLE
	}
}
