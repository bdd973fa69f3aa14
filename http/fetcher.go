// Package http provides the fetch backends: a direct HTTP fetcher for
// unprotected pages and four scraping-API fetchers that proxy
// retrieval through hosted backends. All variants map their failures
// onto the shared pagesift error codes so callers never branch on
// backend-specific types.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pagesift/pagesift"
)

// DefaultTimeout is the default timeout for fetch requests.
const DefaultTimeout = 30 * time.Second

// maxBodyBytes caps how much markup is read from any backend.
const maxBodyBytes = 10 << 20

// userAgent is sent on direct fetches so that plain pages without
// bot protection respond normally.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Ensure Fetcher implements pagesift.Fetcher at compile time.
var _ pagesift.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves markup with a plain HTTP GET. Suitable for sites
// without bot protection or JavaScript-rendered content; use a
// scraping-API variant otherwise.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a direct Fetcher. Only cfg.Timeout is used;
// direct fetches need no credential.
func NewFetcher(cfg pagesift.FetchConfig) *Fetcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the markup at url.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagesift.RawDocument, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagesift.Errorf(pagesift.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, transportError(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(pagesift.FetchDirect, resp.StatusCode, url, directStatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, transportError(err, url)
	}

	return newDocument(pagesift.FetchDirect, url, string(body)), nil
}

// directStatusCode maps direct-fetch status codes onto error codes.
// A 403 from the target itself is an anti-bot response.
func directStatusCode(status int) string {
	switch status {
	case http.StatusUnauthorized, http.StatusProxyAuthRequired:
		return pagesift.EAUTH
	case http.StatusForbidden:
		return pagesift.EBLOCKED
	case http.StatusTooManyRequests:
		return pagesift.ERATELIMITED
	default:
		return pagesift.EUNREACHABLE
	}
}

// newDocument assembles the immutable fetch result.
func newDocument(provider pagesift.FetchProvider, url, html string) *pagesift.RawDocument {
	return &pagesift.RawDocument{
		ID:        uuid.NewString(),
		URL:       url,
		HTML:      html,
		Provider:  provider,
		FetchedAt: time.Now().UTC(),
	}
}

// transportError maps network-level failures onto the shared taxonomy:
// deadline overruns become ETIMEOUT, everything else EUNREACHABLE.
func transportError(err error, url string) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return pagesift.Errorf(pagesift.ETIMEOUT, "fetch of %s timed out", url)
	}
	if errors.Is(err, context.Canceled) {
		return pagesift.Errorf(pagesift.ETIMEOUT, "fetch of %s canceled", url)
	}
	return pagesift.Errorf(pagesift.EUNREACHABLE, "fetch of %s failed: %v", url, err)
}

// statusError builds the typed error for a non-200 backend response.
func statusError(provider pagesift.FetchProvider, status int, url string, mapCode func(int) string) error {
	return pagesift.Errorf(mapCode(status), "%s returned HTTP %d for %s", provider, status, url)
}
