package pipeline

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// ProviderLimiter rate-limits requests per provider identity. Each
// provider gets its own token bucket, created on first use.
type ProviderLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewProviderLimiter creates a limiter allowing rps requests per
// second with the given burst per provider.
func NewProviderLimiter(rps float64, burst int) *ProviderLimiter {
	return &ProviderLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// Wait blocks until the provider's bucket permits a request or ctx is
// canceled.
func (l *ProviderLimiter) Wait(ctx context.Context, provider string) error {
	return l.limiter(provider).Wait(ctx)
}

func (l *ProviderLimiter) limiter(provider string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[provider]
	if !ok {
		lim = rate.NewLimiter(l.rps, l.burst)
		l.limiters[provider] = lim
	}
	return lim
}
