package pipeline

import (
	"context"
	"time"

	"github.com/pagesift/pagesift"
)

// DefaultRetryDelays returns the standard backoff schedule: three
// retries with exponentially growing delays.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retriable reports whether an error is transient enough to be worth
// retrying. Permanent failures like bad credentials or invalid input
// fail fast.
func Retriable(err error) bool {
	switch pagesift.ErrorCode(err) {
	case pagesift.ETIMEOUT, pagesift.EUNREACHABLE, pagesift.ERATELIMITED, pagesift.EUNAVAILABLE:
		return true
	}
	return false
}

// Retry invokes fn until it succeeds, the error is not retriable, or
// the delay schedule is exhausted. Nil delays means a single attempt.
// The last attempt's result is returned. Cancellation of ctx ends the
// backoff wait immediately.
func Retry[T any](ctx context.Context, delays []time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var (
		value T
		err   error
	)
	for attempt := 0; ; attempt++ {
		value, err = fn(ctx)
		if err == nil || attempt >= len(delays) || !Retriable(err) {
			return value, err
		}
		select {
		case <-ctx.Done():
			return value, err
		case <-time.After(delays[attempt]):
		}
	}
}
