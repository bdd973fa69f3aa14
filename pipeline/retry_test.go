package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetriable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		code string
		want bool
	}{
		{pagesift.ETIMEOUT, true},
		{pagesift.EUNREACHABLE, true},
		{pagesift.ERATELIMITED, true},
		{pagesift.EUNAVAILABLE, true},
		{pagesift.EAUTH, false},
		{pagesift.EINVALID, false},
		{pagesift.EBLOCKED, false},
		{pagesift.EMALFORMED, false},
		{pagesift.EEMPTY, false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			t.Parallel()
			err := pagesift.Errorf(tt.code, "boom")
			assert.Equal(t, tt.want, pipeline.Retriable(err))
		})
	}

	assert.False(t, pipeline.Retriable(nil))
}

func TestRetry_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	attempts := 0
	got, err := pipeline.Retry(context.Background(), []time.Duration{0, 0, 0}, func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", pagesift.Errorf(pagesift.ETIMEOUT, "deadline exceeded")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, 3, attempts)
}

func TestRetry_ExhaustsDelays(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := pipeline.Retry(context.Background(), []time.Duration{0, 0}, func(ctx context.Context) (string, error) {
		attempts++
		return "", pagesift.Errorf(pagesift.EUNREACHABLE, "connection refused")
	})
	require.Error(t, err)
	assert.Equal(t, pagesift.EUNREACHABLE, pagesift.ErrorCode(err))
	assert.Equal(t, 3, attempts)
}

func TestRetry_PermanentErrorFailsFast(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := pipeline.Retry(context.Background(), []time.Duration{0, 0, 0}, func(ctx context.Context) (string, error) {
		attempts++
		return "", pagesift.Errorf(pagesift.EAUTH, "invalid api key")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_NilDelaysSingleAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0
	_, err := pipeline.Retry(context.Background(), nil, func(ctx context.Context) (int, error) {
		attempts++
		return 0, pagesift.Errorf(pagesift.ETIMEOUT, "deadline exceeded")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRetry_CancellationEndsBackoff(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0
	start := time.Now()
	_, err := pipeline.Retry(ctx, []time.Duration{time.Hour}, func(ctx context.Context) (string, error) {
		attempts++
		cancel()
		return "", pagesift.Errorf(pagesift.ETIMEOUT, "deadline exceeded")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := pipeline.DefaultRetryDelays()
	require.Len(t, delays, 3)
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, delays)
}
