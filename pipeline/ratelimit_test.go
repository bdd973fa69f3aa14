package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/pagesift/pagesift/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderLimiter_AllowsBurst(t *testing.T) {
	t.Parallel()

	l := pipeline.NewProviderLimiter(1, 3)
	ctx := context.Background()

	start := time.Now()
	for range 3 {
		require.NoError(t, l.Wait(ctx, "openai"))
	}
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestProviderLimiter_IndependentBuckets(t *testing.T) {
	t.Parallel()

	l := pipeline.NewProviderLimiter(1, 1)
	ctx := context.Background()

	// draining one provider's bucket must not slow a different one
	require.NoError(t, l.Wait(ctx, "openai"))

	start := time.Now()
	require.NoError(t, l.Wait(ctx, "gemini"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestProviderLimiter_WaitHonorsCancellation(t *testing.T) {
	t.Parallel()

	l := pipeline.NewProviderLimiter(0.001, 1)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, l.Wait(ctx, "openai"))

	cancel()
	err := l.Wait(ctx, "openai")
	assert.Error(t, err)
}
