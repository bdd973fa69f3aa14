// Package slog provides logging decorators for pagesift services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingFetcher implements pagesift.Fetcher.
var _ pagesift.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagesift.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagesift.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *pagesift.RawDocument, err error) {
	defer func(begin time.Time) {
		size := 0
		provider := ""
		if doc != nil {
			size = len(doc.HTML)
			provider = string(doc.Provider)
		}
		f.logger.Info("fetch",
			"url", url,
			"provider", provider,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
