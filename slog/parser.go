package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingParser implements pagesift.Parser.
var _ pagesift.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging.
type LoggingParser struct {
	next   pagesift.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next pagesift.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the operation.
func (p *LoggingParser) Parse(ctx context.Context, chunk pagesift.Chunk, instructions string) (res pagesift.ParseResult, err error) {
	defer func(begin time.Time) {
		p.logger.Info("parse",
			"chunk", chunk.Index,
			"provider", string(res.Provider),
			"records", len(res.Records),
			"success", res.Success,
			"duration", time.Since(begin),
			"parse_err", res.Err,
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(ctx, chunk, instructions)
}
