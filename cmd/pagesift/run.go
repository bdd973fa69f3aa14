package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/csv"
	"github.com/pagesift/pagesift/gofpdf"
	"github.com/pagesift/pagesift/pipeline"
)

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	writer, err := tableWriter(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	conflict := pagesift.ConflictKeepFirst
	if c.KeepAll {
		conflict = pagesift.ConflictKeepAll
	}

	var limiter *pipeline.ProviderLimiter
	if c.RPS > 0 {
		limiter = pipeline.NewProviderLimiter(c.RPS, c.Concurrency)
	}

	p := &pipeline.Pipeline{
		Fetcher:      deps.Fetcher,
		Normalizer:   deps.Normalizer,
		Parser:       deps.Parser,
		Provider:     deps.Provider,
		ChunkSize:    c.ChunkSize,
		Overlap:      c.Overlap,
		Concurrency:  c.Concurrency,
		ParseTimeout: c.ParseTimeout,
		RetryDelays:  retryDelays(c.Retries),
		Limiter:      limiter,
		Policy: pagesift.MergePolicy{
			Keys:     c.Key,
			Conflict: conflict,
		},
		Progress: progressPrinter(deps.Stderr),
	}

	res, err := p.Run(deps.Ctx, c.URL, c.Instructions)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	out := deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writer.WriteTable(out, res.Table); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "extracted %d records from %d chunks\n",
		len(res.Merged.Records), len(res.Chunks))
	return nil
}

func tableWriter(format string) (pagesift.TableWriter, error) {
	switch format {
	case "csv":
		return csv.NewWriter(), nil
	case "pdf":
		return gofpdf.NewWriter(), nil
	}
	return nil, pagesift.Errorf(pagesift.EINVALID, "unknown output format %q", format)
}

// retryDelays builds an exponential backoff schedule of n delays
// starting at one second.
func retryDelays(n int) []time.Duration {
	if n <= 0 {
		return nil
	}
	delays := make([]time.Duration, n)
	for i := range delays {
		delays[i] = time.Second << i
	}
	return delays
}

func progressPrinter(stderr io.Writer) pipeline.ProgressFunc {
	return func(event pipeline.ProgressEvent) {
		switch event.Type {
		case pipeline.ProgressChunked:
			fmt.Fprintf(stderr, "parsing %d chunks\n", event.Total)
		case pipeline.ProgressFailed:
			fmt.Fprintf(stderr, "chunk %d failed: %s\n", event.ChunkIndex, pagesift.ErrorMessage(event.Err))
		}
	}
}
