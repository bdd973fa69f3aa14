// Package pipeline orchestrates the extraction pipeline: fetch,
// normalize, chunk, parallel parse, merge, materialize. It owns the
// caller-level policies the core components leave out: retry with
// backoff, per-provider rate limiting, and bounded concurrency.
package pipeline

import (
	"context"
	"time"

	"github.com/pagesift/pagesift"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when the corresponding Pipeline field is zero.
const (
	DefaultChunkSize   = 6000
	DefaultConcurrency = 4
)

// Pipeline runs one extraction request end to end. All fields are
// read-only during Run; the pipeline holds no state between requests
// and every Result is owned by the caller.
type Pipeline struct {
	Fetcher    pagesift.Fetcher
	Normalizer pagesift.Normalizer
	Parser     pagesift.Parser

	// Provider is the parse backend identity, used for rate limiting
	// and for attributing aborted chunks.
	Provider pagesift.ParseProvider

	// ChunkSize and Overlap configure text partitioning.
	ChunkSize int
	Overlap   int

	// Concurrency bounds in-flight parse calls.
	Concurrency int

	// ParseTimeout bounds each chunk's parse call. An overrun fails
	// that chunk with ETIMEOUT without disturbing siblings. Zero
	// means no per-chunk deadline.
	ParseTimeout time.Duration

	// RetryDelays are the backoff delays applied around fetch and
	// parse calls for transient failures. Nil means no retries.
	RetryDelays []time.Duration

	// Limiter, if set, throttles parse calls per provider identity.
	Limiter *ProviderLimiter

	// Policy configures record deduplication during merge.
	Policy pagesift.MergePolicy

	// Progress, if set, receives events as the request proceeds.
	Progress ProgressFunc
}

// Result is the complete outcome of one request.
type Result struct {
	Document *pagesift.RawDocument
	Text     string
	Chunks   []pagesift.Chunk
	Parsed   []pagesift.ParseResult
	Merged   *pagesift.MergedResult
	Table    *pagesift.Table
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressFetched ProgressType = iota
	ProgressChunked
	ProgressParsed
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a request.
type ProgressEvent struct {
	Type       ProgressType
	ChunkIndex int
	Completed  int
	Total      int
	Err        error
}

// ProgressFunc is a callback for reporting progress. It is always
// invoked from a single goroutine.
type ProgressFunc func(event ProgressEvent)

// Run executes one extraction request. A fetch failure aborts the
// request immediately; per-chunk parse failures are recorded and the
// request proceeds to merge with whatever succeeded. The request as a
// whole fails only on the fetch error or when every chunk failed.
func (p *Pipeline) Run(ctx context.Context, url, instructions string) (*Result, error) {
	doc, err := Retry(ctx, p.RetryDelays, func(ctx context.Context) (*pagesift.RawDocument, error) {
		return p.Fetcher.Fetch(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	p.emit(ProgressEvent{Type: ProgressFetched})

	text, err := p.Normalizer.Normalize(doc.HTML)
	if err != nil {
		return nil, err
	}

	chunks, err := pagesift.SplitChunks(text, p.chunkSize(), p.Overlap)
	if err != nil {
		return nil, err
	}
	p.emit(ProgressEvent{Type: ProgressChunked, Total: len(chunks)})

	results := p.parseAll(ctx, chunks, instructions)

	merged, err := pagesift.Merge(results, p.Policy)
	if err != nil {
		return nil, err
	}

	p.emit(ProgressEvent{Type: ProgressFinished, Completed: len(chunks), Total: len(chunks)})

	return &Result{
		Document: doc,
		Text:     text,
		Chunks:   chunks,
		Parsed:   results,
		Merged:   merged,
		Table:    pagesift.Materialize(merged),
	}, nil
}

// parseAll dispatches chunks to a bounded worker pool. Workers write
// disjoint result slots keyed by chunk index, so merge determinism
// never depends on completion order. A failed or aborted chunk never
// cancels its siblings.
func (p *Pipeline) parseAll(ctx context.Context, chunks []pagesift.Chunk, instructions string) []pagesift.ParseResult {
	results := make([]pagesift.ParseResult, len(chunks))
	resultCh := make(chan pagesift.ParseResult, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency())

	go func() {
		for _, chunk := range chunks {
			g.Go(func() error {
				resultCh <- p.parseChunk(gctx, chunk, instructions)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for res := range resultCh {
		completed++
		results[res.ChunkIndex] = res

		event := ProgressEvent{
			Type:       ProgressParsed,
			ChunkIndex: res.ChunkIndex,
			Completed:  completed,
			Total:      len(chunks),
		}
		if !res.Success {
			event.Type = ProgressFailed
			event.Err = res.Err
		}
		p.emit(event)
	}

	return results
}

// parseChunk parses one chunk, applying the rate limiter and the
// retry policy for transient failures.
func (p *Pipeline) parseChunk(ctx context.Context, chunk pagesift.Chunk, instructions string) pagesift.ParseResult {
	attempts := len(p.RetryDelays) + 1

	var res pagesift.ParseResult
	for attempt := 0; ; attempt++ {
		res = p.parseOnce(ctx, chunk, instructions)
		if res.Success || attempt >= attempts-1 || !Retriable(res.Err) {
			return res
		}
		select {
		case <-ctx.Done():
			return res
		case <-time.After(p.RetryDelays[attempt]):
		}
	}
}

// parseOnce performs a single parse attempt under the per-chunk
// deadline. An aborted call is reported as an ETIMEOUT failure for
// this unit only.
func (p *Pipeline) parseOnce(ctx context.Context, chunk pagesift.Chunk, instructions string) pagesift.ParseResult {
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, string(p.Provider)); err != nil {
			return p.abortedResult(chunk, err)
		}
	}

	pctx := ctx
	if p.ParseTimeout > 0 {
		var cancel context.CancelFunc
		pctx, cancel = context.WithTimeout(ctx, p.ParseTimeout)
		defer cancel()
	}

	res, err := p.Parser.Parse(pctx, chunk, instructions)
	if err != nil {
		return p.abortedResult(chunk, err)
	}
	return res
}

func (p *Pipeline) abortedResult(chunk pagesift.Chunk, err error) pagesift.ParseResult {
	return pagesift.ParseResult{
		ChunkIndex: chunk.Index,
		Provider:   p.Provider,
		Success:    false,
		Err:        pagesift.Errorf(pagesift.ETIMEOUT, "parse of chunk %d aborted: %v", chunk.Index, err),
	}
}

func (p *Pipeline) chunkSize() int {
	if p.ChunkSize > 0 {
		return p.ChunkSize
	}
	return DefaultChunkSize
}

func (p *Pipeline) concurrency() int {
	if p.Concurrency > 0 {
		return p.Concurrency
	}
	return DefaultConcurrency
}

func (p *Pipeline) emit(event ProgressEvent) {
	if p.Progress != nil {
		p.Progress(event)
	}
}
