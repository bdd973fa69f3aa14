package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    pagesift.Fetcher
	Normalizer pagesift.Normalizer
	Parser     pagesift.Parser
	Provider   pagesift.ParseProvider
	Feeds      pagesift.FeedReader
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Run    RunCmd    `cmd:"" help:"Fetch a page and extract structured records"`
	Scrape ScrapeCmd `cmd:"" help:"Fetch a page and print its normalized text"`
	Feed   FeedCmd   `cmd:"" help:"List the items of an RSS or Atom feed"`
}

// RunCmd is the "run" subcommand.
type RunCmd struct {
	URL          string        `arg:"" help:"Page URL"`
	Instructions string        `arg:"" help:"Description of the records to extract"`
	Fetch        string        `short:"f" default:"direct" help:"Fetch provider (direct, scraperapi, scrapingbee, scrapingdog, zenrows)"`
	Parse        string        `short:"p" default:"openai" help:"Parse provider (openai, groq, gemini)"`
	Model        string        `short:"m" help:"Model name override"`
	RenderJS     bool          `help:"Ask the scraping API to render JavaScript"`
	ContentOnly  bool          `help:"Normalize main article content instead of the full page"`
	ChunkSize    int           `default:"6000" help:"Maximum chunk size in characters"`
	Overlap      int           `default:"0" help:"Chunk overlap in characters"`
	Concurrency  int           `short:"c" default:"4" help:"Concurrent parse limit"`
	Retries      int           `default:"3" help:"Retry attempts for transient failures"`
	RPS          float64       `name:"rps" default:"0" help:"Parse requests per second (0 disables rate limiting)"`
	Timeout      time.Duration `default:"30s" help:"Fetch timeout"`
	ParseTimeout time.Duration `default:"2m" help:"Per-chunk parse timeout"`
	Key          []string      `short:"k" help:"Field names identifying a record for dedup (repeatable)"`
	KeepAll      bool          `help:"Keep conflicting records instead of the first one"`
	Format       string        `short:"o" default:"csv" help:"Output format (csv, pdf)"`
	Output       string        `type:"path" help:"Output file path (default stdout)"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URL         string        `arg:"" help:"Page URL"`
	Fetch       string        `short:"f" default:"direct" help:"Fetch provider (direct, scraperapi, scrapingbee, scrapingdog, zenrows)"`
	RenderJS    bool          `help:"Ask the scraping API to render JavaScript"`
	ContentOnly bool          `help:"Normalize main article content instead of the full page"`
	Timeout     time.Duration `default:"30s" help:"Fetch timeout"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	URL string `arg:"" help:"RSS or Atom feed URL"`
}
