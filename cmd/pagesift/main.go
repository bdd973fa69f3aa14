package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pagesift/pagesift"
	psgenai "github.com/pagesift/pagesift/genai"
	"github.com/pagesift/pagesift/goquery"
	pshttp "github.com/pagesift/pagesift/http"
	psopenai "github.com/pagesift/pagesift/openai"
	pslog "github.com/pagesift/pagesift/slog"
	"github.com/pagesift/pagesift/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesift --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Feeds = pshttp.NewFeedService(nil)

	switch cmd {
	case "run":
		deps.Fetcher, err = buildFetcher(cli.Run.Fetch, cli.Run.RenderJS, cli.Run.Timeout, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Normalizer = buildNormalizer(cli.Run.ContentOnly)
		deps.Provider = pagesift.ParseProvider(cli.Run.Parse)
		deps.Parser, err = buildParser(ctx, deps.Provider, cli.Run.Model, deps.Logger, stderr)
		if err != nil {
			return err
		}
	case "scrape":
		deps.Fetcher, err = buildFetcher(cli.Scrape.Fetch, cli.Scrape.RenderJS, cli.Scrape.Timeout, deps.Logger, stderr)
		if err != nil {
			return err
		}
		deps.Normalizer = buildNormalizer(cli.Scrape.ContentOnly)
	}

	return kongCtx.Run(deps)
}

// buildFetcher wires the fetch provider selected on the command line,
// reading the provider's API key from the environment.
func buildFetcher(name string, renderJS bool, timeout time.Duration, logger *slog.Logger, stderr io.Writer) (pagesift.Fetcher, error) {
	provider := pagesift.FetchProvider(name)

	cfg := pagesift.FetchConfig{
		Timeout:  timeout,
		RenderJS: renderJS,
	}
	if env := fetchKeyEnv(provider); env != "" {
		cfg.APIKey = os.Getenv(env)
		if cfg.APIKey == "" {
			fmt.Fprintf(stderr, "Hint: Set %s to use the %s provider\n", env, provider)
		}
	}

	fetcher, err := pshttp.New(provider, cfg)
	if err != nil {
		return nil, err
	}
	return pslog.NewLoggingFetcher(fetcher, logger), nil
}

func buildNormalizer(contentOnly bool) pagesift.Normalizer {
	if contentOnly {
		return trafilatura.NewNormalizer()
	}
	return goquery.NewNormalizer()
}

// buildParser wires the parse provider selected on the command line.
func buildParser(ctx context.Context, provider pagesift.ParseProvider, model string, logger *slog.Logger, stderr io.Writer) (pagesift.Parser, error) {
	cfg := pagesift.ParseConfig{Model: model}

	var parser pagesift.Parser
	switch provider {
	case pagesift.ParseGemini:
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
			return nil, pagesift.Errorf(pagesift.EAUTH, "GEMINI_API_KEY not set")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		cfg.APIKey = apiKey
		parser = psgenai.NewParser(client, cfg)
	case pagesift.ParseGroq:
		apiKey := os.Getenv("GROQ_API_KEY")
		if apiKey == "" {
			return nil, pagesift.Errorf(pagesift.EAUTH, "GROQ_API_KEY not set")
		}
		cfg.APIKey = apiKey
		parser = psopenai.NewParser(psopenai.NewGroqClient(apiKey), pagesift.ParseGroq, cfg)
	case pagesift.ParseOpenAI:
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, pagesift.Errorf(pagesift.EAUTH, "OPENAI_API_KEY not set")
		}
		cfg.APIKey = apiKey
		parser = psopenai.NewParser(psopenai.NewClient(apiKey), pagesift.ParseOpenAI, cfg)
	default:
		return nil, pagesift.Errorf(pagesift.EINVALID, "unknown parse provider %q", provider)
	}

	return pslog.NewLoggingParser(parser, logger), nil
}

// fetchKeyEnv returns the environment variable holding the API key
// for a fetch provider, or "" for direct fetching.
func fetchKeyEnv(provider pagesift.FetchProvider) string {
	switch provider {
	case pagesift.FetchScraperAPI:
		return "SCRAPERAPI_KEY"
	case pagesift.FetchScrapingBee:
		return "SCRAPINGBEE_KEY"
	case pagesift.FetchScrapingDog:
		return "SCRAPINGDOG_KEY"
	case pagesift.FetchZenRows:
		return "ZENROWS_KEY"
	}
	return ""
}
