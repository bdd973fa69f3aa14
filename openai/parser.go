// Package openai provides pagesift.Parsers backed by OpenAI-compatible
// chat APIs. Groq exposes the same wire format behind a different base
// URL, so both providers share one adapter; the provider identity on
// each ParseResult still tells them apart.
package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/pagesift/pagesift"
	openai "github.com/sashabaranov/go-openai"
)

// Default models when the config names none.
const (
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGroqModel   = "llama-3.3-70b-versatile"
)

// groqBaseURL is Groq's OpenAI-compatible endpoint.
const groqBaseURL = "https://api.groq.com/openai/v1"

// defaultMaxTokens bounds the response when the config sets no limit.
const defaultMaxTokens = 4096

const systemPrompt = "You extract structured data from web page text. " +
	"Respond only with the requested JSON array or the NO_DATA token, never with prose."

// Client is the minimal interface needed to call a chat model. It
// mirrors the CreateChatCompletion method of *openai.Client so any
// OpenAI-compatible backend can be adapted.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient returns a client for the OpenAI API.
func NewClient(apiKey string) *openai.Client {
	return openai.NewClient(apiKey)
}

// NewGroqClient returns a client for Groq's OpenAI-compatible API.
func NewGroqClient(apiKey string) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = groqBaseURL
	return openai.NewClientWithConfig(config)
}

// Ensure Parser implements pagesift.Parser at compile time.
var _ pagesift.Parser = (*Parser)(nil)

// Parser extracts records from chunks using an OpenAI-compatible chat
// API.
type Parser struct {
	client   Client
	provider pagesift.ParseProvider
	cfg      pagesift.ParseConfig
}

// NewParser creates a new Parser. provider should be ParseOpenAI or
// ParseGroq and decides the default model.
func NewParser(client Client, provider pagesift.ParseProvider, cfg pagesift.ParseConfig) *Parser {
	return &Parser{client: client, provider: provider, cfg: cfg}
}

// Model returns the model the parser will call.
func (p *Parser) Model() string {
	if p.cfg.Model != "" {
		return p.cfg.Model
	}
	if p.provider == pagesift.ParseGroq {
		return DefaultGroqModel
	}
	return DefaultOpenAIModel
}

// Parse extracts records from one chunk. Backend failures are recorded
// in the result; the error return is reserved for caller cancellation.
func (p *Parser) Parse(ctx context.Context, chunk pagesift.Chunk, instructions string) (pagesift.ParseResult, error) {
	res := pagesift.ParseResult{
		ChunkIndex: chunk.Index,
		Provider:   p.provider,
	}

	maxTokens := p.cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.Model(),
		Temperature: p.cfg.Temperature,
		MaxTokens:   maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: pagesift.ExtractionPrompt(instructions, chunk)},
		},
	})
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Err = requestError(p.provider, err)
		return res, nil
	}

	if len(resp.Choices) == 0 {
		res.Err = pagesift.Errorf(pagesift.EEMPTY, "%s returned no choices", p.provider)
		return res, nil
	}

	records, err := pagesift.DecodeRecords(resp.Choices[0].Message.Content)
	if err != nil {
		res.Err = err
		return res, nil
	}

	res.Records = records
	res.Success = true
	return res, nil
}

// requestError maps API failures onto the shared taxonomy.
func requestError(provider pagesift.ParseProvider, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return pagesift.Errorf(pagesift.EAUTH, "%s rejected the credential: %v", provider, err)
		case http.StatusTooManyRequests:
			return pagesift.Errorf(pagesift.ERATELIMITED, "%s rate limit hit: %v", provider, err)
		}
	}
	return pagesift.Errorf(pagesift.EUNAVAILABLE, "%s request failed: %v", provider, err)
}
