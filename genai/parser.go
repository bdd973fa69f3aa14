// Package genai provides a pagesift.Parser backed by Google Gemini.
package genai

import (
	"context"

	"github.com/pagesift/pagesift"
	"google.golang.org/genai"
)

// DefaultModel is used when the config names no model.
const DefaultModel = "gemini-2.5-flash"

// defaultMaxTokens bounds the response when the config sets no limit.
const defaultMaxTokens = 4096

// Ensure Parser implements pagesift.Parser at compile time.
var _ pagesift.Parser = (*Parser)(nil)

// Parser extracts records from chunks using the Gemini API.
type Parser struct {
	client *genai.Client
	cfg    pagesift.ParseConfig
}

// NewParser creates a new Parser. The client is constructed by the
// caller with the resolved API key.
func NewParser(client *genai.Client, cfg pagesift.ParseConfig) *Parser {
	return &Parser{client: client, cfg: cfg}
}

// Model returns the model the parser will call.
func (p *Parser) Model() string {
	if p.cfg.Model != "" {
		return p.cfg.Model
	}
	return DefaultModel
}

// Parse extracts records from one chunk. Backend failures are recorded
// in the result; the error return is reserved for caller cancellation.
func (p *Parser) Parse(ctx context.Context, chunk pagesift.Chunk, instructions string) (pagesift.ParseResult, error) {
	res := pagesift.ParseResult{
		ChunkIndex: chunk.Index,
		Provider:   pagesift.ParseGemini,
	}

	prompt := pagesift.ExtractionPrompt(instructions, chunk)

	result, err := p.client.Models.GenerateContent(ctx, p.Model(),
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(p.cfg),
	)
	if err != nil {
		if ctx.Err() != nil {
			return res, ctx.Err()
		}
		res.Err = pagesift.Errorf(pagesift.EUNAVAILABLE, "gemini request failed: %v", err)
		return res, nil
	}
	if result == nil {
		res.Err = pagesift.Errorf(pagesift.EEMPTY, "gemini returned nil result")
		return res, nil
	}

	records, err := pagesift.DecodeRecords(result.Text())
	if err != nil {
		res.Err = err
		return res, nil
	}

	res.Records = records
	res.Success = true
	return res, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig(cfg pagesift.ParseConfig) *genai.GenerateContentConfig {
	temp := cfg.Temperature
	maxTokens := int32(cfg.MaxTokens)
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract structured data from web page text. Respond only with the requested JSON array or the NO_DATA token, never with prose.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}
}
