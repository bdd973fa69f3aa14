package mock

import (
	"context"

	"github.com/pagesift/pagesift"
)

var _ pagesift.Parser = (*Parser)(nil)

// Parser is a mock implementation of pagesift.Parser.
type Parser struct {
	ParseFn func(ctx context.Context, chunk pagesift.Chunk, instructions string) (pagesift.ParseResult, error)
}

func (p *Parser) Parse(ctx context.Context, chunk pagesift.Chunk, instructions string) (pagesift.ParseResult, error) {
	return p.ParseFn(ctx, chunk, instructions)
}
