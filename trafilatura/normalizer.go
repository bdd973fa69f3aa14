// Package trafilatura provides a pagesift.Normalizer that extracts
// only the main article content from a page, discarding navigation,
// sidebars, and other boilerplate. Use it for noisy pages where the
// default goquery normalizer keeps too much.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/pagesift/pagesift"
)

// Ensure Normalizer implements pagesift.Normalizer at compile time.
var _ pagesift.Normalizer = (*Normalizer)(nil)

// Normalizer wraps go-trafilatura to extract main content text.
type Normalizer struct{}

// NewNormalizer creates a new Normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns the main content of the page as plain text.
func (n *Normalizer) Normalize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", pagesift.Errorf(pagesift.EINVALID, "empty markup")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", pagesift.Errorf(pagesift.EINVALID, "failed to extract content: %v", err)
	}

	text := strings.TrimSpace(result.ContentText)
	if text == "" {
		return "", pagesift.Errorf(pagesift.EINVALID, "markup contains no text content")
	}
	return text, nil
}
