package mock

import (
	"github.com/pagesift/pagesift"
)

var _ pagesift.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of pagesift.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string) (string, error)
}

func (n *Normalizer) Normalize(html string) (string, error) {
	return n.NormalizeFn(html)
}
