package pagesift

// Normalizer derives canonical plain text from raw markup.
// Implementations remove script/style/non-visible elements, collapse
// whitespace, and preserve reading order. Normalization is pure:
// no side effects, deterministic for identical input.
type Normalizer interface {
	// Normalize returns the visible text of the markup.
	// Returns EINVALID only if the input cannot be treated as markup
	// at all (empty payload, or markup with no text content).
	Normalize(html string) (string, error)
}
