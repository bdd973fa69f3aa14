package pagesift

import (
	"unicode"
	"unicode/utf8"
)

// Chunk is a bounded, ordered segment of normalized page text.
// Indices are 0-based and gapless. With no overlap configured,
// concatenating chunk texts in index order reproduces the source text
// exactly.
type Chunk struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
}

// SplitChunks partitions text into ordered chunks of at most maxSize
// bytes. It cuts at the nearest sentence end at or before maxSize,
// falling back to the nearest whitespace and finally to a hard cut
// when the window contains no boundary. Boundary whitespace stays at
// the end of the chunk that contains it, so reconstruction is exact.
//
// overlap repeats up to that many trailing bytes of a chunk at the
// start of the next one, preserving cross-boundary context for
// parsing. The same input and parameters always yield the identical
// partition.
func SplitChunks(text string, maxSize, overlap int) ([]Chunk, error) {
	if text == "" {
		return nil, Errorf(EINVALID, "empty input text")
	}
	if maxSize <= 0 {
		return nil, Errorf(EINVALID, "max chunk size must be positive, got %d", maxSize)
	}
	if overlap < 0 || overlap >= maxSize {
		return nil, Errorf(EINVALID, "overlap must be in [0, maxSize), got %d", overlap)
	}

	var chunks []Chunk
	start := 0
	for start < len(text) {
		end := start + maxSize
		if end >= len(text) {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: text[start:]})
			break
		}

		cut := boundaryCut(text, start, end)
		chunks = append(chunks, Chunk{Index: len(chunks), Text: text[start:cut]})

		next := cut - overlap
		if next <= start {
			next = cut
		}
		start = next
	}

	return chunks, nil
}

// boundaryCut returns the cut position in (start, end] for the chunk
// starting at start, preferring a sentence end, then whitespace, then
// a rune-aligned hard cut at end.
func boundaryCut(text string, start, end int) int {
	// Sentence end: terminator followed by whitespace. The trailing
	// whitespace run (up to end) belongs to the current chunk.
	for i := end - 1; i > start; i-- {
		if !isSentenceEnd(text[i]) || !isSpaceByte(text[i+1]) {
			continue
		}
		cut := i + 1
		for cut < end && isSpaceByte(text[cut]) {
			cut++
		}
		return cut
	}

	// Whitespace: cut after the last space so the next chunk starts at
	// a word.
	for i := end - 1; i > start; i-- {
		if isSpaceByte(text[i]) {
			return i + 1
		}
	}

	// Hard cut, aligned to a rune start.
	cut := end
	for cut > start+1 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return cut
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSpaceByte(b byte) bool {
	return b < utf8.RuneSelf && unicode.IsSpace(rune(b))
}
