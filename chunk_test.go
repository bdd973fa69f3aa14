package pagesift_test

import (
	"strings"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitChunks_SentenceBoundaries(t *testing.T) {
	t.Parallel()

	chunks, err := pagesift.SplitChunks("A. B. C.", 4, 0)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, "A. ", chunks[0].Text)
	assert.Equal(t, "B. ", chunks[1].Text)
	assert.Equal(t, "C.", chunks[2].Text)
	for i, c := range chunks {
		assert.Equal(t, i, c.Index)
	}
}

func TestSplitChunks_ReconstructsInput(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"A. B. C.",
		"hello world foo",
		"one sentence without any terminator at all just words",
		"Short. Then a much longer sentence that will need several cuts to fit! And one more?",
		"no-spaces-or-terminators-in-this-one-at-all-just-a-long-token",
		"unicode: żółć and émojis 🙂 mixed into the text. Final.",
	}

	for _, input := range inputs {
		for _, maxSize := range []int{4, 7, 16, 64} {
			chunks, err := pagesift.SplitChunks(input, maxSize, 0)
			require.NoError(t, err)

			var sb strings.Builder
			for i, c := range chunks {
				assert.Equal(t, i, c.Index)
				assert.LessOrEqual(t, len(c.Text), maxSize)
				sb.WriteString(c.Text)
			}
			assert.Equal(t, input, sb.String(), "maxSize=%d input=%q", maxSize, input)
		}
	}
}

func TestSplitChunks_Deterministic(t *testing.T) {
	t.Parallel()

	input := "First sentence here. Second sentence follows! Third one asks? Fourth ends."

	a, err := pagesift.SplitChunks(input, 25, 5)
	require.NoError(t, err)
	b, err := pagesift.SplitChunks(input, 25, 5)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestSplitChunks_WhitespaceFallback(t *testing.T) {
	t.Parallel()

	chunks, err := pagesift.SplitChunks("hello world foo", 8, 0)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, "hello ", chunks[0].Text)
	assert.Equal(t, "world ", chunks[1].Text)
	assert.Equal(t, "foo", chunks[2].Text)
}

func TestSplitChunks_HardCut(t *testing.T) {
	t.Parallel()

	chunks, err := pagesift.SplitChunks("abcdefgh", 3, 0)
	require.NoError(t, err)

	require.Len(t, chunks, 3)
	assert.Equal(t, "abc", chunks[0].Text)
	assert.Equal(t, "def", chunks[1].Text)
	assert.Equal(t, "gh", chunks[2].Text)
}

func TestSplitChunks_HardCutIsRuneAligned(t *testing.T) {
	t.Parallel()

	chunks, err := pagesift.SplitChunks("ééééé", 3, 0)
	require.NoError(t, err)

	var sb strings.Builder
	for _, c := range chunks {
		assert.Equal(t, "é", c.Text)
		sb.WriteString(c.Text)
	}
	assert.Equal(t, "ééééé", sb.String())
}

func TestSplitChunks_Overlap(t *testing.T) {
	t.Parallel()

	chunks, err := pagesift.SplitChunks("aaaa bbbb cccc", 10, 3)
	require.NoError(t, err)

	require.Len(t, chunks, 2)
	assert.Equal(t, "aaaa bbbb ", chunks[0].Text)
	assert.Equal(t, "bb cccc", chunks[1].Text)
	// The second chunk starts with the tail of the first.
	assert.True(t, strings.HasSuffix(chunks[0].Text, chunks[1].Text[:3]))
}

func TestSplitChunks_InvalidArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		maxSize int
		overlap int
	}{
		{"empty text", "", 10, 0},
		{"zero max size", "abc", 0, 0},
		{"negative overlap", "abc", 10, -1},
		{"overlap equals max size", "abc", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := pagesift.SplitChunks(tt.text, tt.maxSize, tt.overlap)
			require.Error(t, err)
			assert.Equal(t, pagesift.EINVALID, pagesift.ErrorCode(err))
		})
	}
}
