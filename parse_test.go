package pagesift_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRecords_PlainArray(t *testing.T) {
	t.Parallel()

	records, err := pagesift.DecodeRecords(`[{"name":"Go 101","rating":"4.8"},{"name":"Rust 101","rating":"4.6"}]`)
	require.NoError(t, err)

	require.Len(t, records, 2)
	name, ok := records[0].Get("name")
	require.True(t, ok)
	assert.Equal(t, "Go 101", name)
	rating, ok := records[1].Get("rating")
	require.True(t, ok)
	assert.Equal(t, "4.6", rating)
}

func TestDecodeRecords_PreservesKeyOrder(t *testing.T) {
	t.Parallel()

	records, err := pagesift.DecodeRecords(`[{"zeta":"1","alpha":"2","mid":"3"}]`)
	require.NoError(t, err)

	require.Len(t, records, 1)
	var names []string
	for _, f := range records[0].Fields {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestDecodeRecords_MarkdownFence(t *testing.T) {
	t.Parallel()

	input := "```json\n[{\"price\": \"9.99\"}]\n```"

	records, err := pagesift.DecodeRecords(input)
	require.NoError(t, err)

	require.Len(t, records, 1)
	price, _ := records[0].Get("price")
	assert.Equal(t, "9.99", price)
}

func TestDecodeRecords_SurroundingProse(t *testing.T) {
	t.Parallel()

	input := `Here is the extracted data: [{"city":"Oslo"}] Let me know if you need more.`

	records, err := pagesift.DecodeRecords(input)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestDecodeRecords_ScalarCoercion(t *testing.T) {
	t.Parallel()

	records, err := pagesift.DecodeRecords(`[{"count": 42, "active": true, "note": null}]`)
	require.NoError(t, err)

	require.Len(t, records, 1)
	count, _ := records[0].Get("count")
	assert.Equal(t, "42", count)
	active, _ := records[0].Get("active")
	assert.Equal(t, "true", active)
	note, _ := records[0].Get("note")
	assert.Equal(t, "", note)
}

func TestDecodeRecords_NoData(t *testing.T) {
	t.Parallel()

	records, err := pagesift.DecodeRecords("NO_DATA")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeRecords_EmptyResponse(t *testing.T) {
	t.Parallel()

	_, err := pagesift.DecodeRecords("   \n ")
	require.Error(t, err)
	assert.Equal(t, pagesift.EEMPTY, pagesift.ErrorCode(err))
}

func TestDecodeRecords_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"no array", "just some prose with no structure"},
		{"truncated array", `[{"a":"1"},{"b":`},
		{"array of scalars", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := pagesift.DecodeRecords(tt.input)
			require.Error(t, err)
			assert.Equal(t, pagesift.EMALFORMED, pagesift.ErrorCode(err))
		})
	}
}

func TestExtractionPrompt(t *testing.T) {
	t.Parallel()

	prompt := pagesift.ExtractionPrompt("course name and rating", pagesift.Chunk{Index: 0, Text: "Go 101, rated 4.8"})

	assert.Contains(t, prompt, "course name and rating")
	assert.Contains(t, prompt, "Go 101, rated 4.8")
	assert.Contains(t, prompt, pagesift.NoDataToken)
}

func TestRecord_SetReplacesExisting(t *testing.T) {
	t.Parallel()

	var rec pagesift.Record
	rec.Set("name", "a")
	rec.Set("name", "b")

	assert.Equal(t, 1, rec.Len())
	v, _ := rec.Get("name")
	assert.Equal(t, "b", v)
}
