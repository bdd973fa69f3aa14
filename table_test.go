package pagesift_test

import (
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialize_HeadersInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	merged := &pagesift.MergedResult{Records: []pagesift.MergedRecord{
		{Record: record("name", "a", "price", "1"), Chunks: []int{0}},
		{Record: record("price", "2", "rating", "5"), Chunks: []int{1}},
	}}

	table := pagesift.Materialize(merged)

	assert.Equal(t, []string{"name", "price", "rating"}, table.Headers)
}

func TestMaterialize_FillsMissingFields(t *testing.T) {
	t.Parallel()

	merged := &pagesift.MergedResult{Records: []pagesift.MergedRecord{
		{Record: record("name", "a", "price", "1"), Chunks: []int{0}},
		{Record: record("rating", "5"), Chunks: []int{1}},
	}}

	table := pagesift.Materialize(merged)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"a", "1", ""}, table.Rows[0])
	assert.Equal(t, []string{"", "", "5"}, table.Rows[1])
	for _, row := range table.Rows {
		assert.Len(t, row, len(table.Headers))
	}
}

func TestMaterialize_Empty(t *testing.T) {
	t.Parallel()

	table := pagesift.Materialize(&pagesift.MergedResult{})
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)

	table = pagesift.Materialize(nil)
	assert.Empty(t, table.Headers)
	assert.Empty(t, table.Rows)
}
