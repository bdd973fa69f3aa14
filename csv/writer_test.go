package csv_test

import (
	"bytes"
	"testing"

	"github.com/pagesift/pagesift"
	"github.com/pagesift/pagesift/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteTable(t *testing.T) {
	t.Parallel()

	table := &pagesift.Table{
		Headers: []string{"name", "price"},
		Rows: [][]string{
			{"Widget", "9.99"},
			{"Gadget", "19.99"},
		},
	}

	var buf bytes.Buffer
	err := csv.NewWriter().WriteTable(&buf, table)
	require.NoError(t, err)
	assert.Equal(t, "name,price\nWidget,9.99\nGadget,19.99\n", buf.String())
}

func TestWriter_WriteTable_QuotesSpecialCharacters(t *testing.T) {
	t.Parallel()

	table := &pagesift.Table{
		Headers: []string{"name", "note"},
		Rows: [][]string{
			{"Widget, Large", "line one\nline two"},
		},
	}

	var buf bytes.Buffer
	err := csv.NewWriter().WriteTable(&buf, table)
	require.NoError(t, err)
	assert.Equal(t, "name,note\n\"Widget, Large\",\"line one\nline two\"\n", buf.String())
}

func TestWriter_WriteTable_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, csv.NewWriter().WriteTable(&buf, nil))
	require.NoError(t, csv.NewWriter().WriteTable(&buf, &pagesift.Table{}))
	assert.Empty(t, buf.String())
}
