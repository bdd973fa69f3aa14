package pagesift

import "io"

// Table is the canonical row/column form of a merged dataset: the sole
// contract consumed by export writers. Rows are equal-shape and
// aligned to Headers; a record missing a field contributes an empty
// cell.
type Table struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Materialize converts a merged result into a table. Headers are the
// union of all field names across records, in first-seen order.
func Materialize(merged *MergedResult) *Table {
	t := &Table{}
	if merged == nil {
		return t
	}

	seen := make(map[string]bool)
	for _, mr := range merged.Records {
		for _, f := range mr.Record.Fields {
			if !seen[f.Name] {
				seen[f.Name] = true
				t.Headers = append(t.Headers, f.Name)
			}
		}
	}

	for _, mr := range merged.Records {
		row := make([]string, len(t.Headers))
		for i, h := range t.Headers {
			row[i], _ = mr.Record.Get(h)
		}
		t.Rows = append(t.Rows, row)
	}

	return t
}

// TableWriter renders a table to an export format.
type TableWriter interface {
	WriteTable(w io.Writer, t *Table) error
}
