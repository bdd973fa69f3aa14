// Package csv writes extraction tables as RFC 4180 CSV.
package csv

import (
	"encoding/csv"
	"io"

	"github.com/pagesift/pagesift"
)

var _ pagesift.TableWriter = (*Writer)(nil)

// Writer implements pagesift.TableWriter for CSV output.
type Writer struct{}

// NewWriter creates a new CSV table writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTable writes the header row followed by every data row. A nil
// or empty table produces no output.
func (wr *Writer) WriteTable(w io.Writer, t *pagesift.Table) error {
	if t == nil || len(t.Headers) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return pagesift.Errorf(pagesift.EINTERNAL, "failed to write csv header: %v", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return pagesift.Errorf(pagesift.EINTERNAL, "failed to write csv row: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return pagesift.Errorf(pagesift.EINTERNAL, "failed to flush csv output: %v", err)
	}
	return nil
}
