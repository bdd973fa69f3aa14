package mock

import (
	"io"

	"github.com/pagesift/pagesift"
)

var _ pagesift.TableWriter = (*TableWriter)(nil)

// TableWriter is a mock implementation of pagesift.TableWriter.
type TableWriter struct {
	WriteTableFn func(w io.Writer, t *pagesift.Table) error
}

func (tw *TableWriter) WriteTable(w io.Writer, t *pagesift.Table) error {
	return tw.WriteTableFn(w, t)
}
