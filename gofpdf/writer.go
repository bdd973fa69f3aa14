// Package gofpdf renders extraction tables as PDF documents using
// github.com/jung-kurt/gofpdf.
package gofpdf

import (
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/pagesift/pagesift"
)

const (
	pageMargin = 10.0
	rowHeight  = 8.0
	fontSize   = 9.0
)

var _ pagesift.TableWriter = (*Writer)(nil)

// Writer implements pagesift.TableWriter for PDF output. Tables are
// rendered in landscape orientation with evenly sized columns.
type Writer struct{}

// NewWriter creates a new PDF table writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteTable renders the table and writes the finished document to w.
// A nil or empty table produces an empty document.
func (wr *Writer) WriteTable(w io.Writer, t *pagesift.Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	if t != nil && len(t.Headers) > 0 {
		pageWidth, _ := pdf.GetPageSize()
		colWidth := (pageWidth - 2*pageMargin) / float64(len(t.Headers))

		pdf.SetFont("Helvetica", "B", fontSize)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range t.Headers {
			pdf.CellFormat(colWidth, rowHeight, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", fontSize)
		for _, row := range t.Rows {
			for _, cell := range row {
				pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
	}

	if err := pdf.Output(w); err != nil {
		return pagesift.Errorf(pagesift.EINTERNAL, "failed to render pdf: %v", err)
	}
	return nil
}
