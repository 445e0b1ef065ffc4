package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth   = 277.0 // A4 landscape minus margins
	rowHeight   = 7.0
	headerLines = 8.0
)

// PDFExporter renders tables into a landscape A4 document.
type PDFExporter struct {
	now func() time.Time
}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{now: time.Now}
}

// ContentType returns the MIME type of rendered output.
func (e *PDFExporter) ContentType() string { return "application/pdf" }

// Extension returns the file extension of rendered output.
func (e *PDFExporter) Extension() string { return "pdf" }

// Render writes the table with a title, generation timestamp and a header row repeated on every page.
func (e *PDFExporter) Render(table Table) ([]byte, error) {
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("pdf requires at least one column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 12)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headers := table.headers()
	colWidth := pageWidth / float64(len(headers))

	writeHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range headers {
			pdf.CellFormat(colWidth, headerLines, tr(h), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Arial", "", 8)
	}

	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			writeHeader()
		}
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Arial", "I", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "R", false, 0, "")
	})

	pdf.AddPage()
	if table.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, tr(table.Title), "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "", 8)
	pdf.CellFormat(0, 5, "Generated "+e.now().UTC().Format(time.RFC1123), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	writeHeader()
	for _, row := range table.Rows {
		for _, value := range table.record(row) {
			pdf.CellFormat(colWidth, rowHeight, tr(value), "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
