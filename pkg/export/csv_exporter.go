package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// Column maps a row key to the heading printed for it.
type Column struct {
	Key    string
	Header string
}

// Table is a titled, column-ordered set of rows ready for rendering.
type Table struct {
	Title   string
	Columns []Column
	Rows    []map[string]string
}

func (t Table) headers() []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = col.Header
		if out[i] == "" {
			out[i] = col.Key
		}
	}
	return out
}

func (t Table) record(row map[string]string) []string {
	out := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		out[i] = row[col.Key]
	}
	return out
}

// CSVExporter renders tables as RFC 4180 CSV.
type CSVExporter struct{}

// NewCSVExporter builds a CSV exporter.
func NewCSVExporter() *CSVExporter {
	return &CSVExporter{}
}

// ContentType returns the MIME type of rendered output.
func (e *CSVExporter) ContentType() string { return "text/csv; charset=utf-8" }

// Extension returns the file extension of rendered output.
func (e *CSVExporter) Extension() string { return "csv" }

// Render produces CSV encoded bytes for the table.
func (e *CSVExporter) Render(table Table) ([]byte, error) {
	if len(table.Columns) == 0 {
		return nil, fmt.Errorf("csv requires at least one column")
	}
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	if err := writer.Write(table.headers()); err != nil {
		return nil, fmt.Errorf("write csv headers: %w", err)
	}
	for _, row := range table.Rows {
		if err := writer.Write(table.record(row)); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
