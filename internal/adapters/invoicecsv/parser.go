// Package invoicecsv reads supplier invoice uploads and writes the
// reconciliation report, both as comma-separated text with a header row.
package invoicecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/partslane/pricecheck/internal/domain/reconciler"
)

// Required invoice columns. Header matching is case-insensitive and ignores
// surrounding whitespace; extra columns are ignored.
const (
	ColumnPartNo        = "Part No"
	ColumnSupplierPrice = "Supplier Price"
)

// ErrMissingColumn is wrapped with the column name when a required header is
// absent. This is fatal for the whole file: no rows are processed.
var ErrMissingColumn = errors.New("missing required column")

// ParseInvoice reads an uploaded invoice. Supplier prices are returned as raw
// text; validating them is per-row work that belongs to the engine.
func ParseInvoice(r io.Reader) ([]reconciler.Line, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: %q (empty file)", ErrMissingColumn, ColumnPartNo)
	}
	if err != nil {
		return nil, fmt.Errorf("read invoice header: %w", err)
	}

	partIdx, err := columnIndex(header, ColumnPartNo)
	if err != nil {
		return nil, err
	}
	priceIdx, err := columnIndex(header, ColumnSupplierPrice)
	if err != nil {
		return nil, err
	}

	var lines []reconciler.Line
	row := 1 // header
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read invoice row %d: %w", row+1, err)
		}
		row++

		if isEmptyRow(record) {
			continue
		}

		lines = append(lines, reconciler.Line{
			Row:           row,
			PartNo:        strings.TrimSpace(field(record, partIdx)),
			SupplierPrice: field(record, priceIdx),
		})
	}

	return lines, nil
}

// columnIndex locates a header column, tolerating a UTF-8 BOM on the first
// cell of files exported from spreadsheet tools.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
}

func isEmptyRow(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return record[idx]
}
