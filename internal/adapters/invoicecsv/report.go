package invoicecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/partslane/pricecheck/internal/domain/reconciler"
)

// reportHeader matches the download produced by the original tool.
var reportHeader = []string{
	"Brand",
	"Part No",
	"Root Part No",
	"MRP",
	"GST%",
	"Expected List Price",
	"Supplier Price",
	"Remark",
}

// WriteReport serializes classified rows in input order. Monetary values are
// written with two decimal places; rows without a catalog entry leave the
// catalog-derived fields empty.
func WriteReport(w io.Writer, records []reconciler.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}

	for _, r := range records {
		// MRP validity doubles as the "has catalog entry" signal.
		mrp, gst, expected := "", "", ""
		if r.MRP.Valid {
			mrp = r.MRP.Decimal.StringFixed(2)
			gst = strconv.Itoa(r.GSTPercent)
		}
		if r.ExpectedListPrice.Valid {
			expected = r.ExpectedListPrice.Decimal.StringFixed(2)
		}

		row := []string{
			r.Brand,
			r.PartNo,
			r.RootPartNo,
			mrp,
			gst,
			expected,
			r.SupplierPrice.StringFixed(2),
			r.Remark,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
