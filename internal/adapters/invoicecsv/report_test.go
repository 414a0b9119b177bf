package invoicecsv

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partslane/pricecheck/internal/domain/reconciler"
)

func TestWriteReport(t *testing.T) {
	records := []reconciler.Record{
		{
			Brand:             "TVS",
			PartNo:            "MK-2041B",
			RootPartNo:        "MK-2041",
			MRP:               decimal.NewNullDecimal(decimal.NewFromInt(1280)),
			GSTPercent:        28,
			ExpectedListPrice: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
			SupplierPrice:     decimal.NewFromInt(1000),
			Remark:            reconciler.RemarkMatch,
		},
		{
			PartNo:        "ZZZ",
			SupplierPrice: decimal.RequireFromString("1.5"),
			Remark:        reconciler.RemarkNotInPriceList,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"Brand", "Part No", "Root Part No", "MRP", "GST%",
		"Expected List Price", "Supplier Price", "Remark",
	}, rows[0])

	assert.Equal(t, []string{
		"TVS", "MK-2041B", "MK-2041", "1280.00", "28", "1000.00", "1000.00", "MATCH",
	}, rows[1])

	// Catalog-derived fields stay empty for unmatched parts.
	assert.Equal(t, []string{
		"", "ZZZ", "", "", "", "", "1.50", "NOT IN PRICE LIST",
	}, rows[2])
}

func TestWriteReport_ErrorRemarkRow(t *testing.T) {
	records := []reconciler.Record{
		{
			Brand:         "TVS",
			PartNo:        "A1",
			RootPartNo:    "A1",
			MRP:           decimal.NewNullDecimal(decimal.NewFromInt(1120)),
			GSTPercent:    12,
			SupplierPrice: decimal.NewFromInt(1000),
			Remark:        "ERROR: unsupported GST rate 12%",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// MRP and GST are known even though no expected price exists.
	assert.Equal(t, "1120.00", rows[1][3])
	assert.Equal(t, "12", rows[1][4])
	assert.Equal(t, "", rows[1][5])
	assert.Equal(t, "ERROR: unsupported GST rate 12%", rows[1][7])
}

func TestWriteReport_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}
