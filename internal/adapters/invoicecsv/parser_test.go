package invoicecsv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInvoice(t *testing.T) {
	csv := "Sr,Part No,Description,Supplier Price\n" +
		"1, MK-2041B ,Brake lever,1000\n" +
		"2,ZZZ,Unknown part,abc\n"

	lines, err := ParseInvoice(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Row)
	assert.Equal(t, "MK-2041B", lines[0].PartNo, "part numbers are trimmed")
	assert.Equal(t, "1000", lines[0].SupplierPrice)
	// Unparsable prices pass through raw; the engine decides what to skip.
	assert.Equal(t, "abc", lines[1].SupplierPrice)
}

func TestParseInvoice_CaseInsensitiveHeaders(t *testing.T) {
	csv := "part no,supplier price\nA1,999\n"

	lines, err := ParseInvoice(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "A1", lines[0].PartNo)
}

func TestParseInvoice_BOMHeader(t *testing.T) {
	csv := "\ufeffPart No,Supplier Price\nA1,999\n"

	lines, err := ParseInvoice(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, lines, 1)
}

func TestParseInvoice_MissingColumn(t *testing.T) {
	t.Run("missing part no", func(t *testing.T) {
		_, err := ParseInvoice(strings.NewReader("Supplier Price\n100\n"))
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "Part No")
	})

	t.Run("missing supplier price", func(t *testing.T) {
		_, err := ParseInvoice(strings.NewReader("Part No\nA1\n"))
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), "Supplier Price")
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := ParseInvoice(strings.NewReader(""))
		require.ErrorIs(t, err, ErrMissingColumn)
	})
}

func TestParseInvoice_SkipsBlankRows(t *testing.T) {
	csv := "Part No,Supplier Price\nA1,100\n,\nB2,200\n"

	lines, err := ParseInvoice(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, lines, 2)
	assert.Equal(t, "A1", lines[0].PartNo)
	assert.Equal(t, "B2", lines[1].PartNo)
	// Row numbers reflect file position, the empty row included.
	assert.Equal(t, 2, lines[0].Row)
	assert.Equal(t, 4, lines[1].Row)
}

func TestParseInvoice_ShortRow(t *testing.T) {
	// A row missing the price cell yields an empty price, which the
	// engine later skips with a warning.
	csv := "Part No,Supplier Price\nA1\n"

	lines, err := ParseInvoice(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "", lines[0].SupplierPrice)
}
