// Command catalog-convert turns the master price list workbook into the
// catalog JSON consumed by the reconcile and api commands.
//
// Expected workbook headers: Brand, Part No, Root Part No, MRP, GST%.
// Rows with an empty part number or non-numeric MRP/GST are dropped.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/partslane/pricecheck/internal/domain/catalog"
)

func main() {
	var (
		inPath  = flag.String("in", "master_price_list.xlsx", "Path to the price list workbook")
		sheet   = flag.String("sheet", "", "Sheet name (default: first sheet)")
		outPath = flag.String("out", "master_price_list.json", "Path for the catalog JSON")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	entries, dropped, err := convert(*inPath, *sheet)
	if err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		logger.Error("failed to encode catalog", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logger.Error("failed to write catalog", "error", err)
		os.Exit(1)
	}

	logger.Info("catalog converted", "rows", len(entries), "dropped", dropped, "out", *outPath)
}

func convert(path, sheet string) ([]catalog.Entry, int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("sheet %q is empty", sheet)
	}

	cols, err := headerIndexes(rows[0])
	if err != nil {
		return nil, 0, err
	}

	entries := make([]catalog.Entry, 0, len(rows)-1)
	dropped := 0
	for _, row := range rows[1:] {
		entry, ok := rowToEntry(row, cols)
		if !ok {
			dropped++
			continue
		}
		entries = append(entries, entry)
	}

	return entries, dropped, nil
}

type columns struct {
	brand, partNo, rootPartNo, mrp, gst int
}

func headerIndexes(header []string) (columns, error) {
	find := func(name string) (int, error) {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("missing column %q in workbook header", name)
	}

	var cols columns
	var err error
	if cols.brand, err = find("Brand"); err != nil {
		return cols, err
	}
	if cols.partNo, err = find("Part No"); err != nil {
		return cols, err
	}
	if cols.rootPartNo, err = find("Root Part No"); err != nil {
		return cols, err
	}
	if cols.mrp, err = find("MRP"); err != nil {
		return cols, err
	}
	if cols.gst, err = find("GST%"); err != nil {
		return cols, err
	}
	return cols, nil
}

func rowToEntry(row []string, cols columns) (catalog.Entry, bool) {
	cell := func(i int) string {
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	entry := catalog.Entry{
		Brand:      cell(cols.brand),
		PartNo:     cell(cols.partNo),
		RootPartNo: cell(cols.rootPartNo),
	}
	if entry.PartNo == "" {
		return catalog.Entry{}, false
	}

	mrp, err := decimal.NewFromString(cell(cols.mrp))
	if err != nil || !mrp.IsPositive() {
		return catalog.Entry{}, false
	}
	entry.MRP = mrp

	// Tolerate "28" as well as "28%".
	gst, err := strconv.Atoi(strings.TrimSuffix(cell(cols.gst), "%"))
	if err != nil {
		return catalog.Entry{}, false
	}
	entry.GSTPercent = gst

	return entry, true
}
