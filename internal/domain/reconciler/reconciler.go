// Package reconciler classifies supplier invoice rows against the master
// price list.
//
// Each row resolves to at most one catalog entry (exact, then fuzzy) and is
// classified by comparing the submitted price with the expected pre-tax list
// price derived from MRP and GST rate. The whole invoice is processed in one
// synchronous pass; rows never affect each other.
package reconciler

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/partslane/pricecheck/internal/domain/catalog"
	"github.com/partslane/pricecheck/internal/domain/matcher"
	"github.com/partslane/pricecheck/internal/domain/pricing"
)

// priceTolerance is the strict bound on |expected - supplier| for a MATCH.
// A difference of exactly 0.01 is NOT MATCH.
var priceTolerance = decimal.RequireFromString("0.01")

// Engine runs invoice reconciliation against one immutable catalog.
type Engine struct {
	matcher *matcher.Matcher
	logger  *slog.Logger
}

// New creates an engine bound to the given catalog.
func New(cat *catalog.Catalog, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		matcher: matcher.New(cat, matcher.DefaultConfig()),
		logger:  logger,
	}
}

// ProcessInvoice classifies every invoice line, preserving input order.
//
// Rows whose supplier price does not parse are skipped and reported in
// Result.Skipped; they do not count towards the summary. All other per-row
// failures are recorded in the row's remark and never abort the run.
func (e *Engine) ProcessInvoice(lines []Line) *Result {
	result := &Result{
		Records: make([]Record, 0, len(lines)),
	}

	for _, line := range lines {
		price, err := parsePrice(line.SupplierPrice)
		if err != nil {
			warning := RowWarning{
				Row:    line.Row,
				PartNo: line.PartNo,
				Reason: fmt.Sprintf("invalid supplier price %q", line.SupplierPrice),
			}
			result.Skipped = append(result.Skipped, warning)
			e.logger.Warn("skipping invoice row",
				"row", line.Row,
				"part_no", line.PartNo,
				"supplier_price", line.SupplierPrice)
			continue
		}

		result.Records = append(result.Records, e.classify(line.PartNo, price, &result.Summary))
		result.Summary.Total++
	}

	return result
}

// classify resolves one part number and produces its record, bumping the
// matching counter.
func (e *Engine) classify(partNo string, price decimal.Decimal, summary *Summary) Record {
	record := Record{
		PartNo:        strings.TrimSpace(partNo),
		SupplierPrice: price,
	}

	match := e.matcher.Resolve(partNo)
	if match.Kind == matcher.KindNone {
		record.Remark = RemarkNotInPriceList
		summary.NotFound++
		return record
	}

	entry := match.Entry
	record.Brand = entry.Brand
	record.RootPartNo = entry.RootPartNo
	record.MRP = decimal.NewNullDecimal(entry.MRP)
	record.GSTPercent = entry.GSTPercent

	expected, err := pricing.ExpectedListPrice(entry.MRP, entry.GSTPercent)
	if err == nil {
		record.ExpectedListPrice = decimal.NewNullDecimal(expected)
	}

	if match.Kind == matcher.KindPossible {
		// The match itself is provisional, so the price comparison is
		// reported but never upgrades or downgrades the remark.
		record.Remark = RemarkPossibleMatch
		summary.PossibleMatch++
		return record
	}

	if err != nil {
		record.Remark = "ERROR: " + err.Error()
		summary.Mismatched++
		return record
	}

	if expected.Sub(price).Abs().LessThan(priceTolerance) {
		record.Remark = RemarkMatch
		summary.Matched++
	} else {
		record.Remark = RemarkNotMatch
		summary.Mismatched++
	}
	return record
}

func parsePrice(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(raw))
}
