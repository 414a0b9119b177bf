// Command reconcile checks a supplier invoice against the master price list
// and writes the classified rows as a report CSV.
package main

import (
	"io"
	"os"

	"github.com/partslane/pricecheck/internal/adapters/invoicecsv"
	"github.com/partslane/pricecheck/internal/cli"
	"github.com/partslane/pricecheck/internal/domain/catalog"
	"github.com/partslane/pricecheck/internal/domain/reconciler"
	"github.com/partslane/pricecheck/internal/infrastructure/config"
	"github.com/partslane/pricecheck/internal/observability"
)

func main() {
	flags := cli.ParseReconcileFlags()

	cfg := config.LoadOrEnvFrom(flags.ConfigPath)
	if flags.Verbose {
		cfg.Observability.Logging.Level = "debug"
	}
	logger := observability.NewLogger(cfg.Observability.Logging)

	if flags.InvoicePath == "" {
		logger.Error("missing required flag -invoice")
		os.Exit(1)
	}

	catalogPath := cfg.Catalog.Path
	if flags.CatalogPath != "" {
		catalogPath = flags.CatalogPath
	}

	cat, err := catalog.Load(catalogPath, logger)
	if err != nil {
		logger.Error("failed to load catalog", "error", err)
		os.Exit(1)
	}
	logger.Info("catalog loaded", "path", catalogPath, "entries", cat.Len(), "brands", cat.BrandCount())

	invoiceFile, err := os.Open(flags.InvoicePath)
	if err != nil {
		logger.Error("failed to open invoice", "error", err)
		os.Exit(1)
	}
	lines, err := invoicecsv.ParseInvoice(invoiceFile)
	_ = invoiceFile.Close()
	if err != nil {
		logger.Error("invalid invoice file", "error", err)
		os.Exit(1)
	}

	engine := reconciler.New(cat, logger)
	result := engine.ProcessInvoice(lines)

	var out io.Writer = os.Stdout
	if flags.OutPath != "-" {
		f, err := os.Create(flags.OutPath)
		if err != nil {
			logger.Error("failed to create report", "error", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	if err := invoicecsv.WriteReport(out, result.Records); err != nil {
		logger.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	for _, w := range result.Skipped {
		logger.Warn("row skipped", "row", w.Row, "part_no", w.PartNo, "reason", w.Reason)
	}
	logger.Info("reconciliation complete",
		"total", result.Summary.Total,
		"matched", result.Summary.Matched,
		"mismatched", result.Summary.Mismatched,
		"not_found", result.Summary.NotFound,
		"possible_match", result.Summary.PossibleMatch,
		"skipped", len(result.Skipped))
}
