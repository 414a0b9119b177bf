package cli

import "flag"

// ReconcileFlags are the flags for the batch reconcile command.
type ReconcileFlags struct {
	ConfigPath  string
	CatalogPath string
	InvoicePath string
	OutPath     string
	Verbose     bool
}

// ParseReconcileFlags parses reconcile flags from the command line.
func ParseReconcileFlags() ReconcileFlags {
	var flags ReconcileFlags
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&flags.CatalogPath, "catalog", "", "Path to catalog JSON (overrides config)")
	flag.StringVar(&flags.InvoicePath, "invoice", "", "Path to supplier invoice CSV")
	flag.StringVar(&flags.OutPath, "out", "reconciliation.csv", "Path for the report CSV (- for stdout)")
	flag.BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	flag.Parse()
	return flags
}
