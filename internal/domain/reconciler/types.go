package reconciler

import "github.com/shopspring/decimal"

// Remark values attached to reconciled rows. Rows that hit a per-row error
// carry a free-text remark prefixed with "ERROR:" instead.
const (
	RemarkMatch          = "MATCH"
	RemarkNotMatch       = "NOT MATCH"
	RemarkPossibleMatch  = "POSSIBLE MATCH"
	RemarkNotInPriceList = "NOT IN PRICE LIST"
)

// Line is one invoice row as delivered by the upload adapter.
// SupplierPrice is kept as raw text: validating that it parses is part of
// per-row classification, and a bad value skips only its own row.
type Line struct {
	// Row is the 1-based position in the uploaded file, header included.
	Row           int
	PartNo        string
	SupplierPrice string
}

// Record is one classified invoice row. Records appear in the same order as
// the input invoice.
//
// MRP and ExpectedListPrice are null for rows without a catalog entry;
// for those rows Brand and RootPartNo are empty and GSTPercent is zero.
type Record struct {
	Brand             string              `json:"brand"`
	PartNo            string              `json:"part_no"`
	RootPartNo        string              `json:"root_part_no"`
	MRP               decimal.NullDecimal `json:"mrp"`
	GSTPercent        int                 `json:"gst_percent"`
	ExpectedListPrice decimal.NullDecimal `json:"expected_list_price"`
	SupplierPrice     decimal.Decimal     `json:"supplier_price"`
	Remark            string              `json:"remark"`
}

// Summary aggregates the classification counters for one run.
// Matched + Mismatched + NotFound + PossibleMatch == Total; rows with an
// error remark count as mismatched, skipped rows are excluded entirely.
type Summary struct {
	Total         int `json:"total"`
	Matched       int `json:"matched"`
	Mismatched    int `json:"mismatched"`
	NotFound      int `json:"not_found"`
	PossibleMatch int `json:"possible_match"`
}

// RowWarning reports an invoice row that was skipped without aborting the run.
type RowWarning struct {
	Row    int    `json:"row"`
	PartNo string `json:"part_no"`
	Reason string `json:"reason"`
}

// Result is the full outcome of processing one invoice.
type Result struct {
	Records []Record     `json:"records"`
	Summary Summary      `json:"summary"`
	Skipped []RowWarning `json:"skipped,omitempty"`
}
