// Package catalog holds the master price list used for invoice reconciliation.
//
// The catalog is loaded once at startup from a records-oriented JSON file and
// is immutable afterwards, so a single handle can be shared by concurrent
// readers without locking.
package catalog

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one master price list row.
//
// MRP is the tax-inclusive maximum retail price. GSTPercent is recorded as-is
// at load time; rates outside the supported set surface as per-row errors
// during reconciliation, not as load failures.
type Entry struct {
	PartNo     string          `json:"part_no"`
	RootPartNo string          `json:"root_part_no"`
	Brand      string          `json:"brand"`
	MRP        decimal.Decimal `json:"mrp"`
	GSTPercent int             `json:"gst_percent"`
}

// Catalog is an immutable, ordered price list with an exact-lookup index over
// part numbers and root part numbers.
type Catalog struct {
	entries  []Entry
	index    map[string]int
	brands   map[string]struct{}
	loadedAt time.Time
}

// New builds a catalog from raw entries, applying the same cleaning rules as
// the upstream price list converter: identifiers and brands are trimmed, and
// entries without a part number or with a non-positive MRP are dropped.
//
// Duplicate identifiers keep the first occurrence, so exact lookups behave
// like a stable scan in catalog order.
func New(entries []Entry, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{
		entries:  make([]Entry, 0, len(entries)),
		index:    make(map[string]int, len(entries)*2),
		brands:   make(map[string]struct{}),
		loadedAt: time.Now(),
	}

	dropped := 0
	for _, e := range entries {
		e.PartNo = strings.TrimSpace(e.PartNo)
		e.RootPartNo = strings.TrimSpace(e.RootPartNo)
		e.Brand = strings.TrimSpace(e.Brand)

		if e.PartNo == "" || !e.MRP.IsPositive() {
			dropped++
			continue
		}

		i := len(c.entries)
		c.entries = append(c.entries, e)
		c.brands[e.Brand] = struct{}{}

		for _, key := range identifierKeys(e) {
			if prev, exists := c.index[key]; exists {
				logger.Warn("duplicate part number in catalog, keeping first",
					"part_no", key,
					"kept_row", prev,
					"ignored_row", i)
				continue
			}
			c.index[key] = i
		}
	}

	if dropped > 0 {
		logger.Warn("dropped invalid catalog entries", "count", dropped)
	}

	return c
}

// Load reads the catalog JSON produced by catalog-convert.
// Any failure here is fatal to the caller: no reconciliation may run without
// a catalog.
func Load(path string, logger *slog.Logger) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	return New(entries, logger), nil
}

// identifierKeys returns the distinct lookup keys for an entry.
// RootPartNo frequently equals PartNo; indexing it once keeps the duplicate
// warning meaningful.
func identifierKeys(e Entry) []string {
	if e.RootPartNo == "" || e.RootPartNo == e.PartNo {
		return []string{e.PartNo}
	}
	return []string{e.PartNo, e.RootPartNo}
}

// Lookup resolves an exact part number or root part number.
// The returned entry points into the catalog and must not be mutated.
func (c *Catalog) Lookup(partNo string) (*Entry, bool) {
	i, ok := c.index[partNo]
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// Entries returns the catalog rows in load order. Read-only.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len reports the number of valid entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// BrandCount reports the number of distinct brands.
func (c *Catalog) BrandCount() int {
	return len(c.brands)
}

// LoadedAt reports when the catalog was built.
func (c *Catalog) LoadedAt() time.Time {
	return c.loadedAt
}
