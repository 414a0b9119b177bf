// Package matcher resolves invoice part numbers to catalog entries.
//
// Resolution is exact-then-fuzzy:
//   - exact: case-sensitive equality against part_no or root_part_no,
//     first catalog occurrence wins
//   - fuzzy: normalized Levenshtein similarity against every part_no;
//     the best score wins if it clears the threshold
//
// Example usage:
//
//	m := matcher.New(cat, matcher.DefaultConfig())
//	match := m.Resolve("MK-2041B")
//	if match.Kind == matcher.KindExact {
//		// trustworthy catalog entry
//	}
package matcher

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/partslane/pricecheck/internal/domain/catalog"
)

// Matcher resolves part numbers against a fixed catalog.
type Matcher struct {
	catalog *catalog.Catalog
	config  Config
}

// New creates a matcher over the given catalog.
func New(cat *catalog.Catalog, config Config) *Matcher {
	return &Matcher{
		catalog: cat,
		config:  config,
	}
}

// Resolve finds the catalog entry for a part number, if any.
// The fuzzy pass only runs when the exact lookup misses; its best score is
// reported even when nothing clears the threshold.
func (m *Matcher) Resolve(partNo string) Match {
	partNo = strings.TrimSpace(partNo)

	if entry, ok := m.catalog.Lookup(partNo); ok {
		return Match{Entry: entry, Kind: KindExact, Score: 1}
	}

	entries := m.catalog.Entries()
	bestIdx := -1
	bestScore := -1.0
	for i := range entries {
		// Strict > keeps the first entry on ties (stable catalog order).
		if score := Similarity(partNo, entries[i].PartNo); score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestIdx >= 0 && bestScore >= m.config.SimilarityThreshold {
		return Match{Entry: &entries[bestIdx], Kind: KindPossible, Score: bestScore}
	}

	if bestScore < 0 {
		bestScore = 0
	}
	return Match{Kind: KindNone, Score: bestScore}
}

// Similarity computes a normalized edit-distance similarity in [0,1],
// where 1 means identical.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}

	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 1
	}

	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	return 1 - float64(distance)/float64(longest)
}
