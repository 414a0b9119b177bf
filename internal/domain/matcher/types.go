package matcher

import "github.com/partslane/pricecheck/internal/domain/catalog"

// Kind describes how a part number was resolved against the catalog.
type Kind int

const (
	// KindNone means no catalog entry was close enough.
	KindNone Kind = iota
	// KindExact means the part number equals a catalog identifier.
	KindExact
	// KindPossible means the best fuzzy candidate cleared the threshold.
	KindPossible
)

func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindPossible:
		return "possible"
	default:
		return "none"
	}
}

// Config holds matcher configuration.
type Config struct {
	// SimilarityThreshold is the minimum normalized similarity, in [0,1],
	// for a fuzzy candidate to be reported as a possible match.
	SimilarityThreshold float64
}

// DefaultConfig returns the production matching thresholds.
func DefaultConfig() Config {
	return Config{
		SimilarityThreshold: 0.9,
	}
}

// Match is the outcome of resolving one invoice part number.
type Match struct {
	// Entry is nil when Kind is KindNone.
	Entry *catalog.Entry
	Kind  Kind
	// Score is 1 for exact matches, otherwise the best similarity seen
	// across the catalog (also reported for KindNone).
	Score float64
}
