package matcher

import (
	"io"
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partslane/pricecheck/internal/domain/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func makeEntry(partNo, rootPartNo string) catalog.Entry {
	return catalog.Entry{
		PartNo:     partNo,
		RootPartNo: rootPartNo,
		Brand:      "TVS",
		MRP:        decimal.NewFromInt(1280),
		GSTPercent: 28,
	}
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("A1", "A1"))
	assert.Equal(t, 1.0, Similarity("", ""))
	assert.Equal(t, 0.0, Similarity("abc", ""))
	assert.InDelta(t, 2.0/3.0, Similarity("A1", "A1X"), 0.0001)
	assert.InDelta(t, 12.0/13.0, Similarity("BRK-PAD-00123", "BRK-PAD-00124"), 0.0001)
}

func TestResolve_ExactByPartNo(t *testing.T) {
	cat := catalog.New([]catalog.Entry{
		makeEntry("MK-2041B", "MK-2041"),
		makeEntry("MK-9000", "MK-9000"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("MK-9000")

	require.NotNil(t, match.Entry)
	assert.Equal(t, KindExact, match.Kind)
	assert.Equal(t, "MK-9000", match.Entry.PartNo)
	assert.Equal(t, 1.0, match.Score)
}

func TestResolve_ExactByRootPartNo(t *testing.T) {
	cat := catalog.New([]catalog.Entry{
		makeEntry("MK-2041B", "MK-2041"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("MK-2041")

	require.NotNil(t, match.Entry)
	assert.Equal(t, KindExact, match.Kind)
	assert.Equal(t, "MK-2041B", match.Entry.PartNo)
}

func TestResolve_TrimsInput(t *testing.T) {
	cat := catalog.New([]catalog.Entry{
		makeEntry("MK-2041B", "MK-2041"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("  MK-2041B  ")

	assert.Equal(t, KindExact, match.Kind)
}

func TestResolve_CaseSensitive(t *testing.T) {
	cat := catalog.New([]catalog.Entry{
		makeEntry("MK-2041B", "MK-2041"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	// Lowercasing breaks the exact pass; the fuzzy pass still sees a
	// near-identical string but that is a possible match at best.
	match := m.Resolve("mk-2041b")

	assert.NotEqual(t, KindExact, match.Kind)
}

func TestResolve_FuzzyAboveThreshold(t *testing.T) {
	cat := catalog.New([]catalog.Entry{
		makeEntry("BRK-PAD-00123", "BRK-PAD-00123"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("BRK-PAD-00124")

	require.NotNil(t, match.Entry)
	assert.Equal(t, KindPossible, match.Kind)
	assert.Equal(t, "BRK-PAD-00123", match.Entry.PartNo)
	assert.GreaterOrEqual(t, match.Score, 0.9)
}

func TestResolve_FuzzyBelowThreshold(t *testing.T) {
	cat := catalog.New([]catalog.Entry{
		makeEntry("A1", "A1"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("A1X")

	assert.Nil(t, match.Entry)
	assert.Equal(t, KindNone, match.Kind)
	assert.InDelta(t, 2.0/3.0, match.Score, 0.0001)
}

func TestResolve_TieBreakFirstEntryWins(t *testing.T) {
	// Both entries are distance 1 from the query; catalog order decides.
	cat := catalog.New([]catalog.Entry{
		makeEntry("BRK-PAD-00123", "BRK-PAD-00123"),
		makeEntry("BRK-PAD-00125", "BRK-PAD-00125"),
	}, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("BRK-PAD-00124")

	require.NotNil(t, match.Entry)
	assert.Equal(t, KindPossible, match.Kind)
	assert.Equal(t, "BRK-PAD-00123", match.Entry.PartNo)
}

func TestResolve_EmptyCatalog(t *testing.T) {
	cat := catalog.New(nil, testLogger())
	m := New(cat, DefaultConfig())

	match := m.Resolve("ANYTHING")

	assert.Nil(t, match.Entry)
	assert.Equal(t, KindNone, match.Kind)
	assert.Equal(t, 0.0, match.Score)
}
