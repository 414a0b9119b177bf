package dto

import (
	"time"

	"github.com/partslane/pricecheck/internal/domain/reconciler"
)

// HealthResponse is returned by the health probe.
type HealthResponse struct {
	Status string `json:"status"`
}

// NewHealthResponse creates a healthy response.
func NewHealthResponse() HealthResponse {
	return HealthResponse{Status: "healthy"}
}

// CatalogStatsResponse describes the loaded master price list.
type CatalogStatsResponse struct {
	Entries  int       `json:"entries"`
	Brands   int       `json:"brands"`
	LoadedAt time.Time `json:"loaded_at"`
}

// ReconcileResponse carries the full outcome of one reconciliation run.
// Runs are not persisted; the response is the only artifact.
type ReconcileResponse struct {
	RunID   string                  `json:"run_id"`
	Summary reconciler.Summary      `json:"summary"`
	Records []reconciler.Record     `json:"records"`
	Skipped []reconciler.RowWarning `json:"skipped,omitempty"`
}
