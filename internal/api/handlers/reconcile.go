package handlers

import (
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/partslane/pricecheck/internal/adapters/invoicecsv"
	"github.com/partslane/pricecheck/internal/api/dto"
	"github.com/partslane/pricecheck/internal/domain/reconciler"
)

// invoiceFormField is the multipart field carrying the invoice CSV.
const invoiceFormField = "invoice"

// ReconcileHandler handles invoice reconciliation requests.
type ReconcileHandler struct {
	engine *reconciler.Engine
	logger *slog.Logger
}

// NewReconcileHandler creates a new reconcile handler.
func NewReconcileHandler(engine *reconciler.Engine, logger *slog.Logger) *ReconcileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReconcileHandler{
		engine: engine,
		logger: logger,
	}
}

// Reconcile handles POST /api/reconcile - runs the uploaded invoice against
// the catalog and returns the classified rows as JSON.
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	runID := uuid.NewString()
	h.logger.Info("reconciliation run complete",
		"run_id", runID,
		"total", result.Summary.Total,
		"matched", result.Summary.Matched,
		"mismatched", result.Summary.Mismatched,
		"not_found", result.Summary.NotFound,
		"possible_match", result.Summary.PossibleMatch,
		"skipped", len(result.Skipped))

	c.JSON(http.StatusOK, dto.ReconcileResponse{
		RunID:   runID,
		Summary: result.Summary,
		Records: result.Records,
		Skipped: result.Skipped,
	})
}

// Export handles POST /api/reconcile/export - same input as Reconcile, but
// responds with the report CSV as a download.
func (h *ReconcileHandler) Export(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	runID := uuid.NewString()
	filename := fmt.Sprintf("reconciliation-%s.csv", runID)
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(http.StatusOK)

	if err := invoicecsv.WriteReport(c.Writer, result.Records); err != nil {
		// Headers are already out; all we can do is log.
		h.logger.Error("failed to stream report", "run_id", runID, "error", err)
	}
}

// run parses the uploaded invoice and processes it. On failure it writes the
// error response and returns ok=false.
func (h *ReconcileHandler) run(c *gin.Context) (*reconciler.Result, bool) {
	file, err := c.FormFile(invoiceFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError("invoice file is required"))
		return nil, false
	}

	f, err := file.Open()
	if err != nil {
		h.logger.Error("failed to open upload", "error", err)
		c.JSON(http.StatusInternalServerError, dto.InternalError())
		return nil, false
	}
	defer func(f multipart.File) { _ = f.Close() }(f)

	lines, err := invoicecsv.ParseInvoice(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BadRequestError(err.Error()))
		return nil, false
	}

	return h.engine.ProcessInvoice(lines), true
}
