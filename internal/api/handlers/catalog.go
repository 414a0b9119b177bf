package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/partslane/pricecheck/internal/api/dto"
	"github.com/partslane/pricecheck/internal/domain/catalog"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// Stats handles GET /api/catalog/stats.
func (h *CatalogHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.CatalogStatsResponse{
		Entries:  h.catalog.Len(),
		Brands:   h.catalog.BrandCount(),
		LoadedAt: h.catalog.LoadedAt(),
	})
}
