package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"danielsbarber/services/catalog"
)

type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(catalogSvc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalogSvc}
}

// GetBarbers handles GET /api/barbers.
func (h *CatalogHandler) GetBarbers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"barbers": h.Catalog.Barbers()})
}

// GetServices handles GET /api/services.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services()})
}
