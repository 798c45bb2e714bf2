package controller

import (
	"log"
	"net/http"

	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/service"
)

// WarrantyController handles warranty alert reads
type WarrantyController struct {
	repository repository.CatalogRepositoryInterface
	warranty   *service.WarrantyService
}

// NewWarrantyController creates a new WarrantyController
func NewWarrantyController(repo repository.CatalogRepositoryInterface, warranty *service.WarrantyService) *WarrantyController {
	return &WarrantyController{
		repository: repo,
		warranty:   warranty,
	}
}

// Alerts handles GET /warranty/alerts
// Returns expired and due-soon items, most urgent first.
func (c *WarrantyController) Alerts(w http.ResponseWriter, r *http.Request) {
	items, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ Alerts: Error loading catalog: %v", err)
		writeServiceError(w, err)
		return
	}

	alerts := c.warranty.Alerts(items)
	writeJSON(w, http.StatusOK, alerts)
}
