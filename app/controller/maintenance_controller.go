package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/service"
)

// MaintenanceController handles the bulk catalog operations: snapshot
// reconciliation, CSV import, and full reset. Bulk endpoints always report
// aggregate counts; one bad row never aborts the batch.
type MaintenanceController struct {
	reconcileService service.ReconcileServiceInterface
	importService    service.ImportServiceInterface
	repository       repository.CatalogRepositoryInterface
}

// NewMaintenanceController creates a new MaintenanceController
func NewMaintenanceController(
	reconcileService service.ReconcileServiceInterface,
	importService service.ImportServiceInterface,
	repo repository.CatalogRepositoryInterface,
) *MaintenanceController {
	return &MaintenanceController{
		reconcileService: reconcileService,
		importService:    importService,
		repository:       repo,
	}
}

// Reconcile handles POST /items/reconcile
// The caller sends the SKU snapshot it loaded plus its edited rows; SKUs
// missing from the edited rows are deleted. Rows with a blank SKU are draft
// rows and are ignored entirely.
func (c *MaintenanceController) Reconcile(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Reconcile: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Reconcile: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result := c.reconcileService.Reconcile(r.Context(), req.Original, req.Edited)
	writeJSON(w, http.StatusOK, result)
}

// ImportCSV handles POST /items/import with a multipart "file" field
func (c *MaintenanceController) ImportCSV(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ImportCSV: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer file.Close()

	result, err := c.importService.ImportCSV(r.Context(), file)
	if err != nil {
		log.Printf("❌ ImportCSV: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Reset handles POST /admin/reset — deletes the entire catalog in batches.
// Destructive and unrecoverable; the UI gates this behind a confirmation.
func (c *MaintenanceController) Reset(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Reset: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	deleted, err := c.repository.DeleteAll(r.Context())
	if err != nil {
		log.Printf("❌ Reset: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ResetResponse{Deleted: deleted})
}
