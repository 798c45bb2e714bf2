package router

import (
	"net/http"
	"strings"

	"github.com/keapril/WebInventory/app/controller"
)

// Controllers bundles every HTTP controller for route registration
type Controllers struct {
	Item        *controller.ItemController
	Stock       *controller.StockController
	Maintenance *controller.MaintenanceController
	Image       *controller.ImageController
	Ledger      *controller.LedgerController
	Warranty    *controller.WarrantyController
	Report      *controller.ReportController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all routes on the default mux
func SetupRoutes(c *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Catalog collection: list and add
	http.HandleFunc("/items", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			c.Item.List(w, r)
		case http.MethodPost:
			c.Item.Add(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Overview metrics
	http.HandleFunc("/items/summary", c.Item.Summary)

	// Stock movement (receive/issue)
	http.HandleFunc("/items/stock", c.Stock.ApplyMovement)

	// Bulk-edit reconciliation and CSV import
	http.HandleFunc("/items/reconcile", c.Maintenance.Reconcile)
	http.HandleFunc("/items/import", c.Maintenance.ImportCSV)

	// Single item by SKU - GET/PUT/DELETE, plus POST {sku}/image
	http.HandleFunc("/items/", func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/items/")

		// Image upload: POST /items/{sku}/image
		if strings.HasSuffix(rest, "/image") {
			if r.Method != http.MethodPost {
				http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
				return
			}
			sku := strings.TrimSuffix(rest, "/image")
			if sku == "" {
				http.Error(w, "Not found", http.StatusNotFound)
				return
			}
			c.Image.Upload(w, r, sku)
			return
		}

		sku := rest
		if sku == "" || strings.Contains(sku, "/") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		switch r.Method {
		case http.MethodGet:
			c.Item.Get(w, r, sku)
		case http.MethodPut:
			c.Item.Update(w, r, sku)
		case http.MethodDelete:
			c.Item.Delete(w, r, sku)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Batch image upload (filename = SKU)
	http.HandleFunc("/images/batch", c.Image.BatchUpload)

	// Movement log
	http.HandleFunc("/ledger", c.Ledger.Recent)
	http.HandleFunc("/ledger/export", c.Ledger.Export)

	// Warranty alerts
	http.HandleFunc("/warranty/alerts", c.Warranty.Alerts)

	// Printable inventory report
	http.HandleFunc("/reports/inventory", c.Report.Render)
	http.HandleFunc("/reports/inventory.pdf", c.Report.PDF)

	// Full catalog reset
	http.HandleFunc("/admin/reset", c.Maintenance.Reset)
}
