package controller

import (
	"log"
	"net/http"

	"github.com/keapril/WebInventory/service"
)

// ReportController handles the printable inventory report
type ReportController struct {
	reports *service.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reports *service.ReportService) *ReportController {
	return &ReportController{reports: reports}
}

// Render handles GET /reports/inventory — the HTML report page.
// Headless Chrome navigates here when printing the PDF.
func (c *ReportController) Render(w http.ResponseWriter, r *http.Request) {
	html, err := c.reports.RenderHTML(r.Context())
	if err != nil {
		log.Printf("❌ Render: %v", err)
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// PDF handles GET /reports/inventory.pdf
func (c *ReportController) PDF(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 PDF: Received %s request to %s", r.Method, r.URL.Path)

	pdf, err := c.reports.GeneratePDF(r.Context())
	if err != nil {
		log.Printf("❌ PDF: %v", err)
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="inventory.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
