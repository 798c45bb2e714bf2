package controller

import (
	"encoding/csv"
	"log"
	"net/http"
	"strconv"

	"github.com/keapril/WebInventory/repository"
)

// LedgerController handles the movement-log read endpoints
type LedgerController struct {
	ledger    repository.LedgerRepositoryInterface
	pageLimit int
}

// NewLedgerController creates a new LedgerController
func NewLedgerController(ledger repository.LedgerRepositoryInterface, pageLimit int) *LedgerController {
	return &LedgerController{
		ledger:    ledger,
		pageLimit: pageLimit,
	}
}

// Recent handles GET /ledger — the most recent movements, newest first
func (c *LedgerController) Recent(w http.ResponseWriter, r *http.Request) {
	entries, err := c.ledger.Recent(r.Context(), c.pageLimit)
	if err != nil {
		log.Printf("❌ Recent: Error loading ledger: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

// Export handles GET /ledger/export — the audit trail as a CSV attachment
func (c *LedgerController) Export(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Export: Received %s request to %s", r.Method, r.URL.Path)

	entries, err := c.ledger.Recent(r.Context(), c.pageLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="ledger.csv"`)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Time", "User", "Type", "SKU", "Name", "Quantity", "Note"}); err != nil {
		log.Printf("❌ Export: Failed to write CSV header: %v", err)
		return
	}
	for _, e := range entries {
		record := []string{e.Time, e.User, string(e.Type), e.SKU, e.Name, strconv.Itoa(e.Quantity), e.Note}
		if err := cw.Write(record); err != nil {
			log.Printf("❌ Export: Failed to write CSV row: %v", err)
			return
		}
	}
	cw.Flush()
}
