package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/service"
)

// StockController handles HTTP requests for stock movements
type StockController struct {
	stockService service.StockServiceInterface
}

// NewStockController creates a new StockController
func NewStockController(stockService service.StockServiceInterface) *StockController {
	return &StockController{stockService: stockService}
}

// ApplyMovement handles POST /items/stock
// Applies one receive ("in") or issue ("out") movement to an item.
func (c *StockController) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ApplyMovement: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req models.StockMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ ApplyMovement: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.SKU = strings.TrimSpace(req.SKU)
	if req.SKU == "" {
		writeError(w, http.StatusBadRequest, "sku cannot be empty")
		return
	}
	if req.Quantity <= 0 {
		writeError(w, http.StatusBadRequest, "quantity must be greater than 0")
		return
	}

	direction := models.MovementType(strings.ToLower(req.Direction))
	if direction != models.MovementIn && direction != models.MovementOut {
		writeError(w, http.StatusBadRequest, "direction must be \"in\" or \"out\"")
		return
	}

	user := req.User
	if user == "" {
		user = "Admin"
	}

	resp, err := c.stockService.ApplyMovement(r.Context(), req.SKU, req.Quantity, direction, user, req.Note)
	if err != nil {
		log.Printf("❌ ApplyMovement: %v", err)
		writeServiceError(w, err)
		return
	}

	log.Printf("✅ ApplyMovement: %s %s x%d -> %d", direction, req.SKU, req.Quantity, resp.NewStock)
	writeJSON(w, http.StatusOK, resp)
}
