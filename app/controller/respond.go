package controller

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/service"
)

// writeJSON encodes a response body with the right content type
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// writeError sends a JSON error body
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps domain errors onto HTTP statuses: missing SKUs are
// 404, overdrawn stock is 409 (carrying the current stock for display),
// everything else is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var insufficient *service.InsufficientStockError
	if errors.As(err, &insufficient) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"error":        insufficient.Error(),
			"currentStock": insufficient.Current,
		})
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error())
}
