package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
	"github.com/keapril/WebInventory/service"
	"github.com/keapril/WebInventory/utils"
)

// lowStockThreshold is the stock level at or below which an item counts as low
const lowStockThreshold = 5

// ItemController handles HTTP requests for catalog items
type ItemController struct {
	repository repository.CatalogRepositoryInterface
	images     service.ImageStoreInterface
	warranty   *service.WarrantyService
}

// NewItemController creates a new ItemController
func NewItemController(repo repository.CatalogRepositoryInterface, images service.ImageStoreInterface, warranty *service.WarrantyService) *ItemController {
	return &ItemController{
		repository: repo,
		images:     images,
		warranty:   warranty,
	}
}

// List handles GET /items
// Supports ?type=, ?category=, ?location=, ?stock=all|normal|low|none and
// free-text ?search= across the row's fields.
func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 List: Received %s request to %s", r.Method, r.URL.Path)

	items, err := c.repository.List(r.Context())
	if err != nil {
		log.Printf("❌ List: Error loading catalog: %v", err)
		writeServiceError(w, err)
		return
	}

	q := r.URL.Query()
	filtered := make([]models.Item, 0, len(items))
	for _, it := range items {
		if t := q.Get("type"); t != "" && string(it.ItemType) != t {
			continue
		}
		if cat := q.Get("category"); cat != "" && it.Category != cat {
			continue
		}
		if loc := q.Get("location"); loc != "" && it.Location != loc {
			continue
		}
		switch q.Get("stock") {
		case "low":
			if it.Stock > lowStockThreshold {
				continue
			}
		case "none":
			if it.Stock != 0 {
				continue
			}
		case "normal":
			if it.Stock <= lowStockThreshold {
				continue
			}
		}
		if search := q.Get("search"); search != "" && !matchesSearch(it, search) {
			continue
		}
		it.ImageURL = c.images.Resolve(r.Context(), it.ImageRef)
		filtered = append(filtered, it)
	}

	writeJSON(w, http.StatusOK, filtered)
}

// matchesSearch does a case-insensitive substring match over the fields an
// operator would scan by eye.
func matchesSearch(it models.Item, term string) bool {
	term = strings.ToLower(term)
	for _, field := range []string{it.SKU, it.Code, it.Category, it.Number, it.Name, it.Location, it.SerialNumber} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Summary handles GET /items/summary — the overview metrics row
func (c *ItemController) Summary(w http.ResponseWriter, r *http.Request) {
	items, err := c.repository.List(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	summary := models.SummaryResponse{Total: len(items)}
	for _, it := range items {
		switch it.ItemType {
		case models.ItemTypeCable:
			summary.Cables++
		default:
			summary.Instruments++
		}
		if it.Stock <= lowStockThreshold {
			summary.LowStock++
		}
	}
	summary.WarrantyAlerts = len(c.warranty.Alerts(items))

	writeJSON(w, http.StatusOK, summary)
}

// Add handles POST /items
// When the caller supplies no SKU, one is generated from code-category-number
// or a timestamped fallback, depending on the item type.
func (c *ItemController) Add(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Add: Received %s request to %s", r.Method, r.URL.Path)

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Printf("❌ Add: Failed to decode request body: %v", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(item.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if item.Stock < 0 {
		writeError(w, http.StatusBadRequest, "stock cannot be negative")
		return
	}

	item.ItemType = models.NormalizeItemType(string(item.ItemType))
	if strings.TrimSpace(item.SKU) == "" {
		if item.ItemType == models.ItemTypeCable {
			item.SKU = utils.GenerateCableSKU(item.Code, time.Now())
		} else {
			item.SKU = utils.GenerateInstrumentSKU(item.Code, item.Category, item.Number, time.Now())
		}
		log.Printf("🏷️  Generated SKU: %s", item.SKU)
	}
	item.SKU = strings.TrimSpace(item.SKU)

	if err := c.repository.Upsert(r.Context(), item); err != nil {
		log.Printf("❌ Add: Error upserting item: %v", err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// Get handles GET /items/{sku}
func (c *ItemController) Get(w http.ResponseWriter, r *http.Request, sku string) {
	item, err := c.repository.Get(r.Context(), sku)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	item.ImageURL = c.images.Resolve(r.Context(), item.ImageRef)
	writeJSON(w, http.StatusOK, item)
}

// Update handles PUT /items/{sku} — a full-row merge write
func (c *ItemController) Update(w http.ResponseWriter, r *http.Request, sku string) {
	log.Printf("📥 Update: Received %s request for SKU %s", r.Method, sku)

	var item models.Item
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// SKU identity is immutable; the path wins over the body
	item.SKU = sku

	if err := c.repository.Upsert(r.Context(), item); err != nil {
		log.Printf("❌ Update: Error upserting item %s: %v", sku, err)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /items/{sku}
func (c *ItemController) Delete(w http.ResponseWriter, r *http.Request, sku string) {
	log.Printf("📥 Delete: Received %s request for SKU %s", r.Method, sku)

	if err := c.repository.Delete(r.Context(), sku); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"deleted": sku})
}
