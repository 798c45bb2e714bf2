package models

// StockMovementRequest is the request body for POST /items/stock
type StockMovementRequest struct {
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
	Direction string `json:"direction"`
	User      string `json:"user"`
	Note      string `json:"note"`
}

// StockMovementResponse is returned after a successful movement
type StockMovementResponse struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	NewStock int    `json:"newStock"`
}

// ReconcileRequest carries the original SKU snapshot and the edited rows of
// a bulk-edit session. Rows missing from the edited snapshot are deleted.
type ReconcileRequest struct {
	Original []string `json:"original"`
	Edited   []Item   `json:"edited"`
}

// ReconcileResponse reports aggregate counts; individual row failures never
// abort the batch.
type ReconcileResponse struct {
	Upserted int `json:"upserted"`
	Deleted  int `json:"deleted"`
	Failed   int `json:"failed"`
}

// ImportResponse reports aggregate counts for a CSV ingestion
type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// BatchImageResponse reports aggregate counts for a batch image upload
type BatchImageResponse struct {
	Uploaded int `json:"uploaded"`
	Failed   int `json:"failed"`
}

// SummaryResponse is the overview metrics row
type SummaryResponse struct {
	Total          int `json:"total"`
	Instruments    int `json:"instruments"`
	Cables         int `json:"cables"`
	LowStock       int `json:"lowStock"`
	WarrantyAlerts int `json:"warrantyAlerts"`
}

// ResetResponse reports how many documents a catalog reset removed
type ResetResponse struct {
	Deleted int `json:"deleted"`
}
