package service

import (
	"context"
	"log"
	"strings"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
)

// ReconcileService applies a bulk-edit session to the catalog: rows missing
// from the edited snapshot are deleted, every edited row with a SKU is
// upserted in full. SKU identity is immutable, so the delete set and the
// upsert set are disjoint by construction and deletions run first.
// Implements ReconcileServiceInterface.
type ReconcileService struct {
	catalog repository.CatalogRepositoryInterface
}

// NewReconcileService creates a new ReconcileService
func NewReconcileService(catalog repository.CatalogRepositoryInterface) *ReconcileService {
	return &ReconcileService{catalog: catalog}
}

// Ensure ReconcileService implements ReconcileServiceInterface
var _ ReconcileServiceInterface = (*ReconcileService)(nil)

// usableSKU filters out blank rows and the "nan" artifacts legacy exports
// carry. A blank SKU marks a draft row: never upserted, never counted.
func usableSKU(sku string) bool {
	sku = strings.TrimSpace(sku)
	return sku != "" && strings.ToLower(sku) != "nan"
}

// Reconcile computes and applies the delete and upsert sets, continuing past
// individual row failures and reporting aggregate counts. Completed
// operations are never rolled back.
func (s *ReconcileService) Reconcile(ctx context.Context, original []string, edited []models.Item) *models.ReconcileResponse {
	log.Printf("🔄 Reconciling catalog: %d original SKUs, %d edited rows", len(original), len(edited))

	editedSKUs := make(map[string]bool, len(edited))
	for _, row := range edited {
		if usableSKU(row.SKU) {
			editedSKUs[strings.TrimSpace(row.SKU)] = true
		}
	}

	result := &models.ReconcileResponse{}

	// Deletions first: every original SKU absent from the edited snapshot
	for _, sku := range original {
		if !usableSKU(sku) || editedSKUs[strings.TrimSpace(sku)] {
			continue
		}
		if err := s.catalog.Delete(ctx, strings.TrimSpace(sku)); err != nil {
			log.Printf("❌ Reconcile delete failed for %s: %v", sku, err)
			result.Failed++
			continue
		}
		result.Deleted++
	}

	// Full-row upserts for every edited row that carries a SKU
	for _, row := range edited {
		if !usableSKU(row.SKU) {
			continue
		}
		row.SKU = strings.TrimSpace(row.SKU)
		if err := s.catalog.Upsert(ctx, row); err != nil {
			log.Printf("❌ Reconcile upsert failed for %s: %v", row.SKU, err)
			result.Failed++
			continue
		}
		result.Upserted++
	}

	log.Printf("🎉 Reconciliation complete: %d upserted, %d deleted, %d failed",
		result.Upserted, result.Deleted, result.Failed)
	return result
}
