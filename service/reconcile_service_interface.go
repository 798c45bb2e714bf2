package service

import (
	"context"

	"github.com/keapril/WebInventory/models"
)

// ReconcileServiceInterface defines the contract for bulk snapshot reconciliation
type ReconcileServiceInterface interface {
	Reconcile(ctx context.Context, original []string, edited []models.Item) *models.ReconcileResponse
}
