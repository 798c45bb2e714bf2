package service

import (
	"context"

	"github.com/keapril/WebInventory/models"
)

// StockServiceInterface defines the contract for stock mutations
type StockServiceInterface interface {
	ApplyMovement(ctx context.Context, sku string, quantity int, direction models.MovementType, user, note string) (*models.StockMovementResponse, error)
}
