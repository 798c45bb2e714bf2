package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
)

// InsufficientStockError is returned when an outbound movement would drive
// stock below zero. Terminal and user-correctable; carries the current stock
// for display. Never retried.
type InsufficientStockError struct {
	Current int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: %d available", e.Current)
}

// StockService orchestrates a single stock mutation: validate, write the new
// stock value, then append the audit entry. The ledger append happens only
// on the success path, after the stock write.
// Implements StockServiceInterface.
type StockService struct {
	catalog repository.CatalogRepositoryInterface
	ledger  repository.LedgerRepositoryInterface
	loc     *time.Location
	now     func() time.Time
}

// NewStockService creates a new StockService. loc is the wall-clock zone
// recorded on ledger entries.
func NewStockService(catalog repository.CatalogRepositoryInterface, ledger repository.LedgerRepositoryInterface, loc *time.Location) *StockService {
	if loc == nil {
		loc = time.Local
	}
	return &StockService{
		catalog: catalog,
		ledger:  ledger,
		loc:     loc,
		now:     time.Now,
	}
}

// Ensure StockService implements StockServiceInterface
var _ StockServiceInterface = (*StockService)(nil)

// ApplyMovement applies one receive/issue movement to an item.
// Returns repository.ErrNotFound when the SKU is absent and
// *InsufficientStockError when an issue would overdraw the stock; in both
// cases nothing is written.
func (s *StockService) ApplyMovement(ctx context.Context, sku string, quantity int, direction models.MovementType, user, note string) (*models.StockMovementResponse, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be greater than 0")
	}
	if direction != models.MovementIn && direction != models.MovementOut {
		return nil, fmt.Errorf("invalid direction: %q", direction)
	}

	item, err := s.catalog.Get(ctx, sku)
	if err != nil {
		return nil, err
	}

	newStock := item.Stock + quantity
	if direction == models.MovementOut {
		newStock = item.Stock - quantity
	}
	if newStock < 0 {
		log.Printf("❌ Movement rejected for %s: requested %d, available %d", sku, quantity, item.Stock)
		return nil, &InsufficientStockError{Current: item.Stock}
	}

	if err := s.catalog.UpdateStock(ctx, sku, newStock); err != nil {
		return nil, err
	}

	entry := models.LedgerEntry{
		Time:     s.now().In(s.loc).Format("2006-01-02 15:04:05"),
		User:     user,
		Type:     direction,
		SKU:      sku,
		Name:     item.Name,
		Quantity: quantity,
		Note:     note,
	}
	if err := s.ledger.Append(ctx, entry); err != nil {
		// Stock is already written; surface the audit gap loudly
		log.Printf("❌ Stock updated but ledger append failed for %s: %v", sku, err)
		return nil, fmt.Errorf("stock updated but audit entry failed: %w", err)
	}

	log.Printf("✅ Movement applied: %s %s x%d -> stock %d", direction, sku, quantity, newStock)
	return &models.StockMovementResponse{
		SKU:      sku,
		Name:     item.Name,
		NewStock: newStock,
	}, nil
}
