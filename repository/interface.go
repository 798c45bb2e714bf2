package repository

import (
	"context"
	"errors"

	"github.com/keapril/WebInventory/models"
)

// ErrNotFound is returned when a targeted single-item operation names a SKU
// that does not exist. Surfaced to the caller as-is; never retried.
var ErrNotFound = errors.New("item not found")

// CatalogRepositoryInterface defines the contract for catalog persistence.
// The repository is the sole owner of persisted state; items returned from
// reads are disposable copies.
type CatalogRepositoryInterface interface {
	List(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, sku string) (*models.Item, error)
	Upsert(ctx context.Context, item models.Item) error
	UpdateStock(ctx context.Context, sku string, stock int) error
	UpdateImageRef(ctx context.Context, sku string, imageRef string) error
	Delete(ctx context.Context, sku string) error
	DeleteAll(ctx context.Context) (int, error)
}

// LedgerRepositoryInterface defines the contract for the append-only
// movement log. Entries are never mutated or deleted by normal flow.
type LedgerRepositoryInterface interface {
	Append(ctx context.Context, entry models.LedgerEntry) error
	Recent(ctx context.Context, limit int) ([]models.LedgerEntry, error)
}
