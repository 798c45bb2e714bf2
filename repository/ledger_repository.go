package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/keapril/WebInventory/models"
)

// LedgerRepository handles the append-only stock-movement log.
// Implements LedgerRepositoryInterface.
type LedgerRepository struct {
	client     *firestore.Client
	collection string
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(client *firestore.Client, collection string) *LedgerRepository {
	return &LedgerRepository{
		client:     client,
		collection: collection,
	}
}

// Ensure LedgerRepository implements LedgerRepositoryInterface
var _ LedgerRepositoryInterface = (*LedgerRepository)(nil)

// Append writes one movement record with a server-assigned ordering timestamp
func (r *LedgerRepository) Append(ctx context.Context, entry models.LedgerEntry) error {
	data := entry.DocData()
	data["timestamp"] = firestore.ServerTimestamp

	if _, _, err := r.client.Collection(r.collection).Add(ctx, data); err != nil {
		log.Printf("❌ Ledger append failed for SKU %s: %v", entry.SKU, err)
		return fmt.Errorf("failed to append ledger entry: %w", err)
	}

	log.Printf("📝 Ledger entry appended: %s %s x%d", entry.Type, entry.SKU, entry.Quantity)
	return nil
}

// Recent returns the most recent entries, newest first
func (r *LedgerRepository) Recent(ctx context.Context, limit int) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry

	iter := r.client.Collection(r.collection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stream ledger: %w", err)
		}
		entries = append(entries, models.LedgerEntryFromDoc(doc.Data()))
	}

	return entries, nil
}
