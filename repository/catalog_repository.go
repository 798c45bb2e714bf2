package repository

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/keapril/WebInventory/models"
)

// batchWriteLimit is the backing store's maximum writes per batch commit.
// DeleteAll partitions its work at this boundary.
const batchWriteLimit = 400

// CatalogRepository handles document-store operations for catalog items.
// Documents are keyed by SKU; writes are full-row merges.
// Implements CatalogRepositoryInterface.
type CatalogRepository struct {
	client     *firestore.Client
	collection string
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(client *firestore.Client, collection string) *CatalogRepository {
	return &CatalogRepository{
		client:     client,
		collection: collection,
	}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

func (r *CatalogRepository) items() *firestore.CollectionRef {
	return r.client.Collection(r.collection)
}

// List streams every catalog document
func (r *CatalogRepository) List(ctx context.Context) ([]models.Item, error) {
	var result []models.Item

	iter := r.items().Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stream catalog: %w", err)
		}
		result = append(result, models.ItemFromDoc(doc.Ref.ID, doc.Data()))
	}

	log.Printf("📦 Catalog list: %d items", len(result))
	return result, nil
}

// Get fetches a single item by SKU
func (r *CatalogRepository) Get(ctx context.Context, sku string) (*models.Item, error) {
	doc, err := r.items().Doc(sku).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get item %s: %w", sku, err)
	}

	item := models.ItemFromDoc(doc.Ref.ID, doc.Data())
	return &item, nil
}

// Upsert writes the full row, merging into any existing document and
// stamping the server-assigned updatedAt.
func (r *CatalogRepository) Upsert(ctx context.Context, item models.Item) error {
	if item.SKU == "" {
		return fmt.Errorf("cannot upsert item without SKU")
	}

	data := item.DocData()
	data["updatedAt"] = firestore.ServerTimestamp

	if _, err := r.items().Doc(item.SKU).Set(ctx, data, firestore.MergeAll); err != nil {
		log.Printf("❌ Upsert failed for SKU %s: %v", item.SKU, err)
		return fmt.Errorf("failed to upsert item %s: %w", item.SKU, err)
	}

	log.Printf("💾 Upserted item: %s", item.SKU)
	return nil
}

// UpdateStock writes only the stock field (plus updatedAt) of an existing item
func (r *CatalogRepository) UpdateStock(ctx context.Context, sku string, stock int) error {
	_, err := r.items().Doc(sku).Update(ctx, []firestore.Update{
		{Path: "stock", Value: stock},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update stock for %s: %w", sku, err)
	}

	log.Printf("📦 Stock updated: %s -> %d", sku, stock)
	return nil
}

// UpdateImageRef writes only the image reference of an existing item
func (r *CatalogRepository) UpdateImageRef(ctx context.Context, sku string, imageRef string) error {
	_, err := r.items().Doc(sku).Update(ctx, []firestore.Update{
		{Path: "imageFile", Value: imageRef},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update image for %s: %w", sku, err)
	}

	log.Printf("🖼️  Image reference updated: %s", sku)
	return nil
}

// Delete removes a single item. Deleting a missing SKU is not an error at
// the store level; callers relying on existence use Get first.
func (r *CatalogRepository) Delete(ctx context.Context, sku string) error {
	if _, err := r.items().Doc(sku).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete item %s: %w", sku, err)
	}

	log.Printf("🗑️  Deleted item: %s", sku)
	return nil
}

// DeleteAll removes every catalog document in batches of batchWriteLimit,
// committing each full batch before starting the next and committing any
// final partial batch. An empty batch is never committed.
func (r *CatalogRepository) DeleteAll(ctx context.Context) (int, error) {
	var refs []*firestore.DocumentRef

	iter := r.items().Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("failed to stream catalog for deletion: %w", err)
		}
		refs = append(refs, doc.Ref)
	}

	deleted := 0
	for _, span := range BatchSpans(len(refs), batchWriteLimit) {
		batch := r.client.Batch()
		for _, ref := range refs[span[0]:span[1]] {
			batch.Delete(ref)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return deleted, fmt.Errorf("failed to commit delete batch: %w", err)
		}
		deleted += span[1] - span[0]
		log.Printf("🗑️  Committed delete batch: %d/%d", deleted, len(refs))
	}

	log.Printf("✅ Catalog reset complete: %d documents deleted", deleted)
	return deleted, nil
}

// BatchSpans partitions n sequential writes into [start,end) spans no larger
// than limit. Zero-size spans are never produced.
func BatchSpans(n, limit int) [][2]int {
	if n <= 0 || limit <= 0 {
		return nil
	}
	var spans [][2]int
	for start := 0; start < n; start += limit {
		end := start + limit
		if end > n {
			end = n
		}
		spans = append(spans, [2]int{start, end})
	}
	return spans
}
