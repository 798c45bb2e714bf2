package service

import (
	"context"
	"sync"
	"time"

	"github.com/keapril/WebInventory/models"
	"github.com/keapril/WebInventory/repository"
)

// mockCatalogRepo is an in-memory stand-in for the catalog store
type mockCatalogRepo struct {
	mu      sync.Mutex
	items   map[string]models.Item
	failOn  map[string]error
	upserts []string
	deletes []string
}

func newMockCatalogRepo(items ...models.Item) *mockCatalogRepo {
	m := &mockCatalogRepo{
		items:  make(map[string]models.Item),
		failOn: make(map[string]error),
	}
	for _, it := range items {
		m.items[it.SKU] = it
	}
	return m
}

func (m *mockCatalogRepo) List(ctx context.Context) ([]models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it)
	}
	return out, nil
}

func (m *mockCatalogRepo) Get(ctx context.Context, sku string) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[sku]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := it
	return &copy, nil
}

func (m *mockCatalogRepo) Upsert(ctx context.Context, item models.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[item.SKU]; err != nil {
		return err
	}
	m.items[item.SKU] = item
	m.upserts = append(m.upserts, item.SKU)
	return nil
}

func (m *mockCatalogRepo) UpdateStock(ctx context.Context, sku string, stock int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[sku]
	if !ok {
		return repository.ErrNotFound
	}
	it.Stock = stock
	m.items[sku] = it
	return nil
}

func (m *mockCatalogRepo) UpdateImageRef(ctx context.Context, sku string, imageRef string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[sku]
	if !ok {
		return repository.ErrNotFound
	}
	it.ImageRef = imageRef
	m.items[sku] = it
	return nil
}

func (m *mockCatalogRepo) Delete(ctx context.Context, sku string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failOn[sku]; err != nil {
		return err
	}
	delete(m.items, sku)
	m.deletes = append(m.deletes, sku)
	return nil
}

func (m *mockCatalogRepo) DeleteAll(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := len(m.items)
	m.items = make(map[string]models.Item)
	return n, nil
}

var _ repository.CatalogRepositoryInterface = (*mockCatalogRepo)(nil)

// mockLedgerRepo records appended entries
type mockLedgerRepo struct {
	mu         sync.Mutex
	entries    []models.LedgerEntry
	failAppend error
}

func (m *mockLedgerRepo) Append(ctx context.Context, entry models.LedgerEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failAppend != nil {
		return m.failAppend
	}
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockLedgerRepo) Recent(ctx context.Context, limit int) ([]models.LedgerEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit > len(m.entries) {
		limit = len(m.entries)
	}
	out := make([]models.LedgerEntry, 0, limit)
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}

var _ repository.LedgerRepositoryInterface = (*mockLedgerRepo)(nil)

// fakeBackend is a scriptable object-storage backend
type fakeBackend struct {
	name     string
	baseURL  string
	err      error
	lastKey  string
	lastData []byte
	puts     int
}

func (b *fakeBackend) Name() string { return b.name }

func (b *fakeBackend) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	b.puts++
	if b.err != nil {
		return "", b.err
	}
	b.lastKey = key
	b.lastData = data
	return b.baseURL + "/" + key, nil
}

// fakeSigner mimics the legacy backend's signed-URL issuing
type fakeSigner struct {
	hosts     map[string]bool
	signedURL string
	err       error
	lastPath  string
}

func (s *fakeSigner) SignedURL(objectPath string, ttl time.Duration) (string, error) {
	s.lastPath = objectPath
	if s.err != nil {
		return "", s.err
	}
	return s.signedURL, nil
}

func (s *fakeSigner) MatchesHost(host string) bool {
	return s.hosts[host]
}
