package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keapril/WebInventory/models"
)

func TestReconcile_DeletesMissingAndUpsertsEdited(t *testing.T) {
	catalog := newMockCatalogRepo(
		models.Item{SKU: "X", Name: "x"},
		models.Item{SKU: "Y", Name: "y"},
		models.Item{SKU: "Z", Name: "z"},
	)
	svc := NewReconcileService(catalog)

	edited := []models.Item{
		{SKU: "X", Name: "x edited"},
		{SKU: "", Name: "draft row"},
		{SKU: "W", Name: "brand new"},
	}

	result := svc.Reconcile(context.Background(), []string{"X", "Y", "Z"}, edited)

	assert.Equal(t, 2, result.Upserted)
	assert.Equal(t, 2, result.Deleted)
	assert.Equal(t, 0, result.Failed)

	assert.ElementsMatch(t, []string{"Y", "Z"}, catalog.deletes)
	assert.ElementsMatch(t, []string{"X", "W"}, catalog.upserts)

	// Edited content won
	x, err := catalog.Get(context.Background(), "X")
	require.NoError(t, err)
	assert.Equal(t, "x edited", x.Name)

	// The draft row never landed anywhere
	_, err = catalog.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestReconcile_DisjointSets(t *testing.T) {
	catalog := newMockCatalogRepo(
		models.Item{SKU: "A"},
		models.Item{SKU: "B"},
	)
	svc := NewReconcileService(catalog)

	result := svc.Reconcile(context.Background(),
		[]string{"A", "B"},
		[]models.Item{{SKU: "A"}, {SKU: "B"}},
	)

	assert.Equal(t, 2, result.Upserted)
	assert.Equal(t, 0, result.Deleted)
	for _, deleted := range catalog.deletes {
		assert.NotContains(t, catalog.upserts, deleted)
	}
}

func TestReconcile_BlankSKUNeverBlocksDeletion(t *testing.T) {
	catalog := newMockCatalogRepo(
		models.Item{SKU: "A"},
		models.Item{SKU: "B"},
	)
	svc := NewReconcileService(catalog)

	// Only drafts in the edited snapshot: everything original is deleted
	result := svc.Reconcile(context.Background(),
		[]string{"A", "B"},
		[]models.Item{{SKU: ""}, {SKU: "  "}, {SKU: "nan"}},
	)

	assert.Equal(t, 0, result.Upserted)
	assert.Equal(t, 2, result.Deleted)
	assert.ElementsMatch(t, []string{"A", "B"}, catalog.deletes)
}

func TestReconcile_ContinuesPastRowFailures(t *testing.T) {
	catalog := newMockCatalogRepo(
		models.Item{SKU: "A"},
		models.Item{SKU: "B"},
		models.Item{SKU: "C"},
	)
	catalog.failOn["B"] = errors.New("store rejected write")
	svc := NewReconcileService(catalog)

	result := svc.Reconcile(context.Background(),
		[]string{"A", "B", "C"},
		[]models.Item{{SKU: "A", Name: "kept"}},
	)

	// B's delete failed but C's still went through; A still upserted
	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, 1, result.Failed)
	assert.Contains(t, catalog.deletes, "C")
}

func TestReconcile_EmptyOriginal(t *testing.T) {
	catalog := newMockCatalogRepo()
	svc := NewReconcileService(catalog)

	result := svc.Reconcile(context.Background(), nil, []models.Item{{SKU: "NEW", Name: "n"}})

	assert.Equal(t, 1, result.Upserted)
	assert.Equal(t, 0, result.Deleted)
	assert.Empty(t, catalog.deletes)
}
