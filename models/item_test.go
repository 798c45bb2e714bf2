package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItemType(t *testing.T) {
	assert.Equal(t, ItemTypeCable, NormalizeItemType("cable"))
	assert.Equal(t, ItemTypeInstrument, NormalizeItemType("instrument"))

	// Anything unknown defaults to instrument
	assert.Equal(t, ItemTypeInstrument, NormalizeItemType(""))
	assert.Equal(t, ItemTypeInstrument, NormalizeItemType("Cable"))
	assert.Equal(t, ItemTypeInstrument, NormalizeItemType("misc"))
}

func TestItemFromDoc_ToleratesLegacyFieldTypes(t *testing.T) {
	it := ItemFromDoc("A-B-1", map[string]interface{}{
		"name":          "EP4 host",
		"categoryName":  "EP",
		"stock":         int64(5), // document stores write integers as int64
		"warrantyEnd":   "2025-01-31",
		"warrantyStart": "NaT", // legacy export sentinel
		"accessories":   `{"HDMI": 2}`,
		"itemType":      "cable",
	})

	assert.Equal(t, "A-B-1", it.SKU)
	assert.Equal(t, "EP4 host", it.Name)
	assert.Equal(t, "EP", it.Category)
	assert.Equal(t, 5, it.Stock)
	assert.Equal(t, "2025-01-31", it.WarrantyEnd.String())
	assert.Nil(t, it.WarrantyStart)
	assert.Equal(t, map[string]int{"HDMI": 2}, it.Accessories.Items)
	assert.Equal(t, ItemTypeCable, it.ItemType)
}

func TestItemFromDoc_NumericStockAsString(t *testing.T) {
	it := ItemFromDoc("X", map[string]interface{}{"stock": "12"})
	assert.Equal(t, 12, it.Stock)

	it = ItemFromDoc("X", map[string]interface{}{"stock": "lots"})
	assert.Equal(t, 0, it.Stock)

	it = ItemFromDoc("X", map[string]interface{}{})
	assert.Equal(t, 0, it.Stock)
}

func TestItemDocData_DatesNeverCarrySentinels(t *testing.T) {
	it := Item{SKU: "A-B-1", WarrantyEnd: NewDate(2025, 1, 31)}
	data := it.DocData()

	assert.Equal(t, "2025-01-31", data["warrantyEnd"])
	assert.Equal(t, "", data["warrantyStart"])

	// Round trip through the document form preserves the item
	back := ItemFromDoc("A-B-1", data)
	assert.Equal(t, "2025-01-31", back.WarrantyEnd.String())
	assert.Nil(t, back.WarrantyStart)
}
