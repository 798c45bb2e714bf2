package models

import (
	"strconv"
	"time"
)

// ItemType is the catalog item classification
type ItemType string

const (
	ItemTypeInstrument ItemType = "instrument"
	ItemTypeCable      ItemType = "cable"
)

// NormalizeItemType maps arbitrary input to a known type, defaulting to instrument
func NormalizeItemType(s string) ItemType {
	switch ItemType(s) {
	case ItemTypeCable:
		return ItemTypeCable
	default:
		return ItemTypeInstrument
	}
}

// Item is a catalog row. The SKU is the document ID: globally unique and
// immutable once created.
type Item struct {
	SKU           string      `json:"sku"`
	Code          string      `json:"code"`
	Category      string      `json:"category"`
	Number        string      `json:"number"`
	Name          string      `json:"name"`
	ImageRef      string      `json:"imageFile"`
	Stock         int         `json:"stock"`
	Location      string      `json:"location"`
	SerialNumber  string      `json:"sn"`
	WarrantyStart *Date       `json:"warrantyStart,omitempty"`
	WarrantyEnd   *Date       `json:"warrantyEnd,omitempty"`
	Accessories   Accessories `json:"accessories"`
	ItemType      ItemType    `json:"itemType"`
	UpdatedAt     time.Time   `json:"updatedAt,omitempty"`

	// ImageURL is the resolved, displayable form of ImageRef.
	// Set at read time, never persisted.
	ImageURL string `json:"imageUrl,omitempty"`
}

// DocData maps the item onto its document fields. Dates are encoded as
// "YYYY-MM-DD" or the empty string for "unset" — never a sentinel string.
// The repository adds the server-assigned updatedAt on write.
func (it Item) DocData() map[string]interface{} {
	return map[string]interface{}{
		"code":          it.Code,
		"categoryName":  it.Category,
		"number":        it.Number,
		"name":          it.Name,
		"imageFile":     it.ImageRef,
		"stock":         it.Stock,
		"location":      it.Location,
		"sn":            it.SerialNumber,
		"warrantyStart": it.WarrantyStart.String(),
		"warrantyEnd":   it.WarrantyEnd.String(),
		"accessories":   it.Accessories.Encode(),
		"itemType":      string(NormalizeItemType(string(it.ItemType))),
	}
}

// ItemFromDoc rebuilds an item from a raw document. Missing or oddly typed
// fields degrade to zero values so that legacy documents always load.
func ItemFromDoc(sku string, data map[string]interface{}) Item {
	it := Item{
		SKU:          sku,
		Code:         docString(data, "code"),
		Category:     docString(data, "categoryName"),
		Number:       docString(data, "number"),
		Name:         docString(data, "name"),
		ImageRef:     docString(data, "imageFile"),
		Stock:        docInt(data, "stock"),
		Location:     docString(data, "location"),
		SerialNumber: docString(data, "sn"),
		ItemType:     NormalizeItemType(docString(data, "itemType")),
	}
	it.WarrantyStart = ParseDate(docString(data, "warrantyStart"))
	it.WarrantyEnd = ParseDate(docString(data, "warrantyEnd"))
	it.Accessories = ParseAccessories(docString(data, "accessories"))
	if ts, ok := data["updatedAt"].(time.Time); ok {
		it.UpdatedAt = ts
	}
	return it
}

func docString(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func docInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
