package models

// MovementType is the direction of a stock movement
type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// LedgerEntry is one append-only stock-movement record. Name is denormalized
// at write time so the audit trail survives later renames of the item.
type LedgerEntry struct {
	Time     string       `json:"Time"`
	User     string       `json:"User"`
	Type     MovementType `json:"Type"`
	SKU      string       `json:"SKU"`
	Name     string       `json:"Name"`
	Quantity int          `json:"Quantity"`
	Note     string       `json:"Note"`
}

// DocData maps the entry onto its document fields. The repository adds the
// server-assigned ordering timestamp on write.
func (e LedgerEntry) DocData() map[string]interface{} {
	return map[string]interface{}{
		"Time":     e.Time,
		"User":     e.User,
		"Type":     string(e.Type),
		"SKU":      e.SKU,
		"Name":     e.Name,
		"Quantity": e.Quantity,
		"Note":     e.Note,
	}
}

// LedgerEntryFromDoc rebuilds an entry from a raw document
func LedgerEntryFromDoc(data map[string]interface{}) LedgerEntry {
	return LedgerEntry{
		Time:     docString(data, "Time"),
		User:     docString(data, "User"),
		Type:     MovementType(docString(data, "Type")),
		SKU:      docString(data, "SKU"),
		Name:     docString(data, "Name"),
		Quantity: docInt(data, "Quantity"),
		Note:     docString(data, "Note"),
	}
}
