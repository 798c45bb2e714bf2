package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Accessories is the tagged value behind the free-text accessory blob stored
// on an item: either a structured name → quantity map, or a single free-text
// note when the stored text is not parseable JSON. The decision is made once
// at parse time; renderers never re-parse the raw string.
type Accessories struct {
	Items map[string]int `json:"items,omitempty"`
	Note  string         `json:"note,omitempty"`
}

// ParseAccessories decodes the stored accessory text.
// Unparseable text degrades to a free-text note instead of failing the row.
func ParseAccessories(raw string) Accessories {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Accessories{}
	}
	var items map[string]int
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return Accessories{Note: raw}
	}
	return Accessories{Items: items}
}

// IsZero reports whether there is nothing to show
func (a Accessories) IsZero() bool {
	return len(a.Items) == 0 && a.Note == ""
}

// Encode serializes the value back to the document representation:
// JSON for structured maps, the raw note otherwise, "" when empty.
func (a Accessories) Encode() string {
	if len(a.Items) > 0 {
		b, err := json.Marshal(a.Items)
		if err != nil {
			return a.Note
		}
		return string(b)
	}
	return a.Note
}

// Display renders a short human-readable summary, e.g. "HDMI ×2, EKG cable",
// showing at most max entries with a "+k more" suffix.
func (a Accessories) Display(max int) string {
	if a.Note != "" {
		return a.Note
	}
	if len(a.Items) == 0 {
		return ""
	}

	names := make([]string, 0, len(a.Items))
	for name := range a.Items {
		names = append(names, name)
	}
	sort.Strings(names)

	shown := names
	if max > 0 && len(shown) > max {
		shown = shown[:max]
	}

	parts := make([]string, 0, len(shown))
	for _, name := range shown {
		if qty := a.Items[name]; qty > 1 {
			parts = append(parts, fmt.Sprintf("%s ×%d", name, qty))
		} else {
			parts = append(parts, name)
		}
	}

	result := strings.Join(parts, ", ")
	if rest := len(names) - len(shown); rest > 0 {
		result += fmt.Sprintf(" +%d more", rest)
	}
	return result
}
