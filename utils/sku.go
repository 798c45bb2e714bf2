package utils

import (
	"fmt"
	"strings"
	"time"
)

// SanitizeSKU strips every character outside [A-Za-z0-9_-]. Storage keys are
// built from this, so path-unsafe characters must never survive.
func SanitizeSKU(sku string) string {
	var b strings.Builder
	b.Grow(len(sku))
	for _, r := range sku {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// GenerateInstrumentSKU builds the default SKU for an instrument row:
// "code-category-number" when all three parts are present, otherwise a
// timestamped fallback.
func GenerateInstrumentSKU(code, category, number string, now time.Time) string {
	if code != "" && category != "" && number != "" {
		return fmt.Sprintf("%s-%s-%s", code, category, number)
	}
	return fmt.Sprintf("INS-%d", now.Unix())
}

// GenerateCableSKU builds the default SKU for a cable row
func GenerateCableSKU(code string, now time.Time) string {
	if code != "" {
		return fmt.Sprintf("CBL-%s-%d", code, now.Unix())
	}
	return fmt.Sprintf("CBL-%d", now.Unix())
}
