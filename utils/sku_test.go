package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSKU(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A-B-1", "A-B-1"},
		{"a_b_1", "a_b_1"},
		{"A/B 1#2", "AB12"},
		{"路由器-01", "-01"},
		{"../../etc/passwd", "etcpasswd"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeSKU(tt.in), "input %q", tt.in)
	}
}

func TestGenerateInstrumentSKU(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "EP4-EP-01", GenerateInstrumentSKU("EP4", "EP", "01", now))

	// Any missing part falls back to a timestamped SKU
	assert.Equal(t, "INS-1710498600", GenerateInstrumentSKU("", "EP", "01", now))
	assert.Equal(t, "INS-1710498600", GenerateInstrumentSKU("EP4", "", "", now))
}

func TestGenerateCableSKU(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "CBL-HDMI-1710498600", GenerateCableSKU("HDMI", now))
	assert.Equal(t, "CBL-1710498600", GenerateCableSKU("", now))
}
