package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchSpans(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		limit int
		want  [][2]int
	}{
		{"empty", 0, 400, nil},
		{"negative", -5, 400, nil},
		{"zero limit", 10, 0, nil},
		{"single partial batch", 100, 400, [][2]int{{0, 100}}},
		{"exact multiple has no empty span", 800, 400, [][2]int{{0, 400}, {400, 800}}},
		{"remainder in last span", 1000, 400, [][2]int{{0, 400}, {400, 800}, {800, 1000}}},
		{"one item", 1, 400, [][2]int{{0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BatchSpans(tt.n, tt.limit))
		})
	}
}

func TestBatchSpans_CoverEverythingOnce(t *testing.T) {
	spans := BatchSpans(1234, 400)
	covered := 0
	prev := 0
	for _, span := range spans {
		assert.Equal(t, prev, span[0])
		assert.Greater(t, span[1], span[0])
		covered += span[1] - span[0]
		prev = span[1]
	}
	assert.Equal(t, 1234, covered)
}
