package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keapril/WebInventory/models"
)

func newWarrantyService(thresholdDays int) *WarrantyService {
	svc := NewWarrantyService(thresholdDays)
	// Fix "today" so day math is deterministic regardless of run time
	svc.today = func() time.Time { return time.Date(2024, 6, 10, 14, 45, 0, 0, time.UTC) }
	return svc
}

func TestWarrantyStatus(t *testing.T) {
	svc := newWarrantyService(30)

	tests := []struct {
		name     string
		end      *models.Date
		status   WarrantyStatus
		daysLeft int
	}{
		{"expired yesterday", models.NewDate(2024, 6, 9), WarrantyExpired, -1},
		{"expires today", models.NewDate(2024, 6, 10), WarrantyDueSoon, 0},
		{"on the threshold", models.NewDate(2024, 7, 10), WarrantyDueSoon, 30},
		{"just past the threshold", models.NewDate(2024, 7, 11), WarrantyNormal, 31},
		{"far future", models.NewDate(2025, 6, 10), WarrantyNormal, 365},
		{"unset", nil, WarrantyUntracked, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, days := svc.Status(tt.end)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.daysLeft, days)
		})
	}
}

func TestWarrantyStatus_ZeroDateIsUntracked(t *testing.T) {
	svc := newWarrantyService(30)

	// A zero-value Date shows up when JSON carries "" for the field
	status, _ := svc.Status(&models.Date{})
	assert.Equal(t, WarrantyUntracked, status)
}

func TestWarrantyAlerts_SortedMostUrgentFirst(t *testing.T) {
	svc := newWarrantyService(30)

	items := []models.Item{
		{SKU: "SOON", Name: "due soon", WarrantyEnd: models.NewDate(2024, 6, 25)},
		{SKU: "OK", Name: "healthy", WarrantyEnd: models.NewDate(2025, 1, 1)},
		{SKU: "DEAD", Name: "expired", WarrantyEnd: models.NewDate(2024, 5, 1)},
		{SKU: "NONE", Name: "untracked"},
		{SKU: "TODAY", Name: "last day", WarrantyEnd: models.NewDate(2024, 6, 10)},
	}

	alerts := svc.Alerts(items)
	require.Len(t, alerts, 3)

	assert.Equal(t, "DEAD", alerts[0].SKU)
	assert.Equal(t, WarrantyExpired, alerts[0].Status)
	assert.Negative(t, alerts[0].DaysLeft)

	assert.Equal(t, "TODAY", alerts[1].SKU)
	assert.Equal(t, WarrantyDueSoon, alerts[1].Status)

	assert.Equal(t, "SOON", alerts[2].SKU)
	assert.Equal(t, 15, alerts[2].DaysLeft)
}

func TestWarrantyAlerts_NoneMatching(t *testing.T) {
	svc := newWarrantyService(30)

	alerts := svc.Alerts([]models.Item{
		{SKU: "OK", WarrantyEnd: models.NewDate(2030, 1, 1)},
		{SKU: "NONE"},
	})
	assert.Empty(t, alerts)
}
