package service

import (
	"sort"
	"time"

	"github.com/keapril/WebInventory/models"
)

// WarrantyStatus classifies an item's warranty position
type WarrantyStatus string

const (
	WarrantyExpired   WarrantyStatus = "expired"
	WarrantyDueSoon   WarrantyStatus = "due_soon"
	WarrantyNormal    WarrantyStatus = "normal"
	WarrantyUntracked WarrantyStatus = "untracked"
)

// WarrantyAlert is one row of the alert list shown to operators
type WarrantyAlert struct {
	SKU         string         `json:"sku"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Location    string         `json:"location"`
	WarrantyEnd *models.Date   `json:"warrantyEnd"`
	Status      WarrantyStatus `json:"status"`
	DaysLeft    int            `json:"daysLeft"`
}

// WarrantyService classifies warranty end dates against a configured
// alert threshold. Pure computation over catalog rows.
type WarrantyService struct {
	thresholdDays int
	today         func() time.Time
}

// NewWarrantyService creates a WarrantyService with the given alert
// threshold in days.
func NewWarrantyService(thresholdDays int) *WarrantyService {
	return &WarrantyService{
		thresholdDays: thresholdDays,
		today:         time.Now,
	}
}

// Status classifies a warranty end date. The second return value is days
// left (negative once expired); it is meaningless for Untracked.
func (s *WarrantyService) Status(end *models.Date) (WarrantyStatus, int) {
	if !end.Defined() {
		return WarrantyUntracked, 0
	}

	today := s.today()
	midnight := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	daysLeft := int(end.Sub(midnight).Hours() / 24)

	switch {
	case daysLeft < 0:
		return WarrantyExpired, daysLeft
	case daysLeft <= s.thresholdDays:
		return WarrantyDueSoon, daysLeft
	default:
		return WarrantyNormal, daysLeft
	}
}

// Alerts returns every expired or due-soon item, most urgent first:
// ascending by days left, so expired items (negative) naturally lead.
func (s *WarrantyService) Alerts(items []models.Item) []WarrantyAlert {
	var alerts []WarrantyAlert
	for _, it := range items {
		status, days := s.Status(it.WarrantyEnd)
		if status != WarrantyExpired && status != WarrantyDueSoon {
			continue
		}
		alerts = append(alerts, WarrantyAlert{
			SKU:         it.SKU,
			Name:        it.Name,
			Category:    it.Category,
			Location:    it.Location,
			WarrantyEnd: it.WarrantyEnd,
			Status:      status,
			DaysLeft:    days,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})
	return alerts
}
