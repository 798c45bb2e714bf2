package models

import (
	"encoding/json"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without a time component.
// A nil *Date means "not set" — never an empty-string or "NaT" sentinel.
type Date struct {
	time.Time
}

// NewDate builds a Date at midnight UTC
func NewDate(year int, month time.Month, day int) *Date {
	return &Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses "YYYY-MM-DD". Empty strings and the sentinel strings the
// legacy data carries ("nat", "nan", "none") all map to nil.
func ParseDate(s string) *Date {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nat", "nan", "none", "null":
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &Date{t}
}

// Defined reports whether the date carries a real value. A zero Date can
// appear when JSON input contains an empty string for a date field.
func (d *Date) Defined() bool {
	return d != nil && !d.IsZero()
}

// String formats the date as "YYYY-MM-DD", or "" when unset
func (d *Date) String() string {
	if !d.Defined() {
		return ""
	}
	return d.Format(dateLayout)
}

// MarshalJSON encodes the date as a "YYYY-MM-DD" string, or "" when unset
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

// UnmarshalJSON accepts "YYYY-MM-DD" or an empty string
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if p := ParseDate(s); p != nil {
		d.Time = p.Time
	}
	return nil
}
