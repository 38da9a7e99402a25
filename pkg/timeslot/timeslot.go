package timeslot

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date, use YYYY-MM-DD")
	ErrInvalidSlot = errors.New("invalid time slot, use HH:MM AM/PM")
)

// Accepted ingress formats. Clients historically sent both "2026-03-14"
// and "Mar 14, 2026" for the same calendar day, so both normalize to the
// same Date value.
var dateLayouts = []string{
	"2006-01-02",
	"Jan 02, 2006",
	"Jan 2, 2006",
}

var slotLayouts = []string{
	"03:04 PM",
	"3:04 PM",
	"15:04",
}

// Date is a calendar date without time-of-day or zone semantics.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// ParseDate normalizes a date string in any accepted layout.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
		}
	}
	return Date{}, ErrInvalidDate
}

// String renders the canonical storage form, YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format("2006-01-02")
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// Before compares two dates structurally.
func (d Date) Before(other Date) bool {
	return d.Time().Before(other.Time())
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now().UTC()
	return Date{Year: now.Year(), Month: now.Month(), Day: now.Day()}
}

// Slot is a bookable time window identified by its starting minute of day.
type Slot struct {
	MinuteOfDay int
}

// ParseSlot normalizes a slot label such as "10:00 AM", "9:30 AM" or "14:00".
func ParseSlot(s string) (Slot, error) {
	for _, layout := range slotLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Slot{MinuteOfDay: t.Hour()*60 + t.Minute()}, nil
		}
	}
	return Slot{}, ErrInvalidSlot
}

// Label renders the canonical display form, e.g. "10:00 AM".
func (s Slot) Label() string {
	t := time.Date(0, 1, 1, s.MinuteOfDay/60, s.MinuteOfDay%60, 0, 0, time.UTC)
	return t.Format("03:04 PM")
}
