package core

import (
	"errors"
	"time"
)

type (
	// Date is a calendar date at UTC midnight. Time-of-day and timezone are
	// deliberately dropped so dates round-trip through CSV without drift.
	Date struct {
		time.Time
	}

	// GrowthRecord is one weight measurement for the tracked infant.
	//
	// AgeDays is derived once when the record is created and never re-derived
	// afterwards: a manual edit of the Date column leaves AgeDays untouched,
	// so the two may diverge. That matches the persisted history exactly.
	GrowthRecord struct {
		Date     Date
		AgeDays  int
		WeightKg float64
	}
)

var ErrInvalidDate = errors.New("invalid date")

// DateLayout is the wire format for dates, in CSV and in form inputs.
const DateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO date string (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String formats the date in ISO form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// IsEmpty reports whether the date is the zero value.
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// DaysSince returns the whole-day difference d - from. The result is negative
// when d precedes from; callers that care must decide what that means.
func (d Date) DaysSince(from Date) int {
	return int(d.Sub(from.Time) / (24 * time.Hour))
}

// NewGrowthRecord builds a record for a measurement taken on date for an
// infant born on dob. No range validation is applied to the weight.
func NewGrowthRecord(dob, date Date, weightKg float64) GrowthRecord {
	return GrowthRecord{
		Date:     date,
		AgeDays:  date.DaysSince(dob),
		WeightKg: weightKg,
	}
}
