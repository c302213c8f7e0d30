package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2024-01-15", true},
		{"2024-12-31", true},
		{"15/01/2024", false},
		{"2024-1-15", false},
		{"", false},
	}
	for i, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
		if tc.ok && d.String() != tc.in {
			t.Fatalf("case %d round-trip: got %q want %q", i, d.String(), tc.in)
		}
	}
}

func TestParseDateIsUTCMidnight(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Location() != time.UTC {
		t.Fatalf("expected UTC, got %v", d.Location())
	}
	h, m, s := d.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Fatalf("expected midnight, got %02d:%02d:%02d", h, m, s)
	}
}

func TestDaysSince(t *testing.T) {
	dob := NewDate(2024, 1, 1)
	cases := []struct {
		date Date
		want int
	}{
		{NewDate(2024, 1, 15), 14},
		{NewDate(2024, 1, 1), 0},
		{NewDate(2023, 12, 31), -1}, // measurement before birth is kept as-is
		{NewDate(2025, 1, 1), 366}, // 2024 is a leap year
	}
	for i, tc := range cases {
		if got := tc.date.DaysSince(dob); got != tc.want {
			t.Fatalf("case %d: got %d want %d", i, got, tc.want)
		}
	}
}

func TestNewGrowthRecord(t *testing.T) {
	dob := NewDate(2024, 1, 1)
	rec := NewGrowthRecord(dob, NewDate(2024, 1, 15), 4.2)
	if rec.AgeDays != 14 {
		t.Fatalf("age days: got %d want 14", rec.AgeDays)
	}
	if rec.WeightKg != 4.2 {
		t.Fatalf("weight: got %v want 4.2", rec.WeightKg)
	}
	if rec.Date.String() != "2024-01-15" {
		t.Fatalf("date: got %s", rec.Date)
	}
}
