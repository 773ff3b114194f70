package schedule

import (
	"testing"
	"time"
)

func TestParseDayKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid", "2025-06-10", false},
		{"valid padded", "2025-01-02", false},
		{"wrong order", "10-06-2025", true},
		{"locale string", "Tue Jun 10 2025", true},
		{"missing padding", "2025-6-1", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDayKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDayKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if err == nil && day.Key() != tt.key {
				t.Fatalf("round trip: got %q, want %q", day.Key(), tt.key)
			}
		})
	}
}

func TestDayClassification(t *testing.T) {
	now := time.Date(2025, time.June, 10, 10, 15, 0, 0, time.UTC) // a Tuesday

	tests := []struct {
		name    string
		key     string
		weekend bool
		past    bool
		today   bool
	}{
		{"today", "2025-06-10", false, false, true},
		{"yesterday", "2025-06-09", false, true, false},
		{"tomorrow", "2025-06-11", false, false, false},
		{"saturday", "2025-06-14", true, false, false},
		{"sunday", "2025-06-15", true, false, false},
		{"past saturday", "2025-06-07", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ParseDayKey(tt.key)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := day.IsWeekend(); got != tt.weekend {
				t.Errorf("IsWeekend() = %v, want %v", got, tt.weekend)
			}
			if got := day.IsPast(now); got != tt.past {
				t.Errorf("IsPast() = %v, want %v", got, tt.past)
			}
			if got := day.IsToday(now); got != tt.today {
				t.Errorf("IsToday() = %v, want %v", got, tt.today)
			}
		})
	}
}

func TestDayTodayNotPast(t *testing.T) {
	// Late in the day, today is still not past.
	now := time.Date(2025, time.June, 10, 23, 59, 0, 0, time.UTC)
	day := NewDay(now)
	if day.IsPast(now) {
		t.Fatalf("today reported as past")
	}
}
