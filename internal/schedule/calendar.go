// internal/schedule/calendar.go
package schedule

import (
	"fmt"
	"time"
)

// DayKeyLayout is the canonical wire format for calendar days.
const DayKeyLayout = "2006-01-02"

// Day is a concrete calendar day. It carries no location; past/today
// classification is always relative to a caller-supplied clock reading.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// NewDay builds a Day from the calendar date of t.
func NewDay(t time.Time) Day {
	year, month, date := t.Date()
	return Day{Year: year, Month: month, Date: date}
}

// ParseDayKey parses a canonical YYYY-MM-DD key.
func ParseDayKey(key string) (Day, error) {
	t, err := time.Parse(DayKeyLayout, key)
	if err != nil {
		return Day{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return NewDay(t), nil
}

// Key returns the canonical YYYY-MM-DD key for the day.
func (d Day) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Date)
}

// Midnight returns the start of the day in now's location.
func (d Day) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, loc)
}

func (d Day) Weekday() time.Weekday {
	return d.Midnight(time.UTC).Weekday()
}

// IsWeekend reports whether the day falls on Saturday or Sunday.
func (d Day) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPast reports whether the day is strictly before now's calendar day.
func (d Day) IsPast(now time.Time) bool {
	return d.Midnight(now.Location()).Before(NewDay(now).Midnight(now.Location()))
}

// IsToday reports whether the day is now's calendar day.
func (d Day) IsToday(now time.Time) bool {
	return d == NewDay(now)
}
