// internal/schedule/slots.go
package schedule

import (
	"fmt"
	"time"
)

// Window describes the bookable portion of a day. Slots run from
// StartHour:00 up to and including EndHour:00, stepping by IntervalMinutes.
type Window struct {
	StartHour       int
	EndHour         int
	IntervalMinutes int
}

// DefaultWindow returns the standard 09:00-21:00 half-hour window.
func DefaultWindow() Window {
	return Window{StartHour: 9, EndHour: 21, IntervalMinutes: 30}
}

// Validate checks the window is well-formed.
func (w Window) Validate() error {
	if w.StartHour < 0 || w.StartHour > 23 {
		return fmt.Errorf("start hour must be between 0 and 23")
	}
	if w.EndHour < 0 || w.EndHour > 23 {
		return fmt.Errorf("end hour must be between 0 and 23")
	}
	if w.StartHour >= w.EndHour {
		return fmt.Errorf("start hour must be before end hour")
	}
	if w.IntervalMinutes <= 0 || w.IntervalMinutes > 60 {
		return fmt.Errorf("interval minutes must be between 1 and 60")
	}
	return nil
}

// Slot is the start of a fixed-length time interval within a day.
// Equality is by (Hour, Minute).
type Slot struct {
	Hour   int
	Minute int
}

// Label returns the canonical zero-padded HH:MM form.
func (s Slot) Label() string {
	return fmt.Sprintf("%02d:%02d", s.Hour, s.Minute)
}

// SlotStatus classifies a slot for display.
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	StatusPast      SlotStatus = "past"
)

// SlotView pairs a slot with its computed status.
type SlotView struct {
	Slot   Slot
	Status SlotStatus
}

// ComputeDaySlots enumerates every slot of the window for the given day and
// classifies it. Precedence: booked wins over past, past wins over available.
// A slot counts as past only when day is now's calendar day and the slot does
// not start strictly after now's (hour, minute); the slot at the exact current
// minute is past, not bookable.
//
// Callers never offer weekend or past days, but the function stays correct if
// handed one: the past-time rule only fires for today, so an earlier day with
// an empty booked set comes back entirely available.
//
// Pure function of its inputs; fix now to make results deterministic.
func ComputeDaySlots(day Day, window Window, bookedLabels []string, now time.Time) []SlotView {
	booked := make(map[string]struct{}, len(bookedLabels))
	for _, label := range bookedLabels {
		booked[label] = struct{}{}
	}

	isToday := day.IsToday(now)
	nowHour, nowMinute := now.Hour(), now.Minute()

	var views []SlotView
	hour, minute := window.StartHour, 0
	for hour < window.EndHour || (hour == window.EndHour && minute == 0) {
		slot := Slot{Hour: hour, Minute: minute}

		status := StatusAvailable
		if _, taken := booked[slot.Label()]; taken {
			status = StatusBooked
		} else if isToday && (hour < nowHour || (hour == nowHour && minute <= nowMinute)) {
			status = StatusPast
		}
		views = append(views, SlotView{Slot: slot, Status: status})

		minute += window.IntervalMinutes
		if minute >= 60 {
			hour++
			minute = 0
		}
	}
	return views
}
