// internal/booking/ledger.go
package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alobarros8/Simulador-de-turnos/internal/schedule"
)

const timeLabelLayout = "15:04"

// Ledger is the single authority over the appointment record set. Book
// runs its read-validate-write sequence under one mutex so concurrent
// requests can never both observe a slot as free and both commit; the
// loser of a race gets ErrSlotTaken or ErrDuplicateRegistrant, never a
// corrupted store.
type Ledger struct {
	mu          sync.Mutex
	store       Store
	phoneRegion string
	now         func() time.Time
}

func NewLedger(store Store, phoneRegion string) *Ledger {
	return &Ledger{
		store:       store,
		phoneRegion: phoneRegion,
		now:         time.Now,
	}
}

// ListOccupiedSlots returns the (date, time) projection of every record.
// Contact details never cross this boundary.
func (l *Ledger) ListOccupiedSlots(ctx context.Context) ([]OccupiedSlot, error) {
	appointments, err := l.store.List(ctx)
	if err != nil {
		return nil, err
	}

	slots := make([]OccupiedSlot, 0, len(appointments))
	for _, appt := range appointments {
		slots = append(slots, OccupiedSlot{Date: appt.Date, Time: appt.Time})
	}
	return slots, nil
}

// Book validates the candidate against the current record set and commits
// it. Exactly one durable write happens on success, none on failure.
func (l *Ledger) Book(ctx context.Context, candidate Candidate) (Appointment, error) {
	normalized, err := l.normalize(candidate)
	if err != nil {
		return Appointment{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	existing, err := l.store.List(ctx)
	if err != nil {
		return Appointment{}, fmt.Errorf("load record set: %w", err)
	}

	// Email uniqueness first, then slot uniqueness: one booking per
	// registrant, one booking per slot. Email comparison is exact and
	// case-sensitive.
	for _, appt := range existing {
		if appt.Email == normalized.Email {
			return Appointment{}, ErrDuplicateRegistrant
		}
	}
	for _, appt := range existing {
		if appt.Date == normalized.Date && appt.Time == normalized.Time {
			return Appointment{}, ErrSlotTaken
		}
	}

	record := Appointment{
		ID:        uuid.NewString(),
		Name:      normalized.Name,
		Email:     normalized.Email,
		Phone:     normalized.Phone,
		Date:      normalized.Date,
		Time:      normalized.Time,
		CreatedAt: l.now().UTC().Format(time.RFC3339),
	}
	if err := l.store.Append(ctx, record); err != nil {
		return Appointment{}, err
	}
	return record, nil
}

// PruneBefore removes records dated strictly before cutoff. This is the
// administrative cleanup path; nothing in the booking flow calls it.
func (l *Ledger) PruneBefore(ctx context.Context, cutoff schedule.Day) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.DeleteBefore(ctx, cutoff.Key())
}

// normalize trims the candidate, checks presence of every field, and
// canonicalizes date, time and phone. Date keys are strict YYYY-MM-DD;
// time labels parse leniently ("9:00") but always come back zero-padded
// so list and book agree on one canonical form.
func (l *Ledger) normalize(candidate Candidate) (Candidate, error) {
	normalized := Candidate{
		Name:  strings.TrimSpace(candidate.Name),
		Email: strings.TrimSpace(candidate.Email),
		Phone: strings.TrimSpace(candidate.Phone),
		Date:  strings.TrimSpace(candidate.Date),
		Time:  strings.TrimSpace(candidate.Time),
	}
	if normalized.Name == "" || normalized.Email == "" || normalized.Phone == "" ||
		normalized.Date == "" || normalized.Time == "" {
		return Candidate{}, validationErr("all fields are required")
	}

	day, err := schedule.ParseDayKey(normalized.Date)
	if err != nil {
		return Candidate{}, validationErr(err.Error())
	}
	normalized.Date = day.Key()

	parsedTime, err := time.Parse(timeLabelLayout, normalized.Time)
	if err != nil {
		return Candidate{}, validationErr("time must be in HH:MM format")
	}
	normalized.Time = parsedTime.Format(timeLabelLayout)

	normalized.Phone = NormalizePhone(normalized.Phone, l.phoneRegion)

	return normalized, nil
}
