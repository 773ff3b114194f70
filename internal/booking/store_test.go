package booking_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alobarros8/Simulador-de-turnos/internal/booking"
	"github.com/alobarros8/Simulador-de-turnos/internal/testutil"
)

func sampleAppointment(id, email, date, timeLabel string) booking.Appointment {
	return booking.Appointment{
		ID:        id,
		Name:      "Ana Garcia",
		Email:     email,
		Phone:     "+541141234567",
		Date:      date,
		Time:      timeLabel,
		CreatedAt: "2025-06-01T12:00:00Z",
	}
}

// Both store implementations must satisfy the same contract.
func eachStore(t *testing.T, run func(t *testing.T, store booking.Store)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		run(t, testutil.NewTestStore(t))
	})
	t.Run("json", func(t *testing.T) {
		run(t, booking.NewFileStore(filepath.Join(t.TempDir(), "data", "appointments.json")))
	})
}

func TestStore_EmptyList(t *testing.T) {
	eachStore(t, func(t *testing.T, store booking.Store) {
		appointments, err := store.List(context.Background())
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(appointments) != 0 {
			t.Fatalf("expected empty store, got %d", len(appointments))
		}
	})
}

func TestStore_AppendAndList(t *testing.T) {
	eachStore(t, func(t *testing.T, store booking.Store) {
		ctx := context.Background()

		first := sampleAppointment("a1", "ana@example.com", "2025-06-10", "09:00")
		second := sampleAppointment("a2", "bruno@example.com", "2025-06-11", "10:30")
		if err := store.Append(ctx, first); err != nil {
			t.Fatalf("append: %v", err)
		}
		if err := store.Append(ctx, second); err != nil {
			t.Fatalf("append: %v", err)
		}

		appointments, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(appointments) != 2 {
			t.Fatalf("count: %d", len(appointments))
		}

		byID := make(map[string]booking.Appointment, len(appointments))
		for _, appt := range appointments {
			byID[appt.ID] = appt
		}
		if byID["a1"] != first || byID["a2"] != second {
			t.Fatalf("round trip mismatch: %+v", byID)
		}
	})
}

func TestStore_DeleteBefore(t *testing.T) {
	eachStore(t, func(t *testing.T, store booking.Store) {
		ctx := context.Background()

		records := []booking.Appointment{
			sampleAppointment("a1", "ana@example.com", "2025-06-08", "09:00"),
			sampleAppointment("a2", "bruno@example.com", "2025-06-09", "09:00"),
			sampleAppointment("a3", "carla@example.com", "2025-06-10", "09:00"),
		}
		for _, appt := range records {
			if err := store.Append(ctx, appt); err != nil {
				t.Fatalf("append %s: %v", appt.ID, err)
			}
		}

		removed, err := store.DeleteBefore(ctx, "2025-06-10")
		if err != nil {
			t.Fatalf("delete: %v", err)
		}
		if removed != 2 {
			t.Fatalf("removed: %d, want 2", removed)
		}

		appointments, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(appointments) != 1 || appointments[0].ID != "a3" {
			t.Fatalf("remaining: %+v", appointments)
		}

		// A second sweep finds nothing.
		removed, err = store.DeleteBefore(ctx, "2025-06-10")
		if err != nil {
			t.Fatalf("second delete: %v", err)
		}
		if removed != 0 {
			t.Fatalf("second sweep removed %d", removed)
		}
	})
}

func TestSQLiteStore_UniqueIndexBackstop(t *testing.T) {
	store := testutil.NewTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, sampleAppointment("a1", "ana@example.com", "2025-06-10", "09:00")); err != nil {
		t.Fatalf("append: %v", err)
	}

	err := store.Append(ctx, sampleAppointment("a2", "bruno@example.com", "2025-06-10", "09:00"))
	if !errors.Is(err, booking.ErrSlotTaken) {
		t.Fatalf("slot collision: %v, want ErrSlotTaken", err)
	}

	err = store.Append(ctx, sampleAppointment("a3", "ana@example.com", "2025-06-11", "09:00"))
	if !errors.Is(err, booking.ErrDuplicateRegistrant) {
		t.Fatalf("email collision: %v, want ErrDuplicateRegistrant", err)
	}
}

func TestFileStore_FormatOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appointments.json")
	store := booking.NewFileStore(path)
	ctx := context.Background()

	if err := store.Append(ctx, sampleAppointment("a1", "ana@example.com", "2025-06-10", "09:00")); err != nil {
		t.Fatalf("append: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	body := string(data)
	for _, field := range []string{`"id"`, `"name"`, `"email"`, `"phone"`, `"date"`, `"time"`, `"createdAt"`} {
		if !strings.Contains(body, field) {
			t.Fatalf("field %s missing from file:\n%s", field, body)
		}
	}
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("file is not a JSON array:\n%s", body)
	}
}
