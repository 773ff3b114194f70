// internal/booking/sqlitestore.go
package booking

import (
	"context"
	"fmt"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/alobarros8/Simulador-de-turnos/internal/db"
)

// SQLiteStore keeps appointments in an embedded SQLite database. The
// unique indexes on (date, time) and email back the Ledger's invariant
// checks as a second line of defense.
type SQLiteStore struct {
	db *db.DB
}

func NewSQLiteStore(database *db.DB) *SQLiteStore {
	return &SQLiteStore{db: database}
}

func (s *SQLiteStore) List(ctx context.Context) ([]Appointment, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, email, phone, date, time, created_at FROM appointments",
	)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []Appointment
	for rows.Next() {
		var appt Appointment
		if err := rows.Scan(&appt.ID, &appt.Name, &appt.Email, &appt.Phone, &appt.Date, &appt.Time, &appt.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appointments, nil
}

func (s *SQLiteStore) Append(ctx context.Context, appt Appointment) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO appointments (id, name, email, phone, date, time, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		appt.ID, appt.Name, appt.Email, appt.Phone, appt.Date, appt.Time, appt.CreatedAt,
	)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("insert appointment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteBefore(ctx context.Context, cutoff string) (int64, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM appointments WHERE date < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete appointments: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete appointments: %w", err)
	}
	return removed, nil
}

// mapUniqueViolation translates a unique-index violation into the matching
// domain error, or returns nil for unrelated errors. The Ledger's own
// checks normally fire first; this catches anything they missed.
func mapUniqueViolation(err error) error {
	sqliteErr, ok := err.(sqlite3.Error)
	if !ok || sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
		return nil
	}
	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "appointments.email"):
		return ErrDuplicateRegistrant
	case strings.Contains(msg, "appointments.date"):
		return ErrSlotTaken
	default:
		return nil
	}
}
