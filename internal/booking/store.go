// internal/booking/store.go
package booking

import "context"

// Store is the durable appointment collection. Implementations do not
// enforce the booking invariants themselves (beyond any backstop the
// storage engine provides); the Ledger owns the check-then-write sequence
// and serializes it.
type Store interface {
	// List returns every stored appointment, in no guaranteed order.
	List(ctx context.Context) ([]Appointment, error)

	// Append persists one new appointment.
	Append(ctx context.Context, appt Appointment) error

	// DeleteBefore removes appointments whose date key sorts strictly
	// before cutoff (YYYY-MM-DD keys compare correctly as strings).
	// Returns the number of records removed.
	DeleteBefore(ctx context.Context, cutoff string) (int64, error)
}
