// internal/booking/errors.go
package booking

import "errors"

var (
	// ErrDuplicateRegistrant means the candidate's email already holds a booking.
	ErrDuplicateRegistrant = errors.New("email already has an appointment")

	// ErrSlotTaken means the candidate's (date, time) pair is already booked.
	ErrSlotTaken = errors.New("slot is no longer available")
)

// ValidationError reports a rejected candidate. It maps to a 400 at the
// request boundary, same as the duplicate and slot-taken cases.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

func validationErr(reason string) error {
	return ValidationError{Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var verr ValidationError
	return errors.As(err, &verr)
}
