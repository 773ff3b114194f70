// internal/booking/appointment.go
package booking

// Appointment is the unit of persistence. Records are created only through
// Ledger.Book and never mutated afterwards.
type Appointment struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	CreatedAt string `json:"createdAt"`
}

// Candidate is a proposed booking that has not been committed yet.
type Candidate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// OccupiedSlot is the public (date, time) projection of an appointment.
// Nothing else about the record crosses this boundary.
type OccupiedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}
