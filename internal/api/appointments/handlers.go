// internal/api/appointments/handlers.go
package appointments

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alobarros8/Simulador-de-turnos/internal/api/apiutil"
	"github.com/alobarros8/Simulador-de-turnos/internal/booking"
	"github.com/alobarros8/Simulador-de-turnos/internal/email"
	"github.com/alobarros8/Simulador-de-turnos/internal/schedule"
)

const (
	bookingQueryTimeout = 5 * time.Second
	dateQueryKey        = "date"

	msgBooked              = "Appointment booked successfully."
	msgSlotTaken           = "This slot is no longer available."
	msgDuplicateRegistrant = "This email already has an appointment."
	msgBookingFailed       = "Failed to book appointment"
	msgListFailed          = "Failed to load booked slots"
)

var (
	ledger      *booking.Ledger
	window      schedule.Window
	mailSender  email.Sender
	handlerOnce sync.Once
)

type bookResponse struct {
	Message     string              `json:"message"`
	Appointment booking.Appointment `json:"appointment"`
}

type slotEntry struct {
	Time   string              `json:"time"`
	Status schedule.SlotStatus `json:"status"`
}

type availabilityResponse struct {
	Date  string      `json:"date"`
	Slots []slotEntry `json:"slots"`
}

// InitHandlers must be called during server startup before handling
// requests. The sender may be nil when confirmation email is not
// configured.
func InitHandlers(l *booking.Ledger, w schedule.Window, sender email.Sender) {
	if l == nil {
		return
	}
	handlerOnce.Do(func() {
		ledger = l
		window = w
		mailSender = sender
	})
}

// GET /api/slots
func HandleListSlots(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Booking ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	slots, err := l.ListOccupiedSlots(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to list occupied slots")
		apiutil.WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}
	if slots == nil {
		slots = []booking.OccupiedSlot{}
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, slots); err != nil {
		logger.Error().Err(err).Msg("Failed to write slots response")
	}
}

// POST /api/book
func HandleBook(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Booking ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, msgBookingFailed)
		return
	}

	var candidate booking.Candidate
	if err := apiutil.DecodeJSON(r, &candidate); err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	appt, err := l.Book(ctx, candidate)
	if err != nil {
		status, message := bookingErrorResponse(err)
		if status == http.StatusInternalServerError {
			logger.Error().Err(err).Msg("Failed to book appointment")
		} else {
			logger.Info().
				Err(err).
				Str("date", strings.TrimSpace(candidate.Date)).
				Str("time", strings.TrimSpace(candidate.Time)).
				Msg("Booking rejected")
		}
		apiutil.WriteError(w, status, message)
		return
	}

	logger.Info().
		Str("appointment_id", appt.ID).
		Str("date", appt.Date).
		Str("time", appt.Time).
		Msg("Appointment booked")

	email.SendBookingConfirmation(mailSender, appt, logger)

	if err := apiutil.WriteJSON(w, http.StatusCreated, bookResponse{
		Message:     msgBooked,
		Appointment: appt,
	}); err != nil {
		logger.Error().Err(err).Str("appointment_id", appt.ID).Msg("Failed to write booking response")
	}
}

// GET /api/availability?date=YYYY-MM-DD
func HandleAvailability(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	l := loadLedger()
	if l == nil {
		logger.Error().Msg("Booking ledger not initialized")
		apiutil.WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get(dateQueryKey))
	if raw == "" {
		apiutil.WriteError(w, http.StatusBadRequest, "date is required")
		return
	}
	day, err := schedule.ParseDayKey(raw)
	if err != nil {
		apiutil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	if day.IsWeekend() {
		apiutil.WriteError(w, http.StatusBadRequest, "appointments are not available on weekends")
		return
	}
	if day.IsPast(now) {
		apiutil.WriteError(w, http.StatusBadRequest, "date is in the past")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), bookingQueryTimeout)
	defer cancel()

	occupied, err := l.ListOccupiedSlots(ctx)
	if err != nil {
		logger.Error().Err(err).Str("date", day.Key()).Msg("Failed to list occupied slots")
		apiutil.WriteError(w, http.StatusInternalServerError, msgListFailed)
		return
	}

	var bookedLabels []string
	for _, slot := range occupied {
		if slot.Date == day.Key() {
			bookedLabels = append(bookedLabels, slot.Time)
		}
	}

	views := schedule.ComputeDaySlots(day, window, bookedLabels, now)
	entries := make([]slotEntry, 0, len(views))
	for _, view := range views {
		entries = append(entries, slotEntry{Time: view.Slot.Label(), Status: view.Status})
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, availabilityResponse{
		Date:  day.Key(),
		Slots: entries,
	}); err != nil {
		logger.Error().Err(err).Str("date", day.Key()).Msg("Failed to write availability response")
	}
}

func bookingErrorResponse(err error) (int, string) {
	switch {
	case booking.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, booking.ErrDuplicateRegistrant):
		return http.StatusBadRequest, msgDuplicateRegistrant
	case errors.Is(err, booking.ErrSlotTaken):
		return http.StatusBadRequest, msgSlotTaken
	default:
		return http.StatusInternalServerError, msgBookingFailed
	}
}

func loadLedger() *booking.Ledger {
	return ledger
}
