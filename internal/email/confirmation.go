package email

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alobarros8/Simulador-de-turnos/internal/booking"
)

const confirmationEmailTimeout = 5 * time.Second

// SendBookingConfirmation sends a confirmation email asynchronously.
// A nil sender means confirmation mail is not configured; delivery
// failures are logged and never affect the booking outcome.
func SendBookingConfirmation(sender Sender, appt booking.Appointment, logger *zerolog.Logger) {
	if sender == nil {
		return
	}

	subject := "Appointment confirmed"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment is confirmed for %s at %s.\n\nSee you then!",
		appt.Name, appt.Date, appt.Time,
	)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), confirmationEmailTimeout)
		defer cancel()
		if err := sender.Send(sendCtx, appt.Email, subject, body); err != nil && logger != nil {
			logger.Error().Err(err).Str("appointment_id", appt.ID).Msg("Failed to send confirmation email")
		}
	}()
}
