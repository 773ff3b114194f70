package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alobarros8/Simulador-de-turnos/internal/booking"
	"github.com/alobarros8/Simulador-de-turnos/internal/schedule"
)

const retentionJobTimeout = 2 * time.Minute

// RegisterRetentionJob registers the periodic purge of appointments whose
// date lies more than retentionDays in the past. This is the only path
// that deletes records; the booking flow never does.
func RegisterRetentionJob(svc *Service, ledger *booking.Ledger, retentionDays int, cronExpr string) error {
	if ledger == nil {
		return fmt.Errorf("retention job requires ledger")
	}
	if retentionDays <= 0 {
		return fmt.Errorf("retention job requires a positive day count")
	}

	jobName := "appointment_retention"
	jobLogger := log.With().
		Str("component", "appointment_retention_job").
		Str("job_name", jobName).
		Str("cron", cronExpr).
		Int("retention_days", retentionDays).
		Logger()

	_, err := svc.AddCronJob(jobName, cronExpr, func() {
		ctx, cancel := context.WithTimeout(context.Background(), retentionJobTimeout)
		defer cancel()

		cutoff := schedule.NewDay(time.Now().AddDate(0, 0, -retentionDays))
		removed, err := ledger.PruneBefore(ctx, cutoff)
		if err != nil {
			jobLogger.Error().Err(err).Str("cutoff", cutoff.Key()).Msg("Failed to purge old appointments")
			return
		}
		if removed > 0 {
			jobLogger.Info().Int64("removed", removed).Str("cutoff", cutoff.Key()).Msg("Purged old appointments")
		}
	})
	return err
}
