// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/alobarros8/Simulador-de-turnos/internal/api/appointments"
	"github.com/alobarros8/Simulador-de-turnos/internal/booking"
	"github.com/alobarros8/Simulador-de-turnos/internal/config"
	"github.com/alobarros8/Simulador-de-turnos/internal/db"
	"github.com/alobarros8/Simulador-de-turnos/internal/email"
	"github.com/alobarros8/Simulador-de-turnos/internal/ratelimit"
	"github.com/alobarros8/Simulador-de-turnos/internal/schedule"
	"github.com/alobarros8/Simulador-de-turnos/internal/scheduler"
)

const shutdownTimeout = 30 * time.Second

func setupLogger(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogger(cfg.App.Environment)

	store, database, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open appointment store")
	}
	if database != nil {
		defer database.Close()
	}

	ledger := booking.NewLedger(store, cfg.Booking.PhoneRegion)
	window := schedule.Window{
		StartHour:       cfg.Slots.StartHour,
		EndHour:         cfg.Slots.EndHour,
		IntervalMinutes: cfg.Slots.IntervalMinutes,
	}

	var sender email.Sender
	if cfg.EmailEnabled() {
		client, err := email.NewSESClient(cfg.Email.AccessKeyID, cfg.Email.SecretAccessKey, cfg.Email.Region, cfg.Email.Sender)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to configure email client")
		}
		sender = client
		log.Info().Str("sender", cfg.Email.Sender).Msg("Confirmation email enabled")
	}

	appointments.InitHandlers(ledger, window, sender)

	limiter := ratelimit.New(&ratelimit.Config{
		BookCooldown:   time.Duration(cfg.Limits.BookCooldownSeconds) * time.Second,
		BookMaxPerHour: cfg.Limits.BookMaxPerHour,
	})
	defer limiter.Close()

	if cfg.Retention.Days > 0 {
		sched, err := scheduler.New()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize scheduler")
		}
		if err := scheduler.RegisterRetentionJob(sched, ledger, cfg.Retention.Days, cfg.Retention.Cron); err != nil {
			log.Fatal().Err(err).Msg("Failed to register retention job")
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				log.Error().Err(err).Msg("Failed to stop scheduler")
			}
		}()
	}

	server := newServer(cfg, limiter)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Int("port", cfg.App.Port).Str("driver", cfg.Database.Driver).Msg("Starting server")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Msg("Shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}

func openStore(cfg *config.Config) (booking.Store, *db.DB, error) {
	switch cfg.Database.Driver {
	case "sqlite":
		database, err := db.New(cfg.Database.Filename)
		if err != nil {
			return nil, nil, err
		}
		return booking.NewSQLiteStore(database), database, nil
	case "json":
		return booking.NewFileStore(cfg.Database.Filename), nil, nil
	default:
		return nil, nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}
}
