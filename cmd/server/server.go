// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alobarros8/Simulador-de-turnos/internal/api"
	"github.com/alobarros8/Simulador-de-turnos/internal/api/appointments"
	"github.com/alobarros8/Simulador-de-turnos/internal/config"
	"github.com/alobarros8/Simulador-de-turnos/internal/ratelimit"
)

func newServer(cfg *config.Config, limiter *ratelimit.Limiter) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	handler := api.ChainMiddleware(
		router,
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
	)

	registerRoutes(router, cfg, limiter)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(mux *http.ServeMux, cfg *config.Config, limiter *ratelimit.Limiter) {
	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Booking API
	mux.HandleFunc("GET /api/slots", appointments.HandleListSlots)
	mux.HandleFunc("GET /api/availability", appointments.HandleAvailability)
	mux.Handle("POST /api/book", api.ChainMiddleware(
		http.HandlerFunc(appointments.HandleBook),
		api.WithBookingRateLimit(limiter),
	))

	// Static calendar UI, when a directory is configured
	if cfg.App.StaticDir != "" {
		fs := http.FileServer(http.Dir(cfg.App.StaticDir))
		mux.Handle("/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Ctx(r.Context()).Debug().
				Str("path", r.URL.Path).
				Str("static_dir", cfg.App.StaticDir).
				Msg("Static file request")
			fs.ServeHTTP(w, r)
		}))
	}
}
