// Package httpapi exposes the simulation's read-only observability surface:
// liveness, a fleet status snapshot, and Prometheus metrics. There is no
// control-plane endpoint here — hall calls are only ever created by the
// generator, never by an inbound request.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Standand/elevator-exercise-sub002/internal/constants"
)

// Server serves the observability surface over plain HTTP.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// SnapshotFunc produces the current fleet status as a JSON-marshalable value.
type SnapshotFunc func() any

// PendingCountFunc reports the number of unassigned hall calls.
type PendingCountFunc func() int

// New constructs the observability HTTP server. snapshot and pending are
// called fresh on every request, so they must be safe for concurrent use
// with the simulation's tick loop.
func New(port int, snapshot SnapshotFunc, pending PendingCountFunc, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", constants.ComponentHTTP))

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "healthy"})
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]any{
			"elevators":     snapshot(),
			"pending_calls": pending(),
		})
	})

	mux.Handle("/metrics", promhttp.Handler())

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info("starting observability server", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}
