// Command simulate runs the hall-call dispatch simulation: a fleet of
// elevators, a generator producing random hall calls, and a read-only
// observability surface over HTTP and WebSocket.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Standand/elevator-exercise-sub002/internal/building"
	"github.com/Standand/elevator-exercise-sub002/internal/clock"
	"github.com/Standand/elevator-exercise-sub002/internal/generator"
	"github.com/Standand/elevator-exercise-sub002/internal/httpapi"
	"github.com/Standand/elevator-exercise-sub002/internal/infra/config"
	"github.com/Standand/elevator-exercise-sub002/internal/infra/logging"
	"github.com/Standand/elevator-exercise-sub002/internal/observerws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logging.Init(cfg.LogLevel)

	slog.Info("elevator simulation starting",
		slog.String("environment", cfg.Environment),
		slog.Int("max_floors", cfg.MaxFloors),
		slog.Int("elevator_count", cfg.ElevatorCount),
		slog.Duration("tick_interval", cfg.TickInterval()),
		slog.Duration("request_interval", cfg.RequestInterval()))

	b, err := building.New(cfg.MaxFloors, cfg.ElevatorCount, cfg.DoorOpenTicks, cfg.ElevatorMovementTicks, clock.Real{}, slog.Default())
	if err != nil {
		slog.Error("failed to construct building", slog.String("error", err.Error()))
		os.Exit(1)
	}

	gen := generator.New(b, cfg.MaxFloors, cfg.RequestInterval(), time.Now().UnixNano(), slog.Default())

	done := make(chan struct{})
	go b.Run(cfg.TickInterval(), done)
	go gen.Run(done)

	var httpServer *httpapi.Server
	var wsServer *observerws.Server
	serverErrCh := make(chan error, 2)

	httpServer = httpapi.New(cfg.Port, func() any { return b.Snapshot() }, b.PendingCount, slog.Default())
	go func() {
		if err := httpServer.Start(); err != nil {
			serverErrCh <- err
		}
	}()

	if cfg.WebSocketEnabled {
		wsServer = observerws.New(cfg.Port+1, cfg.WebSocketPath, cfg.WebSocketInterval, func() any { return b.Snapshot() }, slog.Default())
		go func() {
			if err := wsServer.Start(); err != nil {
				serverErrCh <- err
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErrCh:
		slog.Error("server failed", slog.String("error", err.Error()))
	}

	close(done)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown failed", slog.String("error", err.Error()))
	}
	if wsServer != nil {
		if err := wsServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("websocket server shutdown failed", slog.String("error", err.Error()))
		}
	}

	slog.Info("elevator simulation stopped")
}
