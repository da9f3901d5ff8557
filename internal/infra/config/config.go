// Package config loads and validates the simulation's tunable parameters from
// the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"

	"github.com/Standand/elevator-exercise-sub002/internal/constants"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
)

// Config holds every tunable the simulation reads at startup. Fields map
// directly onto the options table in the building's specification.
type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`

	MaxFloors             int `env:"MAX_FLOORS" envDefault:"10"`
	ElevatorCount         int `env:"ELEVATOR_COUNT" envDefault:"4"`
	TickIntervalMs        int `env:"TICK_INTERVAL_MS" envDefault:"1000"`
	DoorOpenTicks         int `env:"DOOR_OPEN_TICKS" envDefault:"3"`
	ElevatorMovementTicks int `env:"ELEVATOR_MOVEMENT_TICKS" envDefault:"3"`
	RequestIntervalSecs   int `env:"REQUEST_INTERVAL_SECONDS" envDefault:"5"`

	Port              int           `env:"PORT" envDefault:"6660"`
	ReadTimeout       time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout      time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout   time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	MetricsEnabled    bool          `env:"METRICS_ENABLED" envDefault:"true"`
	WebSocketEnabled  bool          `env:"WEBSOCKET_ENABLED" envDefault:"true"`
	WebSocketPath     string        `env:"WEBSOCKET_PATH" envDefault:"/ws/status"`
	WebSocketInterval time.Duration `env:"WEBSOCKET_STATUS_INTERVAL" envDefault:"500ms"`
}

// TickInterval returns TickIntervalMs as a time.Duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// RequestInterval returns RequestIntervalSecs as a time.Duration.
func (c *Config) RequestInterval() time.Duration {
	return time.Duration(c.RequestIntervalSecs) * time.Second
}

// Load parses the environment into a Config and validates it against the
// bounds the building's specification fixes for every option.
func Load() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.MaxFloors < constants.MinMaxFloors || cfg.MaxFloors > constants.MaxMaxFloors {
		return domain.NewValidationError("max floors out of range", nil).
			WithContext("max_floors", cfg.MaxFloors).
			WithContext("min_allowed", constants.MinMaxFloors).
			WithContext("max_allowed", constants.MaxMaxFloors)
	}

	if cfg.ElevatorCount < constants.MinElevatorCount || cfg.ElevatorCount > constants.MaxElevatorCount {
		return domain.NewValidationError("elevator count out of range", nil).
			WithContext("elevator_count", cfg.ElevatorCount).
			WithContext("min_allowed", constants.MinElevatorCount).
			WithContext("max_allowed", constants.MaxElevatorCount)
	}

	if cfg.TickIntervalMs < constants.MinTickMs || cfg.TickIntervalMs > constants.MaxTickMs {
		return domain.NewValidationError("tick interval out of range", nil).
			WithContext("tick_interval_ms", cfg.TickIntervalMs)
	}

	if cfg.DoorOpenTicks < constants.MinDoorOpenTicks || cfg.DoorOpenTicks > constants.MaxDoorOpenTicks {
		return domain.NewValidationError("door open ticks out of range", nil).
			WithContext("door_open_ticks", cfg.DoorOpenTicks)
	}

	if cfg.ElevatorMovementTicks < constants.MinMovementTicks {
		return domain.NewValidationError("elevator movement ticks must be at least the configured minimum", nil).
			WithContext("elevator_movement_ticks", cfg.ElevatorMovementTicks).
			WithContext("min_allowed", constants.MinMovementTicks)
	}

	if cfg.RequestIntervalSecs < constants.MinRequestSecs || cfg.RequestIntervalSecs > constants.MaxRequestSecs {
		return domain.NewValidationError("request interval seconds out of range", nil).
			WithContext("request_interval_seconds", cfg.RequestIntervalSecs)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return domain.NewValidationError("port must be between 1 and 65535", nil).
			WithContext("port", cfg.Port)
	}

	return nil
}

// IsProduction reports whether the environment is production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production" || c.Environment == "prod"
}
