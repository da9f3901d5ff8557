// Package constants centralizes magic numbers and component names that would
// otherwise be scattered as string/number literals across the codebase.
package constants

import "time"

// Strategy-internal constants. These are deliberately not part of Config:
// they are fixed, not tunable per deployment.
const (
	// TimeoutSeconds is how long a hall call must age before Phase 3 of the
	// scheduling strategy considers opposite-direction elevators.
	TimeoutSeconds = 10 * time.Second

	// LoadPenaltyPerStop biases the cost model away from already-busy cars.
	LoadPenaltyPerStop = 2

	// OppositeDirectionPenalty strongly discourages hijacking a car mid-run;
	// it only matters once a call has aged past TimeoutSeconds.
	OppositeDirectionPenalty = 500
)

// Configuration defaults.
const (
	DefaultMaxFloors             = 10
	DefaultElevatorCount         = 4
	DefaultTickIntervalMs        = 1000
	DefaultDoorOpenTicks         = 3
	DefaultElevatorMovementTicks = 3
	DefaultRequestIntervalSecs   = 5
)

// Configuration bounds enforced by internal/infra/config.
const (
	MinMaxFloors     = 2
	MaxMaxFloors     = 100
	MinElevatorCount = 1
	MaxElevatorCount = 10
	MinTickMs        = 10
	MaxTickMs        = 10000
	MinDoorOpenTicks = 1
	MaxDoorOpenTicks = 10
	MinMovementTicks = 1
	MinRequestSecs   = 1
	MaxRequestSecs   = 60
)

// Component names used as the "component" attribute on every scoped logger,
// so log lines can be filtered by subsystem regardless of message text.
const (
	ComponentElevator    = "elevator"
	ComponentScheduler   = "scheduler"
	ComponentBuilding    = "building"
	ComponentGenerator   = "generator"
	ComponentHTTP        = "http"
	ComponentWebSocket   = "websocket"
	ComponentConfig      = "config"
)
