// Package elevator implements the per-car state machine: movement, door
// timing, and destination-set bookkeeping. An Elevator is mutated only by its
// owning orchestrator; the scheduler only ever reads it through the
// accessors below.
package elevator

import (
	"log/slog"

	"github.com/Standand/elevator-exercise-sub002/internal/constants"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
)

// Elevator is a single car's state machine.
type Elevator struct {
	id        int
	maxFloors int

	currentFloor int
	state        domain.ElevatorState
	direction    domain.Direction

	destinations *destinationSet

	movementTicks    int
	doorOpenDuration int
	motionCounter    int
	doorCounter      int

	logger *slog.Logger
}

// New constructs an Elevator at floor 0, idle, with no destinations.
func New(id, maxFloors, doorOpenTicks, movementTicks int, logger *slog.Logger) (*Elevator, error) {
	if maxFloors < constants.MinMaxFloors || maxFloors > constants.MaxMaxFloors {
		return nil, domain.NewValidationError("maxFloors out of range", nil).
			WithContext("max_floors", maxFloors)
	}
	if doorOpenTicks < 1 {
		return nil, domain.NewValidationError("doorOpenTicks must be at least 1", nil).
			WithContext("door_open_ticks", doorOpenTicks)
	}
	if movementTicks < 1 {
		return nil, domain.NewValidationError("movementTicks must be at least 1", nil).
			WithContext("movement_ticks", movementTicks)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Elevator{
		id:               id,
		maxFloors:        maxFloors,
		state:            domain.StateIdle,
		direction:        domain.Idle,
		destinations:     newDestinationSet(maxFloors),
		movementTicks:    movementTicks,
		doorOpenDuration: doorOpenTicks,
		logger:           logger.With(slog.String("component", constants.ComponentElevator), slog.Int("elevator_id", id)),
	}, nil
}

// ID returns the car's stable identifier.
func (e *Elevator) ID() int { return e.id }

// CurrentFloor returns the car's current floor.
func (e *Elevator) CurrentFloor() domain.Floor { return domain.NewFloor(e.currentFloor) }

// State returns the car's current state.
func (e *Elevator) State() domain.ElevatorState { return e.state }

// Direction returns the car's current committed heading.
func (e *Elevator) Direction() domain.Direction { return e.direction }

// GetMovementTicks returns the ticks required to traverse one floor.
func (e *Elevator) GetMovementTicks() int { return e.movementTicks }

// GetDoorOpenDuration returns the ticks doors remain open at each stop.
func (e *Elevator) GetDoorOpenDuration() int { return e.doorOpenDuration }

// GetDestinationCount returns the cardinality of the destination set.
func (e *Elevator) GetDestinationCount() int { return e.destinations.count() }

// GetFurthestDestination returns the destination maximally ahead of the
// current floor in the current direction, and false if there are none.
func (e *Elevator) GetFurthestDestination() (domain.Floor, bool) {
	switch e.direction {
	case domain.Up:
		f, ok := e.destinations.max()
		return domain.NewFloor(f), ok
	case domain.Down:
		f, ok := e.destinations.min()
		return domain.NewFloor(f), ok
	default:
		return 0, false
	}
}

// GetIntermediateStopsCount counts destinations strictly between the current
// floor and target, exclusive of both ends.
func (e *Elevator) GetIntermediateStopsCount(target domain.Floor) int {
	lo, hi := e.currentFloor, target.Value()
	if lo > hi {
		lo, hi = hi, lo
	}
	count := 0
	e.destinations.forEach(func(f int) {
		if f > lo && f < hi {
			count++
		}
	})
	return count
}

// CanAcceptHallCall reports whether this car can serve c without requiring
// the timeout-triggered opposite-direction fallback.
func (e *Elevator) CanAcceptHallCall(c hallcall.HallCall) bool {
	if e.state == domain.StateIdle {
		return true
	}

	if e.direction != c.Direction() {
		return false
	}

	floor := c.Floor().Value()
	switch e.direction {
	case domain.Up:
		if floor > e.currentFloor {
			return true
		}
	case domain.Down:
		if floor < e.currentFloor {
			return true
		}
	}

	return floor == e.currentFloor && e.state == domain.StateLoading
}

// Assign commits the car to visiting c.Floor(). The caller must have already
// verified CanAcceptHallCall(c); violating that precondition is a
// programming bug and is reported as ErrAssignWithoutAcceptance rather than
// silently corrected.
func (e *Elevator) Assign(c hallcall.HallCall) error {
	if !e.CanAcceptHallCall(c) {
		return domain.ErrAssignWithoutAcceptance
	}

	floor := c.Floor().Value()
	e.destinations.add(floor)

	if e.state == domain.StateIdle {
		switch {
		case floor > e.currentFloor:
			e.direction = domain.Up
			e.state = domain.StateMoving
		case floor < e.currentFloor:
			e.direction = domain.Down
			e.state = domain.StateMoving
		default:
			// Perfect match: doors can open immediately, no travel needed.
			e.state = domain.StateLoading
			e.doorCounter = e.doorOpenDuration
		}
	}

	e.logger.Debug("hall call assigned",
		slog.Int("floor", floor),
		slog.String("direction", c.Direction().String()),
		slog.String("state", string(e.state)))

	return nil
}

// Tick advances the car by one discrete simulation step: an idle car does
// nothing, a moving car steps one floor every movementTicks ticks and opens
// its doors on reaching a destination, and a loading car counts down its
// door timer and then either heads for its remaining destinations or idles.
func (e *Elevator) Tick() {
	switch e.state {
	case domain.StateIdle:
		// No destinations, nothing to do.
	case domain.StateMoving:
		e.tickMoving()
	case domain.StateLoading:
		e.tickLoading()
	default:
		panic("elevator: unreachable state " + string(e.state))
	}
}

func (e *Elevator) tickMoving() {
	if e.motionCounter < e.movementTicks-1 {
		e.motionCounter++
		return
	}

	step := 1
	if e.direction == domain.Down {
		step = -1
	}
	next := e.currentFloor + step

	e.currentFloor = next
	e.motionCounter = 0

	if e.destinations.has(next) {
		e.destinations.remove(next)
		e.state = domain.StateLoading
		e.doorCounter = e.doorOpenDuration
		e.logger.Info("arrived and opening doors", slog.Int("floor", next))
	}
}

func (e *Elevator) tickLoading() {
	if e.doorCounter > 1 {
		e.doorCounter--
		return
	}

	e.doorCounter = 0
	// A stop opened in place (perfect match or a same-floor call while
	// loading) keeps its floor in the set until the doors close.
	e.destinations.remove(e.currentFloor)

	if e.destinations.isEmpty() {
		e.state = domain.StateIdle
		e.direction = domain.Idle
		return
	}

	switch e.direction {
	case domain.Up:
		if !e.destinations.hasAbove(e.currentFloor) {
			e.direction = domain.Down
		}
	case domain.Down:
		if !e.destinations.hasBelow(e.currentFloor) {
			e.direction = domain.Up
		}
	default:
		// Perfect-match car picked up further requests while its doors were
		// open; pick a heading toward whichever side now holds destinations.
		if e.destinations.hasAbove(e.currentFloor) {
			e.direction = domain.Up
		} else if e.destinations.hasBelow(e.currentFloor) {
			e.direction = domain.Down
		}
	}

	e.state = domain.StateMoving
	e.motionCounter = 0
}

// Status returns a read-only snapshot for the observability surface.
func (e *Elevator) Status() domain.ElevatorStatus {
	return domain.ElevatorStatus{
		ID:               e.id,
		CurrentFloor:     domain.NewFloor(e.currentFloor),
		State:            e.state,
		Direction:        e.direction,
		DestinationCount: e.destinations.count(),
	}
}
