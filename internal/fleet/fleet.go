// Package fleet defines the read-only view of elevators the scheduling
// strategy consumes. The orchestrator owns the live *elevator.Elevator
// values; the strategy only ever sees them through this narrower interface,
// which has no mutating methods and cannot trigger a CanAcceptHallCall/Assign
// race with tick advancement.
package fleet

import (
	"sort"

	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
)

// Car is the read-only surface of an elevator that the scheduler needs.
// *elevator.Elevator satisfies this interface structurally.
type Car interface {
	ID() int
	CurrentFloor() domain.Floor
	State() domain.ElevatorState
	Direction() domain.Direction
	CanAcceptHallCall(c hallcall.HallCall) bool
	GetFurthestDestination() (domain.Floor, bool)
	GetIntermediateStopsCount(target domain.Floor) int
	GetDestinationCount() int
	GetMovementTicks() int
	GetDoorOpenDuration() int
}

// Snapshot is a fleet view ordered by ascending ID, the stable iteration
// order required for deterministic tie-breaking.
type Snapshot []Car

// NewSnapshot copies cars into a Snapshot sorted by ID. Sorting here, once,
// keeps every downstream scan (Phase 1/2/3) naturally in id order without
// each of them re-sorting.
func NewSnapshot(cars []Car) Snapshot {
	out := make(Snapshot, len(cars))
	copy(out, cars)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}
