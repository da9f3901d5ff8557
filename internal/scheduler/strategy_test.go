package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Standand/elevator-exercise-sub002/internal/clock"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/fleet"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
)

// fakeCar is a directly-constructible stand-in for *elevator.Elevator so the
// strategy can be exercised against exact scenario numbers without driving a
// real state machine through ticks.
type fakeCar struct {
	id               int
	floor            domain.Floor
	state            domain.ElevatorState
	direction        domain.Direction
	furthest         domain.Floor
	hasFurthest      bool
	intermediate     int
	destinationCount int
	movementTicks    int
	doorOpenTicks    int
}

func (f *fakeCar) ID() int                        { return f.id }
func (f *fakeCar) CurrentFloor() domain.Floor      { return f.floor }
func (f *fakeCar) State() domain.ElevatorState     { return f.state }
func (f *fakeCar) Direction() domain.Direction     { return f.direction }
func (f *fakeCar) GetDestinationCount() int        { return f.destinationCount }
func (f *fakeCar) GetMovementTicks() int           { return f.movementTicks }
func (f *fakeCar) GetDoorOpenDuration() int        { return f.doorOpenTicks }
func (f *fakeCar) GetFurthestDestination() (domain.Floor, bool) {
	return f.furthest, f.hasFurthest
}
func (f *fakeCar) GetIntermediateStopsCount(domain.Floor) int { return f.intermediate }

func (f *fakeCar) CanAcceptHallCall(c hallcall.HallCall) bool {
	if f.state == domain.StateIdle {
		return true
	}
	if f.direction != c.Direction() {
		return false
	}
	floor := c.Floor().Value()
	switch f.direction {
	case domain.Up:
		if floor > f.floor.Value() {
			return true
		}
	case domain.Down:
		if floor < f.floor.Value() {
			return true
		}
	}
	return floor == f.floor.Value() && f.state == domain.StateLoading
}

func freshCall(t *testing.T, floor int, dir domain.Direction) hallcall.HallCall {
	t.Helper()
	c, err := hallcall.New(domain.NewFloor(floor), dir, 10, clock.NewFake(time.Unix(0, 0)))
	require.NoError(t, err)
	return c
}

func agedCall(t *testing.T, floor int, dir domain.Direction, age time.Duration) hallcall.HallCall {
	t.Helper()
	fake := clock.NewFake(time.Unix(0, 0))
	c, err := hallcall.New(domain.NewFloor(floor), dir, 10, fake)
	require.NoError(t, err)
	fake.Advance(age)
	return c
}

func TestSelectBestElevator_PerfectMatchWins(t *testing.T) {
	idleAtCall := &fakeCar{id: 2, floor: domain.NewFloor(5), state: domain.StateIdle, movementTicks: 3, doorOpenTicks: 3}
	busyCloser := &fakeCar{id: 1, floor: domain.NewFloor(4), state: domain.StateIdle, movementTicks: 3, doorOpenTicks: 3}

	call := freshCall(t, 5, domain.Up)
	cars := fleet.NewSnapshot([]fleet.Car{busyCloser, idleAtCall})

	best, phase, ok := NewCostStrategy().SelectBestElevator(call, cars)
	require.True(t, ok)
	assert.Equal(t, 2, best.ID())
	assert.Equal(t, PhasePerfectMatch, phase)
}

func TestSelectBestElevator_OnRouteCarIsCheaperThanIdleFarCar(t *testing.T) {
	onRouteCar := &fakeCar{
		id: 1, floor: domain.NewFloor(2), state: domain.StateMoving, direction: domain.Up,
		furthest: domain.NewFloor(8), hasFurthest: true, intermediate: 0,
		destinationCount: 1, movementTicks: 3, doorOpenTicks: 3,
	}
	farIdleCar := &fakeCar{id: 2, floor: domain.NewFloor(9), state: domain.StateIdle, movementTicks: 3, doorOpenTicks: 3}

	call := freshCall(t, 5, domain.Up)
	cars := fleet.NewSnapshot([]fleet.Car{onRouteCar, farIdleCar})

	best, phase, ok := NewCostStrategy().SelectBestElevator(call, cars)
	require.True(t, ok)
	assert.Equal(t, 1, best.ID())
	assert.Equal(t, PhaseNormal, phase)

	// on-route cost: distance(2,5)*3 + 0 stops + loadPenalty(1*2) = 9+0+2 = 11
	assert.Equal(t, 11, timeCost(call, onRouteCar))
}

func TestTimeCost_RouteExtensionBeyondFurthestDestination(t *testing.T) {
	// Elevator at floor 2 MOVING UP with destinations {4}; call at floor 1 UP
	// lies behind the current floor, so it is not on-route and the car must
	// finish its run out to 4 before reversing back down to 1.
	car := &fakeCar{
		id: 1, floor: domain.NewFloor(2), state: domain.StateMoving, direction: domain.Up,
		furthest: domain.NewFloor(4), hasFurthest: true, intermediate: 0,
		destinationCount: 1, movementTicks: 3, doorOpenTicks: 3,
	}
	call := freshCall(t, 1, domain.Up)

	// routeExtension: toFurthest = distance(2,4)*3=6, stops=0, backToTarget = distance(4,1)*3=9 -> 15
	// + loadPenalty(1*2=2) = 17
	assert.Equal(t, 17, timeCost(call, car))
}

func TestSelectBestElevator_IgnoresOppositeDirectionCarBeforeTimeout(t *testing.T) {
	opposite := &fakeCar{
		id: 1, floor: domain.NewFloor(6), state: domain.StateMoving, direction: domain.Down,
		furthest: domain.NewFloor(0), hasFurthest: true, movementTicks: 3, doorOpenTicks: 3,
	}

	call := agedCall(t, 5, domain.Up, 2*time.Second)
	cars := fleet.NewSnapshot([]fleet.Car{opposite})

	_, _, ok := NewCostStrategy().SelectBestElevator(call, cars)
	assert.False(t, ok, "opposite-direction car must not be considered before the call has aged past the timeout")
}

func TestSelectBestElevator_AcceptsOppositeDirectionCarAfterTimeout(t *testing.T) {
	opposite := &fakeCar{
		id: 1, floor: domain.NewFloor(6), state: domain.StateMoving, direction: domain.Down,
		furthest: domain.NewFloor(0), hasFurthest: true, intermediate: 0,
		destinationCount: 1, movementTicks: 3, doorOpenTicks: 3,
	}

	call := agedCall(t, 5, domain.Up, 11*time.Second)
	cars := fleet.NewSnapshot([]fleet.Car{opposite})

	best, phase, ok := NewCostStrategy().SelectBestElevator(call, cars)
	require.True(t, ok)
	assert.Equal(t, 1, best.ID())
	assert.Equal(t, PhaseTimeoutFallback, phase)

	// routeExtension: toFurthest = distance(6,0)*3=18, stops=0, backToTarget = distance(0,5)*3=15 -> 33
	// + loadPenalty(1*2=2) + OppositeDirectionPenalty(500) = 535
	assert.Equal(t, 535, oppositeDirectionCost(call, opposite))
}

func TestSelectBestElevator_TiesBreakByLowestID(t *testing.T) {
	left := &fakeCar{id: 5, floor: domain.NewFloor(0), state: domain.StateIdle, movementTicks: 3, doorOpenTicks: 3}
	right := &fakeCar{id: 2, floor: domain.NewFloor(10), state: domain.StateIdle, movementTicks: 3, doorOpenTicks: 3}

	call := freshCall(t, 5, domain.Up)
	cars := fleet.NewSnapshot([]fleet.Car{left, right})

	best, _, ok := NewCostStrategy().SelectBestElevator(call, cars)
	require.True(t, ok)
	assert.Equal(t, 2, best.ID(), "both cars are equidistant; the lower id must win")
}

func TestSelectBestElevator_NoneAvailable(t *testing.T) {
	call := freshCall(t, 5, domain.Up)
	best, _, ok := NewCostStrategy().SelectBestElevator(call, fleet.NewSnapshot(nil))
	assert.False(t, ok)
	assert.Nil(t, best)
}

func TestTimeCost_UnreachableWhenOppositeDirectionAndNotIdle(t *testing.T) {
	car := &fakeCar{id: 1, floor: domain.NewFloor(5), state: domain.StateMoving, direction: domain.Down, movementTicks: 3, doorOpenTicks: 3}
	call := freshCall(t, 8, domain.Up)

	assert.GreaterOrEqual(t, timeCost(call, car), unreachable)
}
