package elevator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Standand/elevator-exercise-sub002/internal/clock"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
)

func newTestElevator(t *testing.T) *Elevator {
	t.Helper()
	e, err := New(1, 10, 3, 3, nil)
	require.NoError(t, err)
	return e
}

func newCall(t *testing.T, floor int, dir domain.Direction) hallcall.HallCall {
	t.Helper()
	c, err := hallcall.New(domain.NewFloor(floor), dir, 10, clock.NewFake(time.Unix(0, 0)))
	require.NoError(t, err)
	return c
}

func TestNew_ValidatesBounds(t *testing.T) {
	_, err := New(1, 1, 3, 3, nil)
	assert.Error(t, err)

	_, err = New(1, 10, 0, 3, nil)
	assert.Error(t, err)

	_, err = New(1, 10, 3, 0, nil)
	assert.Error(t, err)
}

func TestNew_StartsIdleAtFloorZero(t *testing.T) {
	e := newTestElevator(t)
	assert.Equal(t, domain.StateIdle, e.State())
	assert.Equal(t, domain.Idle, e.Direction())
	assert.Equal(t, 0, e.CurrentFloor().Value())
	assert.Equal(t, 0, e.GetDestinationCount())
}

func TestAssign_PerfectMatchOpensDoorsImmediately(t *testing.T) {
	e := newTestElevator(t)
	call := newCall(t, 0, domain.Up)

	require.True(t, e.CanAcceptHallCall(call))
	require.NoError(t, e.Assign(call))

	assert.Equal(t, domain.StateLoading, e.State())
	assert.Equal(t, 1, e.GetDestinationCount())
}

func TestAssign_FromIdleCommitsDirection(t *testing.T) {
	e := newTestElevator(t)
	call := newCall(t, 5, domain.Up)

	require.NoError(t, e.Assign(call))

	assert.Equal(t, domain.StateMoving, e.State())
	assert.Equal(t, domain.Up, e.Direction())
}

func TestAssign_WithoutAcceptanceFails(t *testing.T) {
	e := newTestElevator(t)
	up := newCall(t, 5, domain.Up)
	require.NoError(t, e.Assign(up))

	down := newCall(t, 2, domain.Down)
	err := e.Assign(down)
	assert.ErrorIs(t, err, domain.ErrAssignWithoutAcceptance)
}

func TestCanAcceptHallCall_SameDirectionAhead(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 5, domain.Up)))

	assert.True(t, e.CanAcceptHallCall(newCall(t, 7, domain.Up)))
	assert.True(t, e.CanAcceptHallCall(newCall(t, 3, domain.Up)))
	assert.False(t, e.CanAcceptHallCall(newCall(t, 8, domain.Down)))
}

func TestTick_MovesOneFloorPerMovementTicks(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 2, domain.Up)))

	e.Tick()
	e.Tick()
	assert.Equal(t, 0, e.CurrentFloor().Value(), "should not move until the final tick of the window")

	e.Tick()
	assert.Equal(t, 1, e.CurrentFloor().Value())
	assert.Equal(t, domain.StateMoving, e.State())
}

func TestTick_ArrivesAndOpensDoors(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 1, domain.Up)))

	e.Tick()
	e.Tick()
	e.Tick()

	assert.Equal(t, 1, e.CurrentFloor().Value())
	assert.Equal(t, domain.StateLoading, e.State())
}

func TestTick_DoorsCloseThenBecomeIdleWhenNoDestinationsRemain(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 0, domain.Up)))

	assert.Equal(t, domain.StateLoading, e.State())

	e.Tick()
	e.Tick()
	assert.Equal(t, domain.StateLoading, e.State())

	e.Tick()
	assert.Equal(t, domain.StateIdle, e.State())
	assert.Equal(t, domain.Idle, e.Direction())
}

func TestTick_KeepsDirectionWhileDestinationsAheadRemain(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 3, domain.Up)))
	require.NoError(t, e.Assign(newCall(t, 1, domain.Up)))

	for i := 0; i < 3; i++ {
		e.Tick()
	}
	require.Equal(t, 1, e.CurrentFloor().Value())
	require.Equal(t, domain.StateLoading, e.State())

	e.Tick()
	e.Tick()
	e.Tick()

	assert.Equal(t, domain.StateMoving, e.State())
	assert.Equal(t, domain.Up, e.Direction(), "floor 3 is still committed and above floor 1")
}

func TestGetIntermediateStopsCount_ExcludesBothEndpoints(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 3, domain.Up)))
	require.NoError(t, e.Assign(newCall(t, 5, domain.Up)))

	assert.Equal(t, 1, e.GetIntermediateStopsCount(domain.NewFloor(5)))
	assert.Equal(t, 0, e.GetIntermediateStopsCount(domain.NewFloor(3)))
}

func TestGetFurthestDestination_TracksDirection(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 3, domain.Up)))
	require.NoError(t, e.Assign(newCall(t, 7, domain.Up)))

	f, ok := e.GetFurthestDestination()
	require.True(t, ok)
	assert.Equal(t, 7, f.Value())
}

func TestStatus_ReflectsCurrentState(t *testing.T) {
	e := newTestElevator(t)
	require.NoError(t, e.Assign(newCall(t, 4, domain.Up)))

	status := e.Status()
	assert.Equal(t, 1, status.ID)
	assert.Equal(t, domain.StateMoving, status.State)
	assert.Equal(t, domain.Up, status.Direction)
	assert.Equal(t, 1, status.DestinationCount)
	assert.False(t, status.IsIdle())
}
