// Package building orchestrates a fleet of elevators against a queue of
// pending hall calls, advancing the whole simulation one discrete tick at a
// time.
package building

import (
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/Standand/elevator-exercise-sub002/internal/clock"
	"github.com/Standand/elevator-exercise-sub002/internal/constants"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/elevator"
	"github.com/Standand/elevator-exercise-sub002/internal/fleet"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
	"github.com/Standand/elevator-exercise-sub002/internal/infra/metrics"
	"github.com/Standand/elevator-exercise-sub002/internal/scheduler"
)

// Building owns a fleet of elevators, a FIFO queue of unassigned hall calls,
// and the strategy that matches calls to cars. It is safe for concurrent use:
// EnqueueHallCall is expected to be called from a generator goroutine while
// Tick drives the simulation clock and Snapshot serves the observability
// surface.
type Building struct {
	mu sync.Mutex

	maxFloors int
	elevators []*elevator.Elevator
	pending   []hallcall.HallCall

	strategy scheduler.Strategy
	clock    clock.Source
	logger   *slog.Logger
}

// New constructs a Building with count elevators, each starting idle at
// floor 0.
func New(maxFloors, elevatorCount, doorOpenTicks, movementTicks int, src clock.Source, logger *slog.Logger) (*Building, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", constants.ComponentBuilding))

	cars := make([]*elevator.Elevator, elevatorCount)
	for i := range cars {
		e, err := elevator.New(i+1, maxFloors, doorOpenTicks, movementTicks, logger)
		if err != nil {
			return nil, err
		}
		cars[i] = e
	}

	return &Building{
		maxFloors: maxFloors,
		elevators: cars,
		strategy:  scheduler.NewCostStrategy(),
		clock:     src,
		logger:    logger,
	}, nil
}

// EnqueueHallCall validates and admits a new hall call. It is rejected with a
// domain.DomainError if the floor or direction is invalid for this building.
func (b *Building) EnqueueHallCall(floor int, direction domain.Direction) error {
	call, err := hallcall.New(domain.NewFloor(floor), direction, b.maxFloors, b.clock)
	if err != nil {
		return err
	}

	b.mu.Lock()
	b.pending = append(b.pending, call)
	b.mu.Unlock()

	metrics.HallCallEnqueued()
	b.logger.Info("hall call enqueued",
		slog.Int("floor", floor),
		slog.String("direction", direction.String()))

	return nil
}

// Tick advances the simulation by one discrete step: it attempts to assign
// every pending hall call to a car, in FIFO order, then advances every car's
// state machine in ascending id order.
func (b *Building) Tick() {
	start := b.clock.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	b.assignPendingLocked()

	for _, e := range b.elevators {
		e.Tick()
		metrics.ElevatorStatus(elevatorLabel(e.ID()), e.CurrentFloor().Value(), e.GetDestinationCount())
	}

	metrics.ObserveTickDuration(b.clock.Now().Sub(start).Seconds())
}

// assignPendingLocked must be called with mu held. It walks the pending queue
// once per tick; calls that cannot yet be assigned (normal candidates are all
// busy and the timeout fallback hasn't armed) remain queued for the next
// tick, ageing naturally via their own clock.
func (b *Building) assignPendingLocked() {
	cars := make([]fleet.Car, len(b.elevators))
	for i, e := range b.elevators {
		cars[i] = e
	}
	snapshot := fleet.NewSnapshot(cars)

	remaining := b.pending[:0]
	for _, call := range b.pending {
		car, phase, ok := b.strategy.SelectBestElevator(call, snapshot)
		if !ok {
			remaining = append(remaining, call)
			continue
		}

		assigned := b.elevatorByID(car.ID())
		if err := assigned.Assign(call); err != nil {
			panic(err)
		}

		metrics.HallCallAssigned(phase)
		if phase == scheduler.PhaseTimeoutFallback {
			metrics.HallCallTimedOut()
		}

		b.logger.Info("hall call assigned",
			slog.Int("floor", call.Floor().Value()),
			slog.String("direction", call.Direction().String()),
			slog.Int("elevator_id", assigned.ID()),
			slog.String("phase", phase),
			slog.Duration("age", call.Age()))
	}
	b.pending = remaining

	for _, call := range b.pending {
		if call.Age() >= constants.TimeoutSeconds {
			b.logger.Warn("hall call waiting past timeout threshold",
				slog.Int("floor", call.Floor().Value()),
				slog.String("direction", call.Direction().String()),
				slog.Duration("age", call.Age()))
		}
	}
}

func (b *Building) elevatorByID(id int) *elevator.Elevator {
	for _, e := range b.elevators {
		if e.ID() == id {
			return e
		}
	}
	return nil
}

// Snapshot returns a read-only status report for every car, ordered by id.
func (b *Building) Snapshot() []domain.ElevatorStatus {
	b.mu.Lock()
	defer b.mu.Unlock()

	statuses := make([]domain.ElevatorStatus, len(b.elevators))
	for i, e := range b.elevators {
		statuses[i] = e.Status()
	}
	return statuses
}

// PendingCount reports how many hall calls are currently unassigned.
func (b *Building) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Run drives Tick on the given interval until ctx-equivalent stop is
// requested by closing done. It blocks the calling goroutine.
func (b *Building) Run(interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			b.Tick()
		}
	}
}

func elevatorLabel(id int) string {
	return "elevator-" + strconv.Itoa(id)
}
