// Package scheduler implements the direction-aware scheduling strategy: a
// pure function from (hall call, fleet snapshot) to the elevator that should
// service it, or no elevator at all.
package scheduler

import (
	"github.com/Standand/elevator-exercise-sub002/internal/constants"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/fleet"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
)

// Phase names the stage of the strategy that produced a match, useful for
// logging and metrics.
const (
	PhasePerfectMatch    = "perfect_match"
	PhaseNormal          = "normal"
	PhaseTimeoutFallback = "timeout_fallback"
)

// Strategy selects the best elevator to service a hall call, or reports that
// none is currently available. Implementations must be pure and
// side-effect-free: no mutation of any car, no hidden state across calls.
type Strategy interface {
	SelectBestElevator(call hallcall.HallCall, cars fleet.Snapshot) (car fleet.Car, phase string, ok bool)
}

// CostStrategy is a three-phase search (perfect match, cheapest normal
// candidate, timeout-gated opposite-direction fallback) with
// lowest-cost-then-lowest-id tie-breaking at every phase.
type CostStrategy struct{}

// NewCostStrategy constructs the strategy. It carries no state, so a single
// instance can be shared across every tick and every building.
func NewCostStrategy() CostStrategy {
	return CostStrategy{}
}

// SelectBestElevator implements Strategy.
func (CostStrategy) SelectBestElevator(call hallcall.HallCall, cars fleet.Snapshot) (fleet.Car, string, bool) {
	if best, ok := perfectMatch(cars, call); ok {
		return best, PhasePerfectMatch, true
	}

	if best, ok := cheapestNormalCandidate(cars, call); ok {
		return best, PhaseNormal, true
	}

	if call.Age() >= constants.TimeoutSeconds {
		if best, ok := cheapestOppositeDirectionCandidate(cars, call); ok {
			return best, PhaseTimeoutFallback, true
		}
	}

	return nil, "", false
}

// perfectMatch is Phase 1: an idle car already parked at the call's floor.
// cars is already id-ordered, so the first match is also the lowest id.
func perfectMatch(cars fleet.Snapshot, call hallcall.HallCall) (fleet.Car, bool) {
	for _, c := range cars {
		if c.State() == domain.StateIdle && c.CurrentFloor() == call.Floor() {
			return c, true
		}
	}
	return nil, false
}

// cheapestNormalCandidate is Phase 2: the lowest-cost car among those that
// can accept the call directly, ties broken by lowest id.
func cheapestNormalCandidate(cars fleet.Snapshot, call hallcall.HallCall) (fleet.Car, bool) {
	var best fleet.Car
	bestCost := unreachable

	for _, c := range cars {
		if !c.CanAcceptHallCall(call) {
			continue
		}
		cost := timeCost(call, c)
		if best == nil || cost < bestCost {
			best = c
			bestCost = cost
		}
	}

	return best, best != nil
}

// cheapestOppositeDirectionCandidate is Phase 3: among cars moving away from
// the call's requested direction, the lowest-cost one, ties broken by lowest
// id. The direction != Idle check is defensive: invariant 3 guarantees a
// MOVING car never has direction Idle, but the filter is written explicitly
// rather than relying on that invariant silently.
func cheapestOppositeDirectionCandidate(cars fleet.Snapshot, call hallcall.HallCall) (fleet.Car, bool) {
	var best fleet.Car
	bestCost := unreachable

	for _, c := range cars {
		if c.State() != domain.StateMoving {
			continue
		}
		if c.Direction() == domain.Idle || c.Direction() == call.Direction() {
			continue
		}

		cost := oppositeDirectionCost(call, c)
		if best == nil || cost < bestCost {
			best = c
			bestCost = cost
		}
	}

	return best, best != nil
}
