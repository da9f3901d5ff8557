package scheduler

import (
	"math"

	"github.com/Standand/elevator-exercise-sub002/internal/constants"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
	"github.com/Standand/elevator-exercise-sub002/internal/fleet"
	"github.com/Standand/elevator-exercise-sub002/internal/hallcall"
)

// unreachable is a saturating sentinel cost. It is large enough that adding
// any realistic penalty to it never wraps back into a comparably small
// number, so "base + loadPenalty" stays correctly ordered even when base is
// the sentinel.
const unreachable = math.MaxInt64 / 4

// timeCost estimates, in tick-equivalents, how long car e would take to
// reach call.Floor() given its current commitments.
func timeCost(call hallcall.HallCall, e fleet.Car) int {
	m := e.GetMovementTicks()
	d := e.CurrentFloor().Distance(call.Floor())

	var base int
	switch {
	case e.State() == domain.StateIdle:
		base = d * m
	case e.Direction() == call.Direction():
		furthest, hasFurthest := e.GetFurthestDestination()
		if !hasFurthest {
			base = d * m
			break
		}

		if onRoute(e, call.Floor(), furthest) {
			base = d*m + e.GetIntermediateStopsCount(call.Floor())*e.GetDoorOpenDuration()
		} else {
			base = routeExtension(e, furthest, call.Floor())
		}
	default:
		base = unreachable
	}

	return saturatingAdd(base, loadPenalty(e))
}

// onRoute reports whether call.Floor() lies strictly beyond the car's
// current floor and no further than its furthest committed destination
// (the furthest floor itself counts as on-route), in the car's direction of
// travel.
func onRoute(e fleet.Car, callFloor, furthest domain.Floor) bool {
	current := e.CurrentFloor()
	switch e.Direction() {
	case domain.Up:
		return current.Value() < callFloor.Value() && callFloor.Value() <= furthest.Value()
	case domain.Down:
		return current.Value() > callFloor.Value() && callFloor.Value() >= furthest.Value()
	default:
		return false
	}
}

// routeExtension models finishing the committed run out to furthest
// (including its intermediate stops), then travelling on to target with no
// further stops on that leg.
func routeExtension(e fleet.Car, furthest, target domain.Floor) int {
	m := e.GetMovementTicks()
	current := e.CurrentFloor()

	toFurthest := current.Distance(furthest) * m
	stops := e.GetIntermediateStopsCount(furthest) * e.GetDoorOpenDuration()
	backToTarget := furthest.Distance(target) * m

	return saturatingAdd(saturatingAdd(toFurthest, stops), backToTarget)
}

// loadPenalty biases the cost model away from already-busy cars.
func loadPenalty(e fleet.Car) int {
	return e.GetDestinationCount() * constants.LoadPenaltyPerStop
}

// oppositeDirectionCost is used only by Phase 3, for cars moving opposite to
// the call's requested direction. It is only ever worth paying once the call
// has aged past the timeout.
func oppositeDirectionCost(call hallcall.HallCall, e fleet.Car) int {
	furthest, ok := e.GetFurthestDestination()
	if !ok {
		return unreachable
	}

	cost := routeExtension(e, furthest, call.Floor())
	cost = saturatingAdd(cost, loadPenalty(e))
	cost = saturatingAdd(cost, constants.OppositeDirectionPenalty)
	return cost
}

// saturatingAdd adds a and b without letting the unreachable sentinel
// overflow back into a small, comparably "cheap" number.
func saturatingAdd(a, b int) int {
	if a >= unreachable || b >= unreachable {
		return unreachable
	}
	sum := a + b
	if sum < a { // int overflow
		return unreachable
	}
	return sum
}
