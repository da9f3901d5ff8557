// Package hallcall models the external request a passenger makes from a
// floor: "pick me up here, I want to go up/down".
package hallcall

import (
	"time"

	"github.com/Standand/elevator-exercise-sub002/internal/clock"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
)

// HallCall is a pending request for service at a floor in a given direction.
// It is immutable after construction; age() is the only operation that
// changes value over time, and it does so by reading the injected clock
// rather than by mutating the struct.
type HallCall struct {
	floor     domain.Floor
	direction domain.Direction
	createdAt time.Time
	clock     clock.Source
}

// New constructs a HallCall, stamping it with the clock's current time.
// It enforces the invariant that floor 0 can only be requested going up and
// the top floor can only be requested going down — a call that violates this
// is rejected with InvalidHallCall before it ever reaches the scheduler.
func New(floor domain.Floor, direction domain.Direction, maxFloors int, src clock.Source) (HallCall, error) {
	if direction != domain.Up && direction != domain.Down {
		return HallCall{}, domain.NewValidationError("hall call direction must be up or down", domain.ErrInvalidHallCall).
			WithContext("direction", direction.String())
	}

	if floor.Value() < 0 || floor.Value() >= maxFloors {
		return HallCall{}, domain.NewValidationError("hall call floor is outside the building's range", domain.ErrInvalidFloor).
			WithContext("floor", floor.Value()).
			WithContext("max_floors", maxFloors)
	}

	if floor.Value() == 0 && direction != domain.Up {
		return HallCall{}, domain.NewValidationError("the bottom floor can only request up", domain.ErrInvalidHallCall).
			WithContext("floor", floor.Value()).
			WithContext("direction", direction.String())
	}

	if floor.Value() == maxFloors-1 && direction != domain.Down {
		return HallCall{}, domain.NewValidationError("the top floor can only request down", domain.ErrInvalidHallCall).
			WithContext("floor", floor.Value()).
			WithContext("direction", direction.String())
	}

	return HallCall{
		floor:     floor,
		direction: direction,
		createdAt: src.Now(),
		clock:     src,
	}, nil
}

// Floor returns the requested floor.
func (c HallCall) Floor() domain.Floor { return c.floor }

// Direction returns the requested heading.
func (c HallCall) Direction() domain.Direction { return c.direction }

// CreatedAt returns the timestamp the call was constructed at.
func (c HallCall) CreatedAt() time.Time { return c.createdAt }

// Age returns the elapsed duration since the call was created, read from the
// call's own injected clock so tests can advance it deterministically.
func (c HallCall) Age() time.Duration {
	return c.clock.Now().Sub(c.createdAt)
}
