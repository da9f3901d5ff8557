// Package generator produces random hall calls at a configured interval,
// standing in for the passengers a real building would have.
package generator

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/Standand/elevator-exercise-sub002/internal/constants"
	"github.com/Standand/elevator-exercise-sub002/internal/domain"
)

// Enqueuer is the subset of *building.Building the generator depends on.
type Enqueuer interface {
	EnqueueHallCall(floor int, direction domain.Direction) error
}

// Generator emits a random, valid hall call on every tick of its own
// interval.
type Generator struct {
	building  Enqueuer
	maxFloors int
	interval  time.Duration
	rng       *rand.Rand
	logger    *slog.Logger
}

// New constructs a Generator. seed lets tests make its output deterministic.
func New(building Enqueuer, maxFloors int, interval time.Duration, seed int64, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		building:  building,
		maxFloors: maxFloors,
		interval:  interval,
		rng:       rand.New(rand.NewSource(seed)),
		logger:    logger.With(slog.String("component", constants.ComponentGenerator)),
	}
}

// EmitOne generates and enqueues a single random hall call.
func (g *Generator) EmitOne() {
	floor, direction := g.randomCall()

	if err := g.building.EnqueueHallCall(floor, direction); err != nil {
		g.logger.Error("generated an invalid hall call",
			slog.Int("floor", floor),
			slog.String("direction", direction.String()),
			slog.String("error", err.Error()))
		return
	}
}

// randomCall picks a floor uniformly at random and a direction consistent
// with it: the ground floor can only call up, the top floor can only call
// down, and every other floor picks a heading at random.
func (g *Generator) randomCall() (int, domain.Direction) {
	floor := g.rng.Intn(g.maxFloors)

	switch floor {
	case 0:
		return floor, domain.Up
	case g.maxFloors - 1:
		return floor, domain.Down
	default:
		if g.rng.Intn(2) == 0 {
			return floor, domain.Up
		}
		return floor, domain.Down
	}
}

// Run emits one hall call per interval until done is closed. It blocks the
// calling goroutine.
func (g *Generator) Run(done <-chan struct{}) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			g.EmitOne()
		}
	}
}
