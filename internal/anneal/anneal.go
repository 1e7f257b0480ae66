// Package anneal implements a generic simulated-annealing search.
//
// # Schedule
//
// Temperature decays linearly from the configured maximum:
//
//	temperature(k) = maxTemperature * (1 - (k+1)/steps)
//
// reaching exactly 0 on the final step.
//
// # Acceptance
//
// Each step draws one neighbor of the current state. The neighbor replaces the
// current state when
//
//	neighbor.energy - current.energy <= temperature
//
// This is a deterministic threshold rather than a Boltzmann draw: every
// improvement is taken, and a worsening move is taken only while its loss fits
// inside the remaining temperature.
//
// # Result
//
// Because uphill moves are accepted, the current state can end worse than a
// state seen earlier. The annealer therefore tracks the best state visited and
// returns that, never the final current state.
package anneal

import (
	"errors"

	"github.com/ironsheep/collager/internal/random"
)

// ErrNoSteps is returned by Anneal when asked to run zero steps.
var ErrNoSteps = errors.New("annealing requires at least one step")

// Annealable is a search state. Energies must never be NaN.
type Annealable[S any] interface {
	// Energy is the cost of the state; lower is better.
	Energy() float32

	// RandomNeighbor returns a nearby state. Higher temperatures permit
	// larger changes.
	RandomNeighbor(src random.Source, temperature float32) S
}

// record pairs a state with its energy so each state is evaluated once.
type record[S Annealable[S]] struct {
	state  S
	energy float32
}

func newRecord[S Annealable[S]](s S) record[S] {
	return record[S]{state: s, energy: s.Energy()}
}

// Result is the outcome of one annealing run.
type Result[S any] struct {
	// State is the lowest-energy state seen.
	State S

	// Energy is State's energy.
	Energy float32

	// InitialEnergy is the energy of the starting state.
	InitialEnergy float32

	// Accepted counts the steps whose neighbor became the current state.
	Accepted int
}

// Annealer runs the search from a starting state.
type Annealer[S Annealable[S]] struct {
	current        record[S]
	best           *record[S]
	initial        float32
	maxTemperature float32
	src            random.Source
}

// New creates an annealer. The starting state's energy is evaluated here.
func New[S Annealable[S]](start S, maxTemperature float32, src random.Source) *Annealer[S] {
	cur := newRecord(start)
	return &Annealer[S]{
		current:        cur,
		initial:        cur.energy,
		maxTemperature: maxTemperature,
		src:            src,
	}
}

// Temperature returns the temperature used at step k of a steps-long run.
func Temperature(maxTemperature float32, k, steps int) float32 {
	fraction := float32(k+1) / float32(steps)
	return maxTemperature * (1 - fraction)
}

// Anneal runs steps iterations and returns the best state seen. The starting
// state competes for best from the first step, so the result never has a
// higher energy than the start.
func (a *Annealer[S]) Anneal(steps int) (Result[S], error) {
	if steps <= 0 {
		return Result[S]{}, ErrNoSteps
	}

	accepted := 0
	for k := 0; k < steps; k++ {
		if a.improve(Temperature(a.maxTemperature, k, steps)) {
			accepted++
		}
	}

	return Result[S]{
		State:         a.best.state,
		Energy:        a.best.energy,
		InitialEnergy: a.initial,
		Accepted:      accepted,
	}, nil
}

func (a *Annealer[S]) improve(temperature float32) bool {
	if a.best == nil {
		start := a.current
		a.best = &start
	}

	neighbor := newRecord(a.current.state.RandomNeighbor(a.src, temperature))

	if neighbor.energy < a.best.energy {
		best := neighbor
		a.best = &best
	}

	if neighbor.energy-a.current.energy <= temperature {
		a.current = neighbor
		return true
	}
	return false
}
