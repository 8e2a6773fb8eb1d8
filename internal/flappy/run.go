// Package flappy implements a Flappy Bird-style game: a bird falls under
// gravity, the player flaps to climb, and pairs of obstacles scroll in
// from the right. Touching an obstacle ends the run.
package flappy

import "time"

// Phase is the state of a run.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// Run is one play session from start to game over.
type Run struct {
	Score   int
	Over    bool
	Elapsed time.Duration // Run time; drives the spawn timer
}

// NewRun returns a fresh run.
func NewRun() Run {
	return Run{}
}

// Phase reports whether the run is still being played.
func (r Run) Phase() Phase {
	if r.Over {
		return PhaseGameOver
	}
	return PhasePlaying
}
