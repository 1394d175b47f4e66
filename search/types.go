// Package search defines the engine's state, result and option types plus
// sentinel errors.
package search

import (
	"errors"

	"github.com/katalvlaran/firegrid/fire"
	"github.com/katalvlaran/firegrid/grid"
)

// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
var ErrNilGrid = errors.New("search: grid is nil")

// State is one node of the time-expanded space: the agent stands on Cell
// having taken Time discrete steps since the start. Identical cells at
// different times are distinct states.
type State struct {
	Cell grid.Cell
	Time int
}

// Result is the immutable outcome of one Search call.
//
// When Found is true, Path runs from (start, 0) to (exit, t) inclusive and
// every entry satisfies the safety invariant: its cell is not a Wall and
// is not burning at its step. When Found is false, Path is nil; a missing
// route is an expected outcome, not an error.
type Result struct {
	Found bool
	Path  []State
	// NodesExplored counts states popped from the frontier and expanded,
	// not states merely generated. Stale heap duplicates and the final
	// exit pop are excluded.
	NodesExplored int
	// ElapsedMillis is the wall-clock duration of the whole call.
	ElapsedMillis float64
}

// Options configures one Search call.
//
// Heuristic – exploration-order estimate (Zero makes the engine Dijkstra).
// FireMode  – hazard behavior handed to the per-run fire.Simulator.
type Options struct {
	Heuristic Heuristic
	FireMode  fire.Mode
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic selects the exploration heuristic.
// Validity is checked by Search (ErrUnknownHeuristic).
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) { o.Heuristic = h }
}

// WithFireMode selects the hazard mode.
// Validity is checked when Search builds its simulator (fire.ErrUnknownMode).
func WithFireMode(m fire.Mode) Option {
	return func(o *Options) { o.FireMode = m }
}

// DefaultOptions returns the engine defaults: Manhattan heuristic under a
// Dynamic hazard, matching the most informative common configuration.
func DefaultOptions() Options {
	return Options{
		Heuristic: Manhattan,
		FireMode:  fire.Dynamic,
	}
}
