// Package grid defines the core maze types and sentinel errors for the
// firegrid module.
package grid

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrUnknownSymbol indicates a rune outside the map alphabet {. # D S F}.
	ErrUnknownSymbol = errors.New("grid: unknown map symbol")
	// ErrStartCardinality indicates a missing or duplicated Start cell.
	ErrStartCardinality = errors.New("grid: exactly one start cell required")
	// ErrExitCardinality indicates a missing or duplicated Exit cell.
	ErrExitCardinality = errors.New("grid: exactly one exit cell required")
)

// Cell is an integer grid coordinate, row-major. Immutable identity:
// two Cells are equal iff both coordinates are equal.
type Cell struct {
	Row, Col int
}

// Terrain classifies a single cell of the maze.
type Terrain uint8

const (
	// Free is an ordinary traversable cell.
	Free Terrain = iota
	// Wall is never traversable, by the agent or by fire.
	Wall
	// Start marks the agent's starting cell (exactly one per grid).
	Start
	// Exit marks the escape cell (exactly one per grid).
	Exit
	// FireSource marks an initial fire seed (zero or more per grid).
	FireSource
)

// Map alphabet used by Parse and String.
const (
	symFree       = '.'
	symWall       = '#'
	symStart      = 'D'
	symExit       = 'S'
	symFireSource = 'F'
)

// rune returns the map symbol for t. Unknown values render as Free;
// they cannot occur in a validated Grid.
func (t Terrain) rune() rune {
	switch t {
	case Wall:
		return symWall
	case Start:
		return symStart
	case Exit:
		return symExit
	case FireSource:
		return symFireSource
	default:
		return symFree
	}
}

// Traversable reports whether the agent may occupy a cell of this terrain,
// fire permitting. Everything except Wall is traversable; FireSource cells
// are traversable as far as terrain is concerned (the hazard simulator
// decides whether they burn).
func (t Terrain) Traversable() bool {
	return t != Wall
}

// neighborOffsets lists the 4-directional moves in the fixed expansion
// order used everywhere in the module: up, down, left, right. The order
// is part of the determinism contract and must not change.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// NeighborOffsets returns the fixed 4-directional (dRow, dCol) offsets.
func NeighborOffsets() [4][2]int {
	return neighborOffsets
}
