package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/firegrid/grid"
)

// ErrUnknownHeuristic indicates a heuristic name or value outside
// {zero, manhattan, euclidean}.
var ErrUnknownHeuristic = errors.New("search: unknown heuristic")

// Heuristic is a closed enumeration of distance estimates to the exit.
// Dispatch goes through Estimate rather than an interface so the search
// loop stays monomorphic and switches stay exhaustive.
type Heuristic uint8

const (
	// Zero always estimates 0: uniform-cost search, plain Dijkstra.
	Zero Heuristic = iota
	// Manhattan estimates |Δrow| + |Δcol|.
	Manhattan
	// Euclidean estimates sqrt(Δrow² + Δcol²).
	Euclidean
)

// String returns the canonical lowercase name of the heuristic.
func (h Heuristic) String() string {
	switch h {
	case Zero:
		return "zero"
	case Manhattan:
		return "manhattan"
	case Euclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("search.Heuristic(%d)", uint8(h))
	}
}

// Valid reports whether h is one of the declared heuristics.
func (h Heuristic) Valid() bool {
	return h <= Euclidean
}

// Estimate returns the heuristic's non-negative estimate of the remaining
// cost from c to exit. All three variants are admissible and consistent
// for unit step cost and 4-directional movement: they never overestimate
// the true remaining distance.
func (h Heuristic) Estimate(c, exit grid.Cell) float64 {
	dr := float64(c.Row - exit.Row)
	dc := float64(c.Col - exit.Col)

	switch h {
	case Manhattan:
		return math.Abs(dr) + math.Abs(dc)
	case Euclidean:
		return math.Hypot(dr, dc)
	default: // Zero
		return 0
	}
}

// ParseHeuristic maps a canonical heuristic name to its value.
// Returns ErrUnknownHeuristic for anything else.
func ParseHeuristic(name string) (Heuristic, error) {
	switch name {
	case "zero":
		return Zero, nil
	case "manhattan":
		return Manhattan, nil
	case "euclidean":
		return Euclidean, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownHeuristic)
	}
}
