package fire

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/firegrid/grid"
)

// ErrNilGrid indicates a nil *grid.Grid was passed to NewSimulator.
var ErrNilGrid = errors.New("fire: grid is nil")

// notBurning marks a cell the computed wavefront has not reached.
const notBurning = -1

// Simulator answers burning queries for one search run. It is not safe for
// concurrent use: the lazy wavefront cache is a single-writer structure.
// Concurrent searches must each construct their own Simulator.
type Simulator struct {
	grid *grid.Grid
	mode Mode

	// Dynamic state. catchAt[r][c] holds the step at which (r,c) catches
	// fire, or notBurning if no computed layer has reached it yet. frontier
	// holds the cells that caught fire at step clock; layers beyond clock
	// are not computed until a query needs them.
	catchAt  [][]int
	frontier []grid.Cell
	clock    int
	settled  bool

	// Static state: membership set of the initial sources.
	seeds map[grid.Cell]struct{}
}

// NewSimulator constructs a Simulator for one search run over g.
// Returns ErrNilGrid for a nil grid and ErrUnknownMode for an
// out-of-range mode.
//
// Complexity: O(N×M) memory for Dynamic; queries amortize to O(N×M) total
// wavefront work across the whole run.
func NewSimulator(g *grid.Grid, m Mode) (*Simulator, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !m.Valid() {
		return nil, fmt.Errorf("%d: %w", uint8(m), ErrUnknownMode)
	}

	s := &Simulator{grid: g, mode: m}

	switch m {
	case Dynamic:
		s.catchAt = make([][]int, g.Rows())
		for r := range s.catchAt {
			s.catchAt[r] = make([]int, g.Cols())
			for c := range s.catchAt[r] {
				s.catchAt[r][c] = notBurning
			}
		}
		// Layer 0 is the seed set itself.
		for _, c := range g.FireSources() {
			s.catchAt[c.Row][c.Col] = 0
			s.frontier = append(s.frontier, c)
		}
		if len(s.frontier) == 0 {
			s.settled = true
		}
	case Static:
		s.seeds = make(map[grid.Cell]struct{}, len(g.FireSources()))
		for _, c := range g.FireSources() {
			s.seeds[c] = struct{}{}
		}
	case None:
		// Nothing to prepare.
	}

	return s, nil
}

// Mode returns the simulator's hazard mode.
func (s *Simulator) Mode() Mode { return s.mode }

// IsOnFire reports whether cell c is burning at step t.
// Panics if t is negative or c is out of bounds: both indicate a bug in
// the caller, not a runtime condition.
func (s *Simulator) IsOnFire(c grid.Cell, t int) bool {
	if t < 0 {
		panic(fmt.Sprintf("fire: IsOnFire queried with negative time %d", t))
	}
	if !s.grid.InBounds(c) {
		panic(fmt.Sprintf("fire: IsOnFire queried out of bounds at (%d,%d)", c.Row, c.Col))
	}

	switch s.mode {
	case Dynamic:
		s.advanceTo(t)
		at := s.catchAt[c.Row][c.Col]

		return at != notBurning && at <= t
	case Static:
		_, burning := s.seeds[c]

		return burning
	default: // None
		return false
	}
}

// SettleTime returns the first step t such that the burning set no longer
// changes for any t' ≥ t. For Static and None this is 0; for Dynamic it is
// the step at which the last wavefront layer was added (also 0 when the
// grid has no fire sources). Forces full expansion on first call.
func (s *Simulator) SettleTime() int {
	if s.mode != Dynamic {
		return 0
	}
	for !s.settled {
		s.expandLayer()
	}

	return s.clock
}

// BurningAt returns the burning set at step t in row-major order. The
// row-major order makes the output deterministic for harness rendering.
// Same precondition as IsOnFire: t must be non-negative.
func (s *Simulator) BurningAt(t int) []grid.Cell {
	if t < 0 {
		panic(fmt.Sprintf("fire: BurningAt queried with negative time %d", t))
	}

	var out []grid.Cell
	switch s.mode {
	case Dynamic:
		s.advanceTo(t)
		for r := 0; r < s.grid.Rows(); r++ {
			for c := 0; c < s.grid.Cols(); c++ {
				if at := s.catchAt[r][c]; at != notBurning && at <= t {
					out = append(out, grid.Cell{Row: r, Col: c})
				}
			}
		}
	case Static:
		out = s.grid.FireSources()
	case None:
		// Empty.
	}

	return out
}

// advanceTo computes wavefront layers until layer t exists or the fire has
// settled. Out-of-order queries are served by whatever was cached earlier.
func (s *Simulator) advanceTo(t int) {
	for !s.settled && s.clock < t {
		s.expandLayer()
	}
}

// expandLayer grows the fire by one step: every traversable neighbor of the
// current frontier that is not yet burning catches fire at clock+1. Walls
// block the spread. When no cell catches fire, the simulation is settled
// and clock stays at the step of the last growth.
func (s *Simulator) expandLayer() {
	var next []grid.Cell
	for _, c := range s.frontier {
		for _, d := range grid.NeighborOffsets() {
			n := grid.Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
			if !s.grid.InBounds(n) || !s.grid.At(n).Traversable() {
				continue
			}
			if s.catchAt[n.Row][n.Col] != notBurning {
				continue
			}
			s.catchAt[n.Row][n.Col] = s.clock + 1
			next = append(next, n)
		}
	}

	if len(next) == 0 {
		s.settled = true
		s.frontier = nil

		return
	}
	s.clock++
	s.frontier = next
}
