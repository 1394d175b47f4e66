package mazegen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/firegrid/grid"
)

// Generate builds a random rows×cols escape scenario.
//
// Validation (in order):
//
//  1. rows ≥ 5 and cols ≥ 5 (ErrTooSmall).
//  2. LoopFactor ∈ [0, 1] (ErrInvalidLoopFactor).
//  3. 0 ≤ FireMin ≤ FireMax (ErrBadFireCount).
//
// The resulting grid always satisfies the grid package invariants; whether
// the exit is reachable, and whether it stays reachable once fire spreads,
// is up to the dice.
//
// Complexity: O(rows×cols) time and memory.
func Generate(rows, cols int, opts ...Option) (*grid.Grid, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if rows < 5 || cols < 5 {
		return nil, fmt.Errorf("rows=%d, cols=%d: %w", rows, cols, ErrTooSmall)
	}
	if cfg.LoopFactor < 0 || cfg.LoopFactor > 1 {
		return nil, fmt.Errorf("loop factor %v: %w", cfg.LoopFactor, ErrInvalidLoopFactor)
	}
	if cfg.FireMin < 0 || cfg.FireMin > cfg.FireMax {
		return nil, fmt.Errorf("fire count %d..%d: %w", cfg.FireMin, cfg.FireMax, ErrBadFireCount)
	}
	rng := cfg.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// 2) Carve the corridor maze.
	cells := carve(rows, cols, rng)

	// 3) Knock out a fraction of removable walls to create loops.
	addLoops(cells, rng, cfg.LoopFactor)

	// 4) Place start and exit at the opposing interior corners.
	cells[1][1] = grid.Start
	cells[rows-2][cols-2] = grid.Exit

	// 5) Scatter fire seeds over free cells.
	placeFire(cells, rng, cfg.FireMin, cfg.FireMax)

	return grid.New(cells)
}

// carve runs a recursive backtracker over the odd lattice: start at (1,1),
// repeatedly jump two cells toward an uncarved neighbor and knock out the
// wall in between, backtracking when stuck. The outer ring stays walled.
// Candidate neighbors are collected in a fixed order (up, down, left,
// right) so the carving is deterministic for a fixed rng.
func carve(rows, cols int, rng *rand.Rand) [][]grid.Terrain {
	cells := make([][]grid.Terrain, rows)
	for r := range cells {
		cells[r] = make([]grid.Terrain, cols)
		for c := range cells[r] {
			cells[r][c] = grid.Wall
		}
	}

	type hop struct{ r, c, wr, wc int } // target cell and intermediate wall
	cells[1][1] = grid.Free
	stack := []grid.Cell{{Row: 1, Col: 1}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var candidates []hop
		for _, d := range grid.NeighborOffsets() {
			nr, nc := cur.Row+2*d[0], cur.Col+2*d[1]
			if nr <= 0 || nr >= rows-1 || nc <= 0 || nc >= cols-1 {
				continue
			}
			if cells[nr][nc] != grid.Wall {
				continue
			}
			candidates = append(candidates, hop{r: nr, c: nc, wr: cur.Row + d[0], wc: cur.Col + d[1]})
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]

			continue
		}

		h := candidates[rng.Intn(len(candidates))]
		cells[h.wr][h.wc] = grid.Free
		cells[h.r][h.c] = grid.Free
		stack = append(stack, grid.Cell{Row: h.r, Col: h.c})
	}

	// Even dimensions leave the far corner on the wall lattice; the exit
	// corner is opened unconditionally, like the entry.
	cells[1][1] = grid.Free
	cells[rows-2][cols-2] = grid.Free

	return cells
}

// addLoops removes the given fraction of "removable" interior walls: walls
// with at least two open orthogonal neighbors, so removing one merges two
// corridors into a loop rather than gnawing a dead end wider.
func addLoops(cells [][]grid.Terrain, rng *rand.Rand, factor float64) {
	rows, cols := len(cells), len(cells[0])

	var walls []grid.Cell
	for r := 1; r < rows-1; r++ {
		for c := 1; c < cols-1; c++ {
			if cells[r][c] != grid.Wall {
				continue
			}
			open := 0
			for _, d := range grid.NeighborOffsets() {
				if cells[r+d[0]][c+d[1]] == grid.Free {
					open++
				}
			}
			if open >= 2 {
				walls = append(walls, grid.Cell{Row: r, Col: c})
			}
		}
	}

	remove := int(float64(len(walls)) * factor)
	for i := 0; i < remove && len(walls) > 0; i++ {
		k := rng.Intn(len(walls))
		w := walls[k]
		cells[w.Row][w.Col] = grid.Free
		walls = append(walls[:k], walls[k+1:]...)
	}
}

// placeFire seeds between min and max fire sources on random free cells.
// Start and exit are already marked, so they can never be picked. When the
// maze has fewer free cells than the drawn count, every free cell burns.
func placeFire(cells [][]grid.Terrain, rng *rand.Rand, min, max int) {
	var free []grid.Cell
	for r := range cells {
		for c := range cells[r] {
			if cells[r][c] == grid.Free {
				free = append(free, grid.Cell{Row: r, Col: c})
			}
		}
	}

	count := min
	if max > min {
		count += rng.Intn(max - min + 1)
	}
	for i := 0; i < count && len(free) > 0; i++ {
		k := rng.Intn(len(free))
		f := free[k]
		cells[f.Row][f.Col] = grid.FireSource
		free = append(free[:k], free[k+1:]...)
	}
}
