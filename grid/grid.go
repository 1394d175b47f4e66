package grid

import (
	"fmt"
	"strings"
)

// Grid is the immutable maze model: an N×M terrain matrix, the Start and
// Exit cells, and the set of initial fire sources. Construct via New or
// Parse; read-only afterward and safe for concurrent readers.
type Grid struct {
	rows, cols  int
	cells       [][]Terrain
	start, exit Cell
	fireSources []Cell
}

// New constructs a Grid from a terrain matrix. The input is deep-copied to
// guarantee immutability. Validation order:
//
//  1. Non-empty, rectangular dimensions (ErrEmptyGrid, ErrNonRectangular).
//  2. Exactly one Start and one Exit (ErrStartCardinality, ErrExitCardinality).
//
// Fire sources are collected in row-major order; by construction a
// FireSource cell cannot coincide with Wall, Start or Exit, since each
// cell carries exactly one Terrain value.
//
// Complexity: O(N×M) time and memory.
func New(cells [][]Terrain) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]Terrain, rows),
	}

	var starts, exits int
	for r := 0; r < rows; r++ {
		if len(cells[r]) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w",
				r, len(cells[r]), cols, ErrNonRectangular)
		}
		g.cells[r] = make([]Terrain, cols)
		copy(g.cells[r], cells[r])

		for c := 0; c < cols; c++ {
			switch cells[r][c] {
			case Start:
				starts++
				g.start = Cell{Row: r, Col: c}
			case Exit:
				exits++
				g.exit = Cell{Row: r, Col: c}
			case FireSource:
				g.fireSources = append(g.fireSources, Cell{Row: r, Col: c})
			}
		}
	}

	if starts != 1 {
		return nil, fmt.Errorf("found %d start cells: %w", starts, ErrStartCardinality)
	}
	if exits != 1 {
		return nil, fmt.Errorf("found %d exit cells: %w", exits, ErrExitCardinality)
	}

	return g, nil
}

// Parse constructs a Grid from a textual map: one line per row, one rune
// per cell, alphabet {'.', '#', 'D', 'S', 'F'} for
// {Free, Wall, Start, Exit, FireSource}. Leading/trailing blank lines are
// tolerated; all content lines must share the same length.
//
// Returns ErrUnknownSymbol (with position context) for any other rune,
// plus every sentinel New can return.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimRight(ln, "\r")
		if strings.TrimSpace(ln) == "" {
			continue
		}
		lines = append(lines, ln)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Terrain, len(lines))
	for r, ln := range lines {
		row := make([]Terrain, 0, len(ln))
		for c, sym := range ln {
			var t Terrain
			switch sym {
			case symFree:
				t = Free
			case symWall:
				t = Wall
			case symStart:
				t = Start
			case symExit:
				t = Exit
			case symFireSource:
				t = FireSource
			default:
				return nil, fmt.Errorf("%q at row %d, col %d: %w", sym, r, c, ErrUnknownSymbol)
			}
			row = append(row, t)
		}
		cells[r] = row
	}

	return New(cells)
}

// Rows returns the number of rows N.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns M.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the terrain at c. Panics on out-of-bounds access: callers are
// expected to check InBounds first, and an unchecked access is a bug in
// the caller, not a runtime condition.
func (g *Grid) At(c Cell) Terrain {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("grid: At(%d,%d) out of bounds for %dx%d grid", c.Row, c.Col, g.rows, g.cols))
	}

	return g.cells[c.Row][c.Col]
}

// Start returns the agent's starting cell.
func (g *Grid) Start() Cell { return g.start }

// Exit returns the escape cell.
func (g *Grid) Exit() Cell { return g.exit }

// FireSources returns a copy of the initial fire seed set, in row-major
// order. The copy keeps the Grid immutable.
func (g *Grid) FireSources() []Cell {
	out := make([]Cell, len(g.fireSources))
	copy(out, g.fireSources)

	return out
}

// String renders the grid back into the Parse alphabet, one line per row,
// without a trailing newline. Round-trips with Parse.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.cells[r][c].rune())
		}
	}

	return b.String()
}
