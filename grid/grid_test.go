// Package grid_test contains unit tests for maze construction, parsing
// and validation.
package grid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/firegrid/grid"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure sentinel errors for invalid inputs.
// ------------------------------------------------------------------------

func TestNew_EmptyGrid(t *testing.T) {
	if _, err := grid.New(nil); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Fatalf("Expected ErrEmptyGrid, got %v", err)
	}
	if _, err := grid.New([][]grid.Terrain{{}}); !errors.Is(err, grid.ErrEmptyGrid) {
		t.Fatalf("Expected ErrEmptyGrid for empty row, got %v", err)
	}
}

func TestNew_NonRectangular(t *testing.T) {
	cells := [][]grid.Terrain{
		{grid.Start, grid.Free, grid.Exit},
		{grid.Free, grid.Free},
	}
	if _, err := grid.New(cells); !errors.Is(err, grid.ErrNonRectangular) {
		t.Fatalf("Expected ErrNonRectangular, got %v", err)
	}
}

func TestNew_StartCardinality(t *testing.T) {
	// No start at all.
	if _, err := grid.New([][]grid.Terrain{{grid.Free, grid.Exit}}); !errors.Is(err, grid.ErrStartCardinality) {
		t.Fatalf("Expected ErrStartCardinality for missing start, got %v", err)
	}
	// Two starts.
	cells := [][]grid.Terrain{{grid.Start, grid.Start, grid.Exit}}
	if _, err := grid.New(cells); !errors.Is(err, grid.ErrStartCardinality) {
		t.Fatalf("Expected ErrStartCardinality for duplicate start, got %v", err)
	}
}

func TestNew_ExitCardinality(t *testing.T) {
	if _, err := grid.New([][]grid.Terrain{{grid.Start, grid.Free}}); !errors.Is(err, grid.ErrExitCardinality) {
		t.Fatalf("Expected ErrExitCardinality for missing exit, got %v", err)
	}
	cells := [][]grid.Terrain{{grid.Start, grid.Exit, grid.Exit}}
	if _, err := grid.New(cells); !errors.Is(err, grid.ErrExitCardinality) {
		t.Fatalf("Expected ErrExitCardinality for duplicate exit, got %v", err)
	}
}

func TestParse_UnknownSymbol(t *testing.T) {
	_, err := grid.Parse("D.S\n.X.")
	if !errors.Is(err, grid.ErrUnknownSymbol) {
		t.Fatalf("Expected ErrUnknownSymbol, got %v", err)
	}
	// The error should carry the offending position for the harness.
	if err == nil || !strings.Contains(err.Error(), "row 1") {
		t.Errorf("Expected position context in %v", err)
	}
}

func TestParse_RaggedRows(t *testing.T) {
	if _, err := grid.Parse("D.S\n...."); !errors.Is(err, grid.ErrNonRectangular) {
		t.Fatalf("Expected ErrNonRectangular, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality: Accessors, round-trip, immutability.
// ------------------------------------------------------------------------

func TestParse_Accessors(t *testing.T) {
	g, err := grid.Parse("#####\n#D.F#\n#...#\n#..S#\n#####")
	if err != nil {
		t.Fatal(err)
	}

	if g.Rows() != 5 || g.Cols() != 5 {
		t.Errorf("dims = %dx%d; want 5x5", g.Rows(), g.Cols())
	}
	if got, want := g.Start(), (grid.Cell{Row: 1, Col: 1}); got != want {
		t.Errorf("Start = %v; want %v", got, want)
	}
	if got, want := g.Exit(), (grid.Cell{Row: 3, Col: 3}); got != want {
		t.Errorf("Exit = %v; want %v", got, want)
	}
	fs := g.FireSources()
	if len(fs) != 1 || fs[0] != (grid.Cell{Row: 1, Col: 3}) {
		t.Errorf("FireSources = %v; want [(1,3)]", fs)
	}
	if g.At(grid.Cell{Row: 0, Col: 0}) != grid.Wall {
		t.Errorf("At(0,0) should be Wall")
	}
	if g.At(grid.Cell{Row: 2, Col: 2}) != grid.Free {
		t.Errorf("At(2,2) should be Free")
	}
}

func TestParse_RoundTrip(t *testing.T) {
	text := "#####\n#D.F#\n#...#\n#..S#\n#####"
	g, err := grid.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.String(); got != text {
		t.Errorf("String round-trip mismatch:\n%s\nwant:\n%s", got, text)
	}
	// Blank lines and CR endings are tolerated on the way in.
	g2, err := grid.Parse("\n" + strings.ReplaceAll(text, "\n", "\r\n") + "\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if g2.String() != text {
		t.Errorf("CRLF parse mismatch")
	}
}

func TestNew_DeepCopies(t *testing.T) {
	cells := [][]grid.Terrain{
		{grid.Wall, grid.Wall, grid.Wall},
		{grid.Start, grid.Free, grid.Exit},
		{grid.Wall, grid.Wall, grid.Wall},
	}
	g, err := grid.New(cells)
	if err != nil {
		t.Fatal(err)
	}
	// Mutating the input after construction must not leak into the Grid.
	cells[1][1] = grid.Wall
	if g.At(grid.Cell{Row: 1, Col: 1}) != grid.Free {
		t.Errorf("Grid shares memory with its input")
	}
	// Mutating the FireSources copy must not leak either.
	fs := g.FireSources()
	if len(fs) != 0 {
		t.Fatalf("unexpected fire sources %v", fs)
	}
}

func TestAt_OutOfBoundsPanics(t *testing.T) {
	g, err := grid.Parse("D.S")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic on out-of-bounds At")
		}
	}()
	g.At(grid.Cell{Row: 1, Col: 0})
}

func TestNeighborOffsets_FixedOrder(t *testing.T) {
	// The expansion order up, down, left, right is part of the determinism
	// contract; lock it down.
	want := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	if got := grid.NeighborOffsets(); got != want {
		t.Errorf("NeighborOffsets = %v; want %v", got, want)
	}
}
