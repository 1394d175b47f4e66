// Package mazegen_test verifies generator validation, determinism and the
// structural guarantees of generated scenarios.
package mazegen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/firegrid/grid"
	"github.com/katalvlaran/firegrid/mazegen"
)

func TestGenerate_TooSmall(t *testing.T) {
	_, err := mazegen.Generate(3, 9, mazegen.WithSeed(1))
	require.ErrorIs(t, err, mazegen.ErrTooSmall)
	_, err = mazegen.Generate(9, 4, mazegen.WithSeed(1))
	require.ErrorIs(t, err, mazegen.ErrTooSmall)
}

func TestGenerate_BadLoopFactor(t *testing.T) {
	_, err := mazegen.Generate(9, 9, mazegen.WithSeed(1), mazegen.WithLoopFactor(1.5))
	require.ErrorIs(t, err, mazegen.ErrInvalidLoopFactor)
	_, err = mazegen.Generate(9, 9, mazegen.WithSeed(1), mazegen.WithLoopFactor(-0.1))
	require.ErrorIs(t, err, mazegen.ErrInvalidLoopFactor)
}

func TestGenerate_BadFireCount(t *testing.T) {
	_, err := mazegen.Generate(9, 9, mazegen.WithSeed(1), mazegen.WithFireCount(2, 1))
	require.ErrorIs(t, err, mazegen.ErrBadFireCount)
	_, err = mazegen.Generate(9, 9, mazegen.WithSeed(1), mazegen.WithFireCount(-1, 2))
	require.ErrorIs(t, err, mazegen.ErrBadFireCount)
}

func TestGenerate_DeterministicForSeed(t *testing.T) {
	a, err := mazegen.Generate(21, 21, mazegen.WithSeed(99))
	require.NoError(t, err)
	b, err := mazegen.Generate(21, 21, mazegen.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a.String(), b.String())

	c, err := mazegen.Generate(21, 21, mazegen.WithSeed(100))
	require.NoError(t, err)
	require.NotEqual(t, a.String(), c.String(), "different seeds should not collide on 21x21")
}

func TestGenerate_Structure(t *testing.T) {
	g, err := mazegen.Generate(21, 21, mazegen.WithSeed(5))
	require.NoError(t, err)

	require.Equal(t, 21, g.Rows())
	require.Equal(t, 21, g.Cols())
	require.Equal(t, grid.Cell{Row: 1, Col: 1}, g.Start())
	require.Equal(t, grid.Cell{Row: 19, Col: 19}, g.Exit())

	// The outer ring stays walled.
	for r := 0; r < g.Rows(); r++ {
		require.Equal(t, grid.Wall, g.At(grid.Cell{Row: r, Col: 0}))
		require.Equal(t, grid.Wall, g.At(grid.Cell{Row: r, Col: g.Cols() - 1}))
	}
	for c := 0; c < g.Cols(); c++ {
		require.Equal(t, grid.Wall, g.At(grid.Cell{Row: 0, Col: c}))
		require.Equal(t, grid.Wall, g.At(grid.Cell{Row: g.Rows() - 1, Col: c}))
	}

	// Default seed count stays within 1..3, away from start and exit.
	fs := g.FireSources()
	require.GreaterOrEqual(t, len(fs), 1)
	require.LessOrEqual(t, len(fs), 3)
	for _, f := range fs {
		require.NotEqual(t, g.Start(), f)
		require.NotEqual(t, g.Exit(), f)
		require.Equal(t, grid.FireSource, g.At(f))
	}
}

func TestGenerate_FireCountRange(t *testing.T) {
	g, err := mazegen.Generate(15, 15, mazegen.WithSeed(3), mazegen.WithFireCount(0, 0))
	require.NoError(t, err)
	require.Empty(t, g.FireSources())

	g, err = mazegen.Generate(15, 15, mazegen.WithSeed(3), mazegen.WithFireCount(5, 5))
	require.NoError(t, err)
	require.Len(t, g.FireSources(), 5)
}

func TestGenerate_EvenDimensions(t *testing.T) {
	// Even sizes leave the exit corner off the carving lattice; it must
	// still be opened and the grid must still validate.
	g, err := mazegen.Generate(10, 12, mazegen.WithSeed(8))
	require.NoError(t, err)
	require.Equal(t, grid.Cell{Row: 8, Col: 10}, g.Exit())
}
