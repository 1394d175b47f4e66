package search_test

import (
	"testing"

	"github.com/katalvlaran/firegrid/fire"
	"github.com/katalvlaran/firegrid/mazegen"
	"github.com/katalvlaran/firegrid/search"
)

// benchSearch runs one (heuristic, mode) combination on a fixed 31×31
// random maze, rebuilding nothing but the search itself per iteration.
func benchSearch(b *testing.B, h search.Heuristic, m fire.Mode) {
	b.Helper()
	g, err := mazegen.Generate(31, 31, mazegen.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := search.Search(g, search.WithHeuristic(h), search.WithFireMode(m)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Dijkstra_Dynamic(b *testing.B)  { benchSearch(b, search.Zero, fire.Dynamic) }
func BenchmarkSearch_Manhattan_Dynamic(b *testing.B) { benchSearch(b, search.Manhattan, fire.Dynamic) }
func BenchmarkSearch_Euclidean_Dynamic(b *testing.B) { benchSearch(b, search.Euclidean, fire.Dynamic) }
func BenchmarkSearch_Manhattan_None(b *testing.B)    { benchSearch(b, search.Manhattan, fire.None) }
