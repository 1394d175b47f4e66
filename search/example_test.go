package search_test

import (
	"fmt"

	"github.com/katalvlaran/firegrid/fire"
	"github.com/katalvlaran/firegrid/grid"
	"github.com/katalvlaran/firegrid/search"
)

// ExampleSearch runs the engine on a maze where the fire spreads behind
// the agent: the direct route stays one step ahead of the wavefront.
//
// Maze ('D' start, 'S' exit, 'F' fire seed):
//
//	#######
//	#F....#
//	#.....#
//	#D....#
//	#....S#
//	#######
func ExampleSearch() {
	g, err := grid.Parse("#######\n#F....#\n#.....#\n#D....#\n#....S#\n#######")
	if err != nil {
		fmt.Println(err)

		return
	}

	res, err := search.Search(g,
		search.WithHeuristic(search.Manhattan),
		search.WithFireMode(fire.Dynamic),
	)
	if err != nil {
		fmt.Println(err)

		return
	}

	last := res.Path[len(res.Path)-1]
	fmt.Printf("found=%v arrival=%d exit=(%d,%d)\n", res.Found, last.Time, last.Cell.Row, last.Cell.Col)
	// Output: found=true arrival=5 exit=(4,5)
}
