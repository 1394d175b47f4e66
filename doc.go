// Package firegrid finds time-safe escape routes through grid mazes where
// a fire hazard may be absent, frozen in place, or spreading one cell per
// step.
//
// The engine searches the time-expanded state space (cell × arrival step)
// with a single best-first loop that covers both Dijkstra and A*: the
// heuristic is a closed enumeration {zero, manhattan, euclidean}, and the
// hazard a closed enumeration {dynamic, static, none}. Any returned path
// is guaranteed never to stand on a burning cell at the step it occupies
// it, and is earliest-arrival optimal.
//
// Subpackages:
//
//	grid/    — immutable maze model, text parsing and validation
//	fire/    — hazard simulator with a lazy, per-run wavefront cache
//	search/  — the time-expanded search engine, heuristics and results
//	mazegen/ — random scenario generator (backtracker maze + fire seeds)
//	config/  — environment-driven harness configuration
//	httpapi/ — HTTP harness for visual front-ends
//	cmd/     — batch comparison harness
//
// Quick example:
//
//	g, err := grid.Parse("#####\n#D..#\n#.#F#\n#..S#\n#####")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := search.Search(g,
//	    search.WithHeuristic(search.Manhattan),
//	    search.WithFireMode(fire.Dynamic),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println("escaped at step", res.Path[len(res.Path)-1].Time)
//	}
package firegrid
