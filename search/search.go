package search

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/firegrid/fire"
	"github.com/katalvlaran/firegrid/grid"
)

// Search finds an earliest-arrival safe route from the grid's start cell
// to its exit cell under the configured heuristic and hazard mode.
//
// Preconditions and validation (in order):
//
//  1. g must be non-nil (ErrNilGrid).
//  2. The heuristic must be a declared variant (ErrUnknownHeuristic).
//  3. The fire mode must be a declared variant (fire.ErrUnknownMode,
//     surfaced by the simulator constructor).
//
// The call is pure with respect to external state: it builds its own
// fire.Simulator, owns that cache for the duration of the call, and
// discards it on return. Repeated calls on the same grid with different
// options do not interfere, and concurrent calls are safe as long as each
// uses its own invocation (the grid itself is read-only).
//
// A missing route yields Result{Found: false} and a nil error.
func Search(g *grid.Grid, opts ...Option) (Result, error) {
	started := time.Now()

	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !cfg.Heuristic.Valid() {
		return Result{}, fmt.Errorf("%d: %w", uint8(cfg.Heuristic), ErrUnknownHeuristic)
	}

	// 2) One simulator per call: the wavefront cache is owned by this run.
	sim, err := fire.NewSimulator(g, cfg.FireMode)
	if err != nil {
		return Result{}, err
	}

	// 3) Run the best-first loop.
	r := &runner{
		grid:    g,
		options: cfg,
		sim:     sim,
		exit:    g.Exit(),
		bestG:   make(map[State]int),
		visited: make(map[State]bool),
		parent:  make(map[State]State),
	}
	res := r.run()
	res.ElapsedMillis = float64(time.Since(started).Microseconds()) / 1e3

	return res, nil
}

// runner holds the mutable state of a single Search execution.
type runner struct {
	grid    *grid.Grid      // read-only maze
	options Options         // heuristic and hazard mode
	sim     *fire.Simulator // per-run hazard oracle
	exit    grid.Cell       // goal cell
	settle  int             // step after which the hazard stops changing

	bestG   map[State]int   // dedup key → best known arrival step
	visited map[State]bool  // dedup key → expanded (closed set)
	parent  map[State]State // dedup key → predecessor key
	pq      statePQ         // frontier, lazy decrease-key
	seq     int             // monotone push counter for total ordering

	explored int // states popped and expanded
}

// run executes the search to completion and returns the outcome without
// timing information (Search fills ElapsedMillis).
func (r *runner) run() Result {
	start := r.grid.Start()

	// A start cell burning at step 0 means no route can exist. Validated
	// grids never seed fire on the start cell, but the guard keeps the
	// engine honest about the safety invariant.
	if r.sim.IsOnFire(start, 0) {
		return Result{Found: false}
	}

	// Past the settle step the burning set is frozen, so states at the
	// same cell share their future: capping the key's time bounds the
	// state space without losing any route.
	r.settle = r.sim.SettleTime()

	// Seed the frontier with (start, 0).
	origin := State{Cell: start, Time: 0}
	r.bestG[origin] = 0
	heap.Init(&r.pq)
	r.push(origin, 0)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*stateItem)

		// Skip stale duplicates left behind by lazy decrease-key.
		if r.visited[item.key] {
			continue
		}
		r.visited[item.key] = true

		// First pop of the exit is an optimal arrival: the heuristic is
		// admissible, so no cheaper route remains in the frontier.
		if item.key.Cell == r.exit {
			return Result{
				Found:         true,
				Path:          r.reconstruct(item.key, item.g),
				NodesExplored: r.explored,
			}
		}

		r.explored++
		r.expand(item.key.Cell, item.g)
	}

	// Frontier exhausted: every reachable safe state was expanded and the
	// exit was never among them.
	return Result{Found: false, NodesExplored: r.explored}
}

// expand generates the successors of the agent standing on cell c at step
// t: the four orthogonal moves plus waiting in place, each arriving at
// step t+1. A successor is rejected if it leaves the grid, enters a Wall,
// or its cell burns at t+1. Surviving successors are relaxed against the
// best known arrival step for their dedup key.
func (r *runner) expand(c grid.Cell, t int) {
	arrival := t + 1

	relax := func(n grid.Cell) {
		if !r.grid.InBounds(n) || !r.grid.At(n).Traversable() {
			return
		}
		if r.sim.IsOnFire(n, arrival) {
			return
		}

		key := r.key(n, arrival)
		if best, seen := r.bestG[key]; seen && arrival >= best {
			return
		}
		r.bestG[key] = arrival
		r.parent[key] = r.key(c, t)
		r.push(key, arrival)
	}

	for _, d := range grid.NeighborOffsets() {
		relax(grid.Cell{Row: c.Row + d[0], Col: c.Col + d[1]})
	}
	// Waiting: same cell, one step later. With a static or absent hazard
	// the wait key collapses onto the current key and the cost-dominance
	// check above rejects it immediately.
	relax(c)
}

// key maps an actual timed state onto its deduplication key, capping the
// time dimension at the hazard's settle step.
func (r *runner) key(c grid.Cell, t int) State {
	if t > r.settle {
		t = r.settle
	}

	return State{Cell: c, Time: t}
}

// push appends a frontier entry for key with arrival step g and priority
// g + h(cell). The sequence number fixes the order among exact ties.
func (r *runner) push(key State, g int) {
	r.seq++
	heap.Push(&r.pq, &stateItem{
		key: key,
		g:   g,
		f:   float64(g) + r.options.Heuristic.Estimate(key.Cell, r.exit),
		seq: r.seq,
	})
}

// reconstruct walks parent links from the exit key back to the origin and
// returns the path in forward order. The Time of each entry is the actual
// arrival step, recovered from the final arrival t: every link in the
// chain was recorded during an expansion, so consecutive steps differ by
// exactly one.
func (r *runner) reconstruct(key State, t int) []State {
	path := make([]State, 0, t+1)
	cur, g := key, t
	for {
		path = append(path, State{Cell: cur.Cell, Time: g})
		p, ok := r.parent[cur]
		if !ok {
			break
		}
		cur, g = p, g-1
	}

	// Reverse into (start, 0) … (exit, t) order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
