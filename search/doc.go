// Package search implements the fire-aware escape engine: a best-first
// search over time-expanded states (cell, arrival step) that generalizes
// Dijkstra and A* behind one loop.
//
// The engine explores State values, not cells: the same cell reached at
// two different steps is two different states, which is what lets a route
// thread between wavefronts of a spreading fire. A State is generated only
// if its cell is not a Wall and is not burning at the state's step under
// the run's hazard simulator (package fire). The heuristic is a closed
// enumeration {Zero, Manhattan, Euclidean}; Zero turns the engine into
// plain uniform-cost Dijkstra, the other two are admissible and consistent
// for unit-cost 4-directional movement, so the first pop of the exit cell
// is an optimal (earliest-arrival) safe route under any of the three.
//
// Waiting in place is a legal move: from (c, t) the engine generates
// (c, t+1) alongside the four neighbor moves, subject to the same fire
// check. Stalling is how an agent lets a wavefront clear an alternate
// corridor. Termination stays guaranteed because states are deduplicated
// on (cell, min(t, settle)), where settle is the step at which the fire
// stops growing (0 when the hazard is static or disabled): past the settle
// point the world no longer changes, so two states at the same cell have
// identical futures and the cheaper one dominates. With a static or
// disabled hazard this collapses to ordinary single-shot A* over cells,
// and useless waits are pruned by the cost-dominance check alone.
//
// Frontier ordering is fully deterministic: f = g + h ascending, ties by
// g descending (prefer deeper, less speculative states), remaining ties
// by push sequence ascending. Neighbor generation order is fixed (up,
// down, left, right, wait). For a fixed grid, mode and heuristic the
// engine therefore returns byte-identical paths and node counts on every
// run.
//
// A missing route is a Result with Found=false, never an error; errors are
// reserved for invalid inputs (nil grid, unknown heuristic or fire mode).
//
// Complexity, with V = rows×cols and S = settle step:
//
//   - Time:  O(V·(S+1)·log(V·(S+1))) heap work in the worst case.
//   - Space: O(V·(S+1)) for the cost, visited and parent maps.
package search
