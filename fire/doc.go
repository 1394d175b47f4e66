// Package fire implements the hazard simulator: it answers "is this cell
// on fire at step t?" for one search run, under one of three modes.
//
// Modes:
//
//   - Dynamic: fire grows from the grid's fire sources one wavefront layer
//     per step, via 4-directional adjacency, never through walls. This is
//     exactly an unweighted multi-source breadth-first expansion, so the
//     step at which a cell catches fire equals its BFS distance from the
//     nearest source. The burning set is monotone: once a cell burns, it
//     burns forever.
//   - Static: the burning set is the initial fire-source set, for all t.
//   - None: nothing ever burns.
//
// The simulator computes Dynamic wavefront layers lazily and caches the
// per-cell catch step, so out-of-order queries (the search frontier may ask
// about t=5 before t=3) cost at most one full expansion of the grid across
// the whole run. The cache is owned by a single Simulator instance; create
// one instance per search run and discard it afterward. IsOnFire is pure
// from the caller's point of view: for a fixed grid and mode, its answer
// depends only on (cell, t).
//
// Querying a negative time is a programmer error and panics; it can only
// arise from a bug in the caller, never from user input.
package fire
