// Package mazegen generates random escape scenarios: a corridor maze with
// one start cell, one exit cell, and a handful of fire seeds.
//
// The carving algorithm is a recursive backtracker over the odd lattice:
// corridors are one cell wide, the outer ring stays walled, and the result
// is a perfect maze. A configurable fraction of removable interior walls
// is then knocked out to add loops, so the maze offers alternative routes
// instead of a single corridor — which is what makes fire avoidance
// interesting. Start is placed at (1,1), exit at (rows-2, cols-2), and
// 1–3 fire seeds (configurable) land on random free cells away from both.
//
// Reachability is deliberately not promised: a seed may cut the only
// route, and a search over the generated grid may legitimately fail.
//
// Determinism: for a fixed seed (WithSeed or WithRand) the generator emits
// the same grid every time. Without an explicit source it seeds from the
// wall clock.
package mazegen
