// Package grid provides the immutable maze model shared by the fire
// simulator and the search engine.
//
// A Grid is an N×M matrix of Terrain values plus the distinguished Start
// and Exit cells and the set of initial fire sources. It supports:
//
//   - Construction from an in-memory terrain matrix (New)
//   - Construction from a textual map (Parse), one rune per cell:
//     '.' Free, '#' Wall, 'D' Start, 'S' Exit, 'F' FireSource
//   - O(1) terrain lookup, bounds checks and 4-directional neighbor offsets
//
// Invariants, enforced at construction and immutable afterward:
//
//   - Dimensions are positive and the matrix is rectangular.
//   - Exactly one Start and one Exit cell exist, and they are distinct.
//   - Fire sources occupy neither a Wall nor the Start nor the Exit cell.
//
// Construction deep-copies its input, so a *Grid may be shared freely
// between concurrent searches as read-only data.
//
// Errors (sentinel):
//
//   - ErrEmptyGrid        if the input has no rows or no columns.
//   - ErrNonRectangular   if rows have differing lengths.
//   - ErrUnknownSymbol    if Parse meets a rune outside the map alphabet.
//   - ErrStartCardinality if the Start cell is missing or duplicated.
//   - ErrExitCardinality  if the Exit cell is missing or duplicated.
package grid
