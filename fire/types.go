// Package fire defines the hazard mode enumeration and its parsing for the
// firegrid module.
package fire

import (
	"errors"
	"fmt"
)

// ErrUnknownMode indicates a mode name outside {dynamic, static, none}.
var ErrUnknownMode = errors.New("fire: unknown fire mode")

// Mode selects how the hazard behaves over time. It is a closed
// enumeration: every switch over Mode in this module is exhaustive.
type Mode uint8

const (
	// Dynamic spreads fire one wavefront layer per step from the sources.
	Dynamic Mode = iota
	// Static keeps the initial fire sources burning forever, nothing else.
	Static
	// None disables the hazard entirely.
	None
)

// String returns the canonical lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case Dynamic:
		return "dynamic"
	case Static:
		return "static"
	case None:
		return "none"
	default:
		return fmt.Sprintf("fire.Mode(%d)", uint8(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m <= None
}

// ParseMode maps a canonical mode name to its Mode value.
// Returns ErrUnknownMode for anything else.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "dynamic":
		return Dynamic, nil
	case "static":
		return Static, nil
	case "none":
		return None, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMode)
	}
}
