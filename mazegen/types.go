// Package mazegen defines generator options and sentinel errors.
package mazegen

import (
	"errors"
	"math/rand"
)

// Sentinel errors for generator configuration.
var (
	// ErrTooSmall indicates dimensions below the 5×5 minimum needed for an
	// interior with distinct start and exit corners.
	ErrTooSmall = errors.New("mazegen: rows and cols must each be at least 5")
	// ErrInvalidLoopFactor indicates a loop factor outside [0, 1].
	ErrInvalidLoopFactor = errors.New("mazegen: loop factor out of range")
	// ErrBadFireCount indicates a fire-count range with min < 0 or min > max.
	ErrBadFireCount = errors.New("mazegen: invalid fire count range")
)

// Defaults for generator options.
const (
	defaultLoopFactor = 0.10
	defaultFireMin    = 1
	defaultFireMax    = 3
)

// Options configures Generate.
//
// Rng        – random source; nil means seed from the wall clock.
// LoopFactor – fraction of removable interior walls knocked out after
// carving, in [0, 1].
// FireMin, FireMax – inclusive range for the number of fire seeds.
type Options struct {
	Rng        *rand.Rand
	LoopFactor float64
	FireMin    int
	FireMax    int
}

// Option is a functional option for configuring Generate.
type Option func(*Options)

// WithSeed derives the random source from a fixed seed, making the
// generated maze reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rng = rand.New(rand.NewSource(seed)) }
}

// WithRand injects a caller-owned random source. Overrides WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rng = rng }
}

// WithLoopFactor sets the fraction of removable walls converted into
// loops. 0 keeps the maze perfect; values outside [0, 1] make Generate
// fail with ErrInvalidLoopFactor.
func WithLoopFactor(f float64) Option {
	return func(o *Options) { o.LoopFactor = f }
}

// WithFireCount sets the inclusive range for the number of fire seeds.
// min must be ≥ 0 and ≤ max, else Generate fails with ErrBadFireCount.
func WithFireCount(min, max int) Option {
	return func(o *Options) {
		o.FireMin = min
		o.FireMax = max
	}
}

// DefaultOptions returns the generator defaults: clock-seeded randomness,
// 10% loop carving, 1–3 fire seeds.
func DefaultOptions() Options {
	return Options{
		Rng:        nil,
		LoopFactor: defaultLoopFactor,
		FireMin:    defaultFireMin,
		FireMax:    defaultFireMax,
	}
}
