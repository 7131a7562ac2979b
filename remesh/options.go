// SPDX-License-Identifier: MIT
// Package remesh: functional options for the Uniform remesher.

package remesh

const (
	// DefaultSmoothingSteps is the number of tangential smoothing sweeps per round.
	DefaultSmoothingSteps = 5
	// DefaultSplitSweeps caps the repeated long-edge split sweeps per round.
	DefaultSplitSweeps = 10
	// DefaultFlipSweeps caps the repeated valence flip sweeps per round.
	DefaultFlipSweeps = 10
)

const (
	panicSmoothingNegative = "remesh: WithSmoothingSteps: n must be >= 0"
	panicSweepsInvalid     = "remesh: sweep count must be > 0"
)

// Option configures a Uniform remesher.
type Option func(*Uniform)

// WithSmoothingSteps sets the tangential smoothing sweeps per round. Panics if n < 0.
func WithSmoothingSteps(n int) Option {
	if n < 0 {
		panic(panicSmoothingNegative)
	}

	return func(u *Uniform) { u.smoothingSteps = n }
}

// WithSplitSweeps caps the long-edge split sweeps per round. Panics if n <= 0.
func WithSplitSweeps(n int) Option {
	if n <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(u *Uniform) { u.splitSweeps = n }
}

// WithFlipSweeps caps the valence flip sweeps per round. Panics if n <= 0.
func WithFlipSweeps(n int) Option {
	if n <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(u *Uniform) { u.flipSweeps = n }
}
