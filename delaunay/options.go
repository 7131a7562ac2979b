// SPDX-License-Identifier: MIT
// Package delaunay: functional options for Optimize.

package delaunay

// DefaultMaxPasses caps the number of full edge scans.
const DefaultMaxPasses = 10000

const panicMaxPassesInvalid = "delaunay: WithMaxPasses: n must be > 0"

// Option mutates Options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the effective configuration of one Optimize call.
type Options struct {
	maxPasses int
	onPass    func(pass, flips int)
}

// WithMaxPasses bounds the number of passes. Panics if n <= 0.
func WithMaxPasses(n int) Option {
	if n <= 0 {
		panic(panicMaxPassesInvalid)
	}

	return func(o *Options) { o.maxPasses = n }
}

// WithPassHook registers fn to be called after every completed pass with the
// 1-based pass number and that pass's flip count.
func WithPassHook(fn func(pass, flips int)) Option {
	return func(o *Options) { o.onPass = fn }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{maxPasses: DefaultMaxPasses}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
