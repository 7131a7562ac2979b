// SPDX-License-Identifier: MIT
// Package sparse: functional options for Factorize.

package sparse

// Backend selects the factorization kernel.
type Backend int

const (
	// SimplicialBackend is the sparse up-looking LLᵀ (default).
	SimplicialBackend Backend = iota
	// DenseBackend factorizes a dense symmetric copy with gonum.
	DenseBackend
)

const panicUnknownBackend = "sparse: WithBackend: unknown backend"

// String returns the backend name.
func (b Backend) String() string {
	switch b {
	case SimplicialBackend:
		return "simplicial"
	case DenseBackend:
		return "dense"
	default:
		return "unknown"
	}
}

// Option configures Factorize.
type Option func(*options)

type options struct {
	backend Backend
}

// WithBackend selects the factorization backend. Panics on an unknown value.
func WithBackend(b Backend) Option {
	if b != SimplicialBackend && b != DenseBackend {
		panic(panicUnknownBackend)
	}

	return func(o *options) { o.backend = b }
}

func gatherOptions(opts ...Option) options {
	o := options{backend: SimplicialBackend}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
