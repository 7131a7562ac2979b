// SPDX-License-Identifier: MIT
// Package session: functional options for New.

package session

import (
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/heatmesh/config"
	"github.com/katalvlaran/heatmesh/remesh"
)

const (
	panicNilLogger       = "session: WithLogger: logger is nil"
	panicNilRemesher     = "session: WithRemesher: remesher is nil"
	panicNilTriangulator = "session: WithTriangulator: triangulator is nil"
)

// Option configures a Session.
type Option func(*Session)

// WithConfig replaces the default configuration. It is validated by New.
func WithConfig(cfg config.Config) Option {
	return func(s *Session) { s.cfg = cfg }
}

// WithLogger sets the base logger; the session adds its own "session" field.
// Panics if l is nil.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(s *Session) { s.log = l }
}

// WithRemesher replaces the default remesh.Uniform. Panics if r is nil.
func WithRemesher(r remesh.Remesher) Option {
	if r == nil {
		panic(panicNilRemesher)
	}

	return func(s *Session) { s.remesher = r }
}

// WithTriangulator replaces the default remesh.FaceTriangulator. Panics if t is nil.
func WithTriangulator(t remesh.Triangulator) Option {
	if t == nil {
		panic(panicNilTriangulator)
	}

	return func(s *Session) { s.triangulator = t }
}
