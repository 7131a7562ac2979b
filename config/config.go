// SPDX-License-Identifier: MIT
// Package config loads pipeline settings from TOML.
//
// Every field has a default (Default); a TOML document only needs the keys it
// changes. Unknown keys are rejected so typos do not pass silently.
//
//	[ingest]
//	strict = false
//	[remesh]
//	target_edge_length = 0.5
//	iterations = 10
//	[delaunay]
//	max_passes = 10000
//	[log]
//	level = "info"
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

const (
	opLoad   = "config.Load"
	opDecode = "config.Decode"
)

// Config is the full pipeline configuration.
type Config struct {
	Ingest   Ingest   `toml:"ingest"`
	Remesh   Remesh   `toml:"remesh"`
	Delaunay Delaunay `toml:"delaunay"`
	Log      Log      `toml:"log"`
}

// Ingest controls triangle ingestion.
type Ingest struct {
	// Strict aborts ingestion on the first rejected triangle.
	Strict bool `toml:"strict"`
}

// Remesh controls the remeshing stage.
type Remesh struct {
	TargetEdgeLength float64 `toml:"target_edge_length"`
	Iterations       int     `toml:"iterations"`
}

// Delaunay controls the flip optimizer.
type Delaunay struct {
	MaxPasses int `toml:"max_passes"`
}

// Log controls the session logger.
type Log struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Ingest:   Ingest{Strict: false},
		Remesh:   Remesh{TargetEdgeLength: 0.5, Iterations: 10},
		Delaunay: Delaunay{MaxPasses: 10000},
		Log:      Log{Level: "info"},
	}
}

// Validate reports the first out-of-domain field wrapped in ErrInvalid.
func (c Config) Validate() error {
	if !(c.Remesh.TargetEdgeLength > 0) || math.IsInf(c.Remesh.TargetEdgeLength, 0) {
		return fmt.Errorf("remesh.target_edge_length = %v: %w", c.Remesh.TargetEdgeLength, ErrInvalid)
	}
	if c.Remesh.Iterations < 0 {
		return fmt.Errorf("remesh.iterations = %d: %w", c.Remesh.Iterations, ErrInvalid)
	}
	if c.Delaunay.MaxPasses <= 0 {
		return fmt.Errorf("delaunay.max_passes = %d: %w", c.Delaunay.MaxPasses, ErrInvalid)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level = %q: %w", c.Log.Level, ErrInvalid)
	}

	return nil
}

// Decode reads a TOML document from r over the defaults and validates it.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: %w", opDecode, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", opDecode, err)
	}

	return cfg, nil
}

// Load decodes the TOML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", opLoad, err)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s %s: %w", opLoad, path, err)
	}

	return cfg, nil
}
