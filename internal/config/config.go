package config

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gobox/pkg/obb"
)

// Config holds the settings a --config file may override
type Config struct {
	Strategy      string         `yaml:"strategy"`
	DirectionGrid int            `yaml:"direction_grid"`
	RotationSteps int            `yaml:"rotation_steps"`
	Seed          uint64         `yaml:"seed"`
	Reduce        float64        `yaml:"reduce"`
	Debounce      time.Duration  `yaml:"debounce"`
	Tolerances    obb.Tolerances `yaml:"tolerances"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Strategy:      obb.Optimized.String(),
		DirectionGrid: obb.DefaultDirectionGrid,
		RotationSteps: obb.DefaultRotationSteps,
		Seed:          1,
		Reduce:        0,
		Debounce:      300 * time.Millisecond,
		Tolerances:    obb.DefaultTolerances(),
	}
}

// Load reads a YAML file over the defaults. An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "failed to read config")
	}
	if err := Decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

// Decode overlays the YAML document on cfg and validates the result.
// Unknown keys are rejected.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return errors.Wrap(err, "failed to decode YAML")
	}
	return cfg.Validate()
}

// Validate checks ranges the solvers rely on
func (c Config) Validate() error {
	if _, err := obb.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.DirectionGrid < 2 {
		return errors.Errorf("direction_grid must be at least 2, got %d", c.DirectionGrid)
	}
	if c.RotationSteps < 1 {
		return errors.Errorf("rotation_steps must be at least 1, got %d", c.RotationSteps)
	}
	if c.Reduce < 0 {
		return errors.Errorf("reduce must not be negative, got %g", c.Reduce)
	}
	t := c.Tolerances
	for name, v := range map[string]float64{
		"internal_edge":      t.InternalEdge,
		"window":             t.Window,
		"orthogonality":      t.Orthogonality,
		"degenerate":         t.Degenerate,
		"slope":              t.Slope,
		"antipodal_interval": t.AntipodalInterval,
		"face_separation":    t.FaceSeparation,
	} {
		if v < 0 {
			return errors.Errorf("tolerance %s must not be negative, got %g", name, v)
		}
	}
	return nil
}

// BoxStrategy resolves the configured strategy
func (c Config) BoxStrategy() obb.Strategy {
	s, err := obb.ParseStrategy(c.Strategy)
	if err != nil {
		return obb.Optimized
	}
	return s
}

// Options turns the settings into solver options
func (c Config) Options() []obb.Option {
	return []obb.Option{
		obb.WithTolerances(c.Tolerances),
		obb.WithDirectionGrid(c.DirectionGrid),
		obb.WithRotationSteps(c.RotationSteps),
		obb.WithSeed(c.Seed),
	}
}

// Example is a commented configuration file with the default values
func Example() string {
	return `# gobox configuration
strategy: optimized
direction_grid: 128
rotation_steps: 32
seed: 1
# thin the cloud before hulling, e.g. 0.1
reduce: 0
debounce: 300ms
tolerances:
  internal_edge: 1e-4
  window: 1e-4
  orthogonality: 1e-3
  degenerate: 1e-5
  slope: 1e-4
  antipodal_interval: 5e-2
  face_separation: 1e-4
`
}
