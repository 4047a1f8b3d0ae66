// Package scenario loads sweep configurations from JSON files: a named base
// scenario plus the (x, omega) grids to sweep it over.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/3498972895/idle-node-offloading/pkg/models"
)

// Default grid resolution when a sweep axis does not specify one.
const DefaultGridSteps = 11

// AxisSpec defines one sweep axis: Steps evenly spaced values over
// [Min, Max], endpoints included.
type AxisSpec struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Steps int     `json:"steps"`
}

// Values expands the axis into its grid points. A single-step axis
// degenerates to just Min.
func (a AxisSpec) Values() []float64 {
	if a.Steps <= 1 {
		return []float64{a.Min}
	}
	values := make([]float64, a.Steps)
	width := (a.Max - a.Min) / float64(a.Steps-1)
	for i := range values {
		values[i] = a.Min + float64(i)*width
	}
	return values
}

// SweepSpec carries the offload-ratio and relay-ratio grids.
type SweepSpec struct {
	OffloadRatio AxisSpec `json:"offload_ratio"`
	RelayRatio   AxisSpec `json:"relay_ratio"`
}

// Config is one sweep configuration file.
type Config struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Scenario    models.Scenario `json:"scenario"`
	Sweep       SweepSpec       `json:"sweep"`
}

// Load reads, defaults and validates a sweep configuration from a JSON file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return &cfg, nil
}

// ApplyDefaults fills in the parts a config file may omit: an absent sweep
// axis becomes a full-range [0,1] grid at the default resolution, and an
// axis without a step count gets the default resolution.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "unnamed-sweep"
	}
	if c.Sweep.OffloadRatio == (AxisSpec{}) {
		c.Sweep.OffloadRatio = AxisSpec{Min: 0, Max: 1, Steps: DefaultGridSteps}
	}
	if c.Sweep.OffloadRatio.Steps == 0 {
		c.Sweep.OffloadRatio.Steps = DefaultGridSteps
	}
	if c.Sweep.RelayRatio == (AxisSpec{}) {
		c.Sweep.RelayRatio = AxisSpec{Min: 0, Max: 1, Steps: DefaultGridSteps}
	}
	if c.Sweep.RelayRatio.Steps == 0 {
		c.Sweep.RelayRatio.Steps = DefaultGridSteps
	}
}

// Validate checks the scenario parameters and the sweep grids.
func (c *Config) Validate() error {
	if err := c.Scenario.Validate(); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}

	for _, axis := range []struct {
		name string
		spec AxisSpec
	}{
		{"offload_ratio", c.Sweep.OffloadRatio},
		{"relay_ratio", c.Sweep.RelayRatio},
	} {
		if axis.spec.Min < 0 || axis.spec.Max > 1 {
			return fmt.Errorf("sweep axis %s: range [%g, %g] outside [0,1]",
				axis.name, axis.spec.Min, axis.spec.Max)
		}
		if axis.spec.Min > axis.spec.Max {
			return fmt.Errorf("sweep axis %s: min %g exceeds max %g",
				axis.name, axis.spec.Min, axis.spec.Max)
		}
		if axis.spec.Steps < 1 {
			return fmt.Errorf("sweep axis %s: steps must be >= 1, got %d",
				axis.name, axis.spec.Steps)
		}
	}

	return nil
}
