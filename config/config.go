// Package config loads optional YAML tuning for the coordinator and the
// section builders. Absent values keep the parameter-package defaults
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glimmerfx/glimmer/controller"
	"github.com/glimmerfx/glimmer/render"
	"github.com/glimmerfx/glimmer/section"
)

// Config is the root document
type Config struct {
	// TickIntervalMs overrides the frame interval; 0 keeps the default
	TickIntervalMs int `yaml:"tick_interval_ms"`

	Perf PerfConfig `yaml:"perf"`

	// Sections keys by section id (hero, challenge, ...)
	Sections map[string]SectionConfig `yaml:"sections"`
}

// PerfConfig mirrors the degradation thresholds
type PerfConfig struct {
	MinFrameRate    float64 `yaml:"min_frame_rate"`
	SustainWindowMs int     `yaml:"sustain_window_ms"`
	MaxHeapMB       int     `yaml:"max_heap_mb"`
}

// SectionConfig tunes one section builder
type SectionConfig struct {
	PoolSize   int     `yaml:"pool_size"`
	SpawnRate  float64 `yaml:"spawn_rate"`
	LifetimeMs int     `yaml:"lifetime_ms"`
	Palette    Palette `yaml:"palette"`
}

// Palette is a two-stop hex gradient, e.g. from: "#38bdf8"
type Palette struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Default returns an empty config: every value defers to the parameter
// package defaults
func Default() Config {
	return Config{Sections: make(map[string]SectionConfig)}
}

// Load reads and validates a YAML config file
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the runtime cannot honor
func (c Config) Validate() error {
	if c.TickIntervalMs < 0 {
		return fmt.Errorf("tick_interval_ms must be >= 0, got %d", c.TickIntervalMs)
	}
	if c.Perf.MinFrameRate < 0 {
		return fmt.Errorf("perf.min_frame_rate must be >= 0, got %f", c.Perf.MinFrameRate)
	}
	if c.Perf.SustainWindowMs < 0 {
		return fmt.Errorf("perf.sustain_window_ms must be >= 0, got %d", c.Perf.SustainWindowMs)
	}

	for id, sc := range c.Sections {
		if sc.PoolSize < 0 {
			return fmt.Errorf("sections.%s.pool_size must be >= 0, got %d", id, sc.PoolSize)
		}
		if sc.SpawnRate < 0 {
			return fmt.Errorf("sections.%s.spawn_rate must be >= 0, got %f", id, sc.SpawnRate)
		}
		if sc.LifetimeMs < 0 {
			return fmt.Errorf("sections.%s.lifetime_ms must be >= 0, got %d", id, sc.LifetimeMs)
		}
		if (sc.Palette.From == "") != (sc.Palette.To == "") {
			return fmt.Errorf("sections.%s.palette needs both from and to", id)
		}
		if sc.Palette.From != "" {
			if _, err := render.GradientHex(sc.Palette.From, sc.Palette.To); err != nil {
				return fmt.Errorf("sections.%s.palette: %w", id, err)
			}
		}
	}
	return nil
}

// TickInterval returns the configured frame interval, or 0 for default
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// PerfSettings maps onto the coordinator's perf config
func (c Config) PerfSettings() controller.PerfConfig {
	return controller.PerfConfig{
		MinFrameRate:  c.Perf.MinFrameRate,
		SustainWindow: time.Duration(c.Perf.SustainWindowMs) * time.Millisecond,
		MaxHeapBytes:  uint64(c.Perf.MaxHeapMB) << 20,
	}
}

// Overrides maps one section's config onto builder overrides.
// Unknown ids return the zero value, keeping defaults
func (c Config) Overrides(id string) section.Overrides {
	sc, ok := c.Sections[id]
	if !ok {
		return section.Overrides{}
	}
	ov := section.Overrides{
		PoolSize:  sc.PoolSize,
		SpawnRate: sc.SpawnRate,
		Lifetime:  time.Duration(sc.LifetimeMs) * time.Millisecond,
	}
	if sc.Palette.From != "" {
		// Validate already checked parseability
		ov.Palette, _ = render.GradientHex(sc.Palette.From, sc.Palette.To)
	}
	return ov
}
