// Package config provides configuration loading and access for the engine.
package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/impact/deflection"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all engine configuration parameters.
type Config struct {
	Asteroid AsteroidConfig `yaml:"asteroid"`
	Defense  DefenseConfig  `yaml:"defense"`
	Globe    GlobeConfig    `yaml:"globe"`
	Sweep    SweepConfig    `yaml:"sweep"`
	Logging  LoggingConfig  `yaml:"logging"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// AsteroidConfig holds defaults for asteroid parameters not supplied by the caller.
type AsteroidConfig struct {
	DensityKgPerM3      float64 `yaml:"density_kg_m3"`
	VelocityKmPerSecond float64 `yaml:"velocity_km_s"` // Used when the data source reports no velocity
}

// DefenseConfig holds kinetic-impactor scenario defaults.
type DefenseConfig struct {
	LeadTimeYears float64                `yaml:"lead_time_years"`
	Interceptor   deflection.Interceptor `yaml:"interceptor"`
}

// GlobeConfig holds the sphere the target point is projected onto.
type GlobeConfig struct {
	Radius float64 `yaml:"radius"`
}

// SweepConfig holds defaults for the diameter sweep tool.
type SweepConfig struct {
	MinDiameterMeters float64 `yaml:"min_diameter_m"`
	MaxDiameterMeters float64 `yaml:"max_diameter_m"`
	Steps             int     `yaml:"steps"`
	Population        int64   `yaml:"population"` // 0 = casualties unknown
}

// LoggingConfig holds slog settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DerivedConfig holds values computed from other config values.
type DerivedConfig struct {
	LogLevel        slog.Level
	LeadTimeSeconds float64
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Asteroid.DensityKgPerM3 <= 0:
		return fmt.Errorf("asteroid.density_kg_m3 must be positive, got %g", c.Asteroid.DensityKgPerM3)
	case c.Defense.LeadTimeYears < 0:
		return fmt.Errorf("defense.lead_time_years must not be negative, got %g", c.Defense.LeadTimeYears)
	case c.Globe.Radius <= 0:
		return fmt.Errorf("globe.radius must be positive, got %g", c.Globe.Radius)
	case c.Sweep.Steps < 2:
		return fmt.Errorf("sweep.steps must be at least 2, got %d", c.Sweep.Steps)
	case c.Sweep.MinDiameterMeters <= 0 || c.Sweep.MaxDiameterMeters <= c.Sweep.MinDiameterMeters:
		return fmt.Errorf("sweep diameter range [%g, %g] is invalid", c.Sweep.MinDiameterMeters, c.Sweep.MaxDiameterMeters)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.LeadTimeSeconds = c.Defense.LeadTimeYears * deflection.SecondsPerYear

	switch strings.ToLower(c.Logging.Level) {
	case "debug":
		c.Derived.LogLevel = slog.LevelDebug
	case "warn", "warning":
		c.Derived.LogLevel = slog.LevelWarn
	case "error":
		c.Derived.LogLevel = slog.LevelError
	default:
		c.Derived.LogLevel = slog.LevelInfo
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
