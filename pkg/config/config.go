// Package config provides configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pmdartus/speedline/pkg/frame"
	"github.com/pmdartus/speedline/pkg/histogram"
	"github.com/pmdartus/speedline/pkg/orchestrator"
	"github.com/pmdartus/speedline/pkg/ports"
	"github.com/pmdartus/speedline/pkg/trace"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the full configuration for speedline.
type Config struct {
	// Extraction
	TimeOrigin *float64 `yaml:"time_origin"` // trace microseconds
	Relative   bool     `yaml:"relative"`

	// Histograms
	Histograms     bool `yaml:"histograms"`
	Workers        int  `yaml:"workers"`         // 0 = one per CPU
	WhiteThreshold int  `yaml:"white_threshold"` // 0 = disabled

	// Logging
	LogLevel string `yaml:"log_level"`

	// Output
	Summary  string `yaml:"summary"`
	Debug    bool   `yaml:"debug"`
	DebugDir string `yaml:"debug_dir"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		Histograms: true,
		LogLevel:   "info",
		DebugDir:   "./debug",
	}
}

// LoadFromFile loads configuration from a YAML file on top of Defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.WhiteThreshold < 0 || c.WhiteThreshold > 255 {
		return fmt.Errorf("%w: white_threshold must be within 0-255, got %d", ErrInvalidConfig, c.WhiteThreshold)
	}
	if c.TimeOrigin != nil && *c.TimeOrigin < 0 {
		return fmt.Errorf("%w: time_origin must be >= 0, got %v", ErrInvalidConfig, *c.TimeOrigin)
	}
	if c.LogLevel != "" && ports.ParseLogLevel(c.LogLevel).String() != strings.ToLower(strings.TrimSpace(c.LogLevel)) {
		return fmt.Errorf("%w: unknown log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Debug && c.DebugDir == "" {
		return fmt.Errorf("%w: debug_dir is required when debug is enabled", ErrInvalidConfig)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}

// FrameOptions returns the frame construction options implied by the configuration.
func (c Config) FrameOptions() []frame.Option {
	if c.WhiteThreshold <= 0 {
		return nil
	}
	return []frame.Option{
		frame.WithHistogramOptions(histogram.WithWhiteThreshold(uint8(c.WhiteThreshold))),
	}
}

// ToOrchestratorConfig converts Config to orchestrator.Config for source.
func (c Config) ToOrchestratorConfig(source trace.Source) orchestrator.Config {
	return orchestrator.Config{
		Source:         source,
		TimeOrigin:     c.TimeOrigin,
		Relative:       c.Relative,
		Histograms:     c.Histograms,
		WhiteThreshold: c.WhiteThreshold,
	}
}
