// Package config loads the YAML application configuration shared by the
// bedrock front ends.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bedrock/internal/core"
	"bedrock/internal/level"
	"bedrock/internal/logging"
	"bedrock/internal/sims/sand"
)

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "BEDROCK_CONFIG"

// EnvMetricsAddr overrides metrics.addr when the file leaves it empty.
const EnvMetricsAddr = "BEDROCK_METRICS_ADDR"

// Config is the root of the configuration file.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Level   LevelConfig   `yaml:"level"`
	Sim     SimConfig     `yaml:"sim"`
	Window  WindowConfig  `yaml:"window"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type LevelConfig struct {
	Name string `yaml:"name"`
	// DataDir holds user levels under level/. Empty means the platform default.
	DataDir string `yaml:"data_dir"`
}

type SimConfig struct {
	Seed      int64  `yaml:"seed"`
	TPS       int    `yaml:"tps"`
	Workers   int    `yaml:"workers"`
	Partition string `yaml:"partition"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`

	// HUDWidth is the parameter panel width; zero hides it.
	HUDWidth int `yaml:"hud_width"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// GetAddr returns the configured listen address, falling back to the
// environment. Empty disables the exporter.
func (m MetricsConfig) GetAddr() string {
	if m.Addr != "" {
		return m.Addr
	}
	return os.Getenv(EnvMetricsAddr)
}

// Default returns the built-in configuration.
func Default() *Config {
	sim := sand.DefaultConfig()
	return &Config{
		Map:   MapConfig{Width: sim.Size.W, Height: sim.Size.H},
		Level: LevelConfig{Name: level.DefaultName},
		Sim: SimConfig{
			Seed:      sim.Seed,
			TPS:       sim.TPS,
			Workers:   sim.Workers,
			Partition: sim.Partition.String(),
		},
		Window: WindowConfig{Width: 1152, Height: 768, Title: "Bedrock", HUDWidth: 240},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path falls back
// to $BEDROCK_CONFIG; if that is unset too the defaults are returned. Values are
// not validated here so that flags can still override them; call Validate on
// the merged result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if _, err := core.NewSize(c.Map.Width, c.Map.Height); err != nil {
		errs = append(errs, fmt.Errorf("map: %w", err))
	}
	if c.Level.Name == "" {
		errs = append(errs, errors.New("level.name is empty"))
	}
	if _, err := sand.ParsePartition(c.Sim.Partition); err != nil {
		errs = append(errs, fmt.Errorf("sim.partition: %w", err))
	}
	if c.Sim.TPS < sand.MinTPS {
		errs = append(errs, fmt.Errorf("sim.tps %d is below %d", c.Sim.TPS, sand.MinTPS))
	}
	if c.Sim.Workers < 0 || c.Sim.Workers > sand.MaxWorkers {
		errs = append(errs, fmt.Errorf("sim.workers %d is outside [0, %d]", c.Sim.Workers, sand.MaxWorkers))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.HUDWidth < 0 || c.Window.HUDWidth >= c.Window.Width {
		errs = append(errs, fmt.Errorf("hud width %d must fit in the window", c.Window.HUDWidth))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// SandConfig converts the file settings into the simulation's config.
func (c *Config) SandConfig() (sand.Config, error) {
	size, err := core.NewSize(c.Map.Width, c.Map.Height)
	if err != nil {
		return sand.Config{}, err
	}
	p, err := sand.ParsePartition(c.Sim.Partition)
	if err != nil {
		return sand.Config{}, err
	}
	cfg := sand.Config{
		Size:      size,
		Seed:      c.Sim.Seed,
		TPS:       c.Sim.TPS,
		Partition: p,
		Workers:   c.Sim.Workers,
	}
	return cfg, cfg.Validate()
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() logging.Level {
	l, _ := logging.ParseLevel(c.Log.Level)
	return l
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) { return yaml.Marshal(c) }
