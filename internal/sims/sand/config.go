package sand

import (
	"fmt"
	"strconv"

	"bedrock/internal/core"
)

const (
	// MinTPS is the slowest tick rate the world accepts.
	MinTPS = 1
	// MaxTPS bounds the HUD control.
	MaxTPS = 240
	// MaxWorkers bounds the HUD control.
	MaxWorkers = 64
)

// Config controls the world dimensions, seeding and tick scheduling.
type Config struct {
	Size core.Size
	Seed int64

	// TPS is the target number of ticks per second.
	TPS int
	// Partition selects how columns are divided among chunks.
	Partition Partition
	// Workers is the column fan-out for a tick. Zero ticks sequentially on
	// the world's own generator.
	Workers int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:      core.DefaultSize,
		Seed:      1337,
		TPS:       8,
		Partition: PartitionEqual,
		Workers:   0,
	}
}

// Validate reports the first unusable field.
func (c Config) Validate() error {
	if err := c.Size.Validate(); err != nil {
		return err
	}
	if c.TPS < MinTPS {
		return fmt.Errorf("tps %d is below %d", c.TPS, MinTPS)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers %d is outside [0, %d]", c.Workers, MaxWorkers)
	}
	if !c.Partition.Valid() {
		return fmt.Errorf("unknown partition policy %d", c.Partition)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed%2 == 0 {
			c.Size.W = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 && parsed%2 == 0 {
			c.Size.H = parsed
		}
	}
	if c.Size.Validate() != nil {
		c.Size = core.DefaultSize
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= MinTPS {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed <= MaxWorkers {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["partition"]; ok {
		if parsed, err := ParsePartition(v); err == nil {
			c.Partition = parsed
		}
	}
	return c
}
