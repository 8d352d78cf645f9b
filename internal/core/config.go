package core

import "time"

// RuntimeConfig contains the platform parameters handed to the simulation.
type RuntimeConfig struct {
	Rows         int           // Screen height in characters
	Cols         int           // Screen width in characters
	TickInterval time.Duration // Wall-clock period between ticks
	Seed         int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:         24,
		Cols:         80,
		TickInterval: 100 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}
