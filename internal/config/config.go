// Package config provides YAML/TOML configuration loading and validation
// for the space garbage simulation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains every tunable of a game session.
type Config struct {
	TickMillis int              `yaml:"tick_ms" toml:"tick_ms"`
	Ship       ShipConfig       `yaml:"ship" toml:"ship"`
	Stars      StarsConfig      `yaml:"stars" toml:"stars"`
	Debris     DebrisConfig     `yaml:"debris" toml:"debris"`
	Gun        GunConfig        `yaml:"gun" toml:"gun"`
	Clock      ClockConfig      `yaml:"clock" toml:"clock"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// ShipConfig defines the spaceship physics parameters.
type ShipConfig struct {
	MaxSpeed     float64 `yaml:"max_speed" toml:"max_speed"`       // Velocity limit per axis, cells per tick
	Fading       float64 `yaml:"fading" toml:"fading"`             // Velocity multiplier applied every tick, [0, 1)
	Acceleration float64 `yaml:"acceleration" toml:"acceleration"` // Velocity step per tick of held impulse
	Border       int     `yaml:"border" toml:"border"`             // Margin kept between ship and field edge
}

// StarsConfig defines the decorative starfield.
type StarsConfig struct {
	Count  int    `yaml:"count" toml:"count"`
	Glyphs string `yaml:"glyphs" toml:"glyphs"`
}

// DebrisConfig defines falling garbage parameters.
type DebrisConfig struct {
	Speed float64 `yaml:"speed" toml:"speed"` // Rows per tick
}

// GunConfig defines the plasma gun.
type GunConfig struct {
	RowSpeed   float64 `yaml:"row_speed" toml:"row_speed"`     // Negative is up
	ColSpeed   float64 `yaml:"col_speed" toml:"col_speed"`     // Lateral drift
	UnlockYear int     `yaml:"unlock_year" toml:"unlock_year"` // First year the gun fires, 0 = always
	Cooldown   int     `yaml:"cooldown" toml:"cooldown"`       // Minimum ticks between shots, 0 = none
}

// ClockConfig defines the year clock.
type ClockConfig struct {
	StartYear    int `yaml:"start_year" toml:"start_year"`
	TicksPerYear int `yaml:"ticks_per_year" toml:"ticks_per_year"`
}

// DifficultyConfig holds the stepped spawn table and the narrative phrases.
type DifficultyConfig struct {
	Spawn   []SpawnStep `yaml:"spawn" toml:"spawn"`
	Phrases []Phrase    `yaml:"phrases" toml:"phrases"`
}

// SpawnStep maps every year from Year onward (until the next step) to a
// spawn interval in ticks. Interval 0 pauses spawning.
type SpawnStep struct {
	Year     int `yaml:"year" toml:"year"`
	Interval int `yaml:"interval" toml:"interval"`
}

// Phrase is narrative text shown while the clock reads exactly Year.
type Phrase struct {
	Year int    `yaml:"year" toml:"year"`
	Text string `yaml:"text" toml:"text"`
}

// TickInterval returns the configured frame period.
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Validate checks the configuration for contract violations.
// All problems are reported together.
func (c Config) Validate() error {
	var errs []error

	if c.TickMillis <= 0 {
		errs = append(errs, fmt.Errorf("tick_ms must be positive, got %d", c.TickMillis))
	}
	if c.Ship.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("ship.max_speed must be positive, got %v", c.Ship.MaxSpeed))
	}
	if c.Ship.Fading < 0 || c.Ship.Fading >= 1 {
		errs = append(errs, fmt.Errorf("ship.fading must be within [0, 1), got %v", c.Ship.Fading))
	}
	if c.Ship.Acceleration <= 0 {
		errs = append(errs, fmt.Errorf("ship.acceleration must be positive, got %v", c.Ship.Acceleration))
	}
	if c.Ship.Border < 0 {
		errs = append(errs, fmt.Errorf("ship.border must not be negative, got %d", c.Ship.Border))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}
	if c.Stars.Count > 0 && c.Stars.Glyphs == "" {
		errs = append(errs, errors.New("stars.glyphs must not be empty when stars are enabled"))
	}
	if c.Debris.Speed <= 0 {
		errs = append(errs, fmt.Errorf("debris.speed must be positive, got %v", c.Debris.Speed))
	}
	if c.Gun.RowSpeed == 0 && c.Gun.ColSpeed == 0 {
		errs = append(errs, errors.New("gun speed must not be zero on both axes"))
	}
	if c.Gun.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("gun.cooldown must not be negative, got %d", c.Gun.Cooldown))
	}
	if c.Clock.TicksPerYear <= 0 {
		errs = append(errs, fmt.Errorf("clock.ticks_per_year must be positive, got %d", c.Clock.TicksPerYear))
	}
	if err := c.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// Validate checks that spawn thresholds are strictly increasing and that
// intervals never grow once spawning has started.
func (d DifficultyConfig) Validate() error {
	if len(d.Spawn) == 0 {
		return errors.New("difficulty.spawn must have at least one step")
	}

	started := false
	prev := 0
	for i, step := range d.Spawn {
		if i > 0 && step.Year <= d.Spawn[i-1].Year {
			return fmt.Errorf("difficulty.spawn[%d]: year %d is not after %d", i, step.Year, d.Spawn[i-1].Year)
		}
		switch {
		case step.Interval < 0:
			return fmt.Errorf("difficulty.spawn[%d]: negative interval %d", i, step.Interval)
		case step.Interval == 0 && started:
			return fmt.Errorf("difficulty.spawn[%d]: spawning cannot pause again after year %d", i, d.Spawn[i-1].Year)
		case step.Interval > 0 && started && step.Interval > prev:
			return fmt.Errorf("difficulty.spawn[%d]: interval %d is longer than %d", i, step.Interval, prev)
		}
		if step.Interval > 0 {
			started = true
			prev = step.Interval
		}
	}
	return nil
}
