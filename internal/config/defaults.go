package config

import (
	_ "embed"
)

//go:embed defaults/garbage.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TickMillis: 100,
		Ship: ShipConfig{
			MaxSpeed:     2,
			Fading:       0.8,
			Acceleration: 0.75,
			Border:       1,
		},
		Stars: StarsConfig{
			Count:  100,
			Glyphs: "+*.:",
		},
		Debris: DebrisConfig{
			Speed: 0.5,
		},
		Gun: GunConfig{
			RowSpeed:   -0.3,
			UnlockYear: 2020,
		},
		Clock: ClockConfig{
			StartYear:    1957,
			TicksPerYear: 15,
		},
		Difficulty: DifficultyConfig{
			Spawn: []SpawnStep{
				{Year: 1961, Interval: 20},
				{Year: 1969, Interval: 14},
				{Year: 1981, Interval: 10},
				{Year: 1995, Interval: 8},
				{Year: 2010, Interval: 6},
				{Year: 2020, Interval: 2},
			},
			Phrases: []Phrase{
				{Year: 1957, Text: "First Sputnik"},
				{Year: 1961, Text: "Gagarin flew!"},
				{Year: 1969, Text: "Armstrong got on the moon!"},
				{Year: 1971, Text: "First orbital space station Salute-1"},
				{Year: 1981, Text: "Flight of the Shuttle Columbia"},
				{Year: 1998, Text: "ISS start building"},
				{Year: 2011, Text: "Messenger launch to Mercury"},
				{Year: 2020, Text: "Take the plasma gun! Shoot the garbage!"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
