package config

import (
	_ "embed"
)

//go:embed defaults/garbage.yaml
var defaultGarbageYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors the
// embedded YAML and is used when that cannot be parsed.
func DefaultConfig() GarbageConfig {
	return GarbageConfig{
		TickIntervalMS: 100,
		Field: FieldConfig{
			Stars:       200,
			StarSymbols: "+*.:",
		},
		Blink: BlinkConfig{
			MaxOffset: 20,
			Phases: []BlinkPhase{
				{Style: "dim", Ticks: 20},
				{Style: "normal", Ticks: 3},
				{Style: "bold", Ticks: 5},
				{Style: "normal", Ticks: 3},
			},
		},
		Craft: CraftConfig{
			SpeedLimit:   1.0,
			Acceleration: 0.5,
			RowOffset:    1,
			ColumnOffset: 2,
			Animation:    []int{0, 0, 1, 1},
		},
		Hazard: HazardConfig{
			Speed:    0.5,
			StartRow: 1,
		},
		Projectile: ProjectileConfig{
			RowSpeed:    -1,
			ColumnSpeed: 0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			StartYear:    1957,
			TicksPerYear: 15,
			WeaponsYear:  2020,
			SpawnDelays: []SpawnDelay{
				{From: 1961, Ticks: 20},
				{From: 1969, Ticks: 14},
				{From: 1981, Ticks: 10},
				{From: 1995, Ticks: 8},
				{From: 2010, Ticks: 6},
				{From: 2020, Ticks: 2},
			},
			Phrases: map[int]string{
				1957: "First Sputnik",
				1961: "Gagarin flew!",
				1969: "Armstrong got on the moon!",
				1971: "First orbital space station Salute-1",
				1981: "Flight of the Shuttle Columbia",
				1998: "ISS start building",
				2011: "Messenger launch to Mercury",
				2020: "Take the plasma gun! Shoot the garbage!",
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultGarbageYAML
}
