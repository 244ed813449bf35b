// Package config provides YAML-based game configuration loading and
// difficulty management for the session.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// GarbageConfig contains all configuration for a session.
type GarbageConfig struct {
	TickIntervalMS int              `yaml:"tick_interval_ms"`
	Field          FieldConfig      `yaml:"field"`
	Blink          BlinkConfig      `yaml:"blink"`
	Craft          CraftConfig      `yaml:"craft"`
	Hazard         HazardConfig     `yaml:"hazard"`
	Projectile     ProjectileConfig `yaml:"projectile"`
	Difficulty     DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the star field.
type FieldConfig struct {
	Stars       int    `yaml:"stars"`
	StarSymbols string `yaml:"star_symbols"`
}

// BlinkConfig defines the star blink cycle.
type BlinkConfig struct {
	Phases    []BlinkPhase `yaml:"phases"`
	MaxOffset int          `yaml:"max_offset"` // Random initial delay in ticks
}

// BlinkPhase is one step of the blink cycle.
type BlinkPhase struct {
	Style string `yaml:"style"` // dim, normal or bold
	Ticks int    `yaml:"ticks"`
}

// CraftConfig defines the player's craft.
type CraftConfig struct {
	SpeedLimit   float64 `yaml:"speed_limit"`
	Acceleration float64 `yaml:"acceleration"`
	RowOffset    float64 `yaml:"row_offset"`    // Cells per unit of row speed
	ColumnOffset float64 `yaml:"column_offset"` // Cells per unit of column speed
	Animation    []int   `yaml:"animation"`     // Craft frame indices, one per tick
}

// HazardConfig defines falling garbage.
type HazardConfig struct {
	Speed    float64 `yaml:"speed"`
	StartRow float64 `yaml:"start_row"`
}

// ProjectileConfig defines shots fired by the craft.
type ProjectileConfig struct {
	RowSpeed    float64 `yaml:"row_speed"`
	ColumnSpeed float64 `yaml:"column_speed"`
}

// DifficultyConfig defines the year clock and what it unlocks.
type DifficultyConfig struct {
	Enabled      bool           `yaml:"enabled"`
	StartYear    int            `yaml:"start_year"`
	TicksPerYear int            `yaml:"ticks_per_year"`
	WeaponsYear  int            `yaml:"weapons_year"`
	SpawnDelays  []SpawnDelay   `yaml:"spawn_delays"`
	Phrases      map[int]string `yaml:"phrases"`
}

// SpawnDelay sets the ticks between hazards from a given year on.
type SpawnDelay struct {
	From  int `yaml:"from"`
	Ticks int `yaml:"ticks"`
}

// BlinkStyles converts the configured phases to core styles.
func (c BlinkConfig) BlinkStyles() ([]core.Style, error) {
	styles := make([]core.Style, len(c.Phases))
	for i, p := range c.Phases {
		s, ok := core.ParseStyle(p.Style)
		if !ok {
			return nil, fmt.Errorf("%w: blink phase %d: unknown style %q", ErrInvalid, i, p.Style)
		}
		styles[i] = s
	}
	return styles, nil
}

// Validate checks the configuration for values the session cannot run with.
func (c GarbageConfig) Validate() error {
	if c.TickIntervalMS <= 0 {
		return fmt.Errorf("%w: tick_interval_ms must be positive", ErrInvalid)
	}
	if c.Field.Stars < 0 {
		return fmt.Errorf("%w: field.stars must not be negative", ErrInvalid)
	}
	if c.Field.Stars > 0 && c.Field.StarSymbols == "" {
		return fmt.Errorf("%w: field.star_symbols is empty", ErrInvalid)
	}
	if len(c.Blink.Phases) == 0 {
		return fmt.Errorf("%w: blink.phases is empty", ErrInvalid)
	}
	for i, p := range c.Blink.Phases {
		if p.Ticks <= 0 {
			return fmt.Errorf("%w: blink phase %d must last at least one tick", ErrInvalid, i)
		}
	}
	if _, err := c.Blink.BlinkStyles(); err != nil {
		return err
	}
	if c.Blink.MaxOffset < 0 {
		return fmt.Errorf("%w: blink.max_offset must not be negative", ErrInvalid)
	}
	if c.Craft.SpeedLimit <= 0 || c.Craft.Acceleration <= 0 {
		return fmt.Errorf("%w: craft speed_limit and acceleration must be positive", ErrInvalid)
	}
	for _, idx := range c.Craft.Animation {
		if idx < 0 {
			return fmt.Errorf("%w: craft.animation has negative frame %d", ErrInvalid, idx)
		}
	}
	if c.Hazard.Speed <= 0 {
		return fmt.Errorf("%w: hazard.speed must be positive", ErrInvalid)
	}
	if c.Projectile.RowSpeed == 0 && c.Projectile.ColumnSpeed == 0 {
		return fmt.Errorf("%w: projectile never moves", ErrInvalid)
	}
	return c.Difficulty.Validate()
}

// Validate checks the year clock and the spawn table. Delays must strictly
// decrease as the year increases.
func (d DifficultyConfig) Validate() error {
	if d.TicksPerYear < 0 {
		return fmt.Errorf("%w: difficulty.ticks_per_year must not be negative", ErrInvalid)
	}
	if d.Enabled && d.TicksPerYear == 0 {
		return fmt.Errorf("%w: difficulty.ticks_per_year is required when progression is enabled", ErrInvalid)
	}
	for i, sd := range d.SpawnDelays {
		if sd.Ticks <= 0 {
			return fmt.Errorf("%w: spawn delay from %d must be positive", ErrInvalid, sd.From)
		}
		if i == 0 {
			continue
		}
		prev := d.SpawnDelays[i-1]
		if sd.From <= prev.From {
			return fmt.Errorf("%w: spawn delays must be ordered by year (%d after %d)", ErrInvalid, sd.From, prev.From)
		}
		if sd.Ticks >= prev.Ticks {
			return fmt.Errorf("%w: spawn delay for %d (%d ticks) must be shorter than for %d (%d ticks)",
				ErrInvalid, sd.From, sd.Ticks, prev.From, prev.Ticks)
		}
	}
	return nil
}
