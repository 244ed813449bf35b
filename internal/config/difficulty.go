package config

import "sort"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Empty or unknown values
// mean "use the config as is".
func ParsePreset(name string) DifficultyPreset {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// StartYearForPreset returns the first year of a session for a preset.
// Later years spawn garbage faster.
func StartYearForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyNormal:
		return 1969
	case DifficultyHard:
		return 1995
	default:
		return 1957
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// The fixed preset freezes the clock at the configured start year.
func ApplyPreset(cfg *GarbageConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartYear = StartYearForPreset(preset)
	}
}

// DifficultyManager answers year-dependent questions for the session tasks.
type DifficultyManager struct {
	cfg         DifficultyConfig
	phraseYears []int
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	years := make([]int, 0, len(cfg.Phrases))
	for y := range cfg.Phrases {
		years = append(years, y)
	}
	sort.Ints(years)

	delays := make([]SpawnDelay, len(cfg.SpawnDelays))
	copy(delays, cfg.SpawnDelays)
	sort.Slice(delays, func(i, j int) bool { return delays[i].From < delays[j].From })
	cfg.SpawnDelays = delays

	return &DifficultyManager{
		cfg:         cfg,
		phraseYears: years,
	}
}

// IsEnabled returns whether the year advances.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.TicksPerYear > 0
}

// StartYear returns the first year of a session.
func (d *DifficultyManager) StartYear() int {
	return d.cfg.StartYear
}

// TicksPerYear returns how many ticks one year lasts.
func (d *DifficultyManager) TicksPerYear() int {
	return d.cfg.TicksPerYear
}

// SpawnDelay returns the ticks between two hazards in the given year.
// ok is false before the first entry of the table: nothing spawns yet.
func (d *DifficultyManager) SpawnDelay(year int) (ticks int, ok bool) {
	for _, sd := range d.cfg.SpawnDelays {
		if sd.From > year {
			break
		}
		ticks, ok = sd.Ticks, true
	}
	return ticks, ok
}

// WeaponsUnlocked reports whether the craft can fire in the given year.
func (d *DifficultyManager) WeaponsUnlocked(year int) bool {
	return year >= d.cfg.WeaponsYear
}

// Phrase returns the most recent milestone at or before year, or "".
func (d *DifficultyManager) Phrase(year int) string {
	phrase := ""
	for _, y := range d.phraseYears {
		if y > year {
			break
		}
		phrase = d.cfg.Phrases[y]
	}
	return phrase
}
