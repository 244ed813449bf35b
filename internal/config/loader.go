package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in config directories.
const ConfigFile = "garbage.yaml"

// Load loads the session configuration.
// Search order: customPath -> ~/.garbage/configs/garbage.yaml -> ./configs/garbage.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; other locations
// are skipped silently. The result is validated.
func Load(customPath string) (GarbageConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultGarbageYAML)
	if err != nil {
		cfg = DefaultConfig() // Fallback to hardcoded if embed fails
	}
	return cfg, cfg.Validate()
}

// Parse decodes YAML on top of the built-in defaults, so a file only needs
// the keys it changes.
func Parse(data []byte) (GarbageConfig, error) {
	cfg := DefaultConfig()
	// Lists and maps replace rather than merge.
	cfg.Blink.Phases = nil
	cfg.Craft.Animation = nil
	cfg.Difficulty.SpawnDelays = nil
	cfg.Difficulty.Phrases = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	def := DefaultConfig()
	if cfg.Blink.Phases == nil {
		cfg.Blink.Phases = def.Blink.Phases
	}
	if cfg.Craft.Animation == nil {
		cfg.Craft.Animation = def.Craft.Animation
	}
	if cfg.Difficulty.SpawnDelays == nil {
		cfg.Difficulty.SpawnDelays = def.Difficulty.SpawnDelays
	}
	if cfg.Difficulty.Phrases == nil {
		cfg.Difficulty.Phrases = def.Difficulty.Phrases
	}
	return cfg, nil
}

// loadFile reads and parses one config file.
func loadFile(path string) (GarbageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return GarbageConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".garbage", "configs", filename)
}
