package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/sprite"
)

// loadGame resolves the config, the difficulty preset and the sprites from
// the global flags.
func loadGame() (config.GarbageConfig, *sprite.Library, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return cfg, nil, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}

	var lib *sprite.Library
	if flagFrames != "" {
		lib, err = sprite.Load(os.DirFS(flagFrames))
	} else {
		lib, err = sprite.Default()
	}
	if err != nil {
		return cfg, nil, err
	}
	return cfg, lib, nil
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level := log.InfoLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "garbage",
		Level:           level,
	})
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// playerName returns the local user name used on the leaderboard.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
