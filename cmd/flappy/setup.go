package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/sound"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// loadGameConfig resolves --config and --difficulty into a game config.
func loadGameConfig() (config.FlappyConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return config.FlappyConfig{}, err
	}
	config.ApplyFlappyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.FlappyConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// gameFactory builds games from cfg. sounds may be nil.
func gameFactory(cfg config.FlappyConfig, sounds flappy.Sounds) tui.GameFactory {
	return func() tui.Game {
		g := flappy.New(cfg)
		if sounds != nil {
			g.SetSounds(sounds)
		}
		return g
	}
}

// terminalRuntime sizes the runtime config from the controlling terminal.
func terminalRuntime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed
	return rc
}

// openStore opens the score database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// startSound opens the speaker when enabled. A missing audio device only
// disables sound.
func startSound(enabled bool) *sound.Manager {
	if !enabled {
		return nil
	}
	m := sound.NewManager(0.6)
	if err := m.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return m
}
