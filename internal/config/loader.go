package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlappy loads the game configuration.
// Search order: customPath -> ~/.flappy/configs/flappy.yaml -> ./configs/flappy.yaml -> embedded default
func LoadFlappy(customPath string) (FlappyConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return FlappyConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files in the fallback locations are skipped silently
	for _, path := range []string{userConfigPath("flappy.yaml"), filepath.Join("configs", "flappy.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := parse(defaultFlappyYAML)
	if err != nil {
		return DefaultFlappyConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults so partial files work.
func parse(data []byte) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FlappyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return FlappyConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy", "configs", filename)
}

// ApplyFlappyPreset adjusts the config for a difficulty preset. Constants
// are only changed before a run starts, never during one.
func ApplyFlappyPreset(cfg *FlappyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacles.Gap += 2
		cfg.Physics.ScrollSpeed *= 0.8
		cfg.Obstacles.SpawnIntervalMS = cfg.Obstacles.SpawnIntervalMS * 6 / 5
	case DifficultyHard:
		cfg.Obstacles.Gap -= 2
		if cfg.Obstacles.Gap < 4 { // Minimum playable gap
			cfg.Obstacles.Gap = 4
		}
		cfg.Physics.ScrollSpeed *= 1.25
		cfg.Obstacles.SpawnIntervalMS = cfg.Obstacles.SpawnIntervalMS * 17 / 20
		if cfg.Obstacles.SpawnIntervalMS < 1 {
			cfg.Obstacles.SpawnIntervalMS = 1
		}
	}
}
