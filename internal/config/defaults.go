package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded YAML and is used when that cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:      52,
			FlapVelocity: -14,
			Bounce:       1.0,
			ScrollSpeed:  16,
		},
		Obstacles: FlappyObstacles{
			Width:           5,
			Height:          16,
			Gap:             8,
			MinMargin:       4,
			SpawnIntervalMS: 1500,
			Variants:        3,
		},
		Player: FlappyPlayer{
			X:       8,
			Width:   3,
			Height:  2,
			AnimFPS: 10,
		},
		Background: FlappyBackground{
			Step: 0.16,
		},
	}
}
