// Package config provides YAML-based configuration loading and difficulty
// presets for the game.
package config

import (
	"fmt"
	"time"
)

// FlappyConfig contains all tunables for a run. Values are in screen cells
// and seconds.
type FlappyConfig struct {
	Physics    FlappyPhysics    `yaml:"physics"`
	Obstacles  FlappyObstacles  `yaml:"obstacles"`
	Player     FlappyPlayer     `yaml:"player"`
	Background FlappyBackground `yaml:"background"`
	Gameplay   FlappyGameplay   `yaml:"gameplay"`
}

// FlappyPhysics defines the arcade physics parameters.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Downward acceleration, cells/s²
	FlapVelocity float64 `yaml:"flap_velocity"` // Vertical velocity set by a flap (negative = up)
	Bounce       float64 `yaml:"bounce"`        // Velocity kept when hitting a world edge
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // Obstacle speed, cells/s
}

// FlappyObstacles defines obstacle spawning parameters.
type FlappyObstacles struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	Gap             int `yaml:"gap"`        // Vertical clearance between a pair
	MinMargin       int `yaml:"min_margin"` // Lowest allowed top of the gap
	SpawnIntervalMS int `yaml:"spawn_interval_ms"`
	Variants        int `yaml:"variants"`
}

// SpawnInterval returns the spawn period as a duration.
func (o FlappyObstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// FlappyPlayer defines the player sprite.
type FlappyPlayer struct {
	X       int `yaml:"x"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	AnimFPS int `yaml:"anim_fps"`
}

// FlappyBackground defines the parallax layer.
type FlappyBackground struct {
	Step float64 `yaml:"step"` // Offset advance per frame
}

// FlappyGameplay holds rule switches.
type FlappyGameplay struct {
	// RunDuringGameOver keeps physics, spawning and sweeps going behind
	// the game-over overlay instead of freezing the field.
	RunDuringGameOver bool `yaml:"run_during_game_over"`
}

// Validate checks that the config describes a playable game.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("config: obstacles.width must be positive, got %d", c.Obstacles.Width)
	case c.Obstacles.Height <= 0:
		return fmt.Errorf("config: obstacles.height must be positive, got %d", c.Obstacles.Height)
	case c.Obstacles.Gap <= 0:
		return fmt.Errorf("config: obstacles.gap must be positive, got %d", c.Obstacles.Gap)
	case c.Obstacles.MinMargin < 0:
		return fmt.Errorf("config: obstacles.min_margin must not be negative, got %d", c.Obstacles.MinMargin)
	case c.Obstacles.SpawnIntervalMS <= 0:
		return fmt.Errorf("config: obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	case c.Obstacles.Variants <= 0:
		return fmt.Errorf("config: obstacles.variants must be positive, got %d", c.Obstacles.Variants)
	case c.Physics.ScrollSpeed <= 0:
		return fmt.Errorf("config: physics.scroll_speed must be positive, got %g", c.Physics.ScrollSpeed)
	case c.Physics.Bounce < 0 || c.Physics.Bounce > 1:
		return fmt.Errorf("config: physics.bounce must be within [0, 1], got %g", c.Physics.Bounce)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("config: player size must be positive, got %dx%d", c.Player.Width, c.Player.Height)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
