package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// Game is what the platform drives: a fixed-step simulation that draws
// into a cell screen.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// GameFactory builds a fresh game. SSH sessions each get their own.
type GameFactory func() Game
