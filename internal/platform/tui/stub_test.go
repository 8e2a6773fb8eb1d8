package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// stubGame records what the platform feeds it.
type stubGame struct {
	state   core.GameState
	resets  int
	resized [2]int
	inputs  []core.InputFrame

	// overAfter ends the run with overScore once this many steps ran.
	overAfter int
	overScore int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *stubGame) Resize(w, h int) {
	g.resized = [2]int{w, h}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a := range in.Actions {
		frame.Set(a)
	}
	frame.PointerX, frame.PointerY = in.PointerX, in.PointerY
	g.inputs = append(g.inputs, frame)

	switch {
	case g.state.GameOver && in.Has(core.ActionRestart):
		g.state = core.GameState{}
	case !g.state.GameOver && in.Has(core.ActionPause):
		g.state.Paused = !g.state.Paused
	}
	if g.overAfter > 0 && len(g.inputs) == g.overAfter {
		g.state = core.GameState{Score: g.overScore, GameOver: true}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func (g *stubGame) lastInput() core.InputFrame {
	if len(g.inputs) == 0 {
		return core.NewInputFrame()
	}
	return g.inputs[len(g.inputs)-1]
}
