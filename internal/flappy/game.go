package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Sounds receives gameplay cues. Implementations must not block.
type Sounds interface {
	PlayFlap()
	PlayScore()
	PlayCrash()
}

// Game is the scene: it turns platform input into controller events,
// detects collisions and draws the result.
type Game struct {
	cfg       config.FlappyConfig
	rc        core.RuntimeConfig
	ctrl      *Controller
	sounds    Sounds
	paused    bool
	tickCount int
	animClock time.Duration
}

// New creates a game with the given configuration.
func New(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// SetSounds attaches a sound sink. nil disables sound.
func (g *Game) SetSounds(s Sounds) {
	g.sounds = s
}

// Reset builds a fresh scene for the given screen and seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.rc = rc
	g.ctrl = NewController(g.cfg, rand.New(rand.NewSource(rc.Seed)), rc.ScreenW, rc.ScreenH)
	g.paused = false
	g.tickCount = 0
	g.animClock = 0
}

// Resize changes the screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.rc.ScreenW = w
	g.rc.ScreenH = h
	if g.ctrl != nil {
		g.ctrl.Resize(w, h)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ctrl.Run().Phase() == PhaseGameOver {
		if g.restartRequested(in) {
			g.apply(RestartRequested{})
			g.paused = false
		}
	} else if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := time.Second / time.Duration(g.rc.TickRate)
	g.tickCount++
	g.animClock += dt

	if in.Has(core.ActionJump) {
		g.apply(Flap{})
	}
	g.apply(Tick{DT: dt})

	if g.ctrl.Run().Phase() == PhasePlaying && g.ctrl.Colliding() {
		g.apply(CollisionDetected{})
	}

	return core.StepResult{State: g.State()}
}

// restartRequested reports whether the frame asks for a restart, either by
// key or by clicking the overlay's restart button.
func (g *Game) restartRequested(in core.InputFrame) bool {
	if in.Has(core.ActionRestart) {
		return true
	}
	if x, y, ok := in.Pointer(); ok {
		return g.ctrl.Overlay().HitRestart(x, y)
	}
	return false
}

// apply forwards an event to the controller and plays matching cues.
func (g *Game) apply(ev Event) Outcome {
	out := g.ctrl.Apply(ev)
	if g.sounds == nil {
		return out
	}
	if out.Flapped {
		g.sounds.PlayFlap()
	}
	if out.Scored > 0 {
		g.sounds.PlayScore()
	}
	if out.Crashed {
		g.sounds.PlayCrash()
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	run := g.ctrl.Run()
	return core.GameState{
		Score:    run.Score,
		GameOver: run.Phase() == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Controller exposes the underlying state machine.
func (g *Game) Controller() *Controller {
	return g.ctrl
}
