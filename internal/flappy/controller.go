package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Event is an input to the controller's state machine.
type Event interface {
	event()
}

// Tick advances the world by DT.
type Tick struct {
	DT time.Duration
}

// Flap applies the upward impulse to the player.
type Flap struct{}

// CollisionDetected reports that the player overlaps an obstacle.
type CollisionDetected struct{}

// RestartRequested asks for a fresh run after game over.
type RestartRequested struct{}

func (Tick) event()              {}
func (Flap) event()              {}
func (CollisionDetected) event() {}
func (RestartRequested) event()  {}

// Outcome describes what an event changed.
type Outcome struct {
	Scored    int  // Points awarded
	Spawned   int  // Pairs spawned
	Culled    int  // Obstacles removed
	Flapped   bool
	Crashed   bool // Transitioned to game over
	Restarted bool
}

// Controller owns a run and everything it acts on. All game rules are
// applied through Apply, one event at a time.
type Controller struct {
	cfg        config.FlappyConfig
	run        Run
	field      *Field
	spawner    *Spawner
	overlay    *Overlay
	player     Body
	background Background
	viewportW  int
	viewportH  int
	nextSpawn  time.Duration
}

// NewController creates a controller for a viewport of the given size.
func NewController(cfg config.FlappyConfig, rng Rand, viewportW, viewportH int) *Controller {
	c := &Controller{
		cfg:       cfg,
		field:     NewField(),
		overlay:   NewOverlay(viewportW, viewportH),
		viewportW: viewportW,
		viewportH: viewportH,
	}
	c.spawner = NewSpawner(rng, &c.cfg)
	c.start()
	return c
}

// start puts the controller into a fresh Playing state.
func (c *Controller) start() {
	c.run = NewRun()
	c.field.Clear()
	c.overlay.Hide()
	c.background = NewBackground(c.cfg.Background.Step, backgroundWidth)
	c.nextSpawn = c.cfg.Obstacles.SpawnInterval()
	c.player = Body{
		X:       float64(c.cfg.Player.X),
		Y:       float64(c.viewportH-c.cfg.Player.Height) / 2,
		Width:   float64(c.cfg.Player.Width),
		Height:  float64(c.cfg.Player.Height),
		Visible: true,
	}
}

// Apply runs one event through the state machine.
func (c *Controller) Apply(ev Event) Outcome {
	switch ev := ev.(type) {
	case Tick:
		return c.tick(ev.DT)
	case Flap:
		if c.run.Over {
			return Outcome{}
		}
		c.player.VY = c.cfg.Physics.FlapVelocity
		return Outcome{Flapped: true}
	case CollisionDetected:
		return c.gameOver()
	case RestartRequested:
		if !c.run.Over {
			return Outcome{}
		}
		c.start()
		return Outcome{Restarted: true}
	}
	return Outcome{}
}

// tick moves bodies, fires the spawn timer and runs the sweeps.
// Scoring runs before culling so a fast obstacle cannot leave unscored.
func (c *Controller) tick(dt time.Duration) Outcome {
	if c.run.Over && !c.cfg.Gameplay.RunDuringGameOver {
		return Outcome{}
	}

	var out Outcome
	secs := dt.Seconds()

	c.player.Integrate(secs, c.cfg.Physics.Gravity, c.cfg.Physics.Bounce, float64(c.viewportH))
	for _, o := range c.field.All() {
		o.X += o.VelocityX * secs
	}

	c.run.Elapsed += dt
	// A non-positive interval would never advance the timer
	interval := c.cfg.Obstacles.SpawnInterval()
	for interval > 0 && c.run.Elapsed >= c.nextSpawn {
		top, bottom := c.spawner.Spawn(c.field, c.viewportW, c.viewportH)
		if c.run.Over {
			top.Visible = false
			bottom.Visible = false
		}
		c.nextSpawn += interval
		out.Spawned++
	}

	c.background.Advance()
	out.Scored = ScoreSweep(&c.run, c.field, c.player.X)
	out.Culled = CullSweep(c.field)
	return out
}

// gameOver hides the player and every obstacle and reveals the overlay.
// Obstacles stay in the field.
func (c *Controller) gameOver() Outcome {
	if c.run.Over {
		return Outcome{}
	}
	c.run.Over = true
	c.player.Visible = false
	c.field.SetVisible(false)
	c.overlay.Show(c.run.Score)
	return Outcome{Crashed: true}
}

// Resize changes the viewport. Obstacles already spawned keep their place.
func (c *Controller) Resize(viewportW, viewportH int) {
	c.viewportW = viewportW
	c.viewportH = viewportH
	c.overlay.Layout(viewportW, viewportH)
}

// Run returns a copy of the current run.
func (c *Controller) Run() Run {
	return c.run
}

// Field returns the live obstacles.
func (c *Controller) Field() *Field {
	return c.field
}

// Overlay returns the game-over overlay.
func (c *Controller) Overlay() *Overlay {
	return c.overlay
}

// Player returns the player body.
func (c *Controller) Player() *Body {
	return &c.player
}

// Background returns the parallax layer.
func (c *Controller) Background() Background {
	return c.background
}

// Colliding reports whether the player currently overlaps any obstacle.
func (c *Controller) Colliding() bool {
	return FirstOverlap(&c.player, c.field) != nil
}
