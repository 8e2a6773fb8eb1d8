package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Body is the player's arcade physics body. Only vertical motion is
// simulated; the world scrolls past it.
type Body struct {
	X, Y    float64 // Top-left corner
	VY      float64 // Vertical velocity, positive is down
	Width   float64
	Height  float64
	Visible bool
}

// Bounds returns the collision box.
func (b *Body) Bounds() core.RectF {
	return core.NewRectF(b.X, b.Y, b.Width, b.Height)
}

// Integrate advances the body by dt seconds under gravity and keeps it
// inside [0, floor]. Hitting an edge reflects the velocity scaled by
// bounce.
func (b *Body) Integrate(dt, gravity, bounce, floor float64) {
	b.VY += gravity * dt
	b.Y += b.VY * dt

	if b.Y < 0 {
		b.Y = 0
		if b.VY < 0 {
			b.VY = -b.VY * bounce
		}
	}
	if maxY := floor - b.Height; b.Y > maxY {
		b.Y = maxY
		if b.VY > 0 {
			b.VY = -b.VY * bounce
		}
	}
}

// FirstOverlap returns the first obstacle whose bounds overlap the body,
// or nil.
func FirstOverlap(b *Body, field *Field) *Obstacle {
	bounds := b.Bounds()
	for _, o := range field.All() {
		if bounds.Intersects(o.Bounds()) {
			return o
		}
	}
	return nil
}
