package flappy

import "math"

// Background is the cosmetic parallax layer. Offset stays within
// [0, width) when width is positive.
type Background struct {
	Offset float64
	step   float64
	width  float64
}

// Advance moves the layer by one frame.
func (b *Background) Advance() {
	b.Offset += b.step
	if b.width > 0 {
		b.Offset = math.Mod(b.Offset, b.width)
	}
}

// CullSweep removes every obstacle whose right edge is left of the
// viewport (strictly below zero) and returns how many were removed.
func CullSweep(field *Field) int {
	return field.Cull(func(o *Obstacle) bool {
		return o.Right() < 0
	})
}

// ScoreSweep awards one point for every unscored obstacle whose right edge
// has passed left of playerX. Each half of a pair counts on its own.
// Returns the number of points awarded.
func ScoreSweep(run *Run, field *Field, playerX float64) int {
	awarded := 0
	for _, o := range field.All() {
		if o.Scored || o.Right() >= playerX {
			continue
		}
		o.Scored = true
		run.Score++
		awarded++
	}
	return awarded
}

// NewBackground creates a parallax layer advancing step cells per frame
// over a pattern width cells wide.
func NewBackground(step float64, width int) Background {
	return Background{step: step, width: float64(width)}
}
