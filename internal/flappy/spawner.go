package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Spawner creates vertically gapped obstacle pairs at the right edge.
type Spawner struct {
	rng       Rand
	gap       int
	minMargin int
	width     float64
	height    float64
	speed     float64
	variants  int
	nextID    uint64
}

// NewSpawner creates a spawner from the obstacle and physics settings.
func NewSpawner(rng Rand, cfg *config.FlappyConfig) *Spawner {
	return &Spawner{
		rng:       rng,
		gap:       cfg.Obstacles.Gap,
		minMargin: cfg.Obstacles.MinMargin,
		width:     float64(cfg.Obstacles.Width),
		height:    float64(cfg.Obstacles.Height),
		speed:     cfg.Physics.ScrollSpeed,
		variants:  cfg.Obstacles.Variants,
	}
}

// Spawn creates a pair at x = viewportW, adds both halves to the field
// and returns them. The top half's bottom edge sits on gapTop and the
// bottom half's top edge on gapTop + gap, where gapTop is drawn from
// [minMargin, viewportH-gap]. Each half is at least the configured height
// and stretches to reach its screen edge.
func (s *Spawner) Spawn(field *Field, viewportW, viewportH int) (top, bottom *Obstacle) {
	variant := 0
	if s.variants > 1 {
		variant = s.rng.Intn(s.variants)
	}
	gapTop := s.between(s.minMargin, viewportH-s.gap)

	x := float64(viewportW)
	topH := math.Max(s.height, float64(gapTop))
	bottomY := float64(gapTop + s.gap)
	bottomH := math.Max(s.height, float64(viewportH)-bottomY)

	top = s.newObstacle(SideTop, x, float64(gapTop)-topH, topH, variant)
	bottom = s.newObstacle(SideBottom, x, bottomY, bottomH, variant)

	field.Add(top, bottom)
	return top, bottom
}

// between returns a uniform integer in [lo, hi]. On screens too short for
// the gap the range collapses to lo.
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Spawner) newObstacle(side Side, x, y, height float64, variant int) *Obstacle {
	s.nextID++
	return &Obstacle{
		ID:        s.nextID,
		Side:      side,
		X:         x,
		Y:         y,
		Width:     s.width,
		Height:    height,
		VelocityX: -s.speed,
		Variant:   variant,
		Visible:   true,
	}
}
