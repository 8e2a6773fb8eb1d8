package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// seqRand replays fixed values and records the bounds it was asked for.
type seqRand struct {
	values []int
	bounds []int
}

func (r *seqRand) Intn(n int) int {
	r.bounds = append(r.bounds, n)
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

// pixelConfig mirrors the classic browser tuning: 200 unit gap, 200 units/s
// scrolling, a spawn every 1.5 seconds.
func pixelConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 1300
	cfg.Physics.FlapVelocity = -350
	cfg.Physics.ScrollSpeed = 200
	cfg.Obstacles.Width = 64
	cfg.Obstacles.Height = 400
	cfg.Obstacles.Gap = 200
	cfg.Obstacles.MinMargin = 100
	cfg.Obstacles.SpawnIntervalMS = 1500
	cfg.Player.X = 100
	cfg.Player.Width = 60
	cfg.Player.Height = 44
	cfg.Background.Step = 2
	return cfg
}

const frame = time.Second / 60
