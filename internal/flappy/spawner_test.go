package flappy

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestSpawnGapScenario(t *testing.T) {
	cfg := pixelConfig()
	// variant 1, then gapTop = 100 + 200
	rng := &seqRand{values: []int{1, 200}}
	s := NewSpawner(rng, &cfg)
	field := NewField()

	top, bottom := s.Spawn(field, 800, 600)

	if top.Bottom() != 300 {
		t.Errorf("top obstacle bottom edge = %v, expected 300", top.Bottom())
	}
	if bottom.Y != 500 {
		t.Errorf("bottom obstacle top edge = %v, expected 500", bottom.Y)
	}
	if rng.bounds[0] != 3 || rng.bounds[1] != 301 {
		t.Errorf("random bounds = %v, expected [3 301]", rng.bounds)
	}
	if field.Len() != 2 {
		t.Errorf("field has %d obstacles, expected 2", field.Len())
	}
}

func TestSpawnPairProperties(t *testing.T) {
	cfg := pixelConfig()
	s := NewSpawner(rand.New(rand.NewSource(7)), &cfg)
	field := NewField()

	for i := 0; i < 500; i++ {
		top, bottom := s.Spawn(field, 800, 600)

		if gap := bottom.Y - top.Bottom(); gap != float64(cfg.Obstacles.Gap) {
			t.Fatalf("spawn %d: gap = %v, expected %d", i, gap, cfg.Obstacles.Gap)
		}
		if top.Bottom() < float64(cfg.Obstacles.MinMargin) || top.Bottom() > 600-float64(cfg.Obstacles.Gap) {
			t.Fatalf("spawn %d: gap top %v outside [100, 400]", i, top.Bottom())
		}
		if top.X != 800 || bottom.X != 800 {
			t.Fatalf("spawn %d: pair should start at the right edge, got %v/%v", i, top.X, bottom.X)
		}
		if top.VelocityX != -200 || bottom.VelocityX != -200 {
			t.Fatalf("spawn %d: velocity should be -200", i)
		}
		if top.Variant != bottom.Variant || top.Variant < 0 || top.Variant >= cfg.Obstacles.Variants {
			t.Fatalf("spawn %d: bad variants %d/%d", i, top.Variant, bottom.Variant)
		}
		if top.Scored || bottom.Scored || !top.Visible || !bottom.Visible {
			t.Fatalf("spawn %d: new obstacles must be visible and unscored", i)
		}
		if top.Side != SideTop || bottom.Side != SideBottom {
			t.Fatalf("spawn %d: wrong sides", i)
		}
		if top.ID == bottom.ID {
			t.Fatalf("spawn %d: halves share ID %d", i, top.ID)
		}
	}
}

func TestSpawnReachesScreenEdges(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	// gapTop = margin 4 + 40 on a 60 row screen, well past the 16 row height
	rng := &seqRand{values: []int{0, 40}}
	s := NewSpawner(rng, &cfg)

	top, bottom := s.Spawn(NewField(), 120, 60)

	if top.Y > 0 {
		t.Errorf("top half starts at y=%v, expected it to reach the top edge", top.Y)
	}
	if bottom.Bottom() < 60 {
		t.Errorf("bottom half ends at y=%v, expected it to reach the bottom edge", bottom.Bottom())
	}
	if gap := bottom.Y - top.Bottom(); gap != float64(cfg.Obstacles.Gap) {
		t.Errorf("gap = %v, expected %d", gap, cfg.Obstacles.Gap)
	}
	if top.Height < float64(cfg.Obstacles.Height) || bottom.Height < float64(cfg.Obstacles.Height) {
		t.Errorf("halves shorter than configured: %v/%v", top.Height, bottom.Height)
	}
}

func TestSpawnShortViewport(t *testing.T) {
	cfg := pixelConfig()
	rng := &seqRand{values: []int{0}}
	s := NewSpawner(rng, &cfg)

	// 250 - 200 is below the margin, so the gap pins to the margin
	top, _ := s.Spawn(NewField(), 800, 250)
	if top.Bottom() != 100 {
		t.Errorf("gap top = %v, expected margin 100", top.Bottom())
	}
	if len(rng.bounds) != 1 {
		t.Errorf("collapsed range should not draw a random number, bounds = %v", rng.bounds)
	}
}
