package flappy

import "testing"

func obstacleWithRight(right float64) *Obstacle {
	return &Obstacle{X: right - 64, Width: 64, Height: 400, Visible: true}
}

func TestCullSweepBoundary(t *testing.T) {
	field := NewField()
	gone := obstacleWithRight(-1)
	kept := obstacleWithRight(0)
	field.Add(gone, kept)

	if removed := CullSweep(field); removed != 1 {
		t.Fatalf("CullSweep removed %d, expected 1", removed)
	}
	if field.Len() != 1 || field.All()[0] != kept {
		t.Errorf("obstacle with right edge 0 should be retained")
	}
}

func TestCullIsPermanent(t *testing.T) {
	field := NewField()
	o := obstacleWithRight(10)
	o.VelocityX = -200
	field.Add(o)

	seen := false
	for i := 0; i < 30; i++ {
		for _, live := range field.All() {
			live.X += live.VelocityX * frame.Seconds()
		}
		CullSweep(field)

		present := field.Len() == 1
		if seen && present {
			t.Fatalf("frame %d: culled obstacle reappeared", i)
		}
		if !present {
			seen = true
		}
	}
	if !seen {
		t.Fatal("obstacle was never culled")
	}
}

func TestCullKeepsOthersInOrder(t *testing.T) {
	field := NewField()
	a, b, c, d := obstacleWithRight(5), obstacleWithRight(-3), obstacleWithRight(7), obstacleWithRight(-9)
	field.Add(a, b, c, d)

	CullSweep(field)

	all := field.All()
	if len(all) != 2 || all[0] != a || all[1] != c {
		t.Errorf("unexpected survivors: %v", all)
	}
}

func TestScoreSweepPairCrossing(t *testing.T) {
	run := NewRun()
	field := NewField()
	top, bottom := obstacleWithRight(99), obstacleWithRight(99)
	field.Add(top, bottom)

	if got := ScoreSweep(&run, field, 100); got != 2 {
		t.Fatalf("ScoreSweep awarded %d, expected 2", got)
	}
	if run.Score != 2 {
		t.Errorf("score = %d, expected 2", run.Score)
	}
	if !top.Scored || !bottom.Scored {
		t.Error("both halves should be marked scored")
	}

	// Idempotent with no movement
	if got := ScoreSweep(&run, field, 100); got != 0 {
		t.Errorf("second sweep awarded %d, expected 0", got)
	}

	// Still no increment once further past
	top.X -= 50
	bottom.X -= 50
	ScoreSweep(&run, field, 100)
	if run.Score != 2 {
		t.Errorf("score = %d after moving further, expected 2", run.Score)
	}
}

func TestScoreSweepStrictEdge(t *testing.T) {
	run := NewRun()
	field := NewField()
	field.Add(obstacleWithRight(100))

	if got := ScoreSweep(&run, field, 100); got != 0 {
		t.Errorf("right edge equal to player x should not score, got %d", got)
	}
}

func TestBackgroundAdvance(t *testing.T) {
	bg := NewBackground(2, backgroundWidth)
	bg.Advance()
	bg.Advance()
	if bg.Offset != 4 {
		t.Errorf("offset = %v, expected 4", bg.Offset)
	}
}

func TestBackgroundWraps(t *testing.T) {
	bg := NewBackground(3, 10)
	for i := 0; i < 4; i++ {
		bg.Advance()
	}
	if bg.Offset != 2 {
		t.Errorf("offset = %v, expected 12 mod 10 = 2", bg.Offset)
	}

	long := NewBackground(0.16, backgroundWidth)
	for i := 0; i < 100000; i++ {
		long.Advance()
		if long.Offset < 0 || long.Offset >= backgroundWidth {
			t.Fatalf("frame %d: offset %v outside [0, %d)", i, long.Offset, backgroundWidth)
		}
	}
}

func TestBackgroundRowsMatchWidth(t *testing.T) {
	for i, row := range backgroundRows {
		if n := len([]rune(row)); n != backgroundWidth {
			t.Errorf("row %d is %d cells wide, expected %d", i, n, backgroundWidth)
		}
	}
}
