package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Side tells which half of a pair an obstacle is.
type Side int

const (
	SideTop Side = iota
	SideBottom
)

// Obstacle is one half of a spawned pair. Halves are tracked, scored and
// culled independently.
type Obstacle struct {
	ID        uint64
	Side      Side
	X, Y      float64 // Top-left corner
	Width     float64
	Height    float64
	VelocityX float64
	Variant   int // Cosmetic only
	Scored    bool
	Visible   bool
}

// Right returns the x-coordinate of the right edge.
func (o *Obstacle) Right() float64 {
	return o.X + o.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (o *Obstacle) Bottom() float64 {
	return o.Y + o.Height
}

// Bounds returns the collision box.
func (o *Obstacle) Bounds() core.RectF {
	return core.NewRectF(o.X, o.Y, o.Width, o.Height)
}

// Field is the unordered set of live obstacles.
type Field struct {
	obstacles []*Obstacle
}

// NewField creates an empty field.
func NewField() *Field {
	return &Field{obstacles: make([]*Obstacle, 0, 8)}
}

// Add inserts obstacles into the field.
func (f *Field) Add(obs ...*Obstacle) {
	f.obstacles = append(f.obstacles, obs...)
}

// Len returns the number of live obstacles.
func (f *Field) Len() int {
	return len(f.obstacles)
}

// All returns the live obstacles. The slice must not be retained across
// a Cull or Clear.
func (f *Field) All() []*Obstacle {
	return f.obstacles
}

// Cull removes every obstacle for which drop returns true and reports how
// many were removed. The predicate sees each obstacle exactly once and
// the backing slice is compacted only after the pass.
func (f *Field) Cull(drop func(*Obstacle) bool) int {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if !drop(o) {
			kept = append(kept, o)
		}
	}
	removed := len(f.obstacles) - len(kept)
	// Release the tail so culled obstacles can be collected
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept
	return removed
}

// Clear removes all obstacles.
func (f *Field) Clear() {
	f.Cull(func(*Obstacle) bool { return true })
}

// SetVisible shows or hides every obstacle currently in the field.
func (f *Field) SetVisible(visible bool) {
	for _, o := range f.obstacles {
		o.Visible = visible
	}
}
