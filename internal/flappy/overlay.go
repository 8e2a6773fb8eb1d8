package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Overlay layout in cells
const (
	overlayWidth  = 30
	overlayHeight = 12
	buttonWidth   = 13
	buttonHeight  = 3
)

// Overlay is the game-over panel. It is built once per scene; only its
// visibility and score line change.
type Overlay struct {
	visible bool
	score   int
	panel   core.Rect
	button  core.Rect
}

// NewOverlay creates a hidden overlay laid out for the given screen.
func NewOverlay(screenW, screenH int) *Overlay {
	o := &Overlay{}
	o.Layout(screenW, screenH)
	return o
}

// Layout centers the panel on a screen of the given size.
func (o *Overlay) Layout(screenW, screenH int) {
	x := (screenW - overlayWidth) / 2
	y := (screenH - overlayHeight) / 2
	o.panel = core.NewRect(x, y, overlayWidth, overlayHeight)
	o.button = core.NewRect(x+(overlayWidth-buttonWidth)/2, y+6, buttonWidth, buttonHeight)
}

// Show reveals the overlay with the final score.
func (o *Overlay) Show(score int) {
	o.score = score
	o.visible = true
}

// Hide conceals the overlay.
func (o *Overlay) Hide() {
	o.visible = false
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool {
	return o.visible
}

// Score returns the score shown on the panel.
func (o *Overlay) Score() int {
	return o.score
}

// Panel returns the panel rectangle.
func (o *Overlay) Panel() core.Rect {
	return o.panel
}

// Button returns the restart button rectangle.
func (o *Overlay) Button() core.Rect {
	return o.button
}

// HitRestart reports whether a click at (x, y) lands on the restart
// button of a visible overlay.
func (o *Overlay) HitRestart(x, y int) bool {
	return o.visible && o.button.Contains(x, y)
}
