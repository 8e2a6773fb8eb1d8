package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar  = '█'
	CapTopChar    = '▄'
	CapBottomChar = '▀'
	BodyChar      = '●'
	ButtonText    = "Restart"
)

// birdFrames are the fly animation frames, one string per body row.
var birdFrames = [3][2]string{
	{`\o>`, ` ‾ `},
	{`-o>`, ` ‾ `},
	{`/o>`, ` ‾ `},
}

// variantColors gives each obstacle variant its color.
var variantColors = []core.Color{
	core.ColorGreen,
	core.ColorBrightGreen,
	core.ColorCyan,
}

// backgroundWidth is the length of every backgroundRows entry.
const backgroundWidth = 41

// backgroundRows is the parallax pattern, repeated horizontally.
var backgroundRows = []string{
	"      .          *              .        ",
	"  .                    .                 ",
	"             .                      *    ",
}

// Render draws the current state into the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawBackground(dst)
	for _, o := range g.ctrl.Field().All() {
		if o.Visible {
			drawObstacle(dst, o)
		}
	}
	if p := g.ctrl.Player(); p.Visible {
		g.drawPlayer(dst, p)
	}

	// The overlay carries the final score, so the HUD goes with it
	if ov := g.ctrl.Overlay(); ov.Visible() {
		drawOverlay(dst, ov)
		return
	}
	dst.DrawTextColor(2, 1, fmt.Sprintf("Score: %d", g.ctrl.Run().Score), core.ColorBrightYellow)
	if g.paused {
		drawMessage(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) drawBackground(dst *core.Screen) {
	offset := int(g.ctrl.Background().Offset)
	h := dst.Height()
	for i, row := range backgroundRows {
		pattern := []rune(row)
		// Spread the pattern rows over the screen
		y := (i*2 + 1) * h / (len(backgroundRows)*2 + 1)
		for x := 0; x < dst.Width(); x++ {
			r := pattern[(x+offset)%backgroundWidth]
			if r != ' ' {
				dst.SetColor(x, y, r, core.ColorGray)
			}
		}
	}
}

func drawObstacle(dst *core.Screen, o *Obstacle) {
	color := variantColors[o.Variant%len(variantColors)]
	r := o.Bounds().Cells()
	dst.DrawRect(r, ObstacleChar, color)

	// Cap on the edge facing the gap
	capY, capChar := r.Bottom()-1, CapTopChar
	if o.Side == SideBottom {
		capY, capChar = r.Y, CapBottomChar
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColor(x, capY, capChar, color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, p *Body) {
	fps := g.cfg.Player.AnimFPS
	if fps <= 0 {
		fps = 10
	}
	frame := birdFrames[int(g.animClock.Seconds()*float64(fps))%len(birdFrames)]

	x := int(math.Floor(p.X))
	y := int(math.Floor(p.Y))
	for dy := 0; dy < int(p.Height); dy++ {
		row := []rune(frame[dy%len(frame)])
		for dx := 0; dx < int(p.Width); dx++ {
			r := BodyChar
			if dx < len(row) {
				r = row[dx]
			}
			dst.SetColor(x+dx, y+dy, r, core.ColorBrightYellow)
		}
	}
}

func drawOverlay(dst *core.Screen, ov *Overlay) {
	panel := ov.Panel()
	dst.DrawRect(panel, ' ', core.ColorDefault)
	dst.DrawBox(panel, core.ColorWhite)

	center := func(y int, text string, c core.Color) {
		dst.DrawTextColor(panel.X+(panel.W-len([]rune(text)))/2, y, text, c)
	}
	center(panel.Y+2, "GAME OVER", core.ColorBrightRed)
	center(panel.Y+4, fmt.Sprintf("Score: %d", ov.Score()), core.ColorWhite)

	btn := ov.Button()
	dst.DrawBox(btn, core.ColorOrange)
	cx, cy := btn.Center()
	dst.DrawTextColor(cx-len(ButtonText)/2, cy, ButtonText, core.ColorOrange)

	center(panel.Y+10, "R / click to restart", core.ColorGray)
}

// drawMessage draws a small centered message box.
func drawMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorWhite)
	dst.DrawTextCentered(box.Y+3, subtitle, core.ColorGray)
}
