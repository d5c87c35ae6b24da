package colorrush

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/color-rush/internal/core"
	"github.com/vovakirdan/color-rush/internal/sim"
)

// Visual characters for rendering
const (
	PlayerChar     = '●'
	TrailChar      = '·'
	RingChar       = '█'
	RingBelowChar  = '▓' // Ring material under the ground line
	GroundChar     = '─'
	GridChar       = '┼'
	BurstChar      = '✦'
	burstParticles = 8
)

// view maps world coordinates to screen cells for one frame.
type view struct {
	w, h      int
	groundRow int
	originZ   float64 // World Z drawn at the player column
	jx, jy    int     // Shake offset in cells
	colsPer   float64
	rowsPer   float64
	playerCol int
}

func (g *Game) newView(dst *core.Screen) view {
	cam := g.sim.Camera()
	r := g.cfg.Render
	return view{
		w:         dst.Width(),
		h:         dst.Height(),
		groundRow: dst.Height() - 4,
		originZ:   cam.Pos.Z - g.cfg.Camera.OffsetZ,
		jx:        int(math.Round(cam.Jitter.X * r.ColumnsPerUnit)),
		jy:        int(math.Round(cam.Jitter.Y * r.RowsPerUnit)),
		colsPer:   r.ColumnsPerUnit,
		rowsPer:   r.RowsPerUnit,
		playerCol: r.PlayerColumn,
	}
}

// col returns the screen column for world z. Further ahead is further right.
func (v view) col(z float64) int {
	return v.playerCol + int(math.Round((v.originZ-z)*v.colsPer)) + v.jx
}

func (v view) row(y float64) int {
	return v.groundRow - int(math.Round(y*v.rowsPer)) + v.jy
}

// worldY returns the world height drawn on screen row r.
func (v view) worldY(r int) float64 {
	return float64(v.groundRow+v.jy-r) / v.rowsPer
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.newView(dst)

	g.drawGround(dst, v)
	for i := 0; i < g.sim.NumObstacles(); i++ {
		g.drawRing(dst, v, g.sim.Obstacle(i))
	}
	for i := 0; i < g.sim.NumBursts(); i++ {
		g.drawBurst(dst, v, g.sim.Burst(i))
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	state := g.State()
	switch {
	case state.InMenu:
		g.drawTitle(dst)
	case state.GameOver:
		g.drawGameOver(dst)
	case state.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawGround draws the ground line with grid marks snapped to the grid spacing.
func (g *Game) drawGround(dst *core.Screen, v view) {
	y := v.groundRow + 1 + v.jy
	dst.DrawHLine(0, y, v.w, GroundChar, core.ColorDim)

	spacing := g.cfg.Render.GridSpacing
	// Rightmost visible Z, snapped down to a grid line
	farZ := v.originZ - float64(v.w-v.playerCol)/v.colsPer
	z := math.Floor(farZ/spacing) * spacing
	for ; ; z += spacing {
		x := v.col(z)
		if x < 0 {
			break
		}
		if x < v.w {
			dst.SetColored(x, y, GridChar, core.ColorGray)
		}
	}
}

// drawRing draws the ring material crossing the lane plane.
// In side view only the points straight above and below the lane are visible.
func (g *Game) drawRing(dst *core.Screen, v view, o sim.Obstacle) {
	oc := g.cfg.Obstacles
	width := max(1, int(math.Round(2*oc.BandHalfWidth*v.colsPer)))
	x0 := v.col(o.Z) - width/2
	if x0+width <= 0 || x0 >= v.w {
		return
	}

	for r := 0; r < v.h; r++ {
		y := v.worldY(r)
		ay := math.Abs(y)
		if ay <= oc.InnerRadius || ay >= oc.OuterRadius {
			continue
		}
		angle := math.Pi / 2
		if y < 0 {
			angle = 3 * math.Pi / 2
		}
		local := angle - o.Rotation
		if sim.InGap(local, oc.SegmentGap) {
			continue
		}
		color := o.SegmentColor(sim.SegmentAt(local)).Hex()
		ch := RingChar
		if r > v.groundRow+v.jy {
			ch = RingBelowChar
		}
		if o.Passed {
			color = fade(color, 0.5)
		}
		for dx := 0; dx < width; dx++ {
			dst.SetColored(x0+dx, r, ch, color)
		}
	}
}

// drawBurst draws a spinning, growing circle of sparks that fades out.
func (g *Game) drawBurst(dst *core.Screen, v view, b sim.Burst) {
	if !b.Active {
		return
	}
	color := fade(b.Color.Hex(), 1-b.Opacity)
	radius := g.cfg.Obstacles.InnerRadius * b.Scale
	for i := 0; i < burstParticles; i++ {
		a := b.Spin + float64(i)*core.TwoPi/burstParticles
		dz := math.Cos(a) * radius * 0.5
		y := math.Sin(a) * radius
		dst.SetColored(v.col(b.Z+dz), v.row(y), BurstChar, color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen, v view) {
	p := g.sim.Player()
	x, y := v.col(p.Pos.Z), v.row(p.Pos.Y)
	color := p.Color.Hex()

	// Stretched while moving fast vertically: leave a trail behind the motion
	if p.Scale.Y > 1.15 {
		trail := y + 1
		if p.VelocityY < 0 {
			trail = y - 1
		}
		dst.SetColored(x, trail, TrailChar, fade(color, 0.4))
	}
	dst.SetColored(x, y, PlayerChar, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	run := g.sim.Run()
	p := g.sim.Player()

	score := fmt.Sprintf(" Score: %d ", run.Score)
	scoreColor := core.ColorWhite
	if g.flash > 0 {
		scoreColor = p.Color.Hex()
	}
	dst.DrawTextColored(1, 0, score, scoreColor)

	x := 1 + len([]rune(score))
	best := fmt.Sprintf(" Best: %d  Speed: %.1f  Dist: %sm ", g.highScore, run.Speed, humanize.Comma(int64(run.Distance)))
	dst.DrawTextColored(x, 0, best, core.ColorGray)
	x += len([]rune(best))

	dst.DrawTextColored(x, 0, " Color: ", core.ColorGray)
	dst.DrawTextColored(x+8, 0, fmt.Sprintf("%c %s", PlayerChar, p.Color), p.Color.Hex())
}

func (g *Game) drawTitle(dst *core.Screen) {
	title := "C O L O R   R U S H"
	boxW := len(title) + 8
	boxH := 9
	boxX := (dst.Width() - boxW) / 2
	boxY := max(1, (dst.Height()-boxH)/2)

	dst.FillRect(boxX, boxY, boxW, boxH)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Letters cycle through the palette
	tx := boxX + (boxW-len(title))/2
	i := 0
	for j, r := range title {
		if r == ' ' {
			continue
		}
		dst.SetColored(tx+j, boxY+2, r, core.PaletteColor(i%core.PaletteSize).Hex())
		i++
	}

	p := g.sim.Player()
	lines := []string{
		fmt.Sprintf("Best: %d", g.highScore),
		"ENTER/SPACE start",
		"1-4/TAB color   S slow",
	}
	for k, line := range lines {
		dst.DrawText(boxX+(boxW-len(line))/2, boxY+4+k, line)
	}
	pick := fmt.Sprintf("%c %s", PlayerChar, p.Color)
	dst.DrawTextColored(boxX+(boxW-len([]rune(pick)))/2, boxY+boxH-2, pick, p.Color.Hex())
}

func (g *Game) drawGameOver(dst *core.Screen) {
	sub := fmt.Sprintf("Score: %d  |  R restart  B menu", g.last.Score)
	if g.last.NewBest {
		sub = fmt.Sprintf("NEW BEST %d!  |  R restart  B menu", g.last.Score)
	}
	drawCenteredMessage(dst, "GAME OVER", sub)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// fade blends c toward the scene background by amount (0 = unchanged, 1 = gone).
func fade(c core.Color, amount float64) core.Color {
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(core.Background))
	if err != nil {
		return c
	}
	return core.Color(fg.BlendRgb(bg, core.ClampF(amount, 0, 1)).Hex())
}
