package chase

import (
	"fmt"

	"github.com/tuigames/chaserun/internal/core"
)

const hudRows = 1

// Render draws the current state into the screen buffer, mapping the
// virtual world view onto terminal cells. Rendering never mutates the
// simulation.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= hudRows {
		return
	}

	g.drawTerrain(dst)
	g.drawPickup(dst)
	g.drawPursuer(dst)
	g.drawRunner(dst)
	g.drawHUD(dst)

	switch g.phase {
	case phaseTitle:
		g.drawOverlay(dst, "CHASE RUN", "enter to start  a/d move  space jump  f attack")
	case phaseOver:
		msg := fmt.Sprintf("you lasted %s", formatTime(g.score()))
		g.drawOverlay(dst, "CAUGHT", msg+"  r to retry")
	}
}

// toCell maps a world-space point to a screen cell.
func (g *Game) toCell(dst *core.Screen, worldX, y float64) (int, int) {
	cx := int((worldX - g.camera) / g.cfg.World.ViewW * float64(dst.Width()))
	fieldH := dst.Height() - hudRows
	cy := hudRows + int(y/g.cfg.World.ViewH*float64(fieldH))
	return cx, cy
}

// laneToCell maps a camera-relative point (runner, pursuer) to a cell.
func (g *Game) laneToCell(dst *core.Screen, x, y float64) (int, int) {
	return g.toCell(dst, g.camera+x, y)
}

func (g *Game) drawTerrain(dst *core.Screen) {
	for _, s := range g.world.segments {
		x0, y0 := g.toCell(dst, s.X, s.Y)
		x1, _ := g.toCell(dst, s.Right(), s.Y)
		if x1 <= x0 {
			x1 = x0 + 1
		}

		if s.Kind == SegmentGround {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y0, '═', core.ColorGreen)
				for y := y0 + 1; y < dst.Height(); y++ {
					dst.SetColored(x, y, '░', core.ColorGray)
				}
			}
		} else {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y0, '─', core.ColorCyan)
			}
		}
	}
}

func (g *Game) drawPickup(dst *core.Screen) {
	if !g.pickup.active {
		return
	}
	x, y := g.toCell(dst, g.pickup.x+g.pickup.size/2, g.pickup.y+g.pickup.size/2)
	dst.SetColored(x, y, '!', core.ColorYellow)
}

func (g *Game) drawRunner(dst *core.Screen) {
	r := &g.runner
	x, y := g.laneToCell(dst, r.x+r.w/2, r.y+r.h/2)
	head := y - 1
	if head <= hudRows {
		head = y
	}

	color := core.ColorWhite
	if r.hasWeapon {
		color = core.ColorYellow
	}
	dst.SetColored(x, head, '@', color)
	dst.SetColored(x, y, r.runeForPose(), color)

	if r.attackUntil > g.clock {
		g.drawAttack(dst, x, y)
	}
}

func (r *runner) runeForPose() rune {
	if !r.onGround {
		return '/'
	}
	return '|'
}

func (g *Game) drawAttack(dst *core.Screen, x, y int) {
	switch g.runner.attackDir {
	case dirLeft:
		dst.SetColored(x-1, y, '<', core.ColorRed)
	case dirRight:
		dst.SetColored(x+1, y, '>', core.ColorRed)
	case dirUp:
		dst.SetColored(x, y-1, '^', core.ColorRed)
	case dirDown:
		dst.SetColored(x, y+1, 'v', core.ColorRed)
	}
}

func (g *Game) drawPursuer(dst *core.Screen) {
	p := &g.pursuer
	if p.state == pursuerIdle {
		return
	}
	y := p.renderY(g.cfg.Pursuer.BobAmplitude)
	x, cy := g.laneToCell(dst, p.x+p.w/2, y+p.h/2)

	color := core.ColorMagenta
	if p.state == pursuerLunging {
		color = core.ColorRed
	}
	dst.SetColored(x-1, cy, '~', color)
	dst.SetColored(x, cy, '&', color)
	if cy-1 > hudRows {
		dst.SetColored(x, cy-1, '◠', color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s  best %s", formatTime(g.score()), formatTime(g.bestTime))
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf("repels %d", g.repels)
	if g.combo > 1 {
		right = fmt.Sprintf("combo x%d  %s", g.combo, right)
	}
	if g.runner.hasWeapon {
		remain := g.runner.weaponUntil - g.clock
		if remain < 0 {
			remain = 0
		}
		right = fmt.Sprintf("wpn %.1fs  %s", remain, right)
	}
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, core.ColorYellow)
}

func (g *Game) drawOverlay(dst *core.Screen, title, hint string) {
	w := core.Max(len(title), len(hint)) + 6
	if w > dst.Width() {
		w = dst.Width()
	}
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawBox(core.NewRect(x, y, w, h))
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, hint)
}

// formatTime renders centiseconds as m:ss.cc.
func formatTime(cs int) string {
	m := cs / 6000
	s := (cs / 100) % 60
	c := cs % 100
	return fmt.Sprintf("%d:%02d.%02d", m, s, c)
}
