package game

import (
	"fmt"

	"vectoroids/internal/geom"
)

// render draws the current frame: entities first, then the HUD and any
// phase banner on top. Rendering happens every tick regardless of phase.
func (g *Game) render() error {
	r := g.renderer
	r.HandleResize()
	r.Clear()

	s := g.session
	w, h := r.ViewportSize()

	if s.Ship.Active {
		r.DrawShape(s.Ship.Shape(), s.Ship.Pos, s.Ship.Rotation, s.Ship.Scale)
	}
	for _, a := range s.Asteroids {
		if a.Active {
			r.DrawShape(a.Shape(), a.Pos, a.Rotation, a.Scale)
		}
	}
	for _, b := range s.Bullets {
		if b.Active {
			r.DrawShape(b.Shape(), b.Pos, b.Rotation, b.Scale)
		}
	}

	if d, ok := g.status.(FrameDrawer); ok {
		d.DrawFrame(r, w, h)
	}

	center := geom.Vec2{X: w / 2, Y: h / 2}
	switch s.Phase {
	case PhaseReady:
		g.drawReadyBanner(center)
	case PhasePaused:
		r.DrawTextCentered(center, "P A U S E D", geom.ColorYellow)
		r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y + 30}, "press P to resume", geom.ColorGray)
	case PhaseGameOver:
		g.drawGameOverBanner(center)
	}

	return r.Flush()
}

func (g *Game) drawReadyBanner(center geom.Vec2) {
	r := g.renderer
	r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y - 45}, "V E C T O R O I D S", geom.ColorCyan)
	r.DrawTextCentered(center, "press SPACE to start", geom.ColorWhite)
	r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y + 45},
		"A/D or arrows rotate, W thrusts, SPACE fires, P pauses, Q quits", geom.ColorGray)

	if best := g.scores.Best(); best > 0 {
		r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y + 75},
			fmt.Sprintf("best %d", best), geom.ColorGray)
	}
}

func (g *Game) drawGameOverBanner(center geom.Vec2) {
	r := g.renderer
	s := g.session

	r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y - 45}, "G A M E  O V E R", geom.ColorRed)
	r.DrawTextCentered(center, fmt.Sprintf("score %d  -  level %d", s.Score, s.Level), geom.ColorWhite)
	if s.NewHighScore {
		r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y + 30}, "NEW HIGH SCORE", geom.ColorGreen)
	}
	r.DrawTextCentered(geom.Vec2{X: center.X, Y: center.Y + 60}, "press SPACE for menu", geom.ColorGray)
}
