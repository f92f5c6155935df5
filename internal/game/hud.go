package game

import (
	"fmt"
	"strings"

	"vectoroids/internal/geom"
)

// HUD is the terminal status collaborator: it caches the counters pushed
// after state-affecting events and draws them along the top edge every
// frame.
type HUD struct {
	score int
	best  int
	level int
	lives int
}

// NewHUD creates an empty HUD.
func NewHUD() *HUD {
	return &HUD{}
}

// UpdateStats implements StatusView.
func (h *HUD) UpdateStats(score, best, level, lives int) {
	h.score = score
	h.best = best
	h.level = level
	h.lives = lives
}

// LivesIndicator maps a life count to the displayed ship markers.
func LivesIndicator(lives int) string {
	if lives <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat("▲ ", lives))
}

// DrawFrame implements FrameDrawer.
func (h *HUD) DrawFrame(r Renderer, width, height float64) {
	top := height * 0.02

	r.DrawText(geom.Vec2{X: width * 0.02, Y: top},
		fmt.Sprintf("SCORE %d", h.score), geom.ColorWhite)
	r.DrawTextCentered(geom.Vec2{X: width * 0.5, Y: top},
		fmt.Sprintf("BEST %d   LEVEL %d", h.best, h.level), geom.ColorGray)
	r.DrawText(geom.Vec2{X: width * 0.88, Y: top},
		LivesIndicator(h.lives), geom.ColorGreen)
}
