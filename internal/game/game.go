// Package game orchestrates a single-player session: the phase machine,
// the fixed per-tick sequence (input, integration, collision, render) and
// the collaborators for rendering, input, score persistence and status
// display.
package game

import (
	"vectoroids/internal/entity"
	"vectoroids/internal/geom"
	"vectoroids/internal/input"
)

// Renderer is the drawing collaborator. One frame is Clear, any number of
// shape and text draws, then Flush.
type Renderer interface {
	Clear()
	DrawShape(s geom.Shape, pos geom.Vec2, rotation, scale float64)
	DrawText(pos geom.Vec2, text string, color geom.Color)
	DrawTextCentered(pos geom.Vec2, text string, color geom.Color)
	ViewportSize() (width, height float64)
	HandleResize()
	Flush() error
}

// InputSource is the input collaborator: polled intents plus registered
// edge-triggered actions fired during Poll.
type InputSource interface {
	Poll() input.Intents
	OnAction(a input.Action, fn func())
}

// ScoreStore is the persistence collaborator for past scores.
type ScoreStore interface {
	Submit(score, level int) bool
	Best() int
	WouldBeHighScore(score int) bool
}

// StatusView receives counters after every state-affecting event.
type StatusView interface {
	UpdateStats(score, best, level, lives int)
}

// FrameDrawer is optionally implemented by a StatusView that renders
// itself each frame (the terminal HUD does; a test fake need not).
type FrameDrawer interface {
	DrawFrame(r Renderer, width, height float64)
}

// Game ties a session to its collaborators and runs ticks.
type Game struct {
	session  *Session
	renderer Renderer
	input    InputSource
	scores   ScoreStore
	status   StatusView
	running  bool
}

// New creates a game over the given collaborators and registers its input
// actions. The session starts on the title screen.
func New(r Renderer, in InputSource, scores ScoreStore, status StatusView) *Game {
	g := &Game{
		renderer: r,
		input:    in,
		scores:   scores,
		status:   status,
		running:  true,
	}
	g.session = NewSession(g.bounds())

	in.OnAction(input.ActionStart, g.handleStart)
	in.OnAction(input.ActionPause, g.handlePause)

	g.pushStats()
	return g
}

// Session exposes the session state, primarily for tests.
func (g *Game) Session() *Session {
	return g.session
}

// Running reports whether the game loop should keep going.
func (g *Game) Running() bool {
	return g.running
}

// bounds returns the wrap bounds for this frame from the renderer.
func (g *Game) bounds() entity.Bounds {
	w, h := g.renderer.ViewportSize()
	return entity.Bounds{Width: w, Height: h}
}

// Tick runs one frame: poll input, then (only while playing) apply
// intents, integrate entities and resolve collisions, then render. The
// order is fixed.
func (g *Game) Tick(dt float64) error {
	if dt > MaxDeltaTime {
		dt = MaxDeltaTime
	}

	intents := g.input.Poll()
	if intents.Quit {
		g.running = false
	}

	if g.session.Phase == PhasePlaying {
		g.applyIntents(intents, dt)
		g.updateEntities(dt)
		g.resolveCollisions()
		g.checkLevelClear()
	}

	return g.render()
}

// applyIntents translates the polled intents into ship commands and
// handles the fire cooldown.
func (g *Game) applyIntents(intents input.Intents, dt float64) {
	s := g.session

	if intents.Thrust {
		s.Ship.Thrust = 1
	} else {
		s.Ship.Thrust = 0
	}

	switch {
	case intents.Left && !intents.Right:
		s.Ship.Rotate(-1)
	case intents.Right && !intents.Left:
		s.Ship.Rotate(1)
	}

	// The cooldown runs down every playing frame, held fire or not, and
	// bottoms out at zero.
	s.FireCooldown -= dt
	if s.FireCooldown < 0 {
		s.FireCooldown = 0
	}
	if intents.Fire && s.FireCooldown <= 0 {
		s.Bullets = append(s.Bullets, entity.NewBullet(s.Ship.Pos, s.Ship.Rotation))
		s.FireCooldown = FireInterval
	}
}

// updateEntities integrates every active entity and purges dead bullets.
func (g *Game) updateEntities(dt float64) {
	s := g.session
	bounds := g.bounds()

	if s.Ship.Active {
		s.Ship.Update(dt, bounds)
	}
	for _, a := range s.Asteroids {
		if a.Active {
			a.Update(dt, bounds)
		}
	}

	kept := s.Bullets[:0]
	for _, b := range s.Bullets {
		if !b.Active {
			continue
		}
		b.Update(dt, bounds)
		if b.Active {
			kept = append(kept, b)
		}
	}
	s.Bullets = kept
}

// handleStart reacts to the start/restart action: it begins play from the
// title screen and returns to it from the game-over screen. During play
// the same key is the fire intent and arrives via Poll instead.
func (g *Game) handleStart() {
	switch g.session.Phase {
	case PhaseReady:
		g.session.Phase = PhasePlaying
	case PhaseGameOver:
		g.session.Reset(g.bounds())
		g.pushStats()
	}
}

// handlePause toggles between playing and paused; any other phase
// ignores it.
func (g *Game) handlePause() {
	switch g.session.Phase {
	case PhasePlaying:
		g.session.Phase = PhasePaused
	case PhasePaused:
		g.session.Phase = PhasePlaying
	}
}

// pushStats forwards the current counters to the status collaborator.
func (g *Game) pushStats() {
	g.status.UpdateStats(g.session.Score, g.scores.Best(), g.session.Level, g.session.Lives)
}
