package game

import "vectoroids/internal/entity"

// Phase is the current stage of a game session.
type Phase int

const (
	PhaseReady Phase = iota // title screen
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String implements fmt.Stringer for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}

// Session holds all mutable state of one game: counters, phase and the
// entity collections. Only the game's tick mutates it.
type Session struct {
	Score        int
	Lives        int
	Level        int
	Phase        Phase
	FireCooldown float64 // seconds until the next shot is allowed
	NewHighScore bool    // set when the final score made the score list

	Ship      *entity.Entity
	Asteroids []*entity.Entity
	Bullets   []*entity.Entity
}

// NewSession creates a session on the title screen with a fresh ship and
// a level-one asteroid field drifting behind it.
func NewSession(bounds entity.Bounds) *Session {
	s := &Session{}
	s.Reset(bounds)
	return s
}

// Reset restores the initial session state: zero score, full lives,
// level one, no bullets, a centered ship and a fresh asteroid field.
func (s *Session) Reset(bounds entity.Bounds) {
	s.Score = 0
	s.Lives = InitialLives
	s.Level = InitialLevel
	s.Phase = PhaseReady
	s.FireCooldown = 0
	s.NewHighScore = false
	s.Bullets = nil
	s.Ship = entity.NewShip(bounds.Center())
	s.Asteroids = nil
	s.SpawnField(bounds)
}

// SpawnField populates the asteroid field for the current level: large
// asteroids on the play-area edges, FieldBaseCount plus one per level.
func (s *Session) SpawnField(bounds entity.Bounds) {
	count := FieldBaseCount + s.Level
	for i := 0; i < count; i++ {
		s.Asteroids = append(s.Asteroids, entity.NewAsteroidAtEdge(bounds, entity.AsteroidLarge))
	}
}
