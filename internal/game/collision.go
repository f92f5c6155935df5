package game

import "vectoroids/internal/entity"

// scoreFor returns the points awarded for destroying an asteroid of the
// given size. Smaller asteroids are worth more.
func scoreFor(size entity.AsteroidSize) int {
	switch size {
	case entity.AsteroidLarge:
		return ScoreLargeAsteroid
	case entity.AsteroidMedium:
		return ScoreMediumAsteroid
	case entity.AsteroidSmall:
		return ScoreSmallAsteroid
	}
	return 0
}

// resolveCollisions runs the per-frame collision passes. Both scans walk
// their collections in reverse index order so in-place removal stays
// safe; the same order decides which asteroid a bullet takes when it
// overlaps several at once (the highest index wins).
func (g *Game) resolveCollisions() {
	s := g.session

	// Bullet pass: each bullet destroys at most one asteroid per frame.
	for i := len(s.Bullets) - 1; i >= 0; i-- {
		b := s.Bullets[i]
		if !b.Active {
			continue
		}
		for j := len(s.Asteroids) - 1; j >= 0; j-- {
			a := s.Asteroids[j]
			if !a.Active {
				continue
			}
			if !entity.Collides(b, a) {
				continue
			}

			b.Active = false
			s.Bullets = append(s.Bullets[:i], s.Bullets[i+1:]...)
			s.Asteroids = append(s.Asteroids[:j], s.Asteroids[j+1:]...)

			s.Score += scoreFor(a.Size)
			s.Asteroids = append(s.Asteroids, a.Fragments()...)
			g.pushStats()
			break
		}
	}

	// Ship pass: at most one life lost per frame, and the asteroid
	// survives the hit.
	for j := len(s.Asteroids) - 1; j >= 0; j-- {
		a := s.Asteroids[j]
		if !a.Active {
			continue
		}
		if entity.Collides(s.Ship, a) {
			g.loseLife()
			break
		}
	}
}

// loseLife decrements lives and either respawns the ship at the center
// or ends the game, submitting the final score.
func (g *Game) loseLife() {
	s := g.session
	s.Lives--

	if s.Lives <= 0 {
		s.Phase = PhaseGameOver
		s.Ship.Active = false
		s.NewHighScore = g.scores.Submit(s.Score, s.Level)
	} else {
		s.Ship.Respawn(g.bounds().Center())
	}
	g.pushStats()
}

// checkLevelClear advances to the next level once the field is empty.
// The check runs every playing frame, not just after a kill.
func (g *Game) checkLevelClear() {
	s := g.session
	if s.Phase != PhasePlaying || len(s.Asteroids) > 0 {
		return
	}
	s.Level++
	s.SpawnField(g.bounds())
	g.pushStats()
}
