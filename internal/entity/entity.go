// Package entity implements the moving bodies of the game: the ship,
// asteroids and bullets. The entity set is closed, so instead of interface
// dispatch all kinds share one record and Update switches on the kind.
package entity

import (
	"vectoroids/internal/geom"
	"vectoroids/internal/physics"
)

// Kind discriminates the entity variants.
type Kind int

const (
	KindShip Kind = iota
	KindAsteroid
	KindBullet
)

// Bounds is the wrappable play area in logical units.
type Bounds struct {
	Width  float64
	Height float64
}

// Center returns the midpoint of the play area.
func (b Bounds) Center() geom.Vec2 {
	return geom.Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// Entity is a single moving body. The kinematic fields are shared by all
// kinds; the remaining fields belong to one variant each and are zero for
// the others.
type Entity struct {
	Kind     Kind
	Pos      geom.Vec2
	Vel      geom.Vec2 // units per second
	Rotation float64   // radians, 0 = up
	Scale    float64
	Active   bool

	// Ship only.
	Thrust        float64 // commanded thrust level in [0,1]
	ThrustPower   float64
	MaxSpeed      float64
	RotationSpeed float64
	Friction      float64 // velocity factor applied once per update

	// Asteroid only.
	Size AsteroidSize
	Spin float64 // radians per second

	// Bullet only.
	Lifetime    float64 // seconds since fired
	MaxLifetime float64
}

// Update advances the entity by dt seconds and wraps it at bounds.
// Callers are responsible for skipping inactive entities.
func (e *Entity) Update(dt float64, bounds Bounds) {
	switch e.Kind {
	case KindShip:
		e.updateShip(dt, bounds)
	case KindAsteroid:
		e.updateAsteroid(dt, bounds)
	case KindBullet:
		e.updateBullet(dt, bounds)
	}
}

// Radius returns the collision radius for the entity's kind.
func (e *Entity) Radius() float64 {
	switch e.Kind {
	case KindShip:
		return ShipRadius
	case KindAsteroid:
		return AsteroidBaseRadius * e.Scale
	case KindBullet:
		return BulletRadius
	}
	return 0
}

// Collides reports whether two entities overlap. Entities whose distance
// exactly equals the sum of their radii do not collide.
func Collides(a, b *Entity) bool {
	return physics.CirclesOverlap(a.Pos, a.Radius(), b.Pos, b.Radius())
}

// wrap teleports the position to the opposite edge once it leaves bounds.
// This is a hard teleport, not a modulo: a body that overshoots the far
// edge in one step is left where it lands until the next crossing.
func (e *Entity) wrap(bounds Bounds) {
	if e.Pos.X < 0 {
		e.Pos.X = bounds.Width
	} else if e.Pos.X > bounds.Width {
		e.Pos.X = 0
	}
	if e.Pos.Y < 0 {
		e.Pos.Y = bounds.Height
	} else if e.Pos.Y > bounds.Height {
		e.Pos.Y = 0
	}
}
