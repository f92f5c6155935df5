package entity

import (
	"math"
	"math/rand"

	"vectoroids/internal/geom"
)

// AsteroidSize is the size class of an asteroid.
type AsteroidSize int

const (
	AsteroidSmall AsteroidSize = iota
	AsteroidMedium
	AsteroidLarge
)

// AsteroidBaseRadius is the collision radius of a full-scale asteroid;
// the effective radius is scaled by size class.
const AsteroidBaseRadius = 20.0

// Asteroid speed range, units per second.
const (
	asteroidMinSpeed = 50.0
	asteroidMaxSpeed = 150.0
)

var asteroidScales = map[AsteroidSize]float64{
	AsteroidLarge:  1.0,
	AsteroidMedium: 0.6,
	AsteroidSmall:  0.3,
}

// NewAsteroid creates an asteroid at pos with a random travel direction,
// a random speed in [50,150] and a random spin in [-1,1] rad/s.
func NewAsteroid(pos geom.Vec2, size AsteroidSize) *Entity {
	angle := rand.Float64() * 2 * math.Pi
	speed := asteroidMinSpeed + rand.Float64()*(asteroidMaxSpeed-asteroidMinSpeed)

	return &Entity{
		Kind:   KindAsteroid,
		Pos:    pos,
		Vel:    geom.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
		Scale:  asteroidScales[size],
		Active: true,
		Size:   size,
		Spin:   (rand.Float64() - 0.5) * 2.0,
	}
}

// NewAsteroidAtEdge creates an asteroid on a random edge of the play
// area, keeping fresh fields away from a center-spawned ship.
func NewAsteroidAtEdge(bounds Bounds, size AsteroidSize) *Entity {
	var pos geom.Vec2
	switch rand.Intn(4) {
	case 0:
		pos = geom.Vec2{X: rand.Float64() * bounds.Width, Y: 0}
	case 1:
		pos = geom.Vec2{X: rand.Float64() * bounds.Width, Y: bounds.Height}
	case 2:
		pos = geom.Vec2{X: 0, Y: rand.Float64() * bounds.Height}
	case 3:
		pos = geom.Vec2{X: bounds.Width, Y: rand.Float64() * bounds.Height}
	}
	return NewAsteroid(pos, size)
}

// Fragments returns the asteroids spawned when this one is destroyed:
// two of the next smaller size at the same position, or none for small
// asteroids. Each fragment gets fresh random velocity and spin.
func (e *Entity) Fragments() []*Entity {
	if e.Size == AsteroidSmall {
		return nil
	}
	next := e.Size - 1
	return []*Entity{
		NewAsteroid(e.Pos, next),
		NewAsteroid(e.Pos, next),
	}
}

func (e *Entity) updateAsteroid(dt float64, bounds Bounds) {
	e.Rotation += e.Spin * dt
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	e.wrap(bounds)
}
