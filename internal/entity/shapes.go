package entity

import "vectoroids/internal/geom"

// One shape per entity kind, defined in local coordinates with the nose
// pointing up. Shapes are shared; per-instance variation comes from the
// draw-time transform (position, rotation, scale), never from mutating
// the shape.
var (
	shipShape = geom.Shape{
		Points: []geom.Vec2{
			{X: 0, Y: -12},
			{X: 8, Y: 10},
			{X: 0, Y: 5},
			{X: -8, Y: 10},
		},
		Closed: true,
		Color:  geom.ColorWhite,
	}

	// Irregular decagon with vertex radii jittered around the collision
	// radius. The jitter is fixed so every asteroid shares one shape.
	asteroidShape = geom.Shape{
		Points: []geom.Vec2{
			{X: 0, Y: -22},
			{X: 13, Y: -17},
			{X: 21, Y: -6},
			{X: 17, Y: 8},
			{X: 10, Y: 19},
			{X: -1, Y: 23},
			{X: -12, Y: 16},
			{X: -20, Y: 6},
			{X: -18, Y: -8},
			{X: -10, Y: -18},
		},
		Closed: true,
		Color:  geom.ColorGray,
	}

	bulletShape = geom.Shape{
		Points: []geom.Vec2{
			{X: 0, Y: -2},
			{X: 0, Y: 2},
		},
		Closed: false,
		Color:  geom.ColorYellow,
	}
)

// Shape returns the shared shape for the entity's kind.
func (e *Entity) Shape() geom.Shape {
	switch e.Kind {
	case KindShip:
		return shipShape
	case KindAsteroid:
		return asteroidShape
	default:
		return bulletShape
	}
}
