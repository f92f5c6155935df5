package entity

import "vectoroids/internal/geom"

// Ship tuning.
const (
	ShipRadius        = 12.0
	ShipThrustPower   = 300.0 // acceleration at full thrust, units/s²
	ShipMaxSpeed      = 350.0
	ShipRotationSpeed = 5.0  // radians per second at a nominal 60fps
	ShipFriction      = 0.99 // velocity factor per update
)

// NewShip creates the player ship at pos, facing up and at rest.
func NewShip(pos geom.Vec2) *Entity {
	return &Entity{
		Kind:          KindShip,
		Pos:           pos,
		Scale:         1,
		Active:        true,
		ThrustPower:   ShipThrustPower,
		MaxSpeed:      ShipMaxSpeed,
		RotationSpeed: ShipRotationSpeed,
		Friction:      ShipFriction,
	}
}

// Rotate turns the ship one step in the given direction (-1 left, 0 none,
// 1 right). The step is a fixed 1/60s slice of the rotation speed per
// call, not scaled by the frame delta.
func (e *Entity) Rotate(direction int) {
	e.Rotation += float64(direction) * e.RotationSpeed * (1.0 / 60.0)
}

// Respawn places the ship back at pos, at rest and facing up.
func (e *Entity) Respawn(pos geom.Vec2) {
	e.Pos = pos
	e.Vel = geom.Vec2{}
	e.Rotation = 0
	e.Thrust = 0
}

func (e *Entity) updateShip(dt float64, bounds Bounds) {
	if e.Thrust > 0 {
		accel := geom.Heading(e.Rotation).Scale(e.ThrustPower * e.Thrust * dt)
		e.Vel = e.Vel.Add(accel)
	}

	// Clamp to max speed. Guard the rescale against a zero-length velocity.
	speed := e.Vel.Length()
	if speed > e.MaxSpeed && speed > 0 {
		e.Vel = e.Vel.Scale(e.MaxSpeed / speed)
	}

	// Friction is a flat per-update factor, not normalized by dt.
	e.Vel = e.Vel.Scale(e.Friction)

	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	e.wrap(bounds)
}
