package entity

import "vectoroids/internal/geom"

// Bullet tuning.
const (
	BulletRadius      = 2.0
	BulletSpeed       = 400.0 // units per second
	BulletMaxLifetime = 2.0   // seconds
)

// NewBullet creates a bullet at pos traveling along the firing angle.
func NewBullet(pos geom.Vec2, angle float64) *Entity {
	return &Entity{
		Kind:        KindBullet,
		Pos:         pos,
		Vel:         geom.Heading(angle).Scale(BulletSpeed),
		Rotation:    angle,
		Scale:       1,
		Active:      true,
		MaxLifetime: BulletMaxLifetime,
	}
}

func (e *Entity) updateBullet(dt float64, bounds Bounds) {
	e.Lifetime += dt
	if e.Lifetime > e.MaxLifetime {
		// Expired bullets stop moving the same frame they die.
		e.Active = false
		return
	}
	e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	e.wrap(bounds)
}
