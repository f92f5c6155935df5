package entity

import (
	"math"
	"testing"

	"vectoroids/internal/geom"
)

var testBounds = Bounds{Width: 800, Height: 600}

func TestWrapRule(t *testing.T) {
	cases := []struct {
		name     string
		pos      geom.Vec2
		expected geom.Vec2
	}{
		{"inside stays", geom.Vec2{X: 400, Y: 300}, geom.Vec2{X: 400, Y: 300}},
		{"exactly zero stays", geom.Vec2{X: 0, Y: 0}, geom.Vec2{X: 0, Y: 0}},
		{"exactly bound stays", geom.Vec2{X: 800, Y: 600}, geom.Vec2{X: 800, Y: 600}},
		{"negative x wraps to bound", geom.Vec2{X: -1, Y: 300}, geom.Vec2{X: 800, Y: 300}},
		{"past x bound wraps to zero", geom.Vec2{X: 801, Y: 300}, geom.Vec2{X: 0, Y: 300}},
		{"negative y wraps to bound", geom.Vec2{X: 400, Y: -1}, geom.Vec2{X: 400, Y: 600}},
		{"past y bound wraps to zero", geom.Vec2{X: 400, Y: 601}, geom.Vec2{X: 400, Y: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAsteroid(tc.pos, AsteroidLarge)
			a.Vel = geom.Vec2{}
			a.Spin = 0
			a.Update(0, testBounds)
			if a.Pos != tc.expected {
				t.Errorf("position %v, want %v", a.Pos, tc.expected)
			}
		})
	}
}

func TestShipThrustDirection(t *testing.T) {
	s := NewShip(testBounds.Center())
	s.Thrust = 1

	// Facing up: thrust should push the ship up (negative Y).
	s.Update(0.1, testBounds)
	if s.Vel.Y >= 0 {
		t.Errorf("expected upward velocity, got %v", s.Vel)
	}
	if math.Abs(s.Vel.X) > 1e-9 {
		t.Errorf("expected no horizontal velocity, got %v", s.Vel)
	}

	// Facing right: thrust pushes along +X.
	s = NewShip(testBounds.Center())
	s.Rotation = math.Pi / 2
	s.Thrust = 1
	s.Update(0.1, testBounds)
	if s.Vel.X <= 0 {
		t.Errorf("expected rightward velocity, got %v", s.Vel)
	}
}

func TestShipSpeedClamp(t *testing.T) {
	s := NewShip(testBounds.Center())
	s.Vel = geom.Vec2{X: 10 * ShipMaxSpeed, Y: 0}
	s.Update(0.01, testBounds)
	if speed := s.Vel.Length(); speed > ShipMaxSpeed {
		t.Errorf("speed %f exceeds max %f", speed, ShipMaxSpeed)
	}
}

func TestShipZeroVelocityStaysZero(t *testing.T) {
	s := NewShip(testBounds.Center())
	s.Update(0.1, testBounds)
	if s.Vel != (geom.Vec2{}) {
		t.Errorf("idle ship gained velocity %v", s.Vel)
	}
}

// Friction is applied once per update call rather than scaled by dt, so
// after n idle updates the speed is v0 * friction^n regardless of the
// deltas used. This pins that behavior.
func TestShipFrictionIsPerUpdate(t *testing.T) {
	v0 := 100.0

	run := func(deltas []float64) float64 {
		s := NewShip(testBounds.Center())
		s.Vel = geom.Vec2{X: v0, Y: 0}
		for _, dt := range deltas {
			s.Update(dt, testBounds)
		}
		return s.Vel.Length()
	}

	// Two updates covering 0.2s damp twice; one update covering the same
	// span damps once.
	two := run([]float64{0.1, 0.1})
	one := run([]float64{0.2})

	want2 := v0 * ShipFriction * ShipFriction
	if math.Abs(two-want2) > 1e-9 {
		t.Errorf("speed after two updates = %f, want %f", two, want2)
	}
	if one <= two {
		t.Errorf("single update should damp less than two updates: %f vs %f", one, two)
	}
}

// Rotation steps are a fixed slice of the rotation speed per call, not
// scaled by frame time.
func TestShipRotateStep(t *testing.T) {
	s := NewShip(testBounds.Center())

	s.Rotate(1)
	step := ShipRotationSpeed / 60.0
	if math.Abs(s.Rotation-step) > 1e-9 {
		t.Errorf("rotation after one right step = %f, want %f", s.Rotation, step)
	}

	s.Rotate(-1)
	s.Rotate(-1)
	if math.Abs(s.Rotation-(-step)) > 1e-9 {
		t.Errorf("rotation after net one left step = %f, want %f", s.Rotation, -step)
	}

	s.Rotate(0)
	if math.Abs(s.Rotation-(-step)) > 1e-9 {
		t.Error("direction 0 should not rotate")
	}
}

func TestShipRespawn(t *testing.T) {
	s := NewShip(geom.Vec2{X: 10, Y: 10})
	s.Vel = geom.Vec2{X: 50, Y: -20}
	s.Rotation = 1.5
	s.Thrust = 1

	s.Respawn(testBounds.Center())

	if s.Pos != testBounds.Center() {
		t.Errorf("respawn position %v, want center", s.Pos)
	}
	if s.Vel != (geom.Vec2{}) || s.Rotation != 0 || s.Thrust != 0 {
		t.Error("respawn should zero velocity, rotation and thrust")
	}
}

func TestAsteroidConstructorRanges(t *testing.T) {
	for i := 0; i < 100; i++ {
		a := NewAsteroid(testBounds.Center(), AsteroidLarge)

		speed := a.Vel.Length()
		if speed < 50 || speed > 150 {
			t.Fatalf("asteroid speed %f outside [50,150]", speed)
		}
		if a.Spin < -1 || a.Spin > 1 {
			t.Fatalf("asteroid spin %f outside [-1,1]", a.Spin)
		}
	}
}

func TestAsteroidScalesAndRadii(t *testing.T) {
	cases := []struct {
		size   AsteroidSize
		scale  float64
		radius float64
	}{
		{AsteroidLarge, 1.0, 20},
		{AsteroidMedium, 0.6, 12},
		{AsteroidSmall, 0.3, 6},
	}
	for _, tc := range cases {
		a := NewAsteroid(testBounds.Center(), tc.size)
		if a.Scale != tc.scale {
			t.Errorf("size %v scale = %f, want %f", tc.size, a.Scale, tc.scale)
		}
		if math.Abs(a.Radius()-tc.radius) > 1e-9 {
			t.Errorf("size %v radius = %f, want %f", tc.size, a.Radius(), tc.radius)
		}
	}
}

func TestAsteroidUpdateIntegrates(t *testing.T) {
	a := NewAsteroid(geom.Vec2{X: 100, Y: 100}, AsteroidMedium)
	a.Vel = geom.Vec2{X: 10, Y: -5}
	a.Spin = 0.5

	a.Update(1.0, testBounds)

	if a.Pos.X != 110 || a.Pos.Y != 95 {
		t.Errorf("position %v, want (110,95)", a.Pos)
	}
	if math.Abs(a.Rotation-0.5) > 1e-9 {
		t.Errorf("rotation %f, want 0.5", a.Rotation)
	}
}

func TestAsteroidFragments(t *testing.T) {
	pos := geom.Vec2{X: 123, Y: 456}

	large := NewAsteroid(pos, AsteroidLarge)
	frags := large.Fragments()
	if len(frags) != 2 {
		t.Fatalf("large asteroid should split into 2 fragments, got %d", len(frags))
	}
	for _, f := range frags {
		if f.Size != AsteroidMedium {
			t.Errorf("fragment size %v, want medium", f.Size)
		}
		if f.Pos != pos {
			t.Errorf("fragment position %v, want %v", f.Pos, pos)
		}
	}

	medium := NewAsteroid(pos, AsteroidMedium)
	frags = medium.Fragments()
	if len(frags) != 2 || frags[0].Size != AsteroidSmall {
		t.Error("medium asteroid should split into 2 small fragments")
	}

	small := NewAsteroid(pos, AsteroidSmall)
	if frags := small.Fragments(); frags != nil {
		t.Errorf("small asteroid should not fragment, got %d", len(frags))
	}
}

func TestBulletVelocityAndRadius(t *testing.T) {
	b := NewBullet(testBounds.Center(), 0)
	if speed := b.Vel.Length(); math.Abs(speed-BulletSpeed) > 1e-9 {
		t.Errorf("bullet speed %f, want %f", speed, BulletSpeed)
	}
	if b.Vel.Y >= 0 {
		t.Error("bullet fired at angle 0 should travel up")
	}
	if b.Radius() != BulletRadius {
		t.Errorf("bullet radius %f, want %f", b.Radius(), BulletRadius)
	}
}

func TestBulletLifetimeExpiry(t *testing.T) {
	b := NewBullet(testBounds.Center(), 0)
	b.Lifetime = 1.95
	before := b.Pos

	// Crossing the max lifetime deactivates the bullet and skips its
	// movement for that frame.
	b.Update(0.1, testBounds)
	if b.Active {
		t.Error("bullet should deactivate past its max lifetime")
	}
	if b.Pos != before {
		t.Error("expired bullet should not move in its final frame")
	}
}

func TestBulletLifetimeBoundary(t *testing.T) {
	b := NewBullet(testBounds.Center(), 0)
	b.Lifetime = 1.9
	before := b.Pos

	// Reaching exactly the max lifetime is not yet expiry.
	b.Update(0.1, testBounds)
	if !b.Active {
		t.Error("bullet at exactly max lifetime should stay active")
	}
	if b.Pos == before {
		t.Error("live bullet should move")
	}
}

func TestCollidesIsStrict(t *testing.T) {
	a := NewBullet(geom.Vec2{X: 0, Y: 0}, 0)
	b := NewBullet(geom.Vec2{X: BulletRadius * 2, Y: 0}, 0)
	if Collides(a, b) {
		t.Error("entities at exactly radius-sum distance should not collide")
	}

	b.Pos.X -= 0.001
	if !Collides(a, b) {
		t.Error("entities closer than radius sum should collide")
	}
}

func TestShipRadius(t *testing.T) {
	s := NewShip(testBounds.Center())
	if s.Radius() != ShipRadius {
		t.Errorf("ship radius %f, want %f", s.Radius(), ShipRadius)
	}
}

func TestShapesPerKind(t *testing.T) {
	ship := NewShip(testBounds.Center())
	asteroid := NewAsteroid(testBounds.Center(), AsteroidLarge)
	bullet := NewBullet(testBounds.Center(), 0)

	if len(ship.Shape().Points) < 2 || !ship.Shape().Closed {
		t.Error("ship shape should be a closed polyline")
	}
	if len(asteroid.Shape().Points) < 2 || !asteroid.Shape().Closed {
		t.Error("asteroid shape should be a closed polyline")
	}
	if len(bullet.Shape().Points) < 2 {
		t.Error("bullet shape needs at least two points")
	}

	// Same kind shares one shape.
	other := NewAsteroid(geom.Vec2{X: 1, Y: 1}, AsteroidSmall)
	if &asteroid.Shape().Points[0] != &other.Shape().Points[0] {
		t.Error("asteroids should share a single shape definition")
	}
}
