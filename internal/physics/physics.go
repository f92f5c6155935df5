// Package physics provides distance and circle-overlap tests.
package physics

import "vectoroids/internal/geom"

// Distance returns the Euclidean distance between two points.
func Distance(a, b geom.Vec2) float64 {
	return b.Add(a.Scale(-1)).Length()
}

// DistanceSquared returns the squared distance between two points. Use
// this when comparing against a radius to avoid the sqrt cost.
func DistanceSquared(a, b geom.Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap. The comparison is
// strict: circles whose distance exactly equals the radius sum are
// touching, not overlapping.
func CirclesOverlap(a geom.Vec2, ra float64, b geom.Vec2, rb float64) bool {
	min := ra + rb
	return DistanceSquared(a, b) < min*min
}
