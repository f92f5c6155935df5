// Package geom provides the 2D vector and polyline shape model shared by
// the simulation and the renderer.
package geom

import "math"

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Heading returns the unit vector for a facing angle, where angle 0 points
// up and positive angles turn clockwise.
func Heading(angle float64) Vec2 {
	return Vec2{X: math.Sin(angle), Y: -math.Cos(angle)}
}

// Color identifies a stroke color. The terminal renderer maps these to
// ANSI palette entries.
type Color uint8

const (
	ColorWhite Color = iota
	ColorGray
	ColorCyan
	ColorYellow
	ColorRed
	ColorGreen
)

// Shape is an immutable polyline: at least two points, optionally closed
// back to the first point. Shapes are defined once per entity kind in
// local coordinates and transformed at draw time.
type Shape struct {
	Points []Vec2
	Closed bool
	Color  Color
}

// Transformed appends the shape's points transformed by rotation, scale
// and translation to dst and returns it. Passing a reused dst slice keeps
// the per-frame rendering path allocation-free.
func (s Shape) Transformed(dst []Vec2, pos Vec2, rotation, scale float64) []Vec2 {
	sin, cos := math.Sincos(rotation)
	for _, p := range s.Points {
		x := p.X * scale
		y := p.Y * scale
		dst = append(dst, Vec2{
			X: pos.X + x*cos - y*sin,
			Y: pos.Y + x*sin + y*cos,
		})
	}
	return dst
}
