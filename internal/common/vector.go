package common

import (
	"math"

	"github.com/jbeda/geom"
)

// Vec2 represents a 2D point or vector in canvas pixels.
type Vec2 struct {
	X, Y float64
}

// FromCoord converts a geom coordinate into a Vec2.
func FromCoord(c geom.Coord) Vec2 {
	return Vec2{X: c.X, Y: c.Y}
}

// Coord converts the vector into a geom coordinate.
func (v Vec2) Coord() geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}

// Add adds two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale multiplies the vector by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the length (magnitude) of the vector.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the same direction.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(other Vec2) float64 {
	return math.Hypot(v.X-other.X, v.Y-other.Y)
}

// Dot returns the dot product.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Angle returns the heading of the vector in radians (atan2, y down).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Lerp interpolates between v (t=0) and other (t=1).
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{v.X + (other.X-v.X)*t, v.Y + (other.Y-v.Y)*t}
}

// Polar returns the point at radius r and angle a around v.
func (v Vec2) Polar(r, a float64) Vec2 {
	return Vec2{v.X + r*math.Cos(a), v.Y + r*math.Sin(a)}
}

// NormalizeAngle wraps an angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		return 0
	}
	return a
}
