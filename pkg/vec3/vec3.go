// Package vec3 provides the small set of 3D vector operations that both
// geometry-processing cores delegate to an external geometric kernel:
// subtraction, dot product, cross product, norm, and midpoint (spec
// section "remaining ~5%: shared numeric helpers").
package vec3

import "math"

// Vec3 is a 3D point or vector, depending on context.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns a+b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a-b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns a scaled by s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Negate returns -a.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product a·b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a×b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean norm of a.
func (a Vec3) Length() float64 {
	return math.Sqrt(a.Dot(a))
}

// Normalize returns a scaled to unit length. Returns the zero vector if
// a is (numerically) the zero vector rather than dividing by zero.
func (a Vec3) Normalize() Vec3 {
	l := a.Length()
	if l < 1e-15 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Midpoint returns the point halfway between a and b. Core A deliberately
// does not use this for edge collapse (see meshmodel.Operator.CollapseEdge,
// which keeps the surviving endpoint's position); nothing in this module
// calls it.
func Midpoint(a, b Vec3) Vec3 {
	return Vec3{
		X: (a.X + b.X) / 2,
		Y: (a.Y + b.Y) / 2,
		Z: (a.Z + b.Z) / 2,
	}
}
