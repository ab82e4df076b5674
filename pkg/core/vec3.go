package core

import (
	"fmt"
	"math"
)

// Vec3 is a displacement in 3-space. Unlike Point3, a Vec3 carries no
// notion of position — only direction and magnitude.
type Vec3 struct {
	X, Y, Z float64
}

// Point3 is a position in 3-space. Kept distinct from Vec3 so that the
// geometry packages can't accidentally add two points or normalize one.
type Point3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// NewPoint3 creates a new Point3.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.3g, %.3g, %.3g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns the opposite vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Length returns the magnitude of the vector.
func (v Vec3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// AbsDot returns the absolute value of the dot product.
func (v Vec3) AbsDot(o Vec3) float64 { return math.Abs(v.Dot(o)) }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Normalized returns a unit-length copy of v. The zero vector normalizes
// to itself (a no-op), matching the original renderer's Vector3f::Normalize.
func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1.0 / length)
}

// Normalize scales v in place to unit length. No-op on the zero vector.
func (v *Vec3) Normalize() {
	length := v.Length()
	if length == 0 {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
}

// IsZero reports whether v is the zero vector.
func (v Vec3) IsZero() bool { return v.X == 0 && v.Y == 0 && v.Z == 0 }

// Add returns the point translated by a displacement vector.
func (p Point3) Add(v Vec3) Point3 { return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z} }

// Sub returns the displacement vector from o to p.
func (p Point3) Sub(o Point3) Vec3 { return Vec3{p.X - o.X, p.Y - o.Y, p.Z - o.Z} }

func (p Point3) String() string {
	return fmt.Sprintf("({%.3g, %.3g, %.3g})", p.X, p.Y, p.Z)
}
