package vec

import "math"

// Vec2 represents a 2D vector or point
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Subtract returns the difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Multiply returns the vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// MultiplyAdd returns v + other*scalar in a single operation
func (v Vec2) MultiplyAdd(other Vec2, scalar float64) Vec2 {
	return Vec2{v.X + scalar*other.X, v.Y + scalar*other.Y}
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the euclidean distance between two points
func (v Vec2) Distance(other Vec2) float64 {
	return v.Subtract(other).Length()
}

// Lerp returns the linear interpolation between v and other at parameter t
func (v Vec2) Lerp(other Vec2, t float64) Vec2 {
	return Vec2{
		X: v.X + t*(other.X-v.X),
		Y: v.Y + t*(other.Y-v.Y),
	}
}

// PolarAngle returns the angle of the vector in radians, in (-pi, pi]
func (v Vec2) PolarAngle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate returns the vector rotated by an angle given as cosine/sine pair.
// Passing non-unit values scales the vector by their magnitude.
func (v Vec2) Rotate(angleCos, angleSin float64) Vec2 {
	return Vec2{
		X: angleCos*v.X - angleSin*v.Y,
		Y: angleSin*v.X + angleCos*v.Y,
	}
}

// UnitFromAngle returns the unit vector with the given polar angle
func UnitFromAngle(angle float64) Vec2 {
	return Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
}
