package vec

import "math"

// Epsilon is the tolerance used for degeneracy checks on unit-length vectors.
const Epsilon = 1.0e-9

// Vec3 represents a 3D vector or point
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float64) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// MultiplyAdd returns v + other*scalar in a single operation
func (v Vec3) MultiplyAdd(other Vec3, scalar float64) Vec3 {
	return Vec3{v.X + scalar*other.X, v.Y + scalar*other.Y, v.Z + scalar*other.Z}
}

// Negate returns the negative of the vector
func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec3) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to the zero vector rather than dividing by zero.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{v.X / length, v.Y / length, v.Z / length}
}

// Abs returns component-wise absolute values of the vector
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// MaxScalar returns the component-wise maximum of the vector and a scalar
func (v Vec3) MaxScalar(s float64) Vec3 {
	return Vec3{math.Max(v.X, s), math.Max(v.Y, s), math.Max(v.Z, s)}
}

// Reflect returns the reflection of an incident vector about a unit normal
func (v Vec3) Reflect(normal Vec3) Vec3 {
	return v.MultiplyAdd(normal, -2.0*v.Dot(normal))
}

// Lerp returns the linear interpolation between v and other at parameter t
func (v Vec3) Lerp(other Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + t*(other.X-v.X),
		Y: v.Y + t*(other.Y-v.Y),
		Z: v.Z + t*(other.Z-v.Z),
	}
}

// OrthonormalBasis returns an orthonormal basis (u, v) of the plane with the
// given unit normal, with u aligned to the in-plane component of the primary
// direction. Returns false when the primary direction is parallel to the
// normal and no such basis exists.
func OrthonormalBasis(normal, primaryDirection Vec3) (Vec3, Vec3, bool) {
	normalComponent := primaryDirection.Dot(normal)
	u := primaryDirection.MultiplyAdd(normal, -normalComponent)
	uLength := u.Length()
	if uLength <= Epsilon {
		return Vec3{}, Vec3{}, false
	}
	u = u.Multiply(1.0 / uLength)
	return u, u.Cross(normal), true
}

// UnitFromPolar converts spherical angles (azimuth around Y, inclination from
// the Y axis) to a unit direction vector
func UnitFromPolar(azimuth, inclination float64) Vec3 {
	sinInc := math.Sin(inclination)
	return Vec3{
		X: sinInc * math.Cos(azimuth),
		Y: math.Cos(inclination),
		Z: sinInc * math.Sin(azimuth),
	}
}
