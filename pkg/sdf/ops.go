package sdf

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Signed-distance primitives and domain operators. Distance formulas follow
// the standard constructions collected at https://iquilezles.org/articles/.

// Plane returns the signed distance to the plane with the given unit normal,
// offset along the normal from the origin
func Plane(p, normal vec.Vec3, offset float64) float64 {
	return p.Dot(normal) - offset
}

// Sphere returns the signed distance to a sphere centered at the origin
func Sphere(p vec.Vec3, radius float64) float64 {
	return p.Length() - radius
}

// Box returns the signed distance to an axis-aligned box centered at the
// origin with the given half extents
func Box(p, sides vec.Vec3) float64 {
	q := p.Abs().Subtract(sides)
	return q.MaxScalar(0).Length() + math.Min(math.Max(q.X, math.Max(q.Y, q.Z)), 0)
}

// Torus returns the signed distance to a torus around the Y axis with the
// given ring and tube radii
func Torus(p vec.Vec3, ringRadius, tubeRadius float64) float64 {
	lenXZ := math.Sqrt(p.X*p.X + p.Z*p.Z)
	q := vec.NewVec2(lenXZ-ringRadius, p.Y)
	return q.Length() - tubeRadius
}

// Cylinder returns the signed distance to a capped cylinder around the Y axis
func Cylinder(p vec.Vec3, radius, height float64) float64 {
	dXZ := math.Sqrt(p.X*p.X+p.Z*p.Z) - radius
	dY := math.Abs(p.Y) - height
	dXZClamp := math.Max(dXZ, 0)
	dYClamp := math.Max(dY, 0)
	return math.Min(math.Max(dXZ, dY), 0) + math.Sqrt(dXZClamp*dXZClamp+dYClamp*dYClamp)
}

// CappedCone returns the signed distance to a cone frustum around the Y axis
// spanning [-halfHeight, halfHeight] with the given cap radii
func CappedCone(p vec.Vec3, radiusBottom, radiusTop, halfHeight float64) float64 {
	// Reduce to the half plane through the Y axis and p
	q := vec.NewVec2(math.Sqrt(p.X*p.X+p.Z*p.Z), p.Y)

	// Distance to the mantle: project AQ onto the mantle segment AB with
	// A = (radiusBottom, -halfHeight), B = (radiusTop, halfHeight)
	aq := vec.NewVec2(q.X-radiusBottom, q.Y+halfHeight)
	ab := vec.NewVec2(radiusTop-radiusBottom, 2.0*halfHeight)
	t := vec.Clamp(aq.Dot(ab)/ab.LengthSquared(), 0, 1)
	s := vec.NewVec2(radiusBottom, -halfHeight).MultiplyAdd(ab, t)
	sq := q.Subtract(s)
	distMantle := sq.Length()

	// Distance to the closer cap
	closestRadius := radiusTop
	if q.Y < 0 {
		closestRadius = radiusBottom
	}
	capToQ := vec.NewVec2(math.Max(q.X-closestRadius, 0), math.Abs(q.Y)-halfHeight)
	distCaps := capToQ.Length()

	// Inside only when inside the mantle and between the caps
	sign := 1.0
	if sq.X < 0 && capToQ.Y < 0 {
		sign = -1.0
	}
	return sign * math.Min(distMantle, distCaps)
}

// Onion turns a solid into a shell of the given thickness
func Onion(distance, thickness float64) float64 {
	return math.Abs(distance) - thickness
}

// Round offsets a distance outward, rounding the edges of the shape
func Round(distance, radius float64) float64 {
	return distance - radius
}

// SmoothUnion blends two distances over the given smoothing width. It returns
// the blended distance and a mixing factor in [0, 1] for interpolating the
// two surfaces' materials (0 selects the first surface)
func SmoothUnion(dist1, dist2, smoothingWidth float64) (float64, float64) {
	h := math.Max(smoothingWidth-math.Abs(dist1-dist2), 0) / smoothingWidth
	mixing := 0.5 * h * h * h
	smoothing := (1.0 / 3.0) * mixing * smoothingWidth
	if dist1 < dist2 {
		return dist1 - smoothing, mixing
	}
	return dist2 - smoothing, 1.0 - mixing
}

// SmoothDifference subtracts the second shape from the first over the given
// smoothing width, returning the distance and material mixing factor
func SmoothDifference(dist1, dist2, smoothingWidth float64) (float64, float64) {
	h := math.Max(smoothingWidth-math.Abs(dist1+dist2), 0) / smoothingWidth
	mixing := 0.5 * h * h * h
	smoothing := (1.0 / 3.0) * mixing * smoothingWidth
	if dist1 > -dist2 {
		return dist1 + smoothing, mixing
	}
	return -dist2 + smoothing, 1.0 - mixing
}

// Shift translates the evaluation point, moving the shape by the offset
func Shift(p, offset vec.Vec3) vec.Vec3 {
	return p.Subtract(offset)
}

// ElongateY stretches a shape along the Y axis by the given length
func ElongateY(p vec.Vec3, length float64) vec.Vec3 {
	return vec.NewVec3(p.X, math.Max(math.Abs(p.Y)-length, 0), p.Z)
}

// ElongateZ stretches a shape along the Z axis by the given length
func ElongateZ(p vec.Vec3, length float64) vec.Vec3 {
	return vec.NewVec3(p.X, p.Y, math.Max(math.Abs(p.Z)-length, 0))
}

// RotateY rotates the shape by the given angle around the Y axis
func RotateY(p vec.Vec3, angle float64) vec.Vec3 {
	cosA := math.Cos(-angle)
	sinA := math.Sin(-angle)
	return vec.NewVec3(
		cosA*p.X+sinA*p.Z,
		p.Y,
		-sinA*p.X+cosA*p.Z,
	)
}

// RotateZ rotates the shape by the given angle around the Z axis
func RotateZ(p vec.Vec3, angle float64) vec.Vec3 {
	cosA := math.Cos(-angle)
	sinA := math.Sin(-angle)
	return vec.NewVec3(
		cosA*p.X+sinA*p.Y,
		-sinA*p.X+cosA*p.Y,
		p.Z,
	)
}

// RepeatXZ tiles a shape across an infinite XZ lattice with the given cell
// size. The shape function receives the point in cell-local coordinates and
// the integer cell id; the three neighbor cells toward the query point are
// also evaluated so that shapes may poke past their own cell boundary.
func RepeatXZ(shape func(p vec.Vec3, cellID vec.Vec2) Result, p vec.Vec3, cellSize vec.Vec2) Result {
	pXZ := vec.NewVec2(p.X, p.Z)
	cellID := vec.NewVec2(math.Round(pXZ.X/cellSize.X), math.Round(pXZ.Y/cellSize.Y))
	localP := vec.NewVec2(pXZ.X-cellID.X*cellSize.X, pXZ.Y-cellID.Y*cellSize.Y)
	neighborDir := vec.NewVec2(signOf(localP.X), signOf(localP.Y))

	closest := shape(vec.NewVec3(localP.X, p.Y, localP.Y), cellID)
	for _, id := range []vec.Vec2{
		{X: cellID.X, Y: cellID.Y + neighborDir.Y},
		{X: cellID.X + neighborDir.X, Y: cellID.Y},
		{X: cellID.X + neighborDir.X, Y: cellID.Y + neighborDir.Y},
	} {
		local := vec.NewVec2(pXZ.X-id.X*cellSize.X, pXZ.Y-id.Y*cellSize.Y)
		closest = shape(vec.NewVec3(local.X, p.Y, local.Y), id).Min(closest)
	}
	return closest
}

func signOf(x float64) float64 {
	if math.Signbit(x) {
		return -1.0
	}
	return 1.0
}
