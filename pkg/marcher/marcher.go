// Package marcher implements sphere tracing of implicit scenes from a pinhole
// camera, with finite-difference normals, soft shadows, and ambient occlusion.
package marcher

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

const (
	minSceneDist     = 0.001
	initialSceneDist = 25.0 * minSceneDist
)

// RayMarcher sphere-traces rays against a signed-distance scene. It is
// immutable after construction and safe for concurrent use.
type RayMarcher struct {
	Camera vec.Vec3

	maxRayIterSteps   int
	finiteDiffH       float64
	stepSizeFactor    float64
	halfScreenLengthY float64
	aspectRatio       float64

	// Orthonormal camera basis
	u vec.Vec3 // pointing right
	v vec.Vec3 // pointing up
	w vec.Vec3 // pointing into the scene
}

// Hit describes a ray-scene intersection: the surface point, the marched ray
// length, and the material at the hit
type Hit struct {
	Point    vec.Vec3
	Distance float64
	Material sdf.Material
}

// NewRayMarcher creates a ray marcher for the given camera pose and vertical
// field of view in degrees. The step size factor scales every sphere-tracing
// advance; for heightmap scenes it must be at most 1/sqrt(1+L*L) where L
// bounds the height function's slope, since a heightmap's implicit distance
// is not unit-Lipschitz.
func NewRayMarcher(stepSizeFactor float64, camera, lookAt, up vec.Vec3, fovYDegrees, aspectRatio float64) *RayMarcher {
	fovY := fovYDegrees * math.Pi / 180.0
	w := lookAt.Subtract(camera).Normalize()
	v := up.MultiplyAdd(w, -up.Dot(w)).Normalize()
	u := w.Cross(v)

	return &RayMarcher{
		Camera:            camera,
		maxRayIterSteps:   int(math.Ceil(250.0 / stepSizeFactor)),
		finiteDiffH:       minSceneDist * stepSizeFactor,
		stepSizeFactor:    stepSizeFactor,
		halfScreenLengthY: math.Tan(0.5 * fovY),
		aspectRatio:       aspectRatio,
		u:                 u,
		v:                 v,
		w:                 w,
	}
}

// IntersectScene marches a ray through the given normalized screen coordinate
// in [-1,1]^2 and returns the first surface hit, or false if the iteration
// budget runs out before any surface comes within the hit threshold
func (rm *RayMarcher) IntersectScene(scene sdf.Scene, screenCoordinates vec.Vec2) (Hit, bool) {
	dir := rm.screenDirection(screenCoordinates)
	len := 0.0
	for i := 0; i < rm.maxRayIterSteps; i++ {
		p := rm.Camera.MultiplyAdd(dir, len)
		out := scene.Evaluate(p)
		if out.Distance < minSceneDist {
			return Hit{Point: p, Distance: len, Material: out.Material}, true
		}
		len += rm.stepSizeFactor * out.Distance
	}
	return Hit{}, false
}

// ToScreenCoordinates projects a scene point into normalized screen space
// through the camera basis
func (rm *RayMarcher) ToScreenCoordinates(pScene vec.Vec3) vec.Vec2 {
	q := pScene.Subtract(rm.Camera)
	camX := q.Dot(rm.u)
	camY := q.Dot(rm.v)
	camZ := q.Dot(rm.w)
	return vec.NewVec2(
		(camX/camZ)/(rm.aspectRatio*rm.halfScreenLengthY),
		(camY/camZ)/rm.halfScreenLengthY,
	)
}

// SceneNormal estimates the surface normal at p by central finite differences
// of the scene's distance along each axis. A zero gradient yields the zero
// vector rather than dividing by zero.
func (rm *RayMarcher) SceneNormal(scene sdf.Scene, p vec.Vec3) vec.Vec3 {
	h := rm.finiteDiffH
	return vec.NewVec3(
		scene.Evaluate(vec.NewVec3(p.X+h, p.Y, p.Z)).Distance-scene.Evaluate(vec.NewVec3(p.X-h, p.Y, p.Z)).Distance,
		scene.Evaluate(vec.NewVec3(p.X, p.Y+h, p.Z)).Distance-scene.Evaluate(vec.NewVec3(p.X, p.Y-h, p.Z)).Distance,
		scene.Evaluate(vec.NewVec3(p.X, p.Y, p.Z+h)).Distance-scene.Evaluate(vec.NewVec3(p.X, p.Y, p.Z-h)).Distance,
	).Normalize()
}

// SceneNormalTetrahedron estimates the surface normal from four distance
// samples at tetrahedron vertices around p, halving the evaluation count of
// SceneNormal. See https://iquilezles.org/articles/normalsSDF/.
func (rm *RayMarcher) SceneNormalTetrahedron(scene sdf.Scene, p vec.Vec3) vec.Vec3 {
	h := rm.finiteDiffH
	f0 := scene.Evaluate(vec.NewVec3(p.X+h, p.Y-h, p.Z-h)).Distance
	f1 := scene.Evaluate(vec.NewVec3(p.X-h, p.Y-h, p.Z+h)).Distance
	f2 := scene.Evaluate(vec.NewVec3(p.X-h, p.Y+h, p.Z-h)).Distance
	f3 := scene.Evaluate(vec.NewVec3(p.X+h, p.Y+h, p.Z+h)).Distance
	return vec.NewVec3(
		f0-f1-f2+f3,
		-f0-f1+f2+f3,
		-f0+f1-f2+f3,
	).Normalize()
}

// HeightMapNormal estimates the normal of a heightmap surface at p using only
// lateral samples, exploiting that the scene's implicit function is
// p.y - height(x, z) so the vertical partial derivative is exactly 1
func (rm *RayMarcher) HeightMapNormal(scene sdf.Scene, p vec.Vec3) vec.Vec3 {
	h := rm.finiteDiffH
	return vec.NewVec3(
		scene.Evaluate(vec.NewVec3(p.X+h, p.Y, p.Z)).Distance-scene.Evaluate(vec.NewVec3(p.X-h, p.Y, p.Z)).Distance,
		2.0*h,
		scene.Evaluate(vec.NewVec3(p.X, p.Y, p.Z+h)).Distance-scene.Evaluate(vec.NewVec3(p.X, p.Y, p.Z-h)).Distance,
	).Normalize()
}

// LightIntensity computes the shading intensity at a surface point as the sum
// of ambient, ambient-occlusion, visibility, diffuse, and specular terms
// weighted by the material's reflective properties. Diffuse and specular are
// skipped entirely when the point is in full shadow.
func (rm *RayMarcher) LightIntensity(scene sdf.Scene, properties sdf.ReflectiveProperties, p, normal, light vec.Vec3) float64 {
	ambient := properties.AmbientWeight

	ao := 0.0
	if properties.AOWeight > 0 {
		ao = properties.AOWeight * ambientVisibility(scene, p, normal, properties.AOSteps, properties.AOStepSize)
	}

	visibilityFactor := rm.VisibilityFactor(scene, light, p, &normal, properties.Penumbra)
	visibility := properties.VisibilityWeight * visibilityFactor

	diffuse := 0.0
	specular := 0.0
	if visibilityFactor > 0 {
		toLight := light.Subtract(p).Normalize()
		diffuse = properties.DiffuseWeight * visibilityFactor * math.Max(toLight.Dot(normal), 0)

		fromLight := toLight.Negate()
		toCamera := rm.Camera.Subtract(p).Normalize()
		specular = properties.SpecularWeight * visibilityFactor *
			math.Pow(math.Max(fromLight.Reflect(normal).Dot(toCamera), 0), properties.SpecularExponent)
	}

	return ambient + ao + visibility + diffuse + specular
}

// VisibilityFactor marches from p toward the eye point and returns a soft
// shadow factor in [0, 1]: the minimum of penumbra*distance/length seen along
// the way if the eye is reached, or 0 if an occluder is hit, the iteration
// budget runs out, or the optional surface normal faces away from the eye
func (rm *RayMarcher) VisibilityFactor(scene sdf.Scene, eye, p vec.Vec3, pointNormal *vec.Vec3, penumbra float64) float64 {
	toEye := eye.Subtract(p)
	if pointNormal != nil && toEye.Dot(*pointNormal) < 0 {
		return 0.0
	}

	distToEye := toEye.Length()
	dir := toEye.Normalize()

	len := initialSceneDist
	closestMissRatio := 1.0
	for i := 0; i < rm.maxRayIterSteps; i++ {
		if len >= distToEye {
			return closestMissRatio
		}

		q := p.MultiplyAdd(dir, len)
		distToScene := scene.Evaluate(q).Distance
		if distToScene < minSceneDist {
			return 0.0
		}

		closestMissRatio = math.Min(closestMissRatio, penumbra*distToScene/len)
		len += distToScene
	}
	return 0.0
}

// ambientVisibility samples the scene at increasing distances along the
// normal and accumulates geometrically weighted occlusion, normalized by the
// partial geometric series so a fully open hemisphere scores 1
func ambientVisibility(scene sdf.Scene, p, normal vec.Vec3, stepCount int, stepSize float64) float64 {
	accOcclusion := 0.0
	for step := 1; step <= stepCount; step++ {
		distStep := float64(step) * stepSize
		pStep := p.MultiplyAdd(normal, distStep)
		distSDF := scene.Evaluate(pStep).Distance
		occlusion := (distStep - vec.Clamp(distSDF, 0, distStep)) / distStep
		accOcclusion += math.Pow(0.5, float64(step)) * occlusion
	}
	maxAccOcclusion := 1.0 - math.Pow(0.5, float64(stepCount))
	return 1.0 - accOcclusion/maxAccOcclusion
}

// screenDirection builds the unit ray direction through a normalized screen
// coordinate in [-1, 1]^2
func (rm *RayMarcher) screenDirection(screenCoordinates vec.Vec2) vec.Vec3 {
	pU := screenCoordinates.X * rm.aspectRatio * rm.halfScreenLengthY
	pV := screenCoordinates.Y * rm.halfScreenLengthY
	return rm.w.MultiplyAdd(rm.v, pV).MultiplyAdd(rm.u, pU).Normalize()
}
