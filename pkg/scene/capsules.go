package scene

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// NewCapsulesScene creates a group of four standing capsules on a ground
// plane in front of a tilted backdrop. The capsules melt smoothly into the
// ground, blending their material into the floor's around the contact line.
func NewCapsulesScene() *Scene {
	light := vec.UnitFromPolar(0.35*math.Pi, 0.3*math.Pi).Multiply(1.0e5)

	ground := sdf.NewMaterial(light,
		sdf.NewReflectiveProperties(0.1, 0.1, 0.0, 0.8, 0.0),
		vec.NewVec3(211.0*toRadian, 0.73, 0.6), true, false)
	backdrop := sdf.NewMaterial(light,
		sdf.NewReflectiveProperties(0.3, 0.0, 0.0, 0.7, 0.0),
		vec.NewVec3(227.0*toRadian, 0.35, 0.75), true, false)
	capsule := sdf.NewMaterial(light,
		sdf.NewReflectiveProperties(0.1, 0.1, 0.0, 0.8, 1.0),
		vec.NewVec3(50.0*toRadian, 1.0, 0.55), true, false)

	capsules := []struct {
		offset     vec.Vec3
		elongation float64
		radius     float64
	}{
		{vec.NewVec3(1.0, 0.0, 0.25), 0.45, 1.0},
		{vec.NewVec3(-1.5, 0.0, 0.0), 0.6, 0.9},
		{vec.NewVec3(-0.2, 0.0, -2.0), 1.5, 0.8},
		{vec.NewVec3(2.0, 0.0, -2.0), 2.1, 0.8},
	}

	backdropTilt := -30.0 * toRadian
	backdropNormal := vec.NewVec3(math.Sin(backdropTilt), 0.0, math.Cos(backdropTilt))
	up := vec.NewVec3(0.0, 1.0, 0.0)

	eval := func(p vec.Vec3) sdf.Result {
		base := sdf.Plane(p, up, 0.0)
		background := sdf.Plane(p, backdropNormal, -8.0)

		nearest := math.Inf(1)
		for _, c := range capsules {
			d := sdf.Sphere(sdf.ElongateY(sdf.Shift(p, c.offset), c.elongation), c.radius)
			nearest = math.Min(nearest, d)
		}

		merged, mix := sdf.SmoothUnion(base, nearest, 0.4)
		result := sdf.NewResult(merged, ground.Lerp(capsule, mix*mix))
		return result.Min(sdf.NewResult(background, backdrop))
	}

	return &Scene{
		SDF:            sdf.SceneFunc(eval),
		Camera:         vec.NewVec3(0.0, 2.5, 5.0),
		LookAt:         vec.NewVec3(0.0, 1.0, 0.0),
		Up:             up,
		FovYDegrees:    60.0,
		StepSizeFactor: 1.0,
		StreamlineHSL:  vec.NewVec3(0.0, 0.0, 0.0),
		DrawEdges:      true,
	}
}
