package scene

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/noise"
	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// NewPillarsScene creates a tower of noise-displaced torus windings rising
// from an infinite field of rounded bricks. The surface is unshaded and
// hatched: darkness comes from layered hatch passes instead of the
// background fill.
func NewPillarsScene() *Scene {
	light := vec.UnitFromPolar(0.29*math.Pi, 0.3*math.Pi).Multiply(1.0e5)

	pillar := sdf.NewMaterial(light,
		sdf.NewReflectiveProperties(0.1, 0.0, 0.0, 0.9, 0.0),
		vec.NewVec3(0.0, 0.0, 1.0), false, true)

	brick := func(p vec.Vec3, cellID vec.Vec2) sdf.Result {
		dist := sdf.Round(sdf.Box(p, vec.NewVec3(0.5, 0.1, 0.25)), 0.1)
		return sdf.NewResult(dist, pillar)
	}

	eval := func(p vec.Vec3) sdf.Result {
		// Wind a torus into a helix: fold Y into one period, with the fold
		// line twisted around the axis by the polar angle
		const yPeriod = 1.0
		xzAngle := math.Atan2(p.Z, p.X)
		periodOffset := xzAngle * (yPeriod / (2.0 * math.Pi))
		y := p.Y + periodOffset
		yIndex := math.Round(y / yPeriod)
		yOffset := y - yIndex*yPeriod

		// Sway the axis with height
		x := p.X + 1.2*noise.Noise1D(0.15*p.Y)
		z := p.Z + 2.0*noise.Noise1D(0.15*p.Y+370.0)

		helix := sdf.Torus(vec.NewVec3(x, yOffset, z), 1.0, 0.1)
		thicknessModifier := 0.31*vec.Smoothstep(0.0, 10.0, p.Y) - 0.2
		helix += thicknessModifier

		bricks := sdf.RepeatXZ(brick, p, vec.NewVec2(1.15, 0.65))

		merged, _ := sdf.SmoothUnion(bricks.Distance, helix, 0.5)
		return sdf.NewResult(merged, pillar)
	}

	const hatchBaseSepInMM = 0.65
	return &Scene{
		SDF:            sdf.SceneFunc(eval),
		Camera:         vec.NewVec3(-1.0, 1.5, 6.0),
		LookAt:         vec.NewVec3(0.0, 4.0, 0.0),
		Up:             vec.NewVec3(0.0, 1.0, 0.0),
		FovYDegrees:    80.0,
		StepSizeFactor: 0.2,
		StreamlineHSL:  vec.NewVec3(0.0, 0.0, 0.0),
		HatchPasses: []HatchPass{
			{LightnessThreshold: 0.85, LineAngle: 0.2 * math.Pi, LineSepInMM: hatchBaseSepInMM},
			{LightnessThreshold: 0.5, LineAngle: 0.55 * math.Pi, LineSepInMM: 0.75 * hatchBaseSepInMM},
			{LightnessThreshold: 0.25, LineAngle: 0.85 * math.Pi, LineSepInMM: 0.3 * hatchBaseSepInMM},
		},
		DrawEdges: true,
	}
}
