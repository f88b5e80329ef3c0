package scene

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// hash2D maps a lattice cell id to a pseudo-random value in [0, 1)
func hash2D(v vec.Vec2, offset float64) float64 {
	x := math.Sin(v.X+113.0*v.Y+offset) * 43758.5453123
	return math.Abs(x - math.Trunc(x))
}

// NewMeadowScene creates an endless meadow of bulbous flowers: a hollowed
// shell around a core sphere on an elongated stem, repeated over a jittered
// lattice, smoothly joined with a gently deformed floor. Core and shell
// materials blend across the smooth seam.
func NewMeadowScene() *Scene {
	light := vec.NewVec3(1.75e5, 3.5e5, 1.5e5)
	rp := sdf.NewReflectiveProperties(0.0, 0.0, 0.0, 1.0, 0.0)
	core := sdf.NewMaterial(light, rp, vec.NewVec3(50.0*toRadian, 1.0, 0.55), false, true)
	shell := sdf.NewMaterial(light, rp, vec.NewVec3(169.0*toRadian, 0.96, 0.55), false, true)
	floor := sdf.NewMaterial(light, rp, vec.NewVec3(211.0*toRadian, 0.73, 0.6), false, true)

	const cellSize = 2.75
	const hashInc = 0.1

	flower := func(p vec.Vec3, cellID vec.Vec2) sdf.Result {
		xJitter := 0.5 * (1.0 - 2.0*hash2D(cellID, 6.0*hashInc))
		zJitter := 0.5 * (1.0 - 2.0*hash2D(cellID, 7.0*hashInc))
		sphereRadius := 0.45 + 0.55*hash2D(cellID, 0.0)
		shellRadius := 1.1 * sphereRadius
		shellThickness := 0.025 * sphereRadius
		openingAngleXZ := math.Pi * (0.2 + 0.2*hash2D(cellID, 3.0*hashInc))
		openingAngleY := math.Pi * (0.2 + 0.1*hash2D(cellID, 4.0*hashInc))
		openingDistance := sphereRadius * (0.7 + 0.2*hash2D(cellID, 5.0*hashInc))
		openingRadius := shellRadius * (0.65 + 0.25*hash2D(cellID, 8.0*hashInc))
		shellOpeningK := 0.25 * sphereRadius
		shellCoreK := 0.1 * sphereRadius
		stemHeight := 0.65 + sphereRadius*0.7*hash2D(cellID, hashInc)
		stemRadius := sphereRadius * (0.15 + 0.1*hash2D(cellID, 2.0*hashInc))
		stemK := 0.9 * sphereRadius

		pLocal := sdf.Shift(p, vec.NewVec3(xJitter, sphereRadius+2.0*stemHeight, zJitter))
		dirOpening := vec.NewVec3(
			openingDistance*math.Sin(openingAngleY)*math.Cos(openingAngleXZ),
			openingDistance*math.Cos(openingAngleY),
			openingDistance*math.Sin(openingAngleY)*math.Sin(openingAngleXZ),
		)

		coreDist := sdf.Sphere(pLocal, sphereRadius)
		opening := sdf.Sphere(sdf.Shift(pLocal, dirOpening), openingRadius)
		shellDist, _ := sdf.SmoothDifference(
			sdf.Onion(sdf.Sphere(pLocal, shellRadius), shellThickness),
			opening,
			shellOpeningK,
		)
		stem := sdf.Sphere(
			sdf.ElongateY(
				sdf.Shift(pLocal, vec.NewVec3(0.0, -2.0*stemHeight, 0.0)),
				1.5*stemHeight,
			),
			stemRadius,
		)

		bulb, bulbT := sdf.SmoothUnion(coreDist, shellDist, shellCoreK)
		flowerMaterial := core.Lerp(shell, bulbT)
		flowerDist, _ := sdf.SmoothUnion(bulb, stem, stemK)
		return sdf.NewResult(flowerDist, flowerMaterial)
	}

	eval := func(p vec.Vec3) sdf.Result {
		flowers := sdf.RepeatXZ(flower, p, vec.NewVec2(cellSize, cellSize))

		floorDeformation := 0.03 *
			(math.Cos(2.0*math.Pi*p.X/cellSize) +
				math.Cos(2.0*math.Pi*p.Y/cellSize) +
				0.5*math.Cos(3.0*2.0*math.Pi*p.X/cellSize) +
				0.5*math.Cos(2.0*2.0*math.Pi*p.Y/cellSize))
		floorDist := sdf.Plane(p, vec.NewVec3(0.0, 1.0, 0.0), 0.15+floorDeformation)

		merged, mergedT := sdf.SmoothUnion(floorDist, flowers.Distance, 0.65)
		return sdf.NewResult(merged, floor.Lerp(flowers.Material, mergedT*mergedT))
	}

	const hatchBaseSepInMM = 0.65
	return &Scene{
		SDF:            sdf.SceneFunc(eval),
		Camera:         vec.NewVec3(5.0, 7.0, 5.0),
		LookAt:         vec.NewVec3(0.9, 1.35, -4.0),
		Up:             vec.NewVec3(0.0, 1.0, 0.0),
		FovYDegrees:    45.0,
		StepSizeFactor: 0.5,
		StreamlineHSL:  vec.NewVec3(0.0, 0.0, 0.0),
		HatchPasses: []HatchPass{
			{LightnessThreshold: 0.85, LineAngle: 0.2 * math.Pi, LineSepInMM: hatchBaseSepInMM},
			{LightnessThreshold: 0.5, LineAngle: 0.55 * math.Pi, LineSepInMM: 0.75 * hatchBaseSepInMM},
			{LightnessThreshold: 0.25, LineAngle: 0.85 * math.Pi, LineSepInMM: 0.3 * hatchBaseSepInMM},
		},
		DrawEdges: true,
	}
}
