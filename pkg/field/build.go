package field

import (
	"math"
	"runtime"
	"sync"

	"github.com/df07/go-sdf-plotter/pkg/marcher"
	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// tangentOffsetH is the finite offset along the tangent-plane direction used
// to discretize the canvas-space flow direction
const tangentOffsetH = 0.01

// FromScene builds a field by intersecting one ray per pixel with the scene.
// The tangent-plane angle selects which in-plane direction (relative to the
// light-oriented tangent basis) becomes the pixel's flow direction. Rows are
// evaluated in parallel; each pixel writes only its own slot.
func FromScene(rm *marcher.RayMarcher, scene sdf.Scene, width, height int, angleInTangentPlane float64) *Field {
	return build(rm, scene, width, height, angleInTangentPlane, rm.SceneNormal)
}

// FromHeightMap builds a field for a heightmap surface with a single material.
// Normals come from the lateral-sample heightmap estimator instead of the full
// central-difference one.
func FromHeightMap(rm *marcher.RayMarcher, h sdf.HeightMap, material sdf.Material, width, height int, angleInTangentPlane float64) *Field {
	scene := sdf.NewHeightMapScene(h, material)
	return build(rm, scene, width, height, angleInTangentPlane, rm.HeightMapNormal)
}

func build(rm *marcher.RayMarcher, scene sdf.Scene, width, height int, angleInTangentPlane float64, normalAt func(sdf.Scene, vec.Vec3) vec.Vec3) *Field {
	f := New(width, height)
	offsetAngleVector := vec.UnitFromAngle(angleInTangentPlane)

	rows := make(chan int, height)
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for iy := range rows {
				for ix := 0; ix < width; ix++ {
					screenCoordinates := ToScreenCoordinates(width, height, float64(ix)+0.5, float64(iy)+0.5)
					hit, ok := rm.IntersectScene(scene, screenCoordinates)
					if !ok {
						continue
					}
					normal := normalAt(scene, hit.Point)
					material := hit.Material
					f.data[iy*width+ix] = Properties{
						Lightness:  rm.LightIntensity(scene, material.Reflective, hit.Point, normal, material.LightSource),
						Direction:  worldToCanvasDirection(rm, width, height, hit.Point, normal, material.LightSource, offsetAngleVector),
						Depth:      hit.Distance,
						Background: material.Background,
						IsShaded:   material.IsShaded,
						IsHatched:  material.IsHatched,
					}
				}
			}
		}()
	}
	for iy := 0; iy < height; iy++ {
		rows <- iy
	}
	close(rows)
	wg.Wait()

	return f
}

// worldToCanvasDirection computes the per-pixel flow direction: an
// orthonormal basis of the tangent plane is oriented toward the light, an
// in-plane offset direction is formed from the given angle, and the hit point
// shifted by +/- a small amount along it is projected back into canvas
// coordinates. The polar angle of the projected difference is the direction.
// Returns NaN when the normal is parallel to the light and no basis exists.
func worldToCanvasDirection(rm *marcher.RayMarcher, width, height int, p, normal, lightSource vec.Vec3, offsetAngleVector vec.Vec2) float64 {
	u, v, ok := vec.OrthonormalBasis(normal, lightSource.Subtract(p))
	if !ok {
		return math.NaN()
	}
	dirInPlane := v.Multiply(offsetAngleVector.X).MultiplyAdd(u, offsetAngleVector.Y)

	pPlus := ToCanvasCoordinates(width, height, rm.ToScreenCoordinates(p.MultiplyAdd(dirInPlane, tangentOffsetH)))
	pMinus := ToCanvasCoordinates(width, height, rm.ToScreenCoordinates(p.MultiplyAdd(dirInPlane, -tangentOffsetH)))
	return pPlus.Subtract(pMinus).PolarAngle()
}
