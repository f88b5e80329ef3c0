package sdf

import "github.com/df07/go-sdf-plotter/pkg/vec"

// Result is the output of evaluating a scene at a point: the signed distance
// to the closest surface and the material carried by that surface
type Result struct {
	Distance float64
	Material Material
}

// NewResult creates a new Result
func NewResult(distance float64, material Material) Result {
	return Result{Distance: distance, Material: material}
}

// Min returns the closer of two results
func (r Result) Min(other Result) Result {
	if r.Distance < other.Distance {
		return r
	}
	return other
}

// Scene evaluates the signed distance and material of a composed scene at a
// 3D point. Implementations must be safe for concurrent calls; the field
// builder evaluates pixels in parallel.
type Scene interface {
	Evaluate(p vec.Vec3) Result
}

// SceneFunc adapts a plain function to the Scene interface
type SceneFunc func(p vec.Vec3) Result

// Evaluate implements Scene
func (f SceneFunc) Evaluate(p vec.Vec3) Result {
	return f(p)
}

// HeightMap is a 2D elevation function over the XZ plane. Like Scene, it must
// be safe for concurrent calls.
type HeightMap func(x, z float64) float64

// NewHeightMapScene wraps a heightmap as an implicit scene with the given
// material. The implicit function is p.y - height(x, z), so distance is
// positive above the surface; it is not unit-Lipschitz, which is why the ray
// marcher applies its step-size safety factor.
func NewHeightMapScene(h HeightMap, material Material) Scene {
	return SceneFunc(func(p vec.Vec3) Result {
		return Result{Distance: p.Y - h(p.X, p.Z), Material: material}
	})
}
