package scene

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// oceanHeight stacks three octaves of crossed sine swells, each four times
// the frequency and a quarter the amplitude of the previous
func oceanHeight(x, z float64) float64 {
	const octaves = 3
	freq := 1.0
	h := 0.0
	for i := 0; i < octaves; i++ {
		h += (1.0 / freq) * math.Sin(freq*x) * math.Sin(freq*z)
		freq *= 4.0
	}
	return h
}

// NewOceanScene creates a swelling water surface traced as the implicit
// surface |h(x, z) - y|. The field is unsigned and far from unit-Lipschitz,
// so the marcher runs with a strong step-size safety factor.
func NewOceanScene() *Scene {
	light := vec.NewVec3(0.0, 8.0, 10.0)
	surface := sdf.NewMaterial(light,
		sdf.NewReflectiveProperties(0.1, 0.0, 0.0, 0.8, 0.1),
		vec.NewVec3(0.0, 0.0, 1.0), true, false)

	eval := func(p vec.Vec3) sdf.Result {
		h := oceanHeight(p.X, p.Z)
		return sdf.NewResult(math.Abs(h-p.Y), surface)
	}

	// The height field slopes at up to twice the lateral distance
	const maxChangeRate = 2.0
	return &Scene{
		SDF:            sdf.SceneFunc(eval),
		Camera:         vec.NewVec3(0.0, 2.5, 5.0),
		LookAt:         vec.NewVec3(0.0, 0.0, 0.0),
		Up:             vec.NewVec3(0.0, 1.0, 0.0),
		FovYDegrees:    55.0,
		StepSizeFactor: 1.0 / math.Sqrt(maxChangeRate*maxChangeRate+1.0),
		StreamlineHSL:  vec.NewVec3(227.0*toRadian, 1.0, 0.0),
	}
}
