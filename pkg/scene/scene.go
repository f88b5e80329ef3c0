// Package scene contains the plotter artworks: each scene couples a signed
// distance field with the camera, marcher, and stroke parameters used to
// draw it.
package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/df07/go-sdf-plotter/pkg/sdf"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

const toRadian = math.Pi / 180.0

// HatchPass describes one family of parallel hatch lines drawn over pixels
// darker than the threshold. Separations are in millimeters on the plotted
// page; the renderer scales them to pixels.
type HatchPass struct {
	LightnessThreshold float64
	LineAngle          float64 // Radians in [0, pi)
	LineSepInMM        float64
}

// Scene contains all the elements needed for rendering an SDF artwork
type Scene struct {
	SDF            sdf.Scene
	Camera         vec.Vec3
	LookAt         vec.Vec3
	Up             vec.Vec3
	FovYDegrees    float64
	StepSizeFactor float64  // Sphere-tracing safety factor for non-Lipschitz fields
	StreamlineHSL  vec.Vec3 // Stroke color of the flow-field streamlines
	HatchPasses    []HatchPass
	DrawEdges      bool
}

var builtinScenes = map[string]func() *Scene{
	"capsules": NewCapsulesScene,
	"meadow":   NewMeadowScene,
	"ocean":    NewOceanScene,
	"pillars":  NewPillarsScene,
}

// ByName creates the builtin scene with the given name
func ByName(name string) (*Scene, error) {
	construct, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return construct(), nil
}

// Names lists the builtin scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builtinScenes))
	for name := range builtinScenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
