package streamline

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Config bundles the streamline placement parameters
type Config struct {
	DSepMin       float64 // Separation distance at lightness 0
	DSepMax       float64 // Separation distance at lightness 1
	DTestFactor   float64 // Tightening factor applied to dSep during growth
	DStep         float64 // Fixed arc-length integration step
	MaxDepthStep  float64 // Largest allowed depth change between steps
	MaxAccumAngle float64 // Total turning angle budget, split between branches
	MaxSteps      int     // Total step budget, split between branches
	MinSteps      int     // Streamlines of MinSteps+1 or fewer points are discarded
	SeedBoxSize   int     // Jittered seed grid cell size in pixels
}

// DefaultConfig returns the placement parameters tuned for plotter output
func DefaultConfig() Config {
	return Config{
		DSepMin:       4.0,
		DSepMax:       30.0,
		DTestFactor:   0.8,
		DStep:         1.0,
		MaxDepthStep:  0.25,
		MaxAccumAngle: 1.2 * math.Pi,
		MaxSteps:      450,
		MinSteps:      4,
		SeedBoxSize:   40,
	}
}

// SeparationFromLightness maps local lightness to the required streamline
// separation. Cubing the lightness makes separation shrink faster in dark
// regions, packing strokes more densely where shading is low.
func SeparationFromLightness(dSepMin, dSepMax, lightness float64) float64 {
	return dSepMin + (dSepMax-dSepMin)*lightness*lightness*lightness
}

// Trace grows a streamline bidirectionally from the seed point through the
// field's direction values. The seed is validated against the registry at the
// full separation distance, with the originating streamline exempted at the
// relaxed test distance; growth steps are checked at the test distance only.
// Returns false if the seed is rejected or the grown line is too short.
func Trace(f *field.Field, reg *Registry, originID uint32, seed vec.Vec2, cfg Config) ([]vec.Vec2, bool) {
	start, ok := f.PixelValue(seed.X, seed.Y)
	if !ok {
		return nil, false
	}
	dSep := SeparationFromLightness(cfg.DSepMin, cfg.DSepMax, start.Lightness)
	if !reg.IsPointAllowed(seed, dSep, cfg.DTestFactor*dSep, originID) {
		return nil, false
	}

	forward := growBranch(f, reg, seed, start, cfg, 1.0)
	backward := growBranch(f, reg, seed, start, cfg, -1.0)

	line := make([]vec.Vec2, 0, len(backward)+1+len(forward))
	for i := len(backward) - 1; i >= 0; i-- {
		line = append(line, backward[i])
	}
	line = append(line, seed)
	line = append(line, forward...)

	if len(line) <= cfg.MinSteps+1 {
		return nil, false
	}
	return line, true
}

// growBranch integrates one branch of a streamline, stepping by a fixed arc
// length along the direction field (negated for the backward branch). The
// branch stops at missing field data, at half the turning angle budget, at a
// depth discontinuity, at a separation violation, or at half the step budget.
func growBranch(f *field.Field, reg *Registry, seed vec.Vec2, start field.Properties, cfg Config, sign float64) []vec.Vec2 {
	var line []vec.Vec2
	pLast := seed
	dirLast := start.Direction
	depthLast := start.Depth
	accumAngle := 0.0

	for step := 0; step < cfg.MaxSteps/2; step++ {
		pNew := pLast.MultiplyAdd(vec.UnitFromAngle(dirLast), sign*cfg.DStep)
		pv, ok := f.PixelValue(pNew.X, pNew.Y)
		if !ok {
			break
		}
		accumAngle += math.Abs(wrapAngle(pv.Direction - dirLast))
		if accumAngle > 0.5*cfg.MaxAccumAngle {
			break
		}
		if math.Abs(pv.Depth-depthLast) > cfg.MaxDepthStep {
			break
		}
		dTest := cfg.DTestFactor * SeparationFromLightness(cfg.DSepMin, cfg.DSepMax, pv.Lightness)
		if !reg.IsPointAllowed(pNew, dTest, dTest, 0) {
			break
		}
		line = append(line, pNew)
		pLast = pNew
		dirLast = pv.Direction
		depthLast = pv.Depth
	}
	return line
}

// wrapAngle maps an angle difference into (-pi, pi]
func wrapAngle(angle float64) float64 {
	wrapped := math.Mod(angle, 2.0*math.Pi)
	if wrapped > math.Pi {
		wrapped -= 2.0 * math.Pi
	} else if wrapped <= -math.Pi {
		wrapped += 2.0 * math.Pi
	}
	return wrapped
}
