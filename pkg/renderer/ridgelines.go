package renderer

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// DomainRegion is the trapezoid of heightmap domain visible from a 2D camera:
// the region between the near and far clip segments of a top-down view
// frustum. Ridgeline renders sample the heightmap over this region.
type DomainRegion struct {
	NearA vec.Vec2
	NearB vec.Vec2
	FarA  vec.Vec2
	FarB  vec.Vec2
}

// NewDomainRegion builds the visible trapezoid from a camera position and
// look-at target in the heightmap's XZ domain, a horizontal field of view in
// degrees, and near/far distances
func NewDomainRegion(camera, lookAt vec.Vec2, fovDegrees, near, far float64) DomainRegion {
	dir := lookAt.Subtract(camera)
	dir = dir.Multiply(1.0 / dir.Length())
	tanFov := math.Tan(0.5 * math.Pi / 180.0 * fovDegrees)
	dNear := near * tanFov
	dFar := far * tanFov
	dirOrthoCCW := vec.NewVec2(-dir.Y, dir.X)
	mNear := camera.MultiplyAdd(dir, near)
	mFar := camera.MultiplyAdd(dir, far)
	return DomainRegion{
		NearA: mNear.MultiplyAdd(dirOrthoCCW, dNear),
		NearB: mNear.MultiplyAdd(dirOrthoCCW, -dNear),
		FarA:  mFar.MultiplyAdd(dirOrthoCCW, dFar),
		FarB:  mFar.MultiplyAdd(dirOrthoCCW, -dFar),
	}
}

// Lerp maps trapezoid parameters to a domain point: tAB sweeps across a
// ridgeline from side A to side B, tNearFar from the near edge to the far
func (r DomainRegion) Lerp(tAB, tNearFar float64) vec.Vec2 {
	nfA := r.NearA.Lerp(r.FarA, tNearFar)
	nfB := r.NearB.Lerp(r.FarB, tNearFar)
	return nfA.Lerp(nfB, tAB)
}

// RidgelineHeightFunc evaluates the drawn height of a ridgeline sample.
// uvDomain is the heightmap domain point, tDomain the (across, near-far)
// trapezoid parameters, and tScreen the screen-space position before the
// height offset; the result is subtracted from the baseline in canvas units.
type RidgelineHeightFunc func(uvDomain, tDomain, tScreen vec.Vec2) float64

// RenderHeightMapRidgelines draws a heightmap as stacked ridgelines from back
// to front. Each line is a polyline of heightmap samples along a constant
// near-far parameter, closed into a polygon reaching below the canvas and
// filled, so nearer lines occlude farther ones. Depth is compressed toward
// the horizon by an exponential screen mapping. Buffer lines above and below
// the [0, 1] parameter range fill the margins.
func RenderHeightMapRidgelines(
	c *canvas.Canvas,
	region DomainRegion,
	lineCount, bufferCountNear, bufferCountFar, segmentCount int,
	lineWidth float64,
	lineRGB canvas.RGB,
	fillGradient *canvas.LinearGradient,
	heightmap RidgelineHeightFunc,
) {
	width := float64(c.Width())
	height := float64(c.Height())
	margin := 2.0*lineWidth + 1.0

	// Screen depth compression base
	const lnBase = 0.7

	for lineIdx := lineCount + bufferCountFar - 1; lineIdx >= -bufferCountNear; lineIdx-- {
		tNearFar := float64(lineIdx) / float64(lineCount-1)

		samples := make([]vec.Vec2, 0, segmentCount+1)
		for segIdx := 0; segIdx <= segmentCount; segIdx++ {
			tAB := float64(segIdx) / float64(segmentCount)
			uvDomain := region.Lerp(tAB, tNearFar)
			tDomain := vec.NewVec2(tAB, tNearFar)
			tScreen := vec.NewVec2(tAB, math.Exp(-tNearFar*lnBase))
			h := heightmap(uvDomain, tDomain, tScreen)
			samples = append(samples, vec.NewVec2(width*tScreen.X, height*(tScreen.Y-h)))
		}
		firstY := samples[0].Y
		lastY := samples[len(samples)-1].Y

		// Close the ridgeline into a polygon reaching past the canvas bottom
		// so the fill occludes every line behind it
		points := make([]vec.Vec2, 0, len(samples)+4)
		points = append(points,
			vec.NewVec2(-margin, height+margin),
			vec.NewVec2(-margin, firstY),
		)
		points = append(points, samples...)
		points = append(points,
			vec.NewVec2(width+margin, lastY),
			vec.NewVec2(width+margin, height+margin),
		)

		fill := fillGradient.RGB(1.0 - 0.5*(firstY+lastY)/height)
		c.FillAndStrokeClosed(points, fill, lineWidth, lineRGB)
	}
}
