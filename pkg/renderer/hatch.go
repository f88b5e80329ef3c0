package renderer

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// RenderHatchLines covers the canvas with parallel hatch lines and strokes
// only the runs passing over hatch-eligible pixels darker than the lightness
// threshold. Each line is walked in stepSize increments; contiguous active
// runs become individual strokes.
func RenderHatchLines(f *field.Field, c *canvas.Canvas, lightnessThreshold, stepSize float64, rgb canvas.RGB, strokeWidth, lineAngle, lineSep float64) {
	width := float64(f.Width())
	height := float64(f.Height())

	isPixelActive := func(p vec.Vec2) bool {
		pixel, ok := f.PixelValue(p.X, p.Y)
		return ok && pixel.IsHatched && pixel.Lightness <= lightnessThreshold
	}

	for _, endpoints := range hatchLineEndpoints(width, height, lineAngle, lineSep) {
		p0, p1 := endpoints[0], endpoints[1]
		dir := p1.Subtract(p0)
		dist := dir.Length()
		if dist == 0 {
			continue
		}
		stepCount := int(math.Ceil(dist / stepSize))
		dir = dir.Multiply(1.0 / dist)

		var runStart *vec.Vec2
		if isPixelActive(p0) {
			runStart = &p0
		}
		for step := 1; step < stepCount; step++ {
			p := p0.MultiplyAdd(dir, float64(step)*stepSize)
			active := isPixelActive(p)
			if runStart == nil && active {
				start := p
				runStart = &start
			} else if runStart != nil && (!active || step == stepCount-1) {
				c.StrokeLine(runStart.X, runStart.Y, p.X, p.Y, strokeWidth, rgb)
				runStart = nil
			}
		}
	}
}

// hatchLineEndpoints returns the clipped endpoints of parallel lines at the
// given angle in [0, pi) covering the whole canvas with perpendicular
// separation lineSep
func hatchLineEndpoints(width, height, lineAngle, lineSep float64) [][2]vec.Vec2 {
	sinA := math.Sin(lineAngle)
	cosA := math.Cos(lineAngle)
	const eps = 0.0001

	var endpoints [][2]vec.Vec2

	switch {
	case math.Abs(sinA) < eps: // horizontal
		lineCount := int(math.Ceil(height / lineSep))
		for i := 0; i < lineCount; i++ {
			y := (float64(i) + 0.5) * lineSep
			endpoints = append(endpoints, [2]vec.Vec2{vec.NewVec2(0, y), vec.NewVec2(width, y)})
		}
	case math.Abs(cosA) < eps: // vertical
		lineCount := int(math.Ceil(width / lineSep))
		for i := 0; i < lineCount; i++ {
			x := (float64(i) + 0.5) * lineSep
			endpoints = append(endpoints, [2]vec.Vec2{vec.NewVec2(x, 0), vec.NewVec2(x, height)})
		}
	default:
		// Sweep across X; each line enters through the top or a side edge
		dx := math.Abs(lineSep / sinA)
		m := sinA / cosA
		mInverse := cosA / sinA
		lineCount := int(math.Ceil((width + math.Abs(mInverse)*height) / dx))

		xStart := 0.5 * dx
		xIncrement := dx
		if m < 0 {
			xStart = width - 0.5*dx
			xIncrement = -dx
		}
		for i := 0; i < lineCount; i++ {
			x0Tick := xStart + float64(i)*xIncrement
			x0 := vec.Clamp(x0Tick, 0, width)
			y0 := (x0Tick - x0) * m
			x1Tick := x0Tick - height*mInverse
			x1 := vec.Clamp(x1Tick, 0, width)
			y1 := height - (x1-x1Tick)*m
			endpoints = append(endpoints, [2]vec.Vec2{vec.NewVec2(x0, y0), vec.NewVec2(x1, y1)})
		}
	}
	return endpoints
}
