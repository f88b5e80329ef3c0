package renderer

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Sentinel pixels enter the edge layers as a huge constant so silhouettes
// against empty background register as steep gradients
const edgeSentinelValue = 1.0e6

// Gradient magnitudes above these thresholds mark a pixel as an edge
const (
	directionEdgeThreshold = 5.75
	depthEdgeThreshold     = 0.07
)

var sobelX = [9]float64{
	-1, 0, 1,
	-2, 0, 2,
	-1, 0, 1,
}

var sobelY = [9]float64{
	-1, -2, -1,
	0, 0, 0,
	1, 2, 1,
}

// RenderEdges marks depth and direction discontinuities of the field with
// filled dots. Depth edges are detected on the logarithm of depth so the
// threshold is relative rather than absolute; direction edges combine the
// gradients of the direction's cosine and sine, which are continuous even
// where the raw angle wraps.
func RenderEdges(f *field.Field, c *canvas.Canvas, rgb canvas.RGB, edgeWidth float64) {
	width := f.Width()
	height := f.Height()

	lnDepth := fieldLayer(f, func(p field.Properties) float64 {
		if math.IsNaN(p.Depth) {
			return edgeSentinelValue
		}
		return math.Log(p.Depth)
	})
	cosDir := fieldLayer(f, func(p field.Properties) float64 {
		if math.IsNaN(p.Direction) {
			return edgeSentinelValue
		}
		return math.Cos(p.Direction)
	})
	sinDir := fieldLayer(f, func(p field.Properties) float64 {
		if math.IsNaN(p.Direction) {
			return edgeSentinelValue
		}
		return math.Sin(p.Direction)
	})

	depthGradX := convolve3x3(lnDepth, width, height, sobelX)
	depthGradY := convolve3x3(lnDepth, width, height, sobelY)
	cosGradX := convolve3x3(cosDir, width, height, sobelX)
	cosGradY := convolve3x3(cosDir, width, height, sobelY)
	sinGradX := convolve3x3(sinDir, width, height, sobelX)
	sinGradY := convolve3x3(sinDir, width, height, sobelY)

	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			i := iy*width + ix
			magnitudeDepth := vec.NewVec2(depthGradX[i], depthGradY[i]).Length()
			magnitudeDir := math.Sqrt(
				vec.NewVec2(cosGradX[i], cosGradY[i]).LengthSquared() +
					vec.NewVec2(sinGradX[i], sinGradY[i]).LengthSquared())
			if magnitudeDir > directionEdgeThreshold || magnitudeDepth > depthEdgeThreshold {
				c.FillPoint(float64(ix), float64(iy), 0.5*edgeWidth, rgb)
			}
		}
	}
}

// fieldLayer samples every pixel's raw properties into a flat float layer,
// letting the extractor handle each sentinel field individually
func fieldLayer(f *field.Field, value func(p field.Properties) float64) []float64 {
	width := f.Width()
	height := f.Height()
	layer := make([]float64, width*height)
	for iy := 0; iy < height; iy++ {
		for ix := 0; ix < width; ix++ {
			layer[iy*width+ix] = value(f.PixelAt(ix, iy))
		}
	}
	return layer
}

// convolve3x3 applies a 3x3 kernel; border pixels stay zero
func convolve3x3(src []float64, width, height int, kernel [9]float64) []float64 {
	dst := make([]float64, len(src))
	for iy := 1; iy < height-1; iy++ {
		for ix := 1; ix < width-1; ix++ {
			sum := 0.0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					sum += kernel[(ky+1)*3+(kx+1)] * src[(iy+ky)*width+(ix+kx)]
				}
			}
			dst[iy*width+ix] = sum
		}
	}
	return dst
}
