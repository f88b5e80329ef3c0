package field

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Pixels carrying the missing-data sentinel render as magenta in the
// grayscale debug images
var sentinelColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// BackgroundImage renders the per-pixel background color. Shaded pixels with
// valid lightness get their HSL lightness scaled by the computed shading.
func (f *Field) BackgroundImage() *image.RGBA {
	return f.toImage(func(p Properties) color.RGBA {
		hsl := p.Background
		if p.IsShaded && !math.IsNaN(p.Lightness) {
			hsl = vec.NewVec3(hsl.X, hsl.Y, vec.Clamp(hsl.Z*p.Lightness, 0, 1))
		}
		rgb := vec.HSLToRGB(hsl)
		return color.RGBA{
			R: uint8(255.0 * rgb.X),
			G: uint8(255.0 * rgb.Y),
			B: uint8(255.0 * rgb.Z),
			A: 255,
		}
	})
}

// LightnessImage renders lightness as grayscale
func (f *Field) LightnessImage() *image.RGBA {
	return f.toImage(func(p Properties) color.RGBA {
		if math.IsNaN(p.Lightness) {
			return sentinelColor
		}
		l := uint8(255.0 * vec.Clamp(p.Lightness, 0, 1))
		return color.RGBA{R: l, G: l, B: l, A: 255}
	})
}

// DirectionImage renders the flow direction wrapped to [0, 2pi) as grayscale
func (f *Field) DirectionImage() *image.RGBA {
	return f.toImage(func(p Properties) color.RGBA {
		if math.IsNaN(p.Direction) {
			return sentinelColor
		}
		normalized := math.Mod(p.Direction, 2.0*math.Pi)
		if normalized < 0 {
			normalized += 2.0 * math.Pi
		}
		d := uint8(255.0 * normalized / (2.0 * math.Pi))
		return color.RGBA{R: d, G: d, B: d, A: 255}
	})
}

// DepthImage renders depth as grayscale, normalized over the valid range and
// inverted so near surfaces are bright
func (f *Field) DepthImage() *image.RGBA {
	minDepth := math.Inf(1)
	maxDepth := math.Inf(-1)
	for _, p := range f.data {
		if !math.IsNaN(p.Depth) {
			minDepth = math.Min(minDepth, p.Depth)
			maxDepth = math.Max(maxDepth, p.Depth)
		}
	}
	return f.toImage(func(p Properties) color.RGBA {
		if math.IsNaN(p.Depth) {
			return sentinelColor
		}
		normalized := (p.Depth - minDepth) / (maxDepth - minDepth)
		d := uint8(255.0 * (1.0 - normalized))
		return color.RGBA{R: d, G: d, B: d, A: 255}
	})
}

func (f *Field) toImage(pixelColor func(Properties) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	for iy := 0; iy < f.height; iy++ {
		for ix := 0; ix < f.width; ix++ {
			img.SetRGBA(ix, iy, pixelColor(f.data[iy*f.width+ix]))
		}
	}
	return img
}
