// Package field holds the per-pixel property canvas connecting the ray
// marcher to the streamline engine: lightness, flow direction, and depth per
// pixel, plus the background color and material flags needed for drawing.
package field

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Properties are the values stored per pixel. A pixel with no scene
// intersection keeps NaN in Lightness, Direction, and Depth; the direction
// alone can be NaN when the surface normal is parallel to the light and no
// tangent basis exists, so all three gate validity independently.
type Properties struct {
	Lightness  float64
	Direction  float64 // Flow direction in radians, unwrapped
	Depth      float64 // Marched ray length from the camera
	Background vec.Vec3
	IsShaded   bool
	IsHatched  bool
}

// Field is a dense width x height canvas of pixel properties. It is built
// once by parallel per-pixel evaluation and read-only afterwards.
type Field struct {
	data   []Properties
	width  int
	height int
}

// New creates a field with every pixel initialized to the missing-data state
func New(width, height int) *Field {
	data := make([]Properties, width*height)
	for i := range data {
		data[i] = Properties{
			Lightness:  math.NaN(),
			Direction:  math.NaN(),
			Depth:      math.NaN(),
			Background: vec.NewVec3(0, 0, 1),
		}
	}
	return &Field{data: data, width: width, height: height}
}

// Width returns the field width in pixels
func (f *Field) Width() int { return f.width }

// Height returns the field height in pixels
func (f *Field) Height() int { return f.height }

// AspectRatio returns width over height
func (f *Field) AspectRatio() float64 {
	return float64(f.width) / float64(f.height)
}

// SetPixel stores the properties of the pixel at integer coordinates.
// Out-of-bounds coordinates are ignored.
func (f *Field) SetPixel(ix, iy int, p Properties) {
	if ix < 0 || iy < 0 || ix >= f.width || iy >= f.height {
		return
	}
	f.data[iy*f.width+ix] = p
}

// PixelAt returns the raw stored properties at integer coordinates, including
// any NaN sentinels. Out-of-bounds coordinates return the missing-data state.
// Most consumers want PixelValue; this is for passes like edge detection that
// inspect the sentinel fields individually.
func (f *Field) PixelAt(ix, iy int) Properties {
	if ix < 0 || iy < 0 || ix >= f.width || iy >= f.height {
		return Properties{
			Lightness:  math.NaN(),
			Direction:  math.NaN(),
			Depth:      math.NaN(),
			Background: vec.NewVec3(0, 0, 1),
		}
	}
	return f.data[iy*f.width+ix]
}

// PixelValue looks up the pixel containing the continuous canvas coordinate.
// It returns false for out-of-bounds coordinates and for pixels carrying the
// missing-data sentinel in any of lightness, direction, or depth.
func (f *Field) PixelValue(x, y float64) (Properties, bool) {
	if x < 0 || y < 0 || x >= float64(f.width) || y >= float64(f.height) {
		return Properties{}, false
	}
	p := f.data[int(y)*f.width+int(x)]
	if math.IsNaN(p.Lightness) || math.IsNaN(p.Direction) || math.IsNaN(p.Depth) {
		return Properties{}, false
	}
	return p, true
}

// ToScreenCoordinates maps a canvas pixel coordinate to normalized screen
// space in [-1, 1]^2, with the screen Y axis pointing up
func ToScreenCoordinates(width, height int, x, y float64) vec.Vec2 {
	return vec.NewVec2(
		2.0*(x/float64(width)-0.5),
		-2.0*(y/float64(height)-0.5),
	)
}

// ToCanvasCoordinates maps a normalized screen coordinate back to canvas
// pixel space
func ToCanvasCoordinates(width, height int, screenCoordinates vec.Vec2) vec.Vec2 {
	return vec.NewVec2(
		0.5*(screenCoordinates.X+1.0)*float64(width),
		0.5*(-screenCoordinates.Y+1.0)*float64(height),
	)
}

// ToScreenCoordinates maps a canvas coordinate of this field to screen space
func (f *Field) ToScreenCoordinates(x, y float64) vec.Vec2 {
	return ToScreenCoordinates(f.width, f.height, x, y)
}

// ToCanvasCoordinates maps a screen coordinate to this field's canvas space
func (f *Field) ToCanvasCoordinates(screenCoordinates vec.Vec2) vec.Vec2 {
	return ToCanvasCoordinates(f.width, f.height, screenCoordinates)
}
