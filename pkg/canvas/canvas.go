// Package canvas wraps a raster drawing context for stroking streamlines,
// hatch lines, and filled ridgeline silhouettes into a PNG image.
package canvas

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// RGB is an 8-bit color triple
type RGB [3]uint8

// Canvas is a raster drawing surface in pixel coordinates with the origin at
// the top left
type Canvas struct {
	ctx    *gg.Context
	width  int
	height int
}

// New creates a blank canvas of the given size
func New(width, height int) *Canvas {
	return &Canvas{ctx: gg.NewContext(width, height), width: width, height: height}
}

// NewFromImage creates a canvas initialized with the pixels of an image,
// used to stroke on top of a rendered background
func NewFromImage(img image.Image) *Canvas {
	ctx := gg.NewContextForImage(img)
	bounds := img.Bounds()
	return &Canvas{ctx: ctx, width: bounds.Dx(), height: bounds.Dy()}
}

// Width returns the canvas width in pixels
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels
func (c *Canvas) Height() int { return c.height }

// AspectRatio returns width over height
func (c *Canvas) AspectRatio() float64 {
	return float64(c.width) / float64(c.height)
}

// Fill floods the whole canvas with one color
func (c *Canvas) Fill(rgb RGB) {
	c.ctx.SetRGB255(int(rgb[0]), int(rgb[1]), int(rgb[2]))
	c.ctx.Clear()
}

// StrokePolyline strokes an open polyline with round caps and joins. Fewer
// than two points draw nothing.
func (c *Canvas) StrokePolyline(points []vec.Vec2, strokeWidth float64, rgb RGB) {
	if len(points) < 2 {
		return
	}
	c.path(points, false)
	c.ctx.SetRGB255(int(rgb[0]), int(rgb[1]), int(rgb[2]))
	c.ctx.SetLineWidth(strokeWidth)
	c.ctx.SetLineCapRound()
	c.ctx.SetLineJoinRound()
	c.ctx.Stroke()
}

// StrokeLine strokes a single segment
func (c *Canvas) StrokeLine(x0, y0, x1, y1, strokeWidth float64, rgb RGB) {
	c.StrokePolyline([]vec.Vec2{vec.NewVec2(x0, y0), vec.NewVec2(x1, y1)}, strokeWidth, rgb)
}

// FillClosedPolyline fills the polygon outlined by the points
func (c *Canvas) FillClosedPolyline(points []vec.Vec2, rgb RGB) {
	if len(points) < 3 {
		return
	}
	c.path(points, true)
	c.ctx.SetRGB255(int(rgb[0]), int(rgb[1]), int(rgb[2]))
	c.ctx.Fill()
}

// FillAndStrokeClosed fills the polygon and strokes its outline in one pass
func (c *Canvas) FillAndStrokeClosed(points []vec.Vec2, fill RGB, strokeWidth float64, stroke RGB) {
	if len(points) < 3 {
		return
	}
	c.path(points, true)
	c.ctx.SetRGB255(int(fill[0]), int(fill[1]), int(fill[2]))
	c.ctx.FillPreserve()
	c.ctx.SetRGB255(int(stroke[0]), int(stroke[1]), int(stroke[2]))
	c.ctx.SetLineWidth(strokeWidth)
	c.ctx.SetLineCapRound()
	c.ctx.SetLineJoinRound()
	c.ctx.Stroke()
}

// FillPoint fills a disc centered on the given pixel coordinate
func (c *Canvas) FillPoint(x, y, radius float64, rgb RGB) {
	c.ctx.SetRGB255(int(rgb[0]), int(rgb[1]), int(rgb[2]))
	c.ctx.DrawCircle(x, y, radius)
	c.ctx.Fill()
}

// Image returns the current raster contents
func (c *Canvas) Image() image.Image {
	return c.ctx.Image()
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	return c.ctx.SavePNG(path)
}

func (c *Canvas) path(points []vec.Vec2, closed bool) {
	c.ctx.ClearPath()
	c.ctx.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.ctx.LineTo(p.X, p.Y)
	}
	if closed {
		c.ctx.ClosePath()
	}
}
