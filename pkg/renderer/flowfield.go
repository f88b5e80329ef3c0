package renderer

import (
	"math"
	"math/rand"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/field"
	"github.com/df07/go-sdf-plotter/pkg/streamline"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

type queuedStreamline struct {
	id     uint32
	points []vec.Vec2
}

// PlaceStreamlines runs the evenly-spaced streamline scheduler over the field
// and hands each accepted streamline to emit in placement order. Seeds start
// on a jittered grid; every accepted streamline then proposes new seeds
// offset perpendicular to itself, alternating sides by point parity, until
// the work queue drains. Runs on a single goroutine: every acceptance depends
// on all previously registered points.
func PlaceStreamlines(f *field.Field, cfg streamline.Config, rng *rand.Rand, emit func(points []vec.Vec2)) {
	width := f.Width()
	height := f.Height()
	registry := streamline.NewRegistry(float64(width), float64(height), 0.5*cfg.DSepMax)
	var queue []queuedStreamline

	accept := func(id uint32, points []vec.Vec2) {
		emit(points)
		queue = append(queue, queuedStreamline{id: id, points: points})
	}

	onJitteredGrid(float64(width), float64(height), width/cfg.SeedBoxSize, height/cfg.SeedBoxSize, rng, func(seedX, seedY float64) {
		if line, ok := streamline.Trace(f, registry, 0, vec.NewVec2(seedX, seedY), cfg); ok {
			accept(registry.AddStreamline(line), line)
		}
	})

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for i, p := range current.points {
			pixel, ok := f.PixelValue(p.X, p.Y)
			if !ok {
				continue
			}
			dSep := streamline.SeparationFromLightness(cfg.DSepMin, cfg.DSepMax, pixel.Lightness)
			sign := 1.0
			if i%2 == 0 {
				sign = -1.0
			}
			seed := p.MultiplyAdd(vec.UnitFromAngle(pixel.Direction+0.5*math.Pi), sign*dSep)
			if line, ok := streamline.Trace(f, registry, current.id, seed, cfg); ok {
				accept(registry.AddStreamline(line), line)
			}
		}
	}
}

// RenderFlowFieldStreamlines places streamlines over the field and strokes
// each one onto the canvas as it is accepted
func RenderFlowFieldStreamlines(f *field.Field, c *canvas.Canvas, cfg streamline.Config, rng *rand.Rand, strokeWidth float64, rgb canvas.RGB) {
	PlaceStreamlines(f, cfg, rng, func(points []vec.Vec2) {
		c.StrokePolyline(points, strokeWidth, rgb)
	})
}
