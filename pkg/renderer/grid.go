// Package renderer composes the field, streamline, and canvas layers into
// finished plotter-style renders: evenly-spaced flow-field streamlines, hatch
// fills, edge passes, and heightmap ridgeline silhouettes.
package renderer

import "math/rand"

// onJitteredGrid calls f once per grid cell with a point drawn uniformly from
// inside that cell. The randomness affects only seed placement, never
// acceptance decisions.
func onJitteredGrid(width, height float64, cellsX, cellsY int, rng *rand.Rand, f func(x, y float64)) {
	cellWidth := width / float64(cellsX)
	cellHeight := height / float64(cellsY)
	for iy := 0; iy < cellsY; iy++ {
		for ix := 0; ix < cellsX; ix++ {
			x := cellWidth * (float64(ix) + rng.Float64())
			y := cellHeight * (float64(iy) + rng.Float64())
			f(x, y)
		}
	}
}
