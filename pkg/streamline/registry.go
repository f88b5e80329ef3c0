// Package streamline places evenly-spaced streamlines through a pixel
// property field, following Jobard and Lefer's algorithm with separation
// driven by local lightness and growth bounded by curvature and depth
// continuity.
package streamline

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

type registryEntry struct {
	id    uint32
	point vec.Vec2
}

// Registry is a uniform spatial hash over canvas space answering "is this
// candidate point far enough from every registered streamline point" in near
// constant time. Points are append-only; identifiers start at 1 and increase
// monotonically, with 0 reserved to mean "no streamline".
type Registry struct {
	cellSize   float64
	cellsX     int
	cellsY     int
	cells      [][]registryEntry
	lastID     uint32
	pointCount int
}

// NewRegistry creates a registry covering a canvas of the given size. The
// cell size is fixed for the registry's lifetime; choosing half the maximum
// separation distance bounds the neighbor scan to a constant cell count.
func NewRegistry(width, height, cellSize float64) *Registry {
	cellsX := int(math.Ceil(width / cellSize))
	cellsY := int(math.Ceil(height / cellSize))
	return &Registry{
		cellSize: cellSize,
		cellsX:   cellsX,
		cellsY:   cellsY,
		cells:    make([][]registryEntry, cellsX*cellsY),
	}
}

// AddStreamline registers every point of an accepted streamline and returns
// its new unique identifier
func (r *Registry) AddStreamline(points []vec.Vec2) uint32 {
	r.lastID++
	for _, p := range points {
		idx := r.cellIndex(p)
		r.cells[idx] = append(r.cells[idx], registryEntry{id: r.lastID, point: p})
	}
	r.pointCount += len(points)
	return r.lastID
}

// IsPointAllowed reports whether the candidate point keeps at least dSep
// distance from every registered point. Points belonging to exemptID are held
// to the relaxed distance instead, letting a streamline continue near the
// line that seeded it.
func (r *Registry) IsPointAllowed(p vec.Vec2, dSep, dSepRelaxed float64, exemptID uint32) bool {
	cx := r.clampCell(int(p.X/r.cellSize), r.cellsX)
	cy := r.clampCell(int(p.Y/r.cellSize), r.cellsY)
	radius := int(math.Ceil(dSep / r.cellSize))

	dSepSq := dSep * dSep
	dSepRelaxedSq := dSepRelaxed * dSepRelaxed

	for iy := max(cy-radius, 0); iy <= min(cy+radius, r.cellsY-1); iy++ {
		for ix := max(cx-radius, 0); ix <= min(cx+radius, r.cellsX-1); ix++ {
			for _, entry := range r.cells[iy*r.cellsX+ix] {
				distSq := entry.point.Subtract(p).LengthSquared()
				if entry.id == exemptID {
					if distSq < dSepRelaxedSq {
						return false
					}
				} else if distSq < dSepSq {
					return false
				}
			}
		}
	}
	return true
}

// PointCount returns the number of registered points
func (r *Registry) PointCount() int {
	return r.pointCount
}

func (r *Registry) cellIndex(p vec.Vec2) int {
	cx := r.clampCell(int(p.X/r.cellSize), r.cellsX)
	cy := r.clampCell(int(p.Y/r.cellSize), r.cellsY)
	return cy*r.cellsX + cx
}

func (r *Registry) clampCell(c, cellCount int) int {
	if c < 0 {
		return 0
	}
	if c >= cellCount {
		return cellCount - 1
	}
	return c
}
