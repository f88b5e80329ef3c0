// Package noise provides deterministic value noise built on a seeded hash of
// lattice coordinates, plus the noisy-wave heightmap composed from it.
package noise

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// Hash seeds for the three independent lattice channels: corner values,
// X gradients, and Y gradients
const (
	seedValues     = 14678021983192906369
	seedGradientsX = 601104623970451784
	seedGradientsY = 82545205824138771
)

// Rand1D hashes a coordinate into a uniform pseudo-random value in [-1, 1].
// The same coordinate and seed always produce the same value.
func Rand1D(x float64, seed uint64) float64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(x))
	return 2.0*float64(xxh3.HashSeed(buf[:], seed))/float64(math.MaxUint64) - 1.0
}

// Rand2D hashes a 2D coordinate into a uniform pseudo-random value in [-1, 1]
func Rand2D(x, y float64, seed uint64) float64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(x))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(y))
	return 2.0*float64(xxh3.HashSeed(buf[:], seed))/float64(math.MaxUint64) - 1.0
}

// Waves1D is a periodic ridge function with crests at multiples of pi
func Waves1D(x float64) float64 {
	return 1.0 - math.Abs(math.Sin(x))
}

// Waves2D crosses two ridge functions; pointiness below 1 widens the crests
func Waves2D(x, y, pointiness float64) float64 {
	return math.Pow(Waves1D(x)*Waves1D(y), pointiness)
}

// Noise1D evaluates one octave of 1D value noise with hashed lattice values
// and gradients, blended by smoothstep
func Noise1D(x float64) float64 {
	idx := math.Floor(x)
	t := x - idx

	v0 := 0.5 * Rand1D(idx, seedValues)
	v1 := 0.5 * Rand1D(idx+1.0, seedValues)
	g0 := Rand1D(idx, seedGradientsX)
	g1 := Rand1D(idx+1.0, seedGradientsX)

	f0 := g0*t + v0
	f1 := g1*(t-1.0) + v1

	u := vec.Smoothstep(0.0, 1.0, t)
	return f0*(1.0-u) + f1*u
}

func noise2DOctave(x, y float64) float64 {
	ix := math.Floor(x)
	tx := x - ix
	iy := math.Floor(y)
	ty := y - iy

	ix0, ix1 := ix, ix+1.0
	iy0, iy1 := iy, iy+1.0

	// Function values at each lattice corner
	v00 := 0.5 * Rand2D(ix0, iy0, seedValues)
	v01 := 0.5 * Rand2D(ix1, iy0, seedValues)
	v10 := 0.5 * Rand2D(ix0, iy1, seedValues)
	v11 := 0.5 * Rand2D(ix1, iy1, seedValues)

	// Gradients at each corner
	g00 := vec.NewVec2(Rand2D(ix0, iy0, seedGradientsX), Rand2D(ix0, iy0, seedGradientsY))
	g01 := vec.NewVec2(Rand2D(ix1, iy0, seedGradientsX), Rand2D(ix1, iy0, seedGradientsY))
	g10 := vec.NewVec2(Rand2D(ix0, iy1, seedGradientsX), Rand2D(ix0, iy1, seedGradientsY))
	g11 := vec.NewVec2(Rand2D(ix1, iy1, seedGradientsX), Rand2D(ix1, iy1, seedGradientsY))

	// Affine extrapolation of each corner's value and gradient to (tx, ty)
	f00 := g00.Dot(vec.NewVec2(tx, ty)) + v00
	f01 := g01.Dot(vec.NewVec2(tx-1.0, ty)) + v01
	f10 := g10.Dot(vec.NewVec2(tx, ty-1.0)) + v10
	f11 := g11.Dot(vec.NewVec2(tx-1.0, ty-1.0)) + v11

	ux := vec.Smoothstep(0.0, 1.0, tx)
	f0 := f00*(1.0-ux) + f01*ux
	f1 := f10*(1.0-ux) + f11*ux

	uy := vec.Smoothstep(0.0, 1.0, ty)
	return f0*(1.0-uy) + f1*uy
}

// Noise2D accumulates octaves of 2D value noise. Each octave doubles the
// lattice frequency by rotating and scaling the input through a 5-12-13
// triangle, decorrelating octave alignment, and halves the amplitude.
func Noise2D(x, y float64, octaves int) float64 {
	accum := noise2DOctave(x, y)
	scale := 1.0
	p := vec.NewVec2(x, y)
	for i := 1; i < octaves; i++ {
		p = p.Rotate(2.0*(12.0/13.0), 2.0*(5.0/13.0))
		scale *= 0.5
		accum += scale * noise2DOctave(p.X, p.Y)
	}
	return accum
}

// noisyWavesOctave distorts the crossed ridge function by two independent
// noise channels and adds a third as surface detail
func noisyWavesOctave(x, y, pointiness float64) float64 {
	const (
		noiseInputScale = 0.45
		noiseScale      = 1.75
		noiseOctaves    = 4
		offset1         = 1000.5
		offset2         = 889.1
		addedNoiseScale = 0.15
	)
	xShift := noiseScale * Noise2D(noiseInputScale*x, noiseInputScale*y, noiseOctaves)
	yShift := noiseScale * Noise2D(noiseInputScale*x+offset1, noiseInputScale*y+offset2, noiseOctaves)
	return Waves2D(x+xShift, y+yShift, pointiness) +
		addedNoiseScale*Noise2D(noiseInputScale*x-offset2, noiseInputScale*y-offset1, noiseOctaves)
}

// NoisyWavesHeightMap is the wave-dune terrain used by the heightmap scenes:
// three octaves of noise-distorted ridges with rotated, scaled lattices
func NoisyWavesHeightMap(x, y float64) float64 {
	const (
		pointiness = 0.9
		octaves    = 3
	)
	accum := noisyWavesOctave(x, y, pointiness)
	scale := 1.0
	p := vec.NewVec2(x, y)
	for i := 1; i < octaves; i++ {
		p = p.Rotate(1.7*(12.0/13.0), 1.7*(5.0/13.0))
		scale *= 0.5
		accum += scale * noisyWavesOctave(p.X, p.Y, pointiness)
	}
	return accum
}
