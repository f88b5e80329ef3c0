package scene

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/canvas"
	"github.com/df07/go-sdf-plotter/pkg/noise"
	"github.com/df07/go-sdf-plotter/pkg/renderer"
	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// RidgelineArt describes a heightmap artwork drawn as stacked filled
// ridgelines instead of marched rays: the visible heightmap domain, the
// stroke and fill colors, and the sampled height function
type RidgelineArt struct {
	Region              renderer.DomainRegion
	LineRGB             canvas.RGB
	Gradient            *canvas.LinearGradient
	Height              renderer.RidgelineHeightFunc
	LineSepInMM         float64 // Baseline separation of adjacent ridgelines
	SegmentLengthInDots float64 // Sample spacing along a ridgeline in pixels
}

// NewWavesRidgelineArt creates the dune-wave ridgeline artwork: noisy wave
// crests over a long swell, lit from gunmetal in the foreground to platinum
// at the horizon
func NewWavesRidgelineArt() *RidgelineArt {
	gunmetal := canvas.RGB{0x14, 0x26, 0x34}
	paynesGray := canvas.RGB{0x21, 0x59, 0x6D}
	platinum := canvas.RGB{0xDD, 0xDE, 0xD8}
	gradient := canvas.NewLinearGradient(gunmetal, platinum)
	gradient.AddStop(0.1, gunmetal)
	gradient.AddStop(0.5, paynesGray)
	gradient.AddStop(0.8, platinum)

	height := func(uvDomain, tDomain, tScreen vec.Vec2) float64 {
		// Detail fades toward the horizon with the screen-space compression
		noiseScale := 0.2 * tScreen.Y
		detail := noiseScale * noise.NoisyWavesHeightMap(uvDomain.X, uvDomain.Y)
		const lowFreqScale = 0.5
		swell := lowFreqScale * 0.25 * math.Cos(3.0*(tScreen.X-0.95+0.1*tDomain.Y))
		return swell + detail
	}

	return &RidgelineArt{
		Region: renderer.DomainRegion{
			NearA: vec.NewVec2(-1.0, 1.0),
			NearB: vec.NewVec2(1.0, 1.0),
			FarA:  vec.NewVec2(-5.0, 20.0),
			FarB:  vec.NewVec2(5.0, 20.0),
		},
		LineRGB:             canvas.RGB{255, 255, 255},
		Gradient:            gradient,
		Height:              height,
		LineSepInMM:         1.0,
		SegmentLengthInDots: 2.0,
	}
}
