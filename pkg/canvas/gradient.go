package canvas

import "sort"

type gradientStop struct {
	t   float64
	rgb RGB
}

// LinearGradient maps a parameter in [0, 1] to a color interpolated between
// ordered stops
type LinearGradient struct {
	stops []gradientStop
}

// NewLinearGradient creates a gradient between a start and an end color
func NewLinearGradient(start, end RGB) *LinearGradient {
	return &LinearGradient{stops: []gradientStop{{t: 0, rgb: start}, {t: 1, rgb: end}}}
}

// AddStop inserts an intermediate color stop. Stops at or outside the ends
// are ignored.
func (g *LinearGradient) AddStop(t float64, rgb RGB) {
	if t <= 0 || t >= 1 {
		return
	}
	g.stops = append(g.stops, gradientStop{t: t, rgb: rgb})
	sort.SliceStable(g.stops, func(i, j int) bool { return g.stops[i].t < g.stops[j].t })
}

// RGB evaluates the gradient, clamping the parameter to [0, 1]
func (g *LinearGradient) RGB(t float64) RGB {
	if t <= 0 {
		return g.stops[0].rgb
	}
	for i := 1; i < len(g.stops); i++ {
		prev, curr := g.stops[i-1], g.stops[i]
		if t <= curr.t {
			span := curr.t - prev.t
			if span < 1e-7 {
				return prev.rgb
			}
			tRel := (t - prev.t) / span
			return RGB{
				lerpChannel(prev.rgb[0], curr.rgb[0], tRel),
				lerpChannel(prev.rgb[1], curr.rgb[1], tRel),
				lerpChannel(prev.rgb[2], curr.rgb[2], tRel),
			}
		}
	}
	return g.stops[len(g.stops)-1].rgb
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)))
}
