package vec

import "math"

// Colors are carried as Vec3 in hue/saturation/lightness form, with the hue
// in radians and saturation/lightness in [0, 1].

// HSLToRGB converts an HSL color to RGB with channels in [0, 1]
func HSLToRGB(hsl Vec3) Vec3 {
	hue, saturation, lightness := hsl.X, hsl.Y, hsl.Z

	chroma := (1.0 - math.Abs(2.0*lightness-1.0)) * saturation
	hueBucket := hue / (60.0 * math.Pi / 180.0)
	bucketPosition := chroma * (1.0 - math.Abs(math.Mod(hueBucket, 2.0)-1.0))

	var r, g, b float64
	switch {
	case hueBucket < 1.0:
		r, g, b = chroma, bucketPosition, 0.0
	case hueBucket < 2.0:
		r, g, b = bucketPosition, chroma, 0.0
	case hueBucket < 3.0:
		r, g, b = 0.0, chroma, bucketPosition
	case hueBucket < 4.0:
		r, g, b = 0.0, bucketPosition, chroma
	case hueBucket < 5.0:
		r, g, b = bucketPosition, 0.0, chroma
	default:
		r, g, b = chroma, 0.0, bucketPosition
	}

	diff := lightness - 0.5*chroma
	return Vec3{X: r + diff, Y: g + diff, Z: b + diff}
}

// LerpHSL interpolates two HSL colors, taking the hue along the shorter
// circular arc and wrapping the result into [0, 2*pi)
func LerpHSL(a, b Vec3, t float64) Vec3 {
	hueDelta := b.X - a.X
	if hueDelta > math.Pi {
		hueDelta -= 2.0 * math.Pi
	} else if hueDelta < -math.Pi {
		hueDelta += 2.0 * math.Pi
	}

	hue := math.Mod(a.X+t*hueDelta, 2.0*math.Pi)
	if hue < 0.0 {
		hue += 2.0 * math.Pi
	}

	return Vec3{
		X: hue,
		Y: a.Y + t*(b.Y-a.Y),
		Z: a.Z + t*(b.Z-a.Z),
	}
}
