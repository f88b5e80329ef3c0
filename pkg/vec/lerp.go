package vec

import "golang.org/x/exp/constraints"

// Lerp returns the linear interpolation between a and b at parameter t
func Lerp[T constraints.Float](a, b, t T) T {
	return a + t*(b-a)
}

// Clamp limits x to the closed interval [lo, hi]
func Clamp[T constraints.Float](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Smoothstep is the cubic Hermite ramp between edge0 and edge1
func Smoothstep[T constraints.Float](edge0, edge1, x T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
