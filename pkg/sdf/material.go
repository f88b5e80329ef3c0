package sdf

import (
	"math"

	"github.com/df07/go-sdf-plotter/pkg/vec"
)

// ReflectiveProperties bundles the shading weights of a surface
type ReflectiveProperties struct {
	AmbientWeight    float64
	AOWeight         float64
	VisibilityWeight float64
	DiffuseWeight    float64
	SpecularWeight   float64
	SpecularExponent float64
	AOSteps          int     // Number of occlusion samples along the normal
	AOStepSize       float64 // Spacing of occlusion samples
	Penumbra         float64 // Soft-shadow hardness; larger values sharpen shadow edges
}

// NewReflectiveProperties creates reflective properties with the default
// specular exponent, ambient-occlusion sampling, and penumbra softness
func NewReflectiveProperties(ambient, ao, visibility, diffuse, specular float64) ReflectiveProperties {
	return ReflectiveProperties{
		AmbientWeight:    ambient,
		AOWeight:         ao,
		VisibilityWeight: visibility,
		DiffuseWeight:    diffuse,
		SpecularWeight:   specular,
		SpecularExponent: 32.0,
		AOSteps:          5,
		AOStepSize:       0.01,
		Penumbra:         48.0,
	}
}

// DefaultReflectiveProperties returns the standard matte surface weights
func DefaultReflectiveProperties() ReflectiveProperties {
	return NewReflectiveProperties(0.1, 0.1, 0.0, 0.8, 1.0)
}

// Lerp linearly interpolates every numeric property
func (rp ReflectiveProperties) Lerp(other ReflectiveProperties, t float64) ReflectiveProperties {
	return ReflectiveProperties{
		AmbientWeight:    vec.Lerp(rp.AmbientWeight, other.AmbientWeight, t),
		AOWeight:         vec.Lerp(rp.AOWeight, other.AOWeight, t),
		VisibilityWeight: vec.Lerp(rp.VisibilityWeight, other.VisibilityWeight, t),
		DiffuseWeight:    vec.Lerp(rp.DiffuseWeight, other.DiffuseWeight, t),
		SpecularWeight:   vec.Lerp(rp.SpecularWeight, other.SpecularWeight, t),
		SpecularExponent: vec.Lerp(rp.SpecularExponent, other.SpecularExponent, t),
		AOSteps:          int(math.Round(vec.Lerp(float64(rp.AOSteps), float64(other.AOSteps), t))),
		AOStepSize:       vec.Lerp(rp.AOStepSize, other.AOStepSize, t),
		Penumbra:         vec.Lerp(rp.Penumbra, other.Penumbra, t),
	}
}

// Material describes how a surface is lit and drawn. Materials are immutable
// value data; smooth boolean scene operators blend them with Lerp.
type Material struct {
	LightSource vec.Vec3
	Reflective  ReflectiveProperties
	Background  vec.Vec3 // Background color in HSL
	IsShaded    bool     // Background lightness follows the computed shading
	IsHatched   bool     // Surface is eligible for hatch strokes
}

// NewMaterial creates a material lit from the given light source position
func NewMaterial(lightSource vec.Vec3, reflective ReflectiveProperties, backgroundHSL vec.Vec3, isShaded, isHatched bool) Material {
	return Material{
		LightSource: lightSource,
		Reflective:  reflective,
		Background:  backgroundHSL,
		IsShaded:    isShaded,
		IsHatched:   isHatched,
	}
}

// Lerp interpolates two materials: numeric fields linearly, the background
// hue along the shorter circular arc, and the boolean flags by a threshold
// at t = 0.5
func (m Material) Lerp(other Material, t float64) Material {
	result := Material{
		LightSource: m.LightSource.Lerp(other.LightSource, t),
		Reflective:  m.Reflective.Lerp(other.Reflective, t),
		Background:  vec.LerpHSL(m.Background, other.Background, t),
	}
	if t < 0.5 {
		result.IsShaded = m.IsShaded
		result.IsHatched = m.IsHatched
	} else {
		result.IsShaded = other.IsShaded
		result.IsHatched = other.IsHatched
	}
	return result
}
