// Package material defines the tagged material record shared by every
// surface in the scene.
package material

import "github.com/kjhorne/pathtracer/pkg/core"

// Type selects which BRDF/BSDF branch the integrator evaluates for a
// surface carrying this material.
type Type int

const (
	// Diffuse is Lambertian reflectance, evaluated either by direct
	// light sampling (fast mode) or stratified theta/phi grid sampling
	// of directions around the normal (slow mode) — see pkg/integrator.
	Diffuse Type = iota
	// Specular is a perfect mirror bounce.
	Specular
	// Dielectric is Fresnel-weighted refraction with total internal
	// reflection.
	Dielectric
)

// Material carries everything the integrator needs to shade a hit:
// reflectance, emission, the reflection-type tag, the direct-lighting
// weight used in fast-diffuse mode, and the two refractive indices
// used by the dielectric branch.
//
// Defaults (applied by New): Diffuse, DiffAmount=1.0, IndexInside=1.5,
// IndexOutside=1.0 — matching the original Material() default
// constructor.
type Material struct {
	Color       core.Color // materialColor: reflectance albedo per channel
	Emission    core.Color // emissionColor: self-emitted radiance, zero for non-emitters
	Type        Type
	DiffAmount  float64 // scalar weight of the direct-lighting term in fast mode
	IndexInside float64 // refractive index inside the surface (n_inside)
	IndexOutside float64 // refractive index outside the surface (n_outside)
}

// New creates a DIFFUSE material with the given albedo and default
// values for everything else.
func New(color core.Color) Material {
	return Material{
		Color:        color,
		Type:         Diffuse,
		DiffAmount:   1.0,
		IndexInside:  1.5,
		IndexOutside: 1.0,
	}
}

// NewEmitter creates a DIFFUSE material that emits light and reflects
// nothing — the shape used for every light source in the built-in scenes.
func NewEmitter(emission core.Color) Material {
	m := New(core.Black())
	m.Emission = emission
	return m
}

// WithType returns a copy of m with its reflection type set.
func (m Material) WithType(t Type) Material {
	m.Type = t
	return m
}

// WithRefractiveIndices returns a copy of m with n_inside/n_outside set.
func (m Material) WithRefractiveIndices(inside, outside float64) Material {
	m.IndexInside = inside
	m.IndexOutside = outside
	return m
}

// IsEmissive reports whether any channel of the material's emission is
// nonzero — the definition of "this surface is a light".
func (m Material) IsEmissive() bool {
	return !m.Emission.IsZero()
}
