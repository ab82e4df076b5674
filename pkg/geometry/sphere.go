package geometry

import (
	"math"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// Sphere is a sphere surface, grounded on the original renderer's
// Sphere::Hit (quadratic root solve).
type Sphere struct {
	Center core.Point3
	Radius float64
	Mat    material.Material
}

// NewSphere creates a sphere with the given center, radius, and material.
func NewSphere(center core.Point3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Mat: mat}
}

// Hit solves |o + t*d - c|^2 = r^2 for the smallest root in (tMin, tMax).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	oc := ray.Origin.Sub(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	normal := point.Sub(s.Center).Scale(1.0 / s.Radius)

	return Hit{T: root, Surface: s, Normal: normal, Point: point}, true
}

// IsLight reports whether this sphere's material is emissive.
func (s *Sphere) IsLight() bool { return s.Mat.IsEmissive() }

// LightPointInGrid is defined for interface conformance; spheres are
// never used as the area lights in the built-in scenes (those are
// walls), so this simply returns the sphere's center.
func (s *Sphere) LightPointInGrid(_ int, _ *core.Rand) core.Point3 { return s.Center }

// Material returns this sphere's material.
func (s *Sphere) Material() material.Material { return s.Mat }

// GatherLightSources appends this sphere if it is a light.
func (s *Sphere) GatherLightSources(out *[]Surface) {
	if s.IsLight() {
		*out = append(*out, s)
	}
}
