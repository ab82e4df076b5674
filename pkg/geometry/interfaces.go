// Package geometry implements the Surface capability: every scene
// object — sphere, wall, triangle, or group — answers
// closest-hit queries, reports whether it's a light, can be sampled as
// an area light, and exposes its material.
package geometry

import (
	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// Hit carries everything the integrator needs about the closest
// intersection in (tMin, tMax): the ray parameter, the leaf surface
// that was hit, and the surface normal (not necessarily unit length and
// not side-corrected — the integrator normalizes and flips it).
type Hit struct {
	T       float64
	Surface Surface
	Normal  core.Vec3
	Point   core.Point3
}

// Surface is the polymorphic contract every scene object satisfies.
type Surface interface {
	// Hit reports the closest intersection of ray with this surface in
	// (tMin, tMax), if any.
	Hit(ray core.Ray, tMin, tMax float64) (Hit, bool)

	// IsLight reports whether this surface's material is emissive.
	IsLight() bool

	// LightPointInGrid returns a jittered sample point within the
	// cell-th cell of a 4x4 area-light sampling grid (cell in [0,16)).
	// Only meaningful when IsLight() is true.
	LightPointInGrid(cell int, rnd *core.Rand) core.Point3

	// Material returns this surface's material.
	Material() material.Material

	// GatherLightSources appends every emissive leaf surface reachable
	// from this surface (in subtree order for composites) to out.
	GatherLightSources(out *[]Surface)
}
