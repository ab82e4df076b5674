package geometry

import (
	"math"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// Group is an ordered container of surfaces. It owns its children
// exclusively — there are no back-references or cycles in this data
// model. A group may carry an enclosing bounding sphere (set by the
// mesh loader) for early ray-miss rejection.
type Group struct {
	Children []Surface

	hasBounds bool
	center    core.Point3
	radius    float64
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends a child surface to the group.
func (g *Group) Add(s Surface) {
	g.Children = append(g.Children, s)
}

// SetEnclosingSphere sets the group's bounding sphere, used to reject
// rays that can't possibly hit any child before testing them all.
func (g *Group) SetEnclosingSphere(center core.Point3, radius float64) {
	g.hasBounds = true
	g.center = center
	g.radius = radius
}

// hitsBounds reports whether the ray intersects the group's bounding
// sphere anywhere in (tMin, tMax). Always true when no bounds are set.
func (g *Group) hitsBounds(ray core.Ray, tMin, tMax float64) bool {
	if !g.hasBounds {
		return true
	}
	oc := ray.Origin.Sub(g.center)
	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - g.radius*g.radius
	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return false
	}
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return false
		}
	}
	return true
}

// Hit returns the nearest intersection over the group's children. If
// the group carries an enclosing sphere and the ray misses it, Hit
// returns no-hit without testing any child.
func (g *Group) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	if !g.hitsBounds(ray, tMin, tMax) {
		return Hit{}, false
	}

	closest := tMax
	var best Hit
	found := false

	for _, child := range g.Children {
		if hit, ok := child.Hit(ray, tMin, closest); ok {
			found = true
			closest = hit.T
			best = hit
		}
	}

	return best, found
}

// IsLight is always false for a group: lights are leaf surfaces, a
// composite is never itself "the" light.
func (g *Group) IsLight() bool { return false }

// LightPointInGrid is defined for interface conformance; groups are
// never directly sampled as an area light.
func (g *Group) LightPointInGrid(_ int, _ *core.Rand) core.Point3 { return g.center }

// Material returns the zero-value material; groups have no material of
// their own, only their children do.
func (g *Group) Material() material.Material { return material.Material{} }

// GatherLightSources recurses into every child in subtree order,
// collecting every emissive leaf surface.
func (g *Group) GatherLightSources(out *[]Surface) {
	for _, child := range g.Children {
		child.GatherLightSources(out)
	}
}
