package geometry

import (
	"math"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// Triangle is a single triangle, used for mesh geometry loaded from
// OBJ files (pkg/loaders). Intersection uses the Möller–Trumbore
// plane-and-barycentric test, the same family of test the wall uses
// for its rectangle.
type Triangle struct {
	V0, V1, V2 core.Point3
	Mat        material.Material

	normal core.Vec3
}

// NewTriangle creates a triangle from three vertices, in counter-clockwise
// winding order when viewed from the side the normal should face.
func NewTriangle(v0, v1, v2 core.Point3, mat material.Material) *Triangle {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)
	return &Triangle{V0: v0, V1: v1, V2: v2, Mat: mat, normal: e1.Cross(e2).Normalized()}
}

// Hit intersects the ray with the triangle's plane and tests the hit
// point against the triangle's edges with barycentric coordinates.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	e1 := t.V1.Sub(t.V0)
	e2 := t.V2.Sub(t.V0)

	pVec := ray.Direction.Cross(e2)
	det := e1.Dot(pVec)
	if math.Abs(det) < 1e-10 {
		return Hit{}, false
	}
	invDet := 1.0 / det

	tVec := ray.Origin.Sub(t.V0)
	u := tVec.Dot(pVec) * invDet
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	qVec := tVec.Cross(e1)
	v := ray.Direction.Dot(qVec) * invDet
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	hitT := e2.Dot(qVec) * invDet
	if hitT < tMin || hitT > tMax {
		return Hit{}, false
	}

	return Hit{T: hitT, Surface: t, Normal: t.normal, Point: ray.At(hitT)}, true
}

// IsLight reports whether this triangle's material is emissive.
func (t *Triangle) IsLight() bool { return t.Mat.IsEmissive() }

// LightPointInGrid is defined for interface conformance; mesh triangles
// are never used as area lights in this system.
func (t *Triangle) LightPointInGrid(_ int, _ *core.Rand) core.Point3 { return t.V0 }

// Material returns this triangle's material.
func (t *Triangle) Material() material.Material { return t.Mat }

// GatherLightSources appends this triangle if it is a light.
func (t *Triangle) GatherLightSources(out *[]Surface) {
	if t.IsLight() {
		*out = append(*out, t)
	}
}
