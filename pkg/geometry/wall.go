package geometry

import (
	"math"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// Wall is an axis-aligned (or arbitrary) quadrilateral surface defined
// by four coplanar corners ordered around the rectangle. It doubles as
// the area-light shape: every light source in the built-in scenes is a
// Wall with an emissive material.
type Wall struct {
	A, B, C, D core.Point3
	Mat        material.Material

	normal core.Vec3 // cached unit plane normal
	u, v   core.Vec3 // cached edge vectors from A: u = B-A, v = D-A
	d      float64   // plane equation constant: normal . point = d
}

// NewWall creates a wall from four coplanar corners ordered around the
// rectangle (A -> B -> C -> D -> A).
func NewWall(a, b, c, d core.Point3, mat material.Material) *Wall {
	u := b.Sub(a)
	v := d.Sub(a)
	normal := u.Cross(v).Normalized()

	return &Wall{
		A: a, B: b, C: c, D: d,
		Mat:    mat,
		normal: normal,
		u:      u,
		v:      v,
		d:      normal.Dot(core.Vec3(a)),
	}
}

// Hit intersects the ray with the wall's supporting plane, then accepts
// the hit only if it lies within the rectangle spanned by u and v.
func (w *Wall) Hit(ray core.Ray, tMin, tMax float64) (Hit, bool) {
	denom := ray.Direction.Dot(w.normal)
	if math.Abs(denom) < 1e-8 {
		return Hit{}, false
	}

	t := (w.d - core.Vec3(ray.Origin).Dot(w.normal)) / denom
	if t < tMin || t > tMax {
		return Hit{}, false
	}

	point := ray.At(t)
	hitVec := point.Sub(w.A)

	uLen2 := w.u.Dot(w.u)
	vLen2 := w.v.Dot(w.v)
	alpha := hitVec.Dot(w.u) / uLen2
	beta := hitVec.Dot(w.v) / vLen2

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return Hit{}, false
	}

	return Hit{T: t, Surface: w, Normal: w.normal, Point: point}, true
}

// IsLight reports whether this wall's material is emissive.
func (w *Wall) IsLight() bool { return w.Mat.IsEmissive() }

// LightPointInGrid returns a jittered sample point within the cell-th
// cell of a 4x4 grid laid out over the wall's (u, v) parameterization,
// so that averaging all 16 cells integrates the light over its area.
func (w *Wall) LightPointInGrid(cell int, rnd *core.Rand) core.Point3 {
	const gridSize = 4
	row := cell / gridSize
	col := cell % gridSize

	uFrac := (float64(col) + rnd.Float64()) / gridSize
	vFrac := (float64(row) + rnd.Float64()) / gridSize

	offset := w.u.Scale(uFrac).Add(w.v.Scale(vFrac))
	return w.A.Add(offset)
}

// Material returns this wall's material.
func (w *Wall) Material() material.Material { return w.Mat }

// GatherLightSources appends this wall if it is a light.
func (w *Wall) GatherLightSources(out *[]Surface) {
	if w.IsLight() {
		*out = append(*out, w)
	}
}
