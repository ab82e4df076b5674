// Package scene builds the built-in test scenes: three fixed
// geometries selected by scene id, with scene 2 additionally backed
// by an OBJ mesh loaded through pkg/loaders.
package scene

import (
	"fmt"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/geometry"
	"github.com/kjhorne/pathtracer/pkg/loaders"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// DefaultMeshPath is the mesh scene 2 loads by default, mirroring the
// original renderer's hardcoded "../KX_RayTracer/Meshes/P2_Pikachu.obj"
// relative path. There is no CLI slot for overriding it — the
// argument contract is exactly seven positional values with no room
// for an eighth — so a fixed asset path is the faithful equivalent.
const DefaultMeshPath = "assets/meshes/model.obj"

func p(x, y, z float64) core.Point3 { return core.NewPoint3(x, y, z) }
func c(r, g, b float64) core.Color  { return core.NewColor(r, g, b) }

// addCornellWalls appends the seven walls shared by every built-in scene:
// a light in the ceiling and six colored bounding walls.
func addCornellWalls(group *geometry.Group) {
	topLight := geometry.NewWall(
		p(-4, 9.9, 14), p(4, 9.9, 14), p(4, 9.9, 6), p(-4, 9.9, 6),
		material.NewEmitter(c(1, 1, 1)),
	)
	group.Add(topLight)

	frontWall := geometry.NewWall(
		p(-10, 10, -20), p(10, 10, -20), p(10, -10, -20), p(-10, -10, -20),
		material.New(c(0.5, 0.5, 0.5)),
	)
	group.Add(frontWall)

	backWall := geometry.NewWall(
		p(10, 10, 20), p(-10, 10, 20), p(-10, -10, 20), p(10, -10, 20),
		material.New(c(0.2, 0.8, 0.2)),
	)
	group.Add(backWall)

	topWall := geometry.NewWall(
		p(-10, 10, 20), p(10, 10, 20), p(10, 10, -20), p(-10, 10, -20),
		material.New(c(0.95, 0.95, 0.95)),
	)
	group.Add(topWall)

	bottomWall := geometry.NewWall(
		p(10, -10, 20), p(-10, -10, 20), p(-10, -10, -20), p(10, -10, -20),
		material.New(c(0.95, 0.95, 0.95)),
	)
	group.Add(bottomWall)

	leftWall := geometry.NewWall(
		p(-10, -10, 20), p(-10, 10, 20), p(-10, 10, -20), p(-10, -10, -20),
		material.New(c(0.8, 0.2, 0.2)),
	)
	group.Add(leftWall)

	rightWall := geometry.NewWall(
		p(10, 10, 20), p(10, -10, 20), p(10, -10, -20), p(10, 10, -20),
		material.New(c(0.2, 0.2, 0.8)),
	)
	group.Add(rightWall)
}

// New1 builds the basic scene: a mirrored sphere and a glass sphere
// inside a six-wall box lit from a ceiling panel.
func New1() geometry.Surface {
	scene := geometry.NewGroup()

	mirror := material.New(c(0.999, 0.999, 0.999)).WithType(material.Specular)
	scene.Add(geometry.NewSphere(p(-3.5, -5, 10), 3.5, mirror))

	glass := material.New(c(0.95, 0.95, 0.95)).WithType(material.Dielectric)
	scene.Add(geometry.NewSphere(p(5, -5, 6), 3.0, glass))

	addCornellWalls(scene)
	return scene
}

// New2 builds the mesh scene: the basic box with a mesh loaded from
// path in place of the spheres. Returns an error if the mesh can't be
// loaded; callers should fall back to New1, degrading gracefully
// rather than failing the whole render.
func New2(path string) (geometry.Surface, error) {
	scene := geometry.NewGroup()

	meshMat := material.New(c(1, 1, 0))
	mesh, err := loaders.LoadOBJ(path, meshMat, 1.0, core.NewVec3(0, -3, 10))
	if err != nil {
		return nil, fmt.Errorf("scene 2: loading mesh %q: %w", path, err)
	}
	scene.Add(mesh)

	addCornellWalls(scene)
	return scene, nil
}

// New3 builds the dielectric-heavy scene: a diamond sphere nested
// inside a glass sphere, and a second diamond sphere with a mirrored
// sphere nested inside it.
func New3() geometry.Surface {
	scene := geometry.NewGroup()

	diamond := material.New(c(0.9999, 0.9999, 0.9999)).
		WithType(material.Dielectric).
		WithRefractiveIndices(2.419, 1.5)
	scene.Add(geometry.NewSphere(p(-5, -4, 7), 1.5, diamond))

	glass := material.New(c(0.95, 0.95, 0.95)).
		WithType(material.Dielectric).
		WithRefractiveIndices(1.5, 1.0)
	scene.Add(geometry.NewSphere(p(-5, -4, 7), 3.5, glass))

	diamond2 := material.New(c(0.9999, 0.9999, 0.9999)).
		WithType(material.Dielectric).
		WithRefractiveIndices(2.419, 1.0)
	scene.Add(geometry.NewSphere(p(5, -6, 9), 3.0, diamond2))

	mirror2 := material.New(c(0.95, 0.95, 0.95)).WithType(material.Specular)
	scene.Add(geometry.NewSphere(p(5, -6, 9), 1.0, mirror2))

	addCornellWalls(scene)
	return scene
}

// Logger is the subset of core.Logger that Select needs for reporting
// a mesh-load fallback.
type Logger interface {
	Warnf(format string, args ...interface{})
}

// Select resolves a scene id to a built surface: an unknown scene id
// falls back to scene 1. Scene 2's mesh load
// failure also falls back to scene 1, logged as a warning rather than
// aborting the render.
func Select(id int, meshPath string, logger Logger) geometry.Surface {
	switch id {
	case 2:
		s, err := New2(meshPath)
		if err != nil {
			logger.Warnf("scene 2 unavailable, falling back to scene 1: %v", err)
			return New1()
		}
		return s
	case 3:
		return New3()
	default:
		return New1()
	}
}
