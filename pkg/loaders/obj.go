// Package loaders implements the mesh importer for scene 2: a subset
// of the Wavefront OBJ format restricted to vertex (v) and face (f)
// lines.
package loaders

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/geometry"
	"github.com/kjhorne/pathtracer/pkg/material"
)

// LoadOBJ reads an OBJ-subset mesh from path, scaling and translating
// every vertex by scale/offset as it's read, and returns it as a
// geometry.Group wrapped in an enclosing bounding sphere. Lines other
// than "v" and "f" (including "#" comments) are ignored. Face vertex
// references use OBJ's 1-based indexing and may carry "/vt/vn"
// suffixes, of which only the leading vertex index is used.
func LoadOBJ(path string, mat material.Material, scale float64, offset core.Vec3) (*geometry.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening mesh file: %w", err)
	}
	defer f.Close()

	mesh := geometry.NewGroup()
	var vertices []core.Point3

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	minZ, maxZ := math.Inf(1), math.Inf(-1)

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh file %q line %d: malformed vertex", path, lineNo)
			}
			x, errX := strconv.ParseFloat(fields[1], 64)
			y, errY := strconv.ParseFloat(fields[2], 64)
			z, errZ := strconv.ParseFloat(fields[3], 64)
			if errX != nil || errY != nil || errZ != nil {
				return nil, fmt.Errorf("mesh file %q line %d: malformed vertex coordinate", path, lineNo)
			}

			point := core.NewPoint3(x*scale+offset.X, y*scale+offset.Y, z*scale+offset.Z)
			vertices = append(vertices, point)

			minX, maxX = math.Min(minX, point.X), math.Max(maxX, point.X)
			minY, maxY = math.Min(minY, point.Y), math.Max(maxY, point.Y)
			minZ, maxZ = math.Min(minZ, point.Z), math.Max(maxZ, point.Z)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh file %q line %d: malformed face", path, lineNo)
			}
			i1, err1 := faceVertexIndex(fields[1])
			i2, err2 := faceVertexIndex(fields[2])
			i3, err3 := faceVertexIndex(fields[3])
			if err1 != nil || err2 != nil || err3 != nil {
				return nil, fmt.Errorf("mesh file %q line %d: malformed face index", path, lineNo)
			}
			if i1 < 0 || i1 >= len(vertices) || i2 < 0 || i2 >= len(vertices) || i3 < 0 || i3 >= len(vertices) {
				return nil, fmt.Errorf("mesh file %q line %d: face index out of range", path, lineNo)
			}
			mesh.Add(geometry.NewTriangle(vertices[i1], vertices[i2], vertices[i3], mat))

		default:
			// every other record type is ignored
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mesh file: %w", err)
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh file %q: no vertices", path)
	}

	center := core.NewPoint3((minX+maxX)/2, (minY+maxY)/2, (minZ+maxZ)/2)
	extentX, extentY, extentZ := maxX-minX, maxY-minY, maxZ-minZ
	radius := extentX
	if extentY > radius {
		radius = extentY
	}
	if extentZ > radius {
		radius = extentZ
	}
	radius = radius/2 + 1e-3

	mesh.SetEnclosingSphere(center, radius)
	return mesh, nil
}

// faceVertexIndex parses one "f" line token ("v", "v/vt", or
// "v/vt/vn") into a 0-based vertex index.
func faceVertexIndex(token string) (int, error) {
	if slash := strings.IndexByte(token, '/'); slash >= 0 {
		token = token[:slash]
	}
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, err
	}
	return n - 1, nil
}
