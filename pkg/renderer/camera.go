package renderer

import (
	"github.com/kjhorne/pathtracer/pkg/core"
)

// Camera is a fixed pinhole camera: a fixed eye point looking down +z
// at a view plane. RayThrough applies the per-pixel jitter, drawing
// from the random source the caller (see Render) passes in.
type Camera struct {
	eye          core.Point3
	planeMinX    float64
	planeMaxX    float64
	planeMinY    float64
	planeMaxY    float64
	focalLength  float64
	jitterRadius float64
}

// NewCamera builds the fixed pinhole camera: eye at (0,0,-20), a
// [-10,10]x[-10,10] view plane at z=0, and a jitter radius derived
// from the image width, matching the original's view_radius formula
// ((planeMaxX-planeMinX)/img_w/2).
func NewCamera(imgWidth int) *Camera {
	const planeMinX, planeMaxX = -10.0, 10.0
	const planeMinY, planeMaxY = -10.0, 10.0
	const focalLength = 20.0

	return &Camera{
		eye:          core.NewPoint3(0, 0, -20),
		planeMinX:    planeMinX,
		planeMaxX:    planeMaxX,
		planeMinY:    planeMinY,
		planeMaxY:    planeMaxY,
		focalLength:  focalLength,
		jitterRadius: (planeMaxX - planeMinX) / float64(imgWidth) / 2.0,
	}
}

// PixelAnchor returns the unjittered view-plane coordinates for pixel
// (w, h) of an imgWidth x imgHeight image.
func (c *Camera) PixelAnchor(w, h, imgWidth, imgHeight int) (x, y float64) {
	x = c.planeMinX + float64(w)/float64(imgWidth)*(c.planeMaxX-c.planeMinX)
	y = c.planeMaxY - float64(h)/float64(imgHeight)*(c.planeMaxY-c.planeMinY)
	return x, y
}

// RayThrough builds the ray from the eye through a jittered point on
// the view plane, anchored at (anchorX, anchorY).
func (c *Camera) RayThrough(anchorX, anchorY float64, rnd *core.Rand) core.Ray {
	x := anchorX + rnd.InRadius(c.jitterRadius)
	y := anchorY + rnd.InRadius(c.jitterRadius)

	target := core.NewPoint3(x, y, 0)
	direction := core.NewVec3(target.X-c.eye.X, target.Y-c.eye.Y, c.focalLength)
	return core.NewRay(c.eye, direction)
}
