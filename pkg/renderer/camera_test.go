package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjhorne/pathtracer/pkg/core"
)

func TestCamera_PixelAnchor_Corners(t *testing.T) {
	cam := NewCamera(100)

	x, y := cam.PixelAnchor(0, 0, 100, 100)
	assert.InDelta(t, -10.0, x, 1e-9)
	assert.InDelta(t, 10.0, y, 1e-9)

	x, y = cam.PixelAnchor(100, 100, 100, 100)
	assert.InDelta(t, 10.0, x, 1e-9)
	assert.InDelta(t, -10.0, y, 1e-9)
}

func TestCamera_RayThrough_JitterStaysWithinRadius(t *testing.T) {
	cam := NewCamera(100)
	rnd := core.NewRand(5)

	anchorX, anchorY := cam.PixelAnchor(50, 50, 100, 100)
	for i := 0; i < 100; i++ {
		ray := cam.RayThrough(anchorX, anchorY, rnd)
		// Unproject back onto the z=0 view plane: the direction's x/z and
		// y/z ratios are scale-invariant under normalization, so this
		// recovers the jittered view-plane point regardless of the unit
		// vector's absolute length.
		viewX := cam.eye.X + ray.Direction.X/ray.Direction.Z*cam.focalLength
		viewY := cam.eye.Y + ray.Direction.Y/ray.Direction.Z*cam.focalLength
		assert.InDelta(t, anchorX, viewX, cam.jitterRadius+1e-9)
		assert.InDelta(t, anchorY, viewY, cam.jitterRadius+1e-9)
	}
}
