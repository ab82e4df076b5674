package renderer

import (
	"sync/atomic"

	"github.com/alitto/pond/v2"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/geometry"
	"github.com/kjhorne/pathtracer/pkg/integrator"
)

// RenderOptions carries everything Render needs beyond the scene
// itself: the image size, the per-pixel sample count ("effort"), the
// shading mode, the worker count, and the base seed for the per-row
// random sources.
type RenderOptions struct {
	Width       int
	Height      int
	Effort      int
	FastDiffuse bool
	Threads     int
	Seed        int64
}

// Render drives the row-parallel pixel loop: one pooled task per
// image row, a private core.Rand per row seeded deterministically
// from opts.Seed, and disjoint writes into a shared Image, using
// github.com/alitto/pond/v2's task group.
func Render(scene geometry.Surface, opts RenderOptions, logger core.Logger) *Image {
	img := NewImage(opts.Width, opts.Height)
	cam := NewCamera(opts.Width)
	intCfg := integrator.Config{FastDiffuse: opts.FastDiffuse}

	threads := opts.Threads
	if threads <= 0 {
		threads = 1
	}

	pool := pond.NewPool(threads)
	group := pool.NewGroup()

	var rowsDone int64

	for h := 0; h < opts.Height; h++ {
		row := h
		group.Submit(func() {
			renderRow(img, cam, scene, row, opts, intCfg, logger)

			done := atomic.AddInt64(&rowsDone, 1)
			logger.Printf("row %d/%d rendered", done, opts.Height)
		})
	}

	group.Wait()
	pool.StopAndWait()

	return img
}

func renderRow(img *Image, cam *Camera, scene geometry.Surface, row int, opts RenderOptions, intCfg integrator.Config, logger core.Logger) {
	rnd := core.NewRand(opts.Seed + int64(row))

	for w := 0; w < opts.Width; w++ {
		anchorX, anchorY := cam.PixelAnchor(w, row, opts.Width, opts.Height)

		var sum core.Color
		for i := 0; i < opts.Effort; i++ {
			ray := cam.RayThrough(anchorX, anchorY, rnd)
			sum = sum.Add(integrator.TraceColor(ray, scene, 0, 1.0, false, intCfg, rnd, logger))
		}

		img.Set(w, row, sum.Scale(1.0/float64(opts.Effort)).Clamp())
	}
}
