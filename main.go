// Command pathtracer renders one of the built-in scenes with an
// unbiased Monte Carlo path tracer and writes the result as a PNG.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kjhorne/pathtracer/pkg/config"
	"github.com/kjhorne/pathtracer/pkg/renderer"
	"github.com/kjhorne/pathtracer/pkg/scene"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := config.Parse(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	logger, err := renderer.NewZapLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "building logger:", err)
		return 1
	}
	defer logger.Sync()

	logger.Printf("rendering scene %d at %dx%d, effort=%d, threads=%d, fast_diffuse=%v",
		cfg.SceneID, cfg.Width, cfg.Height, cfg.Effort, cfg.Threads, cfg.FastDiffuse)

	s := scene.Select(cfg.SceneID, scene.DefaultMeshPath, logger)

	start := time.Now()
	img := renderer.Render(s, renderer.RenderOptions{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Effort:      cfg.Effort,
		FastDiffuse: cfg.FastDiffuse,
		Threads:     cfg.Threads,
		Seed:        time.Now().UnixNano(),
	}, logger)
	logger.Printf("render finished in %s", time.Since(start))

	if err := img.SavePNG(cfg.OutputPath); err != nil {
		logger.Warnf("saving %s: %v", cfg.OutputPath, err)
		fmt.Fprintln(os.Stderr, "saving image:", err)
		return 1
	}

	return 0
}
