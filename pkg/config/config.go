// Package config implements the renderer's command-line contract:
// either no arguments (use every default) or exactly seven positional
// arguments, with no flag syntax in between.
package config

import (
	"fmt"
	"runtime"
	"strconv"
)

// Config holds everything main needs to render one image.
type Config struct {
	OutputPath  string
	Width       int
	Height      int
	SceneID     int
	Effort      int
	FastDiffuse bool
	Threads     int
}

// Default returns the configuration used when no arguments are given.
func Default() Config {
	return Config{
		OutputPath:  "default.png",
		Width:       300,
		Height:      300,
		SceneID:     1,
		Effort:      100,
		FastDiffuse: false,
		Threads:     runtime.NumCPU(),
	}
}

// Parse implements the CLI contract: args (os.Args[1:]) must either be
// empty (defaults apply) or contain exactly seven positional values
// "<output> <x_res> <y_res> <scene> <effort> <fast_diffuse> <threads>".
// Any other argument count is a usage error.
func Parse(args []string) (Config, error) {
	if len(args) == 0 {
		return Default(), nil
	}
	if len(args) != 7 {
		return Config{}, fmt.Errorf("usage: <output_file> <x_res> <y_res> <scene> <effort> <fast_diffuse> <threads> (got %d arguments, want 0 or 7)", len(args))
	}

	width, err := strconv.Atoi(args[1])
	if err != nil {
		return Config{}, fmt.Errorf("parsing x_res: %w", err)
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return Config{}, fmt.Errorf("parsing y_res: %w", err)
	}
	sceneID, err := strconv.Atoi(args[3])
	if err != nil {
		return Config{}, fmt.Errorf("parsing scene: %w", err)
	}
	effort, err := strconv.Atoi(args[4])
	if err != nil {
		return Config{}, fmt.Errorf("parsing effort: %w", err)
	}
	fastDiffuseFlag, err := strconv.Atoi(args[5])
	if err != nil {
		return Config{}, fmt.Errorf("parsing fast_diffuse: %w", err)
	}
	requestedThreads, err := strconv.Atoi(args[6])
	if err != nil {
		return Config{}, fmt.Errorf("parsing threads: %w", err)
	}

	cores := runtime.NumCPU()
	threads := requestedThreads
	if requestedThreads < 0 {
		threads = cores + requestedThreads
	}
	if threads <= 0 {
		threads = 1
	} else if threads > cores {
		threads = cores
	}

	return Config{
		OutputPath:  args[0],
		Width:       width,
		Height:      height,
		SceneID:     sceneID,
		Effort:      effort,
		FastDiffuse: fastDiffuseFlag == 1,
		Threads:     threads,
	}, nil
}
