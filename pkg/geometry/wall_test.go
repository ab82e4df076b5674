package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

func squareWall() *Wall {
	return NewWall(
		core.NewPoint3(-1, -1, 5), core.NewPoint3(1, -1, 5),
		core.NewPoint3(1, 1, 5), core.NewPoint3(-1, 1, 5),
		material.New(core.NewColor(1, 1, 1)),
	)
}

func TestWall_Hit_InsideRectangle(t *testing.T) {
	w := squareWall()
	ray := core.NewRay(core.NewPoint3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, ok := w.Hit(ray, 1e-4, 1e3)
	require.True(t, ok)
	assert.InDelta(t, 5.0, hit.T, 1e-9)
}

func TestWall_Hit_OutsideRectangle(t *testing.T) {
	w := squareWall()
	ray := core.NewRay(core.NewPoint3(5, 5, 0), core.NewVec3(0, 0, 1))

	_, ok := w.Hit(ray, 1e-4, 1e3)
	assert.False(t, ok)
}

func TestWall_LightPointInGrid_CoversAllCells(t *testing.T) {
	w := squareWall()
	rnd := core.NewRand(1)

	for cell := 0; cell < 16; cell++ {
		p := w.LightPointInGrid(cell, rnd)
		assert.GreaterOrEqual(t, p.X, -1.0)
		assert.LessOrEqual(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Y, -1.0)
		assert.LessOrEqual(t, p.Y, 1.0)
	}
}
