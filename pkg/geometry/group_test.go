package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjhorne/pathtracer/pkg/core"
	"github.com/kjhorne/pathtracer/pkg/material"
)

func TestGroup_Hit_ReturnsClosest(t *testing.T) {
	g := NewGroup()
	g.Add(NewSphere(core.NewPoint3(0, 0, 10), 1, material.New(core.NewColor(1, 0, 0))))
	g.Add(NewSphere(core.NewPoint3(0, 0, 5), 1, material.New(core.NewColor(0, 1, 0))))

	ray := core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(0, 0, 1))
	hit, ok := g.Hit(ray, 1e-4, 1e3)
	require.True(t, ok)
	assert.InDelta(t, 9.0, hit.T, 1e-9)
	assert.Equal(t, core.NewColor(0, 1, 0), hit.Surface.Material().Color)
}

func TestGroup_Hit_RejectsOutsideEnclosingSphere(t *testing.T) {
	g := NewGroup()
	g.Add(NewSphere(core.NewPoint3(0, 0, 10), 1, material.New(core.NewColor(1, 0, 0))))
	g.SetEnclosingSphere(core.NewPoint3(100, 100, 100), 1)

	ray := core.NewRay(core.NewPoint3(0, 0, -5), core.NewVec3(0, 0, 1))
	_, ok := g.Hit(ray, 1e-4, 1e3)
	assert.False(t, ok)
}

func TestGroup_GatherLightSources_Recurses(t *testing.T) {
	inner := NewGroup()
	inner.Add(NewSphere(core.NewPoint3(0, 0, 0), 1, material.NewEmitter(core.NewColor(1, 1, 1))))
	inner.Add(NewSphere(core.NewPoint3(0, 0, 0), 1, material.New(core.NewColor(1, 1, 1))))

	outer := NewGroup()
	outer.Add(inner)

	var lights []Surface
	outer.GatherLightSources(&lights)
	assert.Len(t, lights, 1)
}
