package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjhorne/pathtracer/pkg/geometry"
)

type nullLogger struct{}

func (nullLogger) Warnf(string, ...interface{}) {}

func TestNew1_HasExactlyOneLight(t *testing.T) {
	s := New1()
	var lights []geometry.Surface
	s.GatherLightSources(&lights)
	assert.Len(t, lights, 1)
}

func TestNew3_HasExactlyOneLight(t *testing.T) {
	s := New3()
	var lights []geometry.Surface
	s.GatherLightSources(&lights)
	assert.Len(t, lights, 1)
}

func TestSelect_UnknownIDFallsBackToScene1(t *testing.T) {
	s1 := Select(1, "", nullLogger{})
	sUnknown := Select(42, "", nullLogger{})

	var lights1, lightsUnknown []geometry.Surface
	s1.GatherLightSources(&lights1)
	sUnknown.GatherLightSources(&lightsUnknown)
	assert.Len(t, lightsUnknown, len(lights1))
}

func TestSelect_MissingMeshFallsBackToScene1(t *testing.T) {
	s := Select(2, "/nonexistent/path/does-not-exist.obj", nullLogger{})
	var lights []geometry.Surface
	s.GatherLightSources(&lights)
	assert.Len(t, lights, 1)
}
