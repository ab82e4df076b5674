package material

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kjhorne/pathtracer/pkg/core"
)

func TestNew_Defaults(t *testing.T) {
	m := New(core.NewColor(0.5, 0.5, 0.5))
	assert.Equal(t, Diffuse, m.Type)
	assert.Equal(t, 1.0, m.DiffAmount)
	assert.Equal(t, 1.5, m.IndexInside)
	assert.Equal(t, 1.0, m.IndexOutside)
	assert.False(t, m.IsEmissive())
}

func TestNewEmitter_IsEmissive(t *testing.T) {
	m := NewEmitter(core.NewColor(1, 1, 1))
	assert.True(t, m.IsEmissive())
	assert.Equal(t, core.Black(), m.Color)
}

func TestWithType_DoesNotMutateOriginal(t *testing.T) {
	base := New(core.NewColor(1, 0, 0))
	mirror := base.WithType(Specular)
	assert.Equal(t, Diffuse, base.Type)
	assert.Equal(t, Specular, mirror.Type)
}

func TestWithRefractiveIndices(t *testing.T) {
	m := New(core.NewColor(1, 1, 1)).WithRefractiveIndices(2.419, 1.5)
	assert.Equal(t, 2.419, m.IndexInside)
	assert.Equal(t, 1.5, m.IndexOutside)
}
