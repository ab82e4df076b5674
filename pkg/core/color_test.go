package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColor_Clamp(t *testing.T) {
	c := NewColor(-0.5, 0.5, 1.5)
	clamped := c.Clamp()
	assert.Equal(t, NewColor(0, 0.5, 1), clamped)
}

func TestColor_IsBrighterThan(t *testing.T) {
	bright := NewColor(0.9, 0.9, 0.9)
	dim := NewColor(0.1, 0.1, 0.1)
	assert.True(t, bright.IsBrighterThan(dim))
	assert.False(t, dim.IsBrighterThan(bright))
}

func TestColor_AnyChannelAtLeast(t *testing.T) {
	c := NewColor(0, 0, 0.2)
	assert.True(t, c.AnyChannelAtLeast(0.1))
	assert.False(t, c.AnyChannelAtLeast(0.3))
}

func TestColor_MulMatchesElementwiseProduct(t *testing.T) {
	a := NewColor(0.5, 0.2, 1.0)
	b := NewColor(2, 3, 0)
	assert.Equal(t, NewColor(1.0, 0.6, 0), a.Mul(b))
}
