package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRand_Float64_InRange(t *testing.T) {
	r := NewRand(42)
	for i := 0; i < 1000; i++ {
		v := r.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRand_InRadius_Bounded(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.InRadius(2.5)
		assert.GreaterOrEqual(t, v, -2.5)
		assert.Less(t, v, 2.5)
	}
}

func TestRand_SameSeedReproducesSequence(t *testing.T) {
	a := NewRand(99)
	b := NewRand(99)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}
