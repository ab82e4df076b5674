package config

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_NoArgsReturnsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_WrongArgCountIsError(t *testing.T) {
	for _, args := range [][]string{
		{"a"},
		{"a", "b", "c"},
		{"a", "b", "c", "d", "e", "f"},
		{"a", "b", "c", "d", "e", "f", "g", "h"},
	} {
		_, err := Parse(args)
		assert.Error(t, err, "args=%v", args)
	}
}

func TestParse_SevenArgs(t *testing.T) {
	cfg, err := Parse([]string{"out.png", "640", "480", "2", "50", "1", "4"})
	require.NoError(t, err)
	assert.Equal(t, "out.png", cfg.OutputPath)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 2, cfg.SceneID)
	assert.Equal(t, 50, cfg.Effort)
	assert.True(t, cfg.FastDiffuse)
}

func TestParse_ThreadClamping(t *testing.T) {
	cores := runtime.NumCPU()

	cfg, err := Parse([]string{"o.png", "1", "1", "1", "1", "0", "0"})
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Threads, "zero threads clamps to 1")

	cfg, err = Parse([]string{"o.png", "1", "1", "1", "1", "0", "-1"})
	require.NoError(t, err)
	assert.Equal(t, maxInt(1, cores-1), cfg.Threads, "negative threads subtract from detected cores")

	cfg, err = Parse([]string{"o.png", "1", "1", "1", "1", "0", "999999"})
	require.NoError(t, err)
	assert.Equal(t, cores, cfg.Threads, "threads above core count clamps to cores")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
