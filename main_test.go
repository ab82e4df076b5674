package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_WrongArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		{"one"},
		{"a", "b", "c", "d", "e", "f"},
		{"a", "b", "c", "d", "e", "f", "g", "h"},
	} {
		assert.Equal(t, 1, run(args), "args=%v", args)
	}
}

func TestRun_SevenArgsRendersSmallImage(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")

	code := run([]string{out, "4", "4", "1", "1", "0", "1"})
	require.Equal(t, 0, code)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
