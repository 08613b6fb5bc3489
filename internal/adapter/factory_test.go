package adapter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTTY_NonFileWriter(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTTY(f))

	_, _, ok := TerminalSize(f)
	assert.False(t, ok)
}

func TestTerminalSize_NonFileWriter(t *testing.T) {
	w, h, ok := TerminalSize(&bytes.Buffer{})
	assert.False(t, ok)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
