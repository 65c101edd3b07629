package render

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceCache_ReusesFaces(t *testing.T) {
	t.Parallel()

	faces, err := LoadFaceCache("")
	require.NoError(t, err)

	a, err := faces.Face(10)
	require.NoError(t, err)
	b, err := faces.Face(10)
	require.NoError(t, err)
	c, err := faces.Face(30)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}

func TestLoadFaceCache_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadFaceCache(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)

	_, err = NewFaceCache([]byte("not a font"))
	assert.Error(t, err)
}
