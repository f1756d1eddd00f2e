package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/assets"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
}

func TestResolvePanelPrefersPanelsDir(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "panels", "prophecy-3.png"))
	touch(t, filepath.Join(root, "prophecy-3.png"))

	got, err := assets.ResolvePanel(root, 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "panels", "prophecy-3.png"), got)
}

func TestResolvePanelFallsBackToContainer(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "panels", "prophecy-7.tex"))

	got, err := assets.ResolvePanel(root, 7)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "panels", "prophecy-7.tex"), got)
}

func TestResolvePanelMissing(t *testing.T) {
	_, err := assets.ResolvePanel(t.TempDir(), 12)
	assert.Error(t, err)
}

func TestResolveBackground(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "textures", "deep-sea.png"))

	got, err := assets.ResolveBackground(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "textures", "deep-sea.png"), got)
}
