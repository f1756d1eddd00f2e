package assets_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeveloperRalsei/the-third-sanctuary/internal/assets"
)

func TestPackRoundTrip(t *testing.T) {
	dir := t.TempDir()
	pakPath := filepath.Join(dir, "sanctuary.pak")

	files := map[string][]byte{
		"panels/prophecy-1.png":  []byte("first"),
		"panels/prophecy-20.png": []byte("twentieth panel image"),
		"textures/deep-sea.tex":  {0x00, 0xFF, 0x10, 0x20},
	}
	require.NoError(t, assets.WritePack(pakPath, files))

	outDir := filepath.Join(dir, "out")
	require.NoError(t, assets.ExtractPack(pakPath, outDir))

	for name, want := range files {
		got, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestExtractPackRejectsForeignFile(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "not-a-pack.pak")
	require.NoError(t, os.WriteFile(bogus, []byte("\x08\x00\x00\x00GARBAGE!trailing"), 0644))

	err := assets.ExtractPack(bogus, filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestExtractPackMissingFile(t *testing.T) {
	err := assets.ExtractPack(filepath.Join(t.TempDir(), "absent.pak"), t.TempDir())
	assert.Error(t, err)
}
