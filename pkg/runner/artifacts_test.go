package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stage(t *testing.T, dir, rel string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestSweepArtifacts_Classification(t *testing.T) {
	dir := t.TempDir()
	for _, rel := range []string{
		"shot.png",
		"clip.webm",
		"trace.zip",
		"bundle.zip",
		"notes.txt",
		"report.json",
		"mystery.bin",
		"spec.test.ts",
		"sub/deep.jpg",
	} {
		stage(t, dir, rel)
	}

	arts, err := SweepArtifacts(dir, nil)
	require.NoError(t, err)

	types := make(map[string]string)
	for _, a := range arts {
		types[a.Name] = a.Type
		assert.FileExists(t, a.Path)
		assert.Equal(t, int64(1), a.SizeBytes)
		assert.NotEmpty(t, a.MimeType)
	}

	assert.Equal(t, map[string]string{
		"shot.png":    "screenshot",
		"deep.jpg":    "screenshot",
		"clip.webm":   "video",
		"trace.zip":   "trace",
		"notes.txt":   "log",
		"report.json": "log",
	}, types)
}

func TestSweepArtifacts_IgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	stage(t, dir, "keep.png")
	stage(t, dir, "chrome-profile/leak.png")
	stage(t, dir, "nested/chrome-profile/deep/leak2.png")
	stage(t, dir, "scratch.tmp.png")

	arts, err := SweepArtifacts(dir, []string{"**/chrome-profile/**", "*.tmp.png"})
	require.NoError(t, err)

	require.Len(t, arts, 1)
	assert.Equal(t, "keep.png", arts[0].Name)
}

func TestSweepArtifacts_DedupeByNameAndType(t *testing.T) {
	dir := t.TempDir()
	stage(t, dir, "a/shot.png")
	stage(t, dir, "b/shot.png")

	arts, err := SweepArtifacts(dir, nil)
	require.NoError(t, err)

	require.Len(t, arts, 1)
	assert.Equal(t, filepath.Join(dir, "a", "shot.png"), arts[0].Path)
}

func TestSweepArtifacts_EmptyDir(t *testing.T) {
	arts, err := SweepArtifacts(t.TempDir(), nil)
	require.NoError(t, err)
	assert.Empty(t, arts)
}
